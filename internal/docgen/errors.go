package docgen

import (
	"errors"
	"fmt"
)

// Stage sentinels for pipeline failures. Callers classify with errors.Is so
// they can distinguish "fix your input" from "try again later".
var (
	// ErrValidation marks missing or invalid invoice/item/branding input.
	// Generation aborts before any I/O.
	ErrValidation = errors.New("docgen: invalid input")

	// ErrEncoding marks a payment QR encoding failure. The pipeline swallows
	// it and omits the payment block; it is exported for tests and logging.
	ErrEncoding = errors.New("docgen: payment encoding failed")

	// ErrRender marks a document composition or binary conversion failure.
	// No artifact is produced.
	ErrRender = errors.New("docgen: render failed")

	// ErrStorage marks a persistence failure. The underlying transport error
	// is wrapped; no artifact reference is returned.
	ErrStorage = errors.New("docgen: storage failed")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func renderError(err error) error {
	return fmt.Errorf("%w: %v", ErrRender, err)
}

func storageError(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
