package service

import (
	"errors"
	"testing"

	"github.com/edupay/edupay-api/internal/docgen"
	"github.com/edupay/edupay-api/pkg/apperror"
)

func TestTranslateDocgenError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation maps to 422", docgen.ErrValidation, 422},
		{"wrapped validation maps to 422", errorsWrap(docgen.ErrValidation, "item bad"), 422},
		{"storage maps to 502", docgen.ErrStorage, 502},
		{"render maps to 500", docgen.ErrRender, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateDocgenError(tt.err)
			appErr := apperror.GetAppError(got)
			if appErr.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestTranslateDocgenErrorPassesThroughUnknown(t *testing.T) {
	err := errors.New("database gone")
	if got := translateDocgenError(err); got != err {
		t.Errorf("unknown error should pass through unchanged, got %v", got)
	}
}

func errorsWrap(sentinel error, msg string) error {
	return errors.Join(sentinel, errors.New(msg))
}
