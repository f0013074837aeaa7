package handler

import (
	"errors"
	"io"

	"github.com/edupay/edupay-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParseIDParam parses a UUID path parameter, returning uuid.Nil and false
// when the value is malformed.
func ParseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// bindOptionalJSON binds the request body into dst when one is present.
// Empty bodies are fine, including chunked requests that close without
// sending any payload, so only a bare io.EOF is tolerated.
func bindOptionalJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
