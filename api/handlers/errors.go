package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"naya-blog/config"
	"naya-blog/dto"
	"naya-blog/services"
	"naya-blog/trace"
)

// writeError maps service error kinds to status codes.
// Persistence failures are logged and answered with fallback only.
func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponseDTO{Error: "Slug already exists"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "Post not found"})
	default:
		config.ErrorWithFields(fallback, config.Fields{
			"error":      err.Error(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: fallback})
	}
}

var errTrailingData = errors.New("unexpected data after JSON body")

// bindStrictJSON decodes exactly one JSON object and rejects unknown fields.
func bindStrictJSON(c *gin.Context, dst any) error {
	if c.Request.Body == nil {
		return fmt.Errorf("invalid request body: %w", io.EOF)
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid request body: %w", errTrailingData)
	}
	return nil
}
