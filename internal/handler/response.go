package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"drivelog/internal/middleware"
	"drivelog/internal/repository"
	"drivelog/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// respondError sends an error response with the appropriate HTTP status code.
// Storage and unexpected failures are logged and answered with a generic
// message.
func respondError(c *gin.Context, err error) {
	var ve *service.ValidationError
	var se *repository.StorageError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: ve.Message, Field: ve.Field})

	case errors.Is(err, service.ErrInvalidRecord):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})

	case errors.As(err, &se):
		middleware.LoggerFrom(c).WithError(err).WithField("op", se.Op).Error("store operation failed")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "service temporarily unavailable"})

	default:
		middleware.LoggerFrom(c).WithError(err).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// bindRecord decodes the request body as a JSON object, keeping numbers as
// json.Number so that no precision is lost before normalization.
func bindRecord(c *gin.Context) (service.Record, error) {
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()

	var rec service.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", service.ErrInvalidRecord)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", service.ErrInvalidRecord)
	}
	return rec, nil
}
