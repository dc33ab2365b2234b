// Package apperr holds the error taxonomy shared by services and controllers
// and its mapping onto HTTP responses.
package apperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrNotFound covers both a missing record and a record owned by someone
// else. Callers must not distinguish the two.
var ErrNotFound = errors.New("not found")

// FieldError is a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field of a payload that failed its schema.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error.
func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// Has reports whether field already carries an error.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns e when it holds errors and nil otherwise.
func (e *ValidationError) OrNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// Write renders err as the JSON error body for its class. notFound and
// internal are the user-visible messages for 404 and 500; the cause of a 500
// is logged and never sent to the client. Framework errors such as an
// oversized body are returned as-is for the echo error handler.
func Write(c echo.Context, log *zap.Logger, err error, notFound, internal string) error {
	var ve *ValidationError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Errors})
	case errors.Is(err, ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": notFound})
	default:
		log.Error(internal,
			zap.Error(err),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": internal})
	}
}
