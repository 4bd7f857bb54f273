package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/yanqian/daily-secrets/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

var statusByCode = map[string]int{
	"invalid_input":    http.StatusBadRequest,
	"not_found":        http.StatusNotFound,
	"archive_disabled": http.StatusServiceUnavailable,
	"archive_error":    http.StatusBadGateway,
	"journal_error":    http.StatusInternalServerError,
	"stats_error":      http.StatusInternalServerError,
}

// fromServiceError translates a domain error into its HTTP form.
func fromServiceError(err error) *HTTPError {
	code := apperrors.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		return asHTTPError(err)
	}
	return NewHTTPError(status, code, apperrors.MessageOf(err), err)
}

// invalidRequest wraps bind and validation failures.
func invalidRequest(err error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, "invalid_request", validationMessage(err), err)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "oneof":
			parts = append(parts, field+" must be one of "+fe.Param())
		case "max":
			parts = append(parts, field+" must be at most "+fe.Param())
		case "min":
			parts = append(parts, field+" must be at least "+fe.Param())
		default:
			parts = append(parts, field+" is invalid")
		}
	}
	return strings.Join(parts, "; ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
