package httperrors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/nft-faucet/internal/types"
)

// HTTPError is the error type returned by handlers. It is rendered as
// types.PublicHTTPError by the router's error handler.
type HTTPError struct {
	types.PublicHTTPError
	Internal       error                  `json:"-"`
	AdditionalData map[string]interface{} `json:"-"`
}

type HTTPValidationError struct {
	types.PublicHTTPError
	Internal error `json:"-"`
}

func NewHTTPError(code int, errorType types.PublicHTTPErrorType, message string) *HTTPError {
	return &HTTPError{
		PublicHTTPError: types.PublicHTTPError{
			Status:  swag.Int64(int64(code)),
			Type:    errorType.Pointer(),
			Message: &message,
			Success: swag.Bool(false),
		},
	}
}

func NewHTTPErrorWithDetail(code int, errorType types.PublicHTTPErrorType, message string, detail string) *HTTPError {
	err := NewHTTPError(code, errorType, message)
	err.Detail = detail

	return err
}

func NewFromEcho(e *echo.HTTPError) *HTTPError {
	return NewHTTPError(e.Code, types.PublicHTTPErrorTypeGeneric, http.StatusText(e.Code))
}

func NewHTTPValidationError(code int, errorType types.PublicHTTPErrorType, message string, validationErrors []*types.HTTPValidationErrorDetail) *HTTPValidationError {
	return &HTTPValidationError{
		PublicHTTPError: types.PublicHTTPError{
			Status:           swag.Int64(int64(code)),
			Type:             errorType.Pointer(),
			Message:          &message,
			Success:          swag.Bool(false),
			ValidationErrors: validationErrors,
		},
	}
}

// WithRetryAfter sets the retry hint surfaced to clients in milliseconds.
func (e *HTTPError) WithRetryAfter(millis int64) *HTTPError {
	e.RetryAfterMillis = swag.Int64(millis)
	return e
}

func (e *HTTPError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "HTTPError %d (%s): %s", *e.Status, *e.Type, *e.Message)

	if len(e.Detail) > 0 {
		fmt.Fprintf(&b, " - %s", e.Detail)
	}
	if e.Internal != nil {
		fmt.Fprintf(&b, ", %v", e.Internal)
	}
	if len(e.AdditionalData) > 0 {
		keys := make([]string, 0, len(e.AdditionalData))
		for k := range e.AdditionalData {
			keys = append(keys, k)
		}
		fmt.Fprintf(&b, ". Additional: %s", strings.Join(keys, ", "))
	}

	return b.String()
}

func (e *HTTPValidationError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "HTTPValidationError %d (%s): %s", *e.Status, *e.Type, *e.Message)

	if len(e.Detail) > 0 {
		fmt.Fprintf(&b, " - %s", e.Detail)
	}
	if e.Internal != nil {
		fmt.Fprintf(&b, ", %v", e.Internal)
	}

	b.WriteString(" - Validation: ")
	for i, ve := range e.ValidationErrors {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s (in %s): %s", *ve.Key, *ve.In, *ve.Error)
	}

	return b.String()
}

var (
	ErrServiceUnavailableChain        = NewHTTPError(http.StatusServiceUnavailable, types.PublicHTTPErrorTypeGeneric, "Blockchain node is currently unavailable.")
	ErrServiceUnavailableVerification = NewHTTPError(http.StatusServiceUnavailable, types.PublicHTTPErrorTypeVERIFICATIONUNAVAILABLE, "Ownership verification is currently unavailable, please try again later.")
)
