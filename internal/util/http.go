package util

import (
	"net/http"
	"strings"

	oerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/nft-faucet/internal/api/httperrors"
	"github/chapool/nft-faucet/internal/types"
)

// BindAndValidateBody binds the request body to v and validates it against its schema.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("echo binder is not a *echo.DefaultBinder")
	}

	if err := binder.BindBody(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

func BindAndValidatePathParams(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("echo binder is not a *echo.DefaultBinder")
	}

	if err := binder.BindPathParams(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

func BindAndValidateQueryParams(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("echo binder is not a *echo.DefaultBinder")
	}

	if err := binder.BindQueryParams(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates a response against its schema before writing it as JSON.
// A response not matching its schema is a server bug and results in a 500.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		var compositeError *oerrors.CompositeError
		if errors.As(err, &compositeError) {
			LogFromEchoContext(c).Error().Errs("validation_errors", compositeError.Errors).Msg("Response did not match schema")
		} else {
			LogFromEchoContext(c).Error().Err(err).Msg("Failed to validate response")
		}

		return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	err := v.Validate(strfmt.Default)
	if err == nil {
		return nil
	}

	var compositeError *oerrors.CompositeError
	if errors.As(err, &compositeError) {
		LogFromEchoContext(c).Debug().Errs("validation_errors", compositeError.Errors).Msg("Payload did not match schema")

		return httperrors.NewHTTPValidationError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), formatValidationErrors(compositeError.Errors))
	}

	var validationError *oerrors.Validation
	if errors.As(err, &validationError) {
		LogFromEchoContext(c).Debug().Err(validationError).Msg("Payload did not match schema")

		return httperrors.NewHTTPValidationError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), formatValidationErrors([]error{validationError}))
	}

	LogFromEchoContext(c).Error().Err(err).Msg("Failed to validate payload")

	return err
}

func formatValidationErrors(errs []error) []*types.HTTPValidationErrorDetail {
	details := make([]*types.HTTPValidationErrorDetail, 0, len(errs))

	for _, err := range errs {
		var compositeError *oerrors.CompositeError
		if errors.As(err, &compositeError) {
			details = append(details, formatValidationErrors(compositeError.Errors)...)
			continue
		}

		var validationError *oerrors.Validation
		if errors.As(err, &validationError) {
			details = append(details, &types.HTTPValidationErrorDetail{
				Key:   swag.String(strings.TrimPrefix(validationError.Name, ".")),
				In:    swag.String(validationError.In),
				Error: swag.String(validationError.Error()),
			})
			continue
		}

		details = append(details, &types.HTTPValidationErrorDetail{
			Key:   swag.String("general"),
			In:    swag.String("body"),
			Error: swag.String(err.Error()),
		})
	}

	return details
}
