package router

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/nft-faucet/internal/api/httperrors"
	"github/chapool/nft-faucet/internal/types"
	"github/chapool/nft-faucet/internal/util"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

// HTTPErrorHandlerWithConfig renders every error as types.PublicHTTPError.
func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			httpErr       *httperrors.HTTPError
			validationErr *httperrors.HTTPValidationError
			echoErr       *echo.HTTPError
			body          interface{}
			code          int
		)

		switch {
		case errors.As(err, &httpErr):
			code = int(*httpErr.Status)
			if code == http.StatusInternalServerError && config.HideInternalServerErrorDetails {
				httpErr = httperrors.NewHTTPError(code, types.PublicHTTPErrorTypeGeneric, http.StatusText(code))
			}
			if httpErr.RetryAfterMillis != nil {
				c.Response().Header().Set("Retry-After", retryAfterSeconds(*httpErr.RetryAfterMillis))
			}
			body = httpErr

		case errors.As(err, &validationErr):
			code = int(*validationErr.Status)
			body = validationErr

		case errors.As(err, &echoErr):
			code = echoErr.Code
			body = httperrors.NewFromEcho(echoErr)

		default:
			code = http.StatusInternalServerError
			if config.HideInternalServerErrorDetails {
				body = httperrors.NewHTTPError(code, types.PublicHTTPErrorTypeGeneric, http.StatusText(code))
			} else {
				body = httperrors.NewHTTPErrorWithDetail(code, types.PublicHTTPErrorTypeGeneric, http.StatusText(code), err.Error())
			}
		}

		if code >= http.StatusInternalServerError {
			util.LogFromEchoContext(c).Error().Err(err).Int("status", code).Msg("Request failed")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, body)
		}
		if writeErr != nil {
			util.LogFromEchoContext(c).Error().Err(writeErr).AnErr("http_err", err).Msg("Failed to write error response")
		}
	}
}

// retryAfterSeconds rounds up so clients never retry too early.
func retryAfterSeconds(millis int64) string {
	seconds := math.Ceil(float64(millis) / float64(time.Second/time.Millisecond))
	return strconv.FormatInt(int64(seconds), 10)
}
