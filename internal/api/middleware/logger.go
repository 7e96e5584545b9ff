package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type LoggerConfig struct {
	Skipper           middleware.Skipper
	Level             zerolog.Level
	LogRequestHeader  bool
	LogRequestQuery   bool
	LogResponseHeader bool
}

var DefaultLoggerConfig = LoggerConfig{
	Skipper: middleware.DefaultSkipper,
	Level:   zerolog.DebugLevel,
}

func Logger() echo.MiddlewareFunc {
	return LoggerWithConfig(DefaultLoggerConfig)
}

// LoggerWithConfig attaches a request scoped logger carrying the request id to
// the request context and logs every request once it completed.
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultLoggerConfig.Skipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = res.Header().Get(echo.HeaderXRequestID)
			}

			l := log.With().Str("id", id).Logger()
			c.SetRequest(req.WithContext(l.WithContext(req.Context())))

			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the response before logging its status
				c.Error(err)
			}
			stop := time.Now()

			ev := l.WithLevel(config.Level)
			if res.Status >= http.StatusInternalServerError {
				ev = l.Error()
			}

			ev = ev.
				Str("host", req.Host).
				Str("method", req.Method).
				Str("url", req.URL.Path).
				Str("remote_ip", c.RealIP()).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration", stop.Sub(start))

			if err != nil {
				ev = ev.Err(err)
			}
			if config.LogRequestQuery {
				ev = ev.Str("query", req.URL.RawQuery)
			}
			if config.LogRequestHeader {
				ev = ev.Interface("req_header", req.Header)
			}
			if config.LogResponseHeader {
				ev = ev.Interface("res_header", res.Header())
			}

			ev.Msg("http_request")

			return nil
		}
	}
}
