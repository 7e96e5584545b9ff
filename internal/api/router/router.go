package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/api/handlers"
	"github/chapool/nft-faucet/internal/api/httperrors"
	"github/chapool/nft-faucet/internal/api/middleware"
	"golang.org/x/time/rate"
)

func Init(s *api.Server) error {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true
	s.Echo.Server.ReadTimeout = s.Config.Echo.ReadTimeout
	s.Echo.Server.WriteTimeout = s.Config.Echo.WriteTimeout

	s.Echo.HTTPErrorHandler = HTTPErrorHandlerWithConfig(HTTPErrorHandlerConfig{
		HideInternalServerErrorDetails: s.Config.Echo.HideInternalServerErrorDetails,
	})

	// ---
	// General middleware
	if s.Config.Echo.EnableTrailingSlashMiddleware {
		s.Echo.Pre(echoMiddleware.RemoveTrailingSlash())
	} else {
		log.Warn().Msg("Disabling trailing slash middleware due to environment config")
	}

	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echoMiddleware.RecoverWithConfig(echoMiddleware.RecoverConfig{
			LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
				log.Error().Err(err).Bytes("stack", stack).Msg("Recovered from panic")
				return err
			},
		}))
	} else {
		log.Warn().Msg("Disabling recover middleware due to environment config")
	}

	if s.Config.Echo.EnableRequestIDMiddleware {
		s.Echo.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
			Generator: uuid.NewString,
		}))
	} else {
		log.Warn().Msg("Disabling request ID middleware due to environment config")
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Level:             s.Config.Logger.RequestLevel,
			LogRequestHeader:  s.Config.Logger.LogRequestHeader,
			LogRequestQuery:   s.Config.Logger.LogRequestQuery,
			LogResponseHeader: s.Config.Logger.LogResponseHeader,
		}))
	} else {
		log.Warn().Msg("Disabling logger middleware due to environment config")
	}

	if s.Config.Echo.EnableCORSMiddleware {
		s.Echo.Use(echoMiddleware.CORS())
	} else {
		log.Warn().Msg("Disabling CORS middleware due to environment config")
	}

	if s.Config.Echo.EnablePrometheusMiddleware {
		mw, err := echoprometheus.MiddlewareConfig{
			Namespace:  "faucet",
			Subsystem:  "http",
			Registerer: s.Metrics.Registry,
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/metrics"
			},
		}.ToMiddleware()
		if err != nil {
			return errors.Wrap(err, "failed to create prometheus middleware")
		}
		s.Echo.Use(mw)
	} else {
		log.Warn().Msg("Disabling prometheus middleware due to environment config")
	}

	s.Router = &api.Router{
		Routes: nil, // will be populated by handlers.AttachAllRoutes(s)

		// Unsecured base group available at /**
		Root: s.Echo.Group(""),

		// Management endpoints, e.g. probes: /-/**
		Management: s.Echo.Group("/-"),

		// OK, Faucet endpoints on /api/v1/**
		APIV1: s.Echo.Group("/api/v1"),
	}

	s.Router.Faucet = s.Router.APIV1.Group("/faucet")
	s.Router.NFT = s.Router.APIV1.Group("/nft")
	s.Router.Explorer = s.Router.APIV1.Group("/explorer")
	s.Router.Network = s.Router.APIV1.Group("/network")

	if s.Config.RateLimit.Enabled {
		s.Router.Throttle = []echo.MiddlewareFunc{newRateLimiter(s)}
	} else {
		log.Warn().Msg("Disabling disbursement rate limit due to environment config")
	}

	s.Router.Root.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: s.Metrics.Registry,
	}))

	// ---
	// Finally attach our handlers
	handlers.AttachAllRoutes(s)

	return nil
}

// newRateLimiter throttles clients by IP in front of the per-address quota.
func newRateLimiter(s *api.Server) echo.MiddlewareFunc {
	store := echoMiddleware.NewRateLimiterMemoryStoreWithConfig(echoMiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(s.Config.RateLimit.RequestsPerSecond),
		Burst:     s.Config.RateLimit.Burst,
		ExpiresIn: s.Config.RateLimit.ExpiresIn,
	})

	return echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			log.Ctx(c.Request().Context()).Debug().Str("remote_ip", identifier).Msg("Rate limit exceeded")
			return httperrors.ErrTooManyRequests
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return httperrors.ErrTooManyRequests
		},
	})
}
