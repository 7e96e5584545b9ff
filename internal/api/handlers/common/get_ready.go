package common

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/util"
)

const readinessTimeout = 5 * time.Second

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// Readiness additionally requires the chain node to answer.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
		defer cancel()

		if _, err := s.Chain.GetLatestBlockNumber(ctx); err != nil {
			util.LogFromContext(ctx).Warn().Err(err).Msg("Readiness probe failed, chain node unreachable")
			return c.String(521, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
