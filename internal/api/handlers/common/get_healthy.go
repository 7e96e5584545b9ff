package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/nft-faucet/internal/api"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// Liveness only asserts the process serves requests, the node may be down.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		return c.String(http.StatusOK, "Healthy.")
	}
}
