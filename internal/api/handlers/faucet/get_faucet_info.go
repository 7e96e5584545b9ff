package faucet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/types"
	"github/chapool/nft-faucet/internal/util"
)

func GetFaucetInfoRoute(s *api.Server) *echo.Route {
	return s.Router.Faucet.GET("", getFaucetInfoHandler(s))
}

func getFaucetInfoHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		cfg := s.Engine.Config()

		response := &types.FaucetInfoResponse{
			AmountPerRequest:      swag.String(util.FormatEther(cfg.AmountPerRequest)),
			DailyLimit:            swag.String(util.FormatEther(s.Config.Faucet.DailyLimit)),
			CooldownMillis:        swag.Int64(s.Config.Faucet.Cooldown.Milliseconds()),
			RequiredAssetContract: swag.String(cfg.RequiredAsset.Hex()),
			Symbol:                swag.String(s.Config.Chain.NativeSymbol),
			FaucetAddress:         swag.String(s.Engine.FaucetAddress().Hex()),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
