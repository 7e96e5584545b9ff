package explorer

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/api/httperrors"
	"github/chapool/nft-faucet/internal/chain"
	apiTypes "github/chapool/nft-faucet/internal/types"
	explorerTypes "github/chapool/nft-faucet/internal/types/explorer"
	"github/chapool/nft-faucet/internal/util"
)

func GetAddressRoute(s *api.Server) *echo.Route {
	return s.Router.Explorer.GET("/addresses/:address", getAddressHandler(s))
}

func getAddressHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		params := explorerTypes.NewGetAddressRouteParams()
		if err := util.BindAndValidatePathParams(c, &params); err != nil {
			return err
		}

		address, err := chain.ParseAddress(params.Address)
		if err != nil {
			return httperrors.ErrBadRequestInvalidAddress
		}

		balance, err := s.Chain.BalanceAt(ctx, address)
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Str("address", address.Hex()).Msg("Failed to get balance")
			return chainError(err)
		}

		response := &apiTypes.ExplorerAddressResponse{
			Success:    swag.Bool(true),
			Address:    swag.String(address.Hex()),
			Balance:    swag.String(util.FormatEther(balance)),
			BalanceWei: balance.String(),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
