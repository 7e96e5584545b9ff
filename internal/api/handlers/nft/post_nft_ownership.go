package nft

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/types"
	"github/chapool/nft-faucet/internal/util"
)

func PostNftOwnershipRoute(s *api.Server) *echo.Route {
	return s.Router.NFT.POST("/ownership", postNftOwnershipHandler(s))
}

func postNftOwnershipHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.NftOwnershipPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		response, err := checkOwnership(c.Request().Context(), s, swag.StringValue(body.HolderAddress), body.AssetContractAddress)
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
