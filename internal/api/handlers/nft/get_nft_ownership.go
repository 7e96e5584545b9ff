package nft

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/nft-faucet/internal/api"
	nftTypes "github/chapool/nft-faucet/internal/types/nft"
	"github/chapool/nft-faucet/internal/util"
)

func GetNftOwnershipRoute(s *api.Server) *echo.Route {
	return s.Router.NFT.GET("/ownership", getNftOwnershipHandler(s))
}

func getNftOwnershipHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := nftTypes.NewGetNftOwnershipRouteParams()
		if err := util.BindAndValidateQueryParams(c, &params); err != nil {
			return err
		}

		response, err := checkOwnership(c.Request().Context(), s, params.HolderAddress, params.AssetContractAddress)
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
