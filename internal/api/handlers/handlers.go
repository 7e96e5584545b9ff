package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/api/handlers/common"
	"github/chapool/nft-faucet/internal/api/handlers/explorer"
	"github/chapool/nft-faucet/internal/api/handlers/faucet"
	"github/chapool/nft-faucet/internal/api/handlers/network"
	"github/chapool/nft-faucet/internal/api/handlers/nft"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		explorer.GetAddressRoute(s),
		explorer.GetTransactionRoute(s),
		faucet.GetFaucetInfoRoute(s),
		faucet.PostDisbursementRoute(s),
		network.GetNetworkStatusRoute(s),
		nft.GetNftOwnershipRoute(s),
		nft.PostNftOwnershipRoute(s),
	}
}
