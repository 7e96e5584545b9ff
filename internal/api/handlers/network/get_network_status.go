package network

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/api/httperrors"
	"github/chapool/nft-faucet/internal/chain"
	"github/chapool/nft-faucet/internal/types"
	"github/chapool/nft-faucet/internal/util"
)

func GetNetworkStatusRoute(s *api.Server) *echo.Route {
	return s.Router.Network.GET("/status", getNetworkStatusHandler(s))
}

func getNetworkStatusHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		blockNumber, err := s.Chain.GetLatestBlockNumber(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to get block number")
			return chainError(err)
		}

		chainID, err := s.Chain.GetChainID(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to get chain id")
			return chainError(err)
		}

		faucetAddress := s.Signer.Address()
		balance, err := s.Chain.BalanceAt(ctx, faucetAddress)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to get faucet balance")
			return chainError(err)
		}

		response := &types.NetworkStatusResponse{
			Success:       swag.Bool(true),
			BlockNumber:   swag.Uint64(blockNumber),
			ChainID:       swag.String(chainID.String()),
			NetworkName:   s.Config.Chain.NetworkName,
			GasPrice:      swag.String(gasPriceDisplay(c, s)),
			FaucetAddress: swag.String(faucetAddress.Hex()),
			FaucetBalance: swag.String(util.FormatEther(balance)),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}

// gasPriceDisplay prefers the legacy gas price and falls back to the max fee.
// Fee data is informational here, so failures degrade to "N/A".
func gasPriceDisplay(c echo.Context, s *api.Server) string {
	feeData, err := s.Chain.GetFeeData(c.Request().Context())
	if err != nil {
		util.LogFromEchoContext(c).Debug().Err(err).Msg("Failed to get fee data for network status")
		return "N/A"
	}

	switch {
	case feeData.GasPrice != nil && feeData.GasPrice.Sign() > 0:
		return util.FormatGwei(feeData.GasPrice) + " Gwei"
	case feeData.MaxFeePerGas != nil && feeData.MaxFeePerGas.Sign() > 0:
		return util.FormatGwei(feeData.MaxFeePerGas) + " Gwei (Max Fee)"
	default:
		return "N/A"
	}
}

func chainError(err error) error {
	if errors.Is(err, chain.ErrUnavailable) {
		return httperrors.ErrServiceUnavailableChain
	}
	return err
}
