package explorer

import (
	"net/http"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/api/httperrors"
	"github/chapool/nft-faucet/internal/chain"
	apiTypes "github/chapool/nft-faucet/internal/types"
	explorerTypes "github/chapool/nft-faucet/internal/types/explorer"
	"github/chapool/nft-faucet/internal/util"
)

func GetTransactionRoute(s *api.Server) *echo.Route {
	return s.Router.Explorer.GET("/transactions/:txHash", getTransactionHandler(s))
}

func getTransactionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		params := explorerTypes.NewGetTransactionRouteParams()
		if err := util.BindAndValidatePathParams(c, &params); err != nil {
			return err
		}

		hash := common.HexToHash(params.TxHash)

		tx, pending, err := s.Chain.GetTransaction(ctx, hash)
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				return httperrors.ErrNotFoundTransaction
			}
			log.Debug().Err(err).Str("tx_hash", hash.Hex()).Msg("Failed to get transaction")
			return chainError(err)
		}

		var receipt *types.Receipt
		if !pending {
			receipt, err = s.Chain.GetTransactionReceipt(ctx, hash)
			if err != nil && !errors.Is(err, ethereum.NotFound) {
				log.Debug().Err(err).Str("tx_hash", hash.Hex()).Msg("Failed to get transaction receipt")
				return chainError(err)
			}
		}

		response := &apiTypes.ExplorerTransactionResponse{
			Success:     swag.Bool(true),
			Transaction: tx,
			Pending:     pending,
		}
		if receipt != nil {
			response.Receipt = receipt
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}

// chainError hides node failures behind a 503, anything else is a server error.
func chainError(err error) error {
	if errors.Is(err, chain.ErrUnavailable) {
		return httperrors.ErrServiceUnavailableChain
	}
	return err
}
