package api

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/chapool/nft-faucet/internal/chain"
	"github/chapool/nft-faucet/internal/config"
	"github/chapool/nft-faucet/internal/faucet"
	"github/chapool/nft-faucet/internal/faucet/ownership"
	"github/chapool/nft-faucet/internal/faucet/quota"
	"github/chapool/nft-faucet/internal/metrics"
	"github/chapool/nft-faucet/internal/util"
	"github/chapool/nft-faucet/internal/wallet/signer"
)

// ChainService is the subset of the EVM node the server reads from and submits to.
type ChainService interface {
	GetLatestBlockNumber(ctx context.Context) (uint64, error)
	GetChainID(ctx context.Context) (*big.Int, error)
	GetTransaction(ctx context.Context, txHash common.Hash) (*types.Transaction, bool, error)
	GetTransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BalanceAt(ctx context.Context, address common.Address) (*big.Int, error)
	PendingNonceAt(ctx context.Context, address common.Address) (uint64, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	GetFeeData(ctx context.Context) (*chain.FeeData, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	Close()
}

type Router struct {
	Routes     []*echo.Route
	Root       *echo.Group
	Management *echo.Group
	APIV1      *echo.Group
	Faucet     *echo.Group
	NFT        *echo.Group
	Explorer   *echo.Group
	Network    *echo.Group

	// Throttle guards the disbursement route, empty when disabled.
	Throttle []echo.MiddlewareFunc
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config         config.Server
	Clock          time2.Clock
	Metrics        *metrics.Service
	Chain          ChainService
	Signer         signer.Service
	Verifier       *ownership.Verifier
	Ledger         *quota.Ledger
	Engine         *faucet.Engine
	BalanceWatcher *faucet.BalanceWatcher
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	clock time2.Clock,
	metrics *metrics.Service,
	chainService ChainService,
	signerService signer.Service,
	verifier *ownership.Verifier,
	ledger *quota.Ledger,
	engine *faucet.Engine,
	balanceWatcher *faucet.BalanceWatcher,
) *Server {
	return &Server{
		Config:         cfg,
		Clock:          clock,
		Metrics:        metrics,
		Chain:          chainService,
		Signer:         signerService,
		Verifier:       verifier,
		Ledger:         ledger,
		Engine:         engine,
		BalanceWatcher: balanceWatcher,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	if s.Chain != nil {
		log.Debug().Msg("Closing chain RPC connections")
		s.Chain.Close()
	}

	return errs
}
