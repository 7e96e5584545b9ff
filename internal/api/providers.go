package api

import (
	"math/big"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github/chapool/nft-faucet/internal/chain"
	"github/chapool/nft-faucet/internal/config"
	"github/chapool/nft-faucet/internal/faucet"
	"github/chapool/nft-faucet/internal/faucet/fee"
	"github/chapool/nft-faucet/internal/faucet/ownership"
	"github/chapool/nft-faucet/internal/faucet/quota"
	"github/chapool/nft-faucet/internal/metrics"
	"github/chapool/nft-faucet/internal/wallet"
	"github/chapool/nft-faucet/internal/wallet/signer"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirement for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

// NewClock returns a mocked clock when a test is passed, the wall clock otherwise.
//
//nolint:ireturn
func NewClock(t ...*testing.T) time2.Clock {
	var clock time2.Clock

	useMock := len(t) > 0 && t[0] != nil

	if useMock {
		clock = time2.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	} else {
		clock = time2.DefaultClock
	}

	return clock
}

// NewChainService dials the configured RPC endpoints.
//
//nolint:ireturn
func NewChainService(cfg config.Server) (ChainService, error) {
	client, err := chain.NewRPCClient(cfg.Chain)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chain client")
	}

	return client, nil
}

// NewSigner loads the faucet key and binds it to the chain. Encrypted keystores
// without a configured password are unlocked interactively.
//
//nolint:ireturn
func NewSigner(cfg config.Server, chainService ChainService) (signer.Service, error) {
	key, err := wallet.LoadSigningKey(cfg.Signer, wallet.PromptPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load signing key")
	}

	return signer.NewService(chainService, key), nil
}

func NewVerifier(cfg config.Server, chainService ChainService) *ownership.Verifier {
	return ownership.NewVerifier(chainService, cfg.Chain.RequestTimeout)
}

func NewLedger(cfg config.Server) *quota.Ledger {
	return quota.NewLedger(quota.Config{
		Cooldown:   cfg.Faucet.Cooldown,
		Window:     cfg.Faucet.QuotaWindow,
		DailyLimit: cfg.Faucet.DailyLimit,

		PendingRetryAfter: cfg.Faucet.PendingRetryAfter,
	})
}

func NewFeeNegotiator(cfg config.Server, chainService ChainService) *fee.Negotiator {
	return fee.NewNegotiator(chainService, fee.Config{
		Mode:            cfg.Faucet.FeeMode,
		DefaultGasPrice: cfg.Faucet.DefaultGasPrice,
		MaxGasPrice:     cfg.Faucet.MaxGasPrice,
	})
}

func NewEngine(
	cfg config.Server,
	verifier *ownership.Verifier,
	ledger *quota.Ledger,
	fees *fee.Negotiator,
	signerService signer.Service,
	clock time2.Clock,
	metrics *metrics.Service,
) (*faucet.Engine, error) {
	asset, err := chain.ParseAddress(cfg.Faucet.RequiredAssetContract)
	if err != nil {
		return nil, errors.Wrap(err, "invalid required asset contract")
	}

	return faucet.NewEngine(faucet.Config{
		AmountPerRequest: cfg.Faucet.AmountPerRequest,
		GasLimit:         cfg.Faucet.GasLimit,
		RequiredAsset:    asset,
	}, verifier, ledger, fees, signerService, clock, metrics)
}

// NewBalanceWatcher watches the signing account. One disbursement needs the
// amount plus its gas at the default price.
func NewBalanceWatcher(cfg config.Server, chainService ChainService, signerService signer.Service, metrics *metrics.Service) *faucet.BalanceWatcher {
	minimum := new(big.Int).Mul(new(big.Int).SetUint64(cfg.Faucet.GasLimit), cfg.Faucet.DefaultGasPrice)
	minimum.Add(minimum, cfg.Faucet.AmountPerRequest)

	return faucet.NewBalanceWatcher(
		chainService,
		signerService.Address(),
		cfg.Faucet.BalanceCheckInterval,
		cfg.Faucet.LowBalanceThreshold,
		minimum,
		metrics,
	)
}

// NoTest is used to mark that no test instance is available.
func NoTest() []*testing.T {
	return nil
}
