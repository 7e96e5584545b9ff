package test

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/api/router"
	"github/chapool/nft-faucet/internal/config"
	"github/chapool/nft-faucet/internal/util"
)

// Mnemonic is the well known BIP-39 test mnemonic funding the test faucet.
const Mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// FaucetAddress is the account derived from Mnemonic at the default path.
var FaucetAddress = common.HexToAddress("0x9858EfFD232B4033E47d90003D41EC34EcaEda94")

// DefaultTestConfig returns the env config with deterministic faucet
// parameters and signer, and the per-IP throttle disabled.
func DefaultTestConfig() config.Server {
	cfg := config.DefaultServiceConfigFromEnv()

	cfg.Logger.PrettyPrintConsole = false
	cfg.Chain.NativeSymbol = "MON"
	cfg.Faucet.AmountPerRequest = util.MustParseEther("0.01")
	cfg.Faucet.DailyLimit = util.MustParseEther("0.01")
	cfg.Faucet.Cooldown = 24 * time.Hour
	cfg.Faucet.QuotaWindow = 24 * time.Hour
	cfg.Faucet.RequiredAssetContract = "0xFc983B762D564dD6388983BB45D2E59C46805DB2"
	cfg.Faucet.FeeMode = config.FeeModeAuto
	cfg.Faucet.DefaultGasPrice = big.NewInt(1_000_000_000)
	cfg.Faucet.MaxGasPrice = new(big.Int)
	cfg.Faucet.GasLimit = 21000
	cfg.Signer = config.Signer{
		Mnemonic:       Mnemonic,
		DerivationPath: "m/44'/60'/0'/0/0",
	}
	cfg.RateLimit.Enabled = false

	return cfg
}

// WithTestServer returns a fully configured server backed by a FakeChain.
func WithTestServer(t *testing.T, closure func(s *api.Server, fake *FakeChain)) {
	t.Helper()

	WithTestServerConfigurable(t, DefaultTestConfig(), closure)
}

// WithTestServerConfigurable returns a fully configured server backed by a FakeChain, allowing for configuration using the provided server config.
func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server, fake *FakeChain)) {
	t.Helper()

	fake := NewFakeChain()
	fake.SetBalance(FaucetAddress, util.MustParseEther("100"))

	s := newServer(t, config, fake)
	closure(s, fake)

	execClosureNewTestServerTeardown(t, s)
}

func newServer(t *testing.T, config config.Server, fake *FakeChain) *api.Server {
	t.Helper()

	s, err := api.InitNewServerWithChain(config, fake, t)
	if err != nil {
		t.Fatalf("failed to init server: %v", err)
	}

	if err := router.Init(s); err != nil {
		t.Fatalf("failed to init router: %v", err)
	}

	return s
}

func execClosureNewTestServerTeardown(t *testing.T, s *api.Server) {
	t.Helper()

	// echo is not started in tests, Shutdown only closes the chain client
	s.Echo = nil
	if errs := s.Shutdown(t.Context()); len(errs) > 0 {
		t.Fatalf("failed to shutdown server: %v", errs)
	}
}
