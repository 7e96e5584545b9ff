//go:build wireinject

package api

import (
	"testing"

	"github.com/google/wire"
	"github/chapool/nft-faucet/internal/config"
	"github/chapool/nft-faucet/internal/metrics"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewSigner,
	NewVerifier,
	NewLedger,
	NewFeeNegotiator,
	NewEngine,
	NewBalanceWatcher,
	metrics.New,
	NewClock,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewChainService, NoTest)
	return new(Server), nil
}

// InitNewServerWithChain returns a new Server instance with the given chain service.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithChain(
	_ config.Server,
	_ ChainService,
	t ...*testing.T,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
