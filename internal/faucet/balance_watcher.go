package faucet

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/nft-faucet/internal/metrics"
	"github/chapool/nft-faucet/internal/util"
)

type BalanceReader interface {
	BalanceAt(ctx context.Context, address common.Address) (*big.Int, error)
}

// BalanceWatcher polls the faucet account balance, exports it and warns
// when it drops below a threshold.
type BalanceWatcher struct {
	client    BalanceReader
	address   common.Address
	interval  time.Duration
	threshold *big.Int
	// minimum is the balance needed for one more disbursement
	minimum *big.Int
	metrics *metrics.Service

	mu   sync.RWMutex
	last *big.Int
}

func NewBalanceWatcher(
	client BalanceReader,
	address common.Address,
	interval time.Duration,
	threshold *big.Int,
	minimum *big.Int,
	metrics *metrics.Service,
) *BalanceWatcher {
	return &BalanceWatcher{
		client:    client,
		address:   address,
		interval:  interval,
		threshold: threshold,
		minimum:   minimum,
		metrics:   metrics,
	}
}

// Check reads the balance once.
func (w *BalanceWatcher) Check(ctx context.Context) (*big.Int, error) {
	balance, err := w.client.BalanceAt(ctx, w.address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read faucet balance")
	}

	w.mu.Lock()
	w.last = new(big.Int).Set(balance)
	w.mu.Unlock()

	tokens, _ := new(big.Float).SetInt(balance).Float64()
	w.metrics.FaucetBalance.Set(tokens / 1e18)

	if w.threshold != nil && balance.Cmp(w.threshold) < 0 {
		log.Warn().
			Str("faucet_address", w.address.Hex()).
			Str("balance", util.FormatEther(balance)).
			Str("threshold", util.FormatEther(w.threshold)).
			Msg("Faucet balance is low")
	}

	// a refill clears the insufficient funds condition
	if w.minimum != nil && balance.Cmp(w.minimum) >= 0 {
		w.metrics.InsufficientFunds.Set(0)
	}

	return balance, nil
}

// Last returns the balance seen by the most recent successful Check, nil before that.
func (w *BalanceWatcher) Last() *big.Int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.last == nil {
		return nil
	}
	return new(big.Int).Set(w.last)
}

// Run checks the balance immediately and then every interval until ctx is done.
func (w *BalanceWatcher) Run(ctx context.Context) {
	if w.interval <= 0 {
		log.Info().Msg("Faucet balance watcher disabled")
		return
	}

	runOnce := func() {
		if _, err := w.Check(ctx); err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Msg("Faucet balance check failed")
		}
	}

	log.Info().Dur("interval", w.interval).Msg("Starting faucet balance watcher")
	runOnce()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Faucet balance watcher stopped")
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
