package faucet_test

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-faucet/internal/faucet"
	"github/chapool/nft-faucet/internal/metrics"
)

type fakeBalanceReader struct {
	mu      sync.Mutex
	balance *big.Int
	err     error
	calls   int
}

func (r *fakeBalanceReader) BalanceAt(_ context.Context, _ common.Address) (*big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return new(big.Int).Set(r.balance), nil
}

func (r *fakeBalanceReader) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1_000_000_000_000_000_000))
}

func TestBalanceWatcherCheck(t *testing.T) {
	m := metrics.New()
	m.InsufficientFunds.Set(1)

	reader := &fakeBalanceReader{balance: ether(3)}
	w := faucet.NewBalanceWatcher(reader, faucetAddress, time.Minute, ether(1), amount, m)

	assert.Nil(t, w.Last())

	balance, err := w.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ether(3), balance)
	assert.Equal(t, ether(3), w.Last())
	assert.InDelta(t, 3, testutil.ToFloat64(m.FaucetBalance), 1e-9)
	assert.InDelta(t, 0, testutil.ToFloat64(m.InsufficientFunds), 0)
}

func TestBalanceWatcherKeepsInsufficientFundsBelowMinimum(t *testing.T) {
	m := metrics.New()
	m.InsufficientFunds.Set(1)

	reader := &fakeBalanceReader{balance: big.NewInt(1)}
	w := faucet.NewBalanceWatcher(reader, faucetAddress, time.Minute, ether(1), amount, m)

	_, err := w.Check(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 1, testutil.ToFloat64(m.InsufficientFunds), 0)
}

func TestBalanceWatcherCheckError(t *testing.T) {
	reader := &fakeBalanceReader{balance: ether(2)}
	w := faucet.NewBalanceWatcher(reader, faucetAddress, time.Minute, nil, nil, metrics.New())

	_, err := w.Check(context.Background())
	require.NoError(t, err)

	reader.err = errors.New("node down")
	_, err = w.Check(context.Background())
	require.Error(t, err)

	// the last good reading survives a failed check
	assert.Equal(t, ether(2), w.Last())
}

func TestBalanceWatcherRunStopsOnCancel(t *testing.T) {
	reader := &fakeBalanceReader{balance: ether(1)}
	w := faucet.NewBalanceWatcher(reader, faucetAddress, 5*time.Millisecond, nil, nil, metrics.New())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return reader.Calls() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestBalanceWatcherRunDisabled(t *testing.T) {
	reader := &fakeBalanceReader{balance: ether(1)}
	w := faucet.NewBalanceWatcher(reader, faucetAddress, 0, nil, nil, metrics.New())

	w.Run(context.Background())
	assert.Equal(t, 0, reader.Calls())
}
