package faucet_test

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-faucet/internal/faucet"
	"github/chapool/nft-faucet/internal/faucet/fee"
	"github/chapool/nft-faucet/internal/faucet/quota"
	"github/chapool/nft-faucet/internal/metrics"
	"github/chapool/nft-faucet/internal/wallet/signer"
)

const (
	recipient1 = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa01"
	recipient2 = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa02"
)

var (
	requiredAsset = common.HexToAddress("0xFc983B762D564dD6388983BB45D2E59C46805DB2")
	faucetAddress = common.HexToAddress("0x9858EfFD232B4033E47d90003D41EC34EcaEda94")
	amount        = big.NewInt(10_000_000_000_000_000) // 0.01
	t0            = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
)

type fakeVerifier struct {
	mu     sync.Mutex
	owners map[common.Address]bool
	err    error
	calls  int
	assets []common.Address
}

func (v *fakeVerifier) Owns(_ context.Context, holder common.Address, asset common.Address) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.calls++
	v.assets = append(v.assets, asset)
	if v.err != nil {
		return false, v.err
	}
	return v.owners[holder], nil
}

type fakeNegotiator struct {
	err error
}

func (n *fakeNegotiator) Negotiate(context.Context) (fee.Quote, error) {
	if n.err != nil {
		return fee.Quote{}, n.err
	}
	return fee.NewLegacyQuote(big.NewInt(1_000_000_000), fee.SourceDefault), nil
}

type fakeSigner struct {
	mu      sync.Mutex
	err     error
	intents []*signer.TransferIntent

	// when set, SignAndSubmit signals entered and waits for release
	entered chan struct{}
	release chan struct{}
}

func (s *fakeSigner) Address() common.Address {
	return faucetAddress
}

func (s *fakeSigner) SignAndSubmit(_ context.Context, intent *signer.TransferIntent) (common.Hash, error) {
	if s.entered != nil {
		s.entered <- struct{}{}
		<-s.release
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return common.Hash{}, s.err
	}
	s.intents = append(s.intents, intent)
	return common.BigToHash(big.NewInt(int64(len(s.intents)))), nil
}

type fixture struct {
	engine   *faucet.Engine
	verifier *fakeVerifier
	fees     *fakeNegotiator
	signer   *fakeSigner
	ledger   *quota.Ledger
	clock    *time2.MockClock
	metrics  *metrics.Service
}

func newFixture(t *testing.T, cooldown time.Duration, window time.Duration, dailyLimit *big.Int) *fixture {
	t.Helper()

	f := &fixture{
		verifier: &fakeVerifier{owners: map[common.Address]bool{
			common.HexToAddress(recipient1): true,
			common.HexToAddress(recipient2): true,
		}},
		fees:   &fakeNegotiator{},
		signer: &fakeSigner{},
		ledger: quota.NewLedger(quota.Config{
			Cooldown:   cooldown,
			Window:     window,
			DailyLimit: dailyLimit,
		}),
		clock:   time2.NewMockClock(t0),
		metrics: metrics.New(),
	}

	engine, err := faucet.NewEngine(faucet.Config{
		AmountPerRequest: amount,
		GasLimit:         21000,
		RequiredAsset:    requiredAsset,
	}, f.verifier, f.ledger, f.fees, f.signer, f.clock, f.metrics)
	require.NoError(t, err)
	f.engine = engine

	return f
}

func newDefaultFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixture(t, 24*time.Hour, 0, amount)
}

func requireFaucetError(t *testing.T, err error, kind error) *faucet.Error {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, kind)

	var ferr *faucet.Error
	require.ErrorAs(t, err, &ferr)
	return ferr
}

func TestDisburseCommitsAndStartsCooldown(t *testing.T) {
	f := newDefaultFixture(t)

	res, err := f.engine.Disburse(context.Background(), recipient2)
	require.NoError(t, err)
	assert.NotEqual(t, common.Hash{}, res.TxHash)
	assert.Equal(t, common.HexToAddress(recipient2), res.Recipient)
	assert.Equal(t, amount, res.Amount)

	require.Len(t, f.signer.intents, 1)
	intent := f.signer.intents[0]
	assert.Equal(t, common.HexToAddress(recipient2), intent.Recipient)
	assert.Equal(t, amount, intent.Amount)
	assert.Equal(t, uint64(21000), intent.GasLimit)
	assert.Equal(t, []common.Address{requiredAsset}, f.verifier.assets)

	rec, ok := f.ledger.Record(common.HexToAddress(recipient2))
	require.True(t, ok)
	assert.Equal(t, t0, rec.LastRequestTime)
	assert.Equal(t, amount, rec.DailyTotalSent)

	_, err = f.engine.Disburse(context.Background(), recipient2)
	ferr := requireFaucetError(t, err, faucet.ErrCooldownActive)
	assert.True(t, ferr.Rejected())
	assert.Equal(t, faucet.StateReserving, ferr.State)
	assert.Equal(t, 24*time.Hour, ferr.RetryAfter)
	assert.Len(t, f.signer.intents, 1)

	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.Disbursements.WithLabelValues("committed", "")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.Disbursements.WithLabelValues("rejected", "cooldown_active")), 0)
}

func TestDisburseCooldownRetryAfter(t *testing.T) {
	f := newDefaultFixture(t)

	_, err := f.engine.Disburse(context.Background(), recipient1)
	require.NoError(t, err)

	f.clock.Set(t0.Add(23 * time.Hour))

	_, err = f.engine.Disburse(context.Background(), recipient1)
	ferr := requireFaucetError(t, err, faucet.ErrCooldownActive)
	assert.Equal(t, int64(3_600_000), ferr.RetryAfter.Milliseconds())

	f.clock.Set(t0.Add(24 * time.Hour))

	_, err = f.engine.Disburse(context.Background(), recipient1)
	require.NoError(t, err)
}

func TestDisburseAddressCaseInsensitive(t *testing.T) {
	f := newDefaultFixture(t)

	_, err := f.engine.Disburse(context.Background(), recipient1)
	require.NoError(t, err)

	_, err = f.engine.Disburse(context.Background(), "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA01")
	requireFaucetError(t, err, faucet.ErrCooldownActive)
}

func TestDisburseDailyLimit(t *testing.T) {
	limit := new(big.Int).Mul(amount, big.NewInt(2))
	f := newFixture(t, time.Hour, 24*time.Hour, limit)

	for i := 0; i < 2; i++ {
		f.clock.Set(t0.Add(time.Duration(i) * time.Hour))
		_, err := f.engine.Disburse(context.Background(), recipient1)
		require.NoError(t, err)
	}

	f.clock.Set(t0.Add(2 * time.Hour))
	_, err := f.engine.Disburse(context.Background(), recipient1)
	ferr := requireFaucetError(t, err, faucet.ErrDailyLimitExceeded)
	assert.Equal(t, 22*time.Hour, ferr.RetryAfter)

	rec, _ := f.ledger.Record(common.HexToAddress(recipient1))
	assert.Equal(t, limit, rec.DailyTotalSent)
}

func TestDisburseInvalidAddress(t *testing.T) {
	f := newDefaultFixture(t)

	for _, in := range []string{"", "0x123", "hello", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa01"} {
		_, err := f.engine.Disburse(context.Background(), in)
		ferr := requireFaucetError(t, err, faucet.ErrInvalidAddress)
		assert.Equal(t, faucet.StateReceived, ferr.State)
		assert.True(t, ferr.Rejected())
	}

	assert.Equal(t, 0, f.verifier.calls)
	assert.Equal(t, 0, f.ledger.Len())
}

func TestDisburseAssetNotOwned(t *testing.T) {
	f := newDefaultFixture(t)
	f.verifier.owners = map[common.Address]bool{}

	_, err := f.engine.Disburse(context.Background(), recipient1)
	ferr := requireFaucetError(t, err, faucet.ErrAssetNotOwned)
	assert.Equal(t, faucet.StateVerifying, ferr.State)
	assert.Zero(t, ferr.RetryAfter)

	assert.Equal(t, 0, f.ledger.Len())
	assert.Empty(t, f.signer.intents)
}

func TestDisburseAssetNotOwnedRegardlessOfQuota(t *testing.T) {
	f := newDefaultFixture(t)

	_, err := f.engine.Disburse(context.Background(), recipient1)
	require.NoError(t, err)

	f.verifier.owners = map[common.Address]bool{}

	_, err = f.engine.Disburse(context.Background(), recipient1)
	requireFaucetError(t, err, faucet.ErrAssetNotOwned)
}

func TestDisburseVerificationUnavailable(t *testing.T) {
	f := newDefaultFixture(t)
	f.verifier.err = errors.Wrap(context.DeadlineExceeded, "balanceOf call")

	_, err := f.engine.Disburse(context.Background(), recipient1)
	ferr := requireFaucetError(t, err, faucet.ErrVerificationUnavailable)
	assert.False(t, ferr.Rejected())
	assert.NotErrorIs(t, err, faucet.ErrAssetNotOwned)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Equal(t, 0, f.ledger.Len())
	_, ok := f.ledger.Record(common.HexToAddress(recipient1))
	assert.False(t, ok)
}

func TestDisburseFeeUnavailableReleasesReservation(t *testing.T) {
	f := newDefaultFixture(t)
	f.fees.err = errors.Wrap(fee.ErrUnavailable, "gas price query failed")

	_, err := f.engine.Disburse(context.Background(), recipient1)
	ferr := requireFaucetError(t, err, faucet.ErrFeeUnavailable)
	assert.Equal(t, faucet.StatePricing, ferr.State)
	assert.Empty(t, f.signer.intents)

	rec, _ := f.ledger.Record(common.HexToAddress(recipient1))
	assert.True(t, rec.LastRequestTime.IsZero())

	f.fees.err = nil
	_, err = f.engine.Disburse(context.Background(), recipient1)
	require.NoError(t, err)
}

func TestDisburseInsufficientFunds(t *testing.T) {
	f := newDefaultFixture(t)
	f.signer.err = errors.Wrap(signer.ErrInsufficientFunds, "insufficient funds for gas * price + value")

	_, err := f.engine.Disburse(context.Background(), recipient1)
	ferr := requireFaucetError(t, err, faucet.ErrInsufficientFunds)
	assert.Equal(t, faucet.StateSubmitting, ferr.State)
	assert.False(t, ferr.Rejected())
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.InsufficientFunds), 0)

	rec, _ := f.ledger.Record(common.HexToAddress(recipient1))
	assert.True(t, rec.LastRequestTime.IsZero())
	assert.Equal(t, 0, rec.DailyTotalSent.Sign())

	f.signer.err = nil
	_, err = f.engine.Disburse(context.Background(), recipient1)
	require.NoError(t, err)
	assert.InDelta(t, 0, testutil.ToFloat64(f.metrics.InsufficientFunds), 0)
}

func TestDisburseSubmissionError(t *testing.T) {
	f := newDefaultFixture(t)
	f.signer.err = errors.Wrap(signer.ErrSubmission, "connection reset")

	_, err := f.engine.Disburse(context.Background(), recipient1)
	ferr := requireFaucetError(t, err, faucet.ErrSubmission)
	assert.Contains(t, ferr.Error(), "connection reset")
	assert.Equal(t, "submission_error", ferr.Reason())
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.Disbursements.WithLabelValues("failed", "submission_error")), 0)

	_, ok := f.ledger.Record(common.HexToAddress(recipient1))
	require.True(t, ok)
}

func TestDisburseInFlightRequestBlocksSameAddress(t *testing.T) {
	f := newDefaultFixture(t)
	f.signer.entered = make(chan struct{})
	f.signer.release = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := f.engine.Disburse(context.Background(), recipient1)
		done <- err
	}()

	<-f.signer.entered

	// the first request is between reservation and commit
	f.signer.entered = nil
	_, err := f.engine.Disburse(context.Background(), recipient1)
	requireFaucetError(t, err, faucet.ErrCooldownActive)

	close(f.signer.release)
	require.NoError(t, <-done)

	rec, _ := f.ledger.Record(common.HexToAddress(recipient1))
	assert.Equal(t, amount, rec.DailyTotalSent)
}

func TestDisburseConcurrentSameAddressSingleCommit(t *testing.T) {
	f := newDefaultFixture(t)

	const workers = 20

	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, workers)
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = f.engine.Disburse(context.Background(), recipient1)
		}(i)
	}

	close(start)
	wg.Wait()

	committed := 0
	for _, err := range errs {
		if err == nil {
			committed++
			continue
		}
		assert.True(t,
			errors.Is(err, faucet.ErrCooldownActive) || errors.Is(err, faucet.ErrDailyLimitExceeded),
			"unexpected error %v", err)
	}

	assert.Equal(t, 1, committed)
	assert.Len(t, f.signer.intents, 1)
}

func TestNewEngineValidatesConfig(t *testing.T) {
	ledger := quota.NewLedger(quota.Config{Cooldown: time.Hour, DailyLimit: amount})

	_, err := faucet.NewEngine(faucet.Config{GasLimit: 21000}, &fakeVerifier{}, ledger, &fakeNegotiator{}, &fakeSigner{}, time2.DefaultClock, metrics.New())
	require.Error(t, err)

	_, err = faucet.NewEngine(faucet.Config{AmountPerRequest: amount}, &fakeVerifier{}, ledger, &fakeNegotiator{}, &fakeSigner{}, time2.DefaultClock, metrics.New())
	require.Error(t, err)
}
