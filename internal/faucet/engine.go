// Package faucet decides and executes disbursements: it checks ownership of
// the gating asset, reserves quota, negotiates fees, submits the transfer and
// only then charges the requester's quota.
package faucet

import (
	"context"
	"math/big"

	"github.com/dropbox/godropbox/time2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github/chapool/nft-faucet/internal/chain"
	"github/chapool/nft-faucet/internal/faucet/fee"
	"github/chapool/nft-faucet/internal/faucet/ownership"
	"github/chapool/nft-faucet/internal/faucet/quota"
	"github/chapool/nft-faucet/internal/metrics"
	"github/chapool/nft-faucet/internal/util"
	"github/chapool/nft-faucet/internal/wallet/signer"
)

type OwnershipVerifier interface {
	Owns(ctx context.Context, holder common.Address, asset common.Address) (bool, error)
}

type FeeNegotiator interface {
	Negotiate(ctx context.Context) (fee.Quote, error)
}

type Config struct {
	AmountPerRequest *big.Int
	GasLimit         uint64
	RequiredAsset    common.Address
}

// Result describes a committed disbursement.
type Result struct {
	TxHash    common.Hash
	Recipient common.Address
	Amount    *big.Int
	Fee       fee.Quote
}

type Engine struct {
	cfg      Config
	verifier OwnershipVerifier
	ledger   *quota.Ledger
	fees     FeeNegotiator
	signer   signer.Service
	clock    time2.Clock
	metrics  *metrics.Service
}

func NewEngine(
	cfg Config,
	verifier OwnershipVerifier,
	ledger *quota.Ledger,
	fees FeeNegotiator,
	signer signer.Service,
	clock time2.Clock,
	metrics *metrics.Service,
) (*Engine, error) {
	if cfg.AmountPerRequest == nil || cfg.AmountPerRequest.Sign() <= 0 {
		return nil, errors.New("amount per request must be positive")
	}
	if cfg.GasLimit == 0 {
		return nil, errors.New("gas limit must be positive")
	}

	return &Engine{
		cfg:      cfg,
		verifier: verifier,
		ledger:   ledger,
		fees:     fees,
		signer:   signer,
		clock:    clock,
		metrics:  metrics,
	}, nil
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Ledger() *quota.Ledger {
	return e.ledger
}

// FaucetAddress is the account disbursements are paid from.
func (e *Engine) FaucetAddress() common.Address {
	return e.signer.Address()
}

// Disburse runs a disbursement for recipient to completion. Any outcome
// other than success is returned as *Error.
func (e *Engine) Disburse(ctx context.Context, recipient string) (*Result, error) {
	log := util.LogFromContext(ctx).With().Str("recipient", recipient).Logger()

	res, err := e.disburse(ctx, recipient)
	if err != nil {
		var ferr *Error
		if !errors.As(err, &ferr) {
			ferr = newError(ErrSubmission, StateSubmitting, err)
		}
		e.observeFailure(&log, ferr)
		return nil, ferr
	}

	e.metrics.Disbursements.WithLabelValues("committed", "").Inc()
	amount, _ := new(big.Float).SetInt(res.Amount).Float64()
	e.metrics.DisbursedWei.Add(amount)
	log.Info().
		Str("tx_hash", res.TxHash.Hex()).
		Str("amount", util.FormatEther(res.Amount)).
		Str("fee", res.Fee.String()).
		Msg("Disbursement committed")

	return res, nil
}

func (e *Engine) disburse(ctx context.Context, recipient string) (*Result, error) {
	// received
	addr, err := chain.ParseAddress(recipient)
	if err != nil {
		return nil, newError(ErrInvalidAddress, StateReceived, err)
	}

	// verifying: always against the recipient, never a client claim
	owns, err := e.verifier.Owns(ctx, addr, e.cfg.RequiredAsset)
	if err != nil {
		return nil, newError(ErrVerificationUnavailable, StateVerifying, err)
	}
	if !owns {
		return nil, newError(ErrAssetNotOwned, StateVerifying, nil)
	}

	// reserving
	reservation, err := e.ledger.CheckAndReserve(addr, e.cfg.AmountPerRequest, e.clock.Now())
	e.metrics.KnownAddresses.Set(float64(e.ledger.Len()))
	if err != nil {
		return nil, reservationError(err)
	}

	quote, hash, err := e.submit(ctx, addr)
	if err != nil {
		e.ledger.Release(reservation)
		return nil, err
	}

	// committed: the transfer is on its way, charge the quota
	if err := e.ledger.Commit(reservation, e.clock.Now()); err != nil {
		util.LogFromContext(ctx).Error().
			Err(err).
			Str("tx_hash", hash.Hex()).
			Msg("Failed to commit quota for submitted transfer")
	}

	return &Result{
		TxHash:    hash,
		Recipient: addr,
		Amount:    new(big.Int).Set(e.cfg.AmountPerRequest),
		Fee:       quote,
	}, nil
}

// submit prices and submits the transfer. It never holds ledger locks.
func (e *Engine) submit(ctx context.Context, addr common.Address) (fee.Quote, common.Hash, error) {
	quote, err := e.fees.Negotiate(ctx)
	if err != nil {
		return fee.Quote{}, common.Hash{}, newError(ErrFeeUnavailable, StatePricing, err)
	}
	e.metrics.FeeQuotes.WithLabelValues(quote.Kind().String(), string(quote.Source())).Inc()

	hash, err := e.signer.SignAndSubmit(ctx, &signer.TransferIntent{
		Recipient: addr,
		Amount:    new(big.Int).Set(e.cfg.AmountPerRequest),
		GasLimit:  e.cfg.GasLimit,
		Fee:       quote,
	})
	if err != nil {
		if errors.Is(err, signer.ErrInsufficientFunds) {
			return quote, common.Hash{}, newError(ErrInsufficientFunds, StateSubmitting, err)
		}
		return quote, common.Hash{}, newError(ErrSubmission, StateSubmitting, err)
	}

	e.metrics.InsufficientFunds.Set(0)

	return quote, hash, nil
}

func reservationError(err error) *Error {
	var denial *quota.Denial
	if !errors.As(err, &denial) {
		return newError(ErrSubmission, StateReserving, err)
	}

	kind := ErrDailyLimitExceeded
	if errors.Is(denial, quota.ErrCooldownActive) {
		kind = ErrCooldownActive
	}

	ferr := newError(kind, StateReserving, denial)
	ferr.RetryAfter = denial.RetryAfter
	return ferr
}

func (e *Engine) observeFailure(log *zerolog.Logger, ferr *Error) {
	e.metrics.Disbursements.WithLabelValues(ferr.outcome(), ferr.Reason()).Inc()

	switch {
	case ferr.Rejected():
		ev := log.Warn().
			Str("reason", ferr.Reason()).
			Str("state", string(ferr.State))
		if ferr.RetryAfter > 0 {
			ev = ev.Dur("retry_after", ferr.RetryAfter)
		}
		ev.Msg("Disbursement rejected")

	case errors.Is(ferr, ErrInsufficientFunds):
		e.metrics.InsufficientFunds.Set(1)
		log.Error().
			Err(ferr.Cause).
			Bool("fatal_condition", true).
			Str("faucet_address", e.signer.Address().Hex()).
			Msg("Faucet account has insufficient funds")

	default:
		log.Error().
			Err(ferr.Cause).
			Str("reason", ferr.Reason()).
			Str("state", string(ferr.State)).
			Msg("Disbursement failed")
	}
}

var (
	_ OwnershipVerifier = (*ownership.Verifier)(nil)
	_ FeeNegotiator     = (*fee.Negotiator)(nil)
)
