package faucet

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Rejections: the request is not eligible, nothing was changed.
var (
	ErrInvalidAddress     = errors.New("invalid address")
	ErrAssetNotOwned      = errors.New("required asset not owned")
	ErrCooldownActive     = errors.New("cooldown active")
	ErrDailyLimitExceeded = errors.New("daily limit exceeded")
)

// Failures: the request could not be completed because of an infrastructure problem.
var (
	ErrVerificationUnavailable = errors.New("ownership verification unavailable")
	ErrFeeUnavailable          = errors.New("fee unavailable")
	ErrInsufficientFunds       = errors.New("faucet has insufficient funds")
	ErrSubmission              = errors.New("transaction submission failed")
)

var reasons = map[error]string{
	ErrInvalidAddress:          "invalid_address",
	ErrAssetNotOwned:           "asset_not_owned",
	ErrCooldownActive:          "cooldown_active",
	ErrDailyLimitExceeded:      "daily_limit_exceeded",
	ErrVerificationUnavailable: "verification_unavailable",
	ErrFeeUnavailable:          "fee_unavailable",
	ErrInsufficientFunds:       "insufficient_funds",
	ErrSubmission:              "submission_error",
}

// State is a step of a disbursement.
type State string

const (
	StateReceived   State = "received"
	StateVerifying  State = "verifying"
	StateReserving  State = "reserving"
	StatePricing    State = "pricing"
	StateSubmitting State = "submitting"
	StateCommitted  State = "committed"
)

// Error is the terminal outcome of a disbursement that did not commit. It
// matches its Kind with errors.Is.
type Error struct {
	Kind  error
	State State
	// RetryAfter is set for cooldown and daily limit rejections.
	RetryAfter time.Duration
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Cause)
}

func (e *Error) Is(target error) bool {
	return target == e.Kind //nolint:errorlint,err113
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Rejected reports whether the request was refused for eligibility reasons as
// opposed to failing on infrastructure.
func (e *Error) Rejected() bool {
	switch e.Kind { //nolint:errorlint
	case ErrInvalidAddress, ErrAssetNotOwned, ErrCooldownActive, ErrDailyLimitExceeded:
		return true
	default:
		return false
	}
}

// Reason is a stable snake_case name of the kind, used in logs and metrics.
func (e *Error) Reason() string {
	if r, ok := reasons[e.Kind]; ok {
		return r
	}
	return "unknown"
}

func (e *Error) outcome() string {
	if e.Rejected() {
		return "rejected"
	}
	return "failed"
}

func newError(kind error, state State, cause error) *Error {
	return &Error{Kind: kind, State: state, Cause: cause}
}
