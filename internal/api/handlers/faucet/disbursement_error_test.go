package faucet_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	handlers "github/chapool/nft-faucet/internal/api/handlers/faucet"
	"github/chapool/nft-faucet/internal/faucet"
	"github/chapool/nft-faucet/internal/types"
)

func TestNewDisbursementError(t *testing.T) {
	cause := errors.New("node said no")

	tests := []struct {
		name       string
		ferr       *faucet.Error
		code       int
		errorType  types.PublicHTTPErrorType
		detail     string
		retryAfter *int64
	}{
		{
			name:      "invalid address",
			ferr:      &faucet.Error{Kind: faucet.ErrInvalidAddress, State: faucet.StateReceived, Cause: cause},
			code:      http.StatusBadRequest,
			errorType: types.PublicHTTPErrorTypeINVALIDADDRESS,
		},
		{
			name:      "asset not owned",
			ferr:      &faucet.Error{Kind: faucet.ErrAssetNotOwned, State: faucet.StateVerifying},
			code:      http.StatusForbidden,
			errorType: types.PublicHTTPErrorTypeASSETNOTOWNED,
		},
		{
			name:       "cooldown",
			ferr:       &faucet.Error{Kind: faucet.ErrCooldownActive, State: faucet.StateReserving, RetryAfter: time.Hour},
			code:       http.StatusTooManyRequests,
			errorType:  types.PublicHTTPErrorTypeCOOLDOWNACTIVE,
			retryAfter: int64Ptr(3600000),
		},
		{
			name:       "daily limit",
			ferr:       &faucet.Error{Kind: faucet.ErrDailyLimitExceeded, State: faucet.StateReserving, RetryAfter: 2 * time.Second},
			code:       http.StatusTooManyRequests,
			errorType:  types.PublicHTTPErrorTypeDAILYLIMITEXCEEDED,
			retryAfter: int64Ptr(2000),
		},
		{
			name:      "verification unavailable",
			ferr:      &faucet.Error{Kind: faucet.ErrVerificationUnavailable, State: faucet.StateVerifying, Cause: cause},
			code:      http.StatusServiceUnavailable,
			errorType: types.PublicHTTPErrorTypeVERIFICATIONUNAVAILABLE,
			detail:    "node said no",
		},
		{
			name:      "fee unavailable",
			ferr:      &faucet.Error{Kind: faucet.ErrFeeUnavailable, State: faucet.StatePricing, Cause: cause},
			code:      http.StatusServiceUnavailable,
			errorType: types.PublicHTTPErrorTypeFEEUNAVAILABLE,
			detail:    "node said no",
		},
		{
			name:      "insufficient funds",
			ferr:      &faucet.Error{Kind: faucet.ErrInsufficientFunds, State: faucet.StateSubmitting, Cause: cause},
			code:      http.StatusServiceUnavailable,
			errorType: types.PublicHTTPErrorTypeINSUFFICIENTFUNDS,
			detail:    "node said no",
		},
		{
			name:      "submission",
			ferr:      &faucet.Error{Kind: faucet.ErrSubmission, State: faucet.StateSubmitting, Cause: cause},
			code:      http.StatusBadGateway,
			errorType: types.PublicHTTPErrorTypeSUBMISSIONERROR,
			detail:    "node said no",
		},
		{
			name:      "unknown kind",
			ferr:      &faucet.Error{Kind: errors.New("something else"), State: faucet.StateSubmitting},
			code:      http.StatusInternalServerError,
			errorType: types.PublicHTTPErrorTypeGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := handlers.NewDisbursementError(tt.ferr, "message")

			require.NotNil(t, err.Status)
			assert.Equal(t, int64(tt.code), *err.Status)
			require.NotNil(t, err.Type)
			assert.Equal(t, tt.errorType, *err.Type)
			assert.Equal(t, "message", *err.Message)
			assert.False(t, *err.Success)
			assert.Equal(t, tt.detail, err.Detail)
			assert.Equal(t, tt.retryAfter, err.RetryAfterMillis)
			assert.ErrorIs(t, err.Internal, tt.ferr.Kind)
		})
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}
