package faucet

import (
	"net/http"

	"github.com/pkg/errors"
	"github/chapool/nft-faucet/internal/api/httperrors"
	"github/chapool/nft-faucet/internal/faucet"
	"github/chapool/nft-faucet/internal/types"
)

type disbursementMapping struct {
	code      int
	errorType types.PublicHTTPErrorType
}

var disbursementMappings = []struct {
	kind error
	disbursementMapping
}{
	{faucet.ErrInvalidAddress, disbursementMapping{http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDADDRESS}},
	{faucet.ErrAssetNotOwned, disbursementMapping{http.StatusForbidden, types.PublicHTTPErrorTypeASSETNOTOWNED}},
	{faucet.ErrCooldownActive, disbursementMapping{http.StatusTooManyRequests, types.PublicHTTPErrorTypeCOOLDOWNACTIVE}},
	{faucet.ErrDailyLimitExceeded, disbursementMapping{http.StatusTooManyRequests, types.PublicHTTPErrorTypeDAILYLIMITEXCEEDED}},
	{faucet.ErrVerificationUnavailable, disbursementMapping{http.StatusServiceUnavailable, types.PublicHTTPErrorTypeVERIFICATIONUNAVAILABLE}},
	{faucet.ErrFeeUnavailable, disbursementMapping{http.StatusServiceUnavailable, types.PublicHTTPErrorTypeFEEUNAVAILABLE}},
	{faucet.ErrInsufficientFunds, disbursementMapping{http.StatusServiceUnavailable, types.PublicHTTPErrorTypeINSUFFICIENTFUNDS}},
	{faucet.ErrSubmission, disbursementMapping{http.StatusBadGateway, types.PublicHTTPErrorTypeSUBMISSIONERROR}},
}

// NewDisbursementError maps a disbursement that did not commit to its public
// error. Infrastructure failures carry the cause as detail for operators.
func NewDisbursementError(ferr *faucet.Error, message string) *httperrors.HTTPError {
	mapping := disbursementMapping{http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric}
	for _, m := range disbursementMappings {
		if errors.Is(ferr, m.kind) {
			mapping = m.disbursementMapping
			break
		}
	}

	var err *httperrors.HTTPError
	if !ferr.Rejected() && ferr.Cause != nil {
		err = httperrors.NewHTTPErrorWithDetail(mapping.code, mapping.errorType, message, ferr.Cause.Error())
	} else {
		err = httperrors.NewHTTPError(mapping.code, mapping.errorType, message)
	}
	err.Internal = ferr

	if ferr.RetryAfter > 0 {
		err.WithRetryAfter(ferr.RetryAfter.Milliseconds())
	}

	return err
}
