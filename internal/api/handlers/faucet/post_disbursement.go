package faucet

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/faucet"
	"github/chapool/nft-faucet/internal/types"
	"github/chapool/nft-faucet/internal/util"
)

func PostDisbursementRoute(s *api.Server) *echo.Route {
	return s.Router.Faucet.POST("", postDisbursementHandler(s), s.Router.Throttle...)
}

func postDisbursementHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostDisbursementPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		result, err := s.Engine.Disburse(ctx, swag.StringValue(body.RecipientAddress))
		if err != nil {
			var ferr *faucet.Error
			if errors.As(err, &ferr) {
				return NewDisbursementError(ferr, disbursementMessage(s, ferr))
			}
			return err
		}

		response := &types.DisbursementResponse{
			Success:          swag.Bool(true),
			Message:          fmt.Sprintf("Test %s sent successfully!", s.Config.Chain.NativeSymbol),
			TxHash:           swag.String(result.TxHash.Hex()),
			RecipientAddress: swag.String(result.Recipient.Hex()),
			Amount:           swag.String(util.FormatEther(result.Amount)),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}

func disbursementMessage(s *api.Server, ferr *faucet.Error) string {
	symbol := s.Config.Chain.NativeSymbol

	switch {
	case errors.Is(ferr, faucet.ErrInvalidAddress):
		return "Invalid address."
	case errors.Is(ferr, faucet.ErrAssetNotOwned):
		return "NFT not found in your wallet. Please mint one to proceed."
	case errors.Is(ferr, faucet.ErrCooldownActive):
		return fmt.Sprintf("Please wait %s before requesting again.", formatRemaining(ferr.RetryAfter))
	case errors.Is(ferr, faucet.ErrDailyLimitExceeded):
		return fmt.Sprintf("You have reached your daily limit of %s %s. Please wait for the daily limit to reset.",
			util.FormatEther(s.Config.Faucet.DailyLimit), symbol)
	case errors.Is(ferr, faucet.ErrVerificationUnavailable):
		return "Ownership verification is currently unavailable, please try again later."
	case errors.Is(ferr, faucet.ErrFeeUnavailable):
		return "Unable to determine network fees, please try again later."
	case errors.Is(ferr, faucet.ErrInsufficientFunds):
		return "Faucet has insufficient funds to complete this request."
	default:
		return fmt.Sprintf("Failed to send test %s.", symbol)
	}
}

// formatRemaining renders d as "1h 2m 3s".
func formatRemaining(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute

	return fmt.Sprintf("%dh %dm %ds", h, m, d/time.Second)
}
