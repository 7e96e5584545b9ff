package httperrors

import (
	"net/http"

	"github/chapool/nft-faucet/internal/types"
)

var (
	ErrBadRequestInvalidAddress = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDADDRESS, "Invalid wallet or NFT contract address.")
	ErrNotFoundTransaction      = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeGeneric, "Transaction not found.")
	ErrTooManyRequests          = NewHTTPError(http.StatusTooManyRequests, types.PublicHTTPErrorTypeTOOMANYREQUESTS, "Too many requests from this IP, please slow down.")
)
