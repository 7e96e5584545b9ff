package signer

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github/chapool/nft-faucet/internal/faucet/fee"
)

// Service signs and broadcasts transfers from the faucet account.
type Service interface {
	// Address is the faucet account.
	Address() common.Address

	// SignAndSubmit signs intent and broadcasts it without waiting for it to
	// be mined. Failures match ErrInsufficientFunds or ErrSubmission.
	SignAndSubmit(ctx context.Context, intent *TransferIntent) (common.Hash, error)
}

// TransferIntent describes a single native-currency transfer.
type TransferIntent struct {
	Recipient common.Address
	Amount    *big.Int
	GasLimit  uint64
	Fee       fee.Quote
}

// Client is the subset of the chain client needed to submit transactions.
type Client interface {
	GetChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, address common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}
