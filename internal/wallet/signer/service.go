package signer

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/nft-faucet/internal/faucet/fee"
	"github/chapool/nft-faucet/internal/util"
)

var (
	// ErrInsufficientFunds means the faucet account cannot pay for the transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSubmission        = errors.New("submission failed")
)

type service struct {
	client  Client
	key     *ecdsa.PrivateKey
	address common.Address

	// mu serializes nonce assignment for the single signing key
	mu         sync.Mutex
	chainID    *big.Int
	nonce      uint64
	nonceKnown bool
}

//nolint:ireturn
func NewService(client Client, key *ecdsa.PrivateKey) Service {
	return &service{
		client:  client,
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

func (s *service) Address() common.Address {
	return s.address
}

func (s *service) SignAndSubmit(ctx context.Context, intent *TransferIntent) (common.Hash, error) {
	log := util.LogFromContext(ctx)

	if intent.Amount == nil || intent.Amount.Sign() <= 0 {
		return common.Hash{}, errors.Wrap(ErrSubmission, "transfer amount must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	chainID, err := s.getChainID(ctx)
	if err != nil {
		return common.Hash{}, errors.Wrapf(ErrSubmission, "chain ID: %v", err)
	}

	nonce, err := s.nextNonce(ctx)
	if err != nil {
		return common.Hash{}, errors.Wrapf(ErrSubmission, "nonce: %v", err)
	}

	tx := buildTx(chainID, nonce, intent)

	signedTx, err := types.SignTx(tx, types.NewLondonSigner(chainID), s.key)
	if err != nil {
		return common.Hash{}, errors.Wrapf(ErrSubmission, "sign: %v", err)
	}

	if err := s.client.SendTransaction(ctx, signedTx); err != nil {
		// the node may have seen a different nonce, refetch it next time
		s.nonceKnown = false

		if isInsufficientFunds(err) {
			return common.Hash{}, errors.Wrapf(ErrInsufficientFunds, "%v", err)
		}
		return common.Hash{}, errors.Wrapf(ErrSubmission, "%v", err)
	}

	s.nonce = nonce + 1

	log.Debug().
		Str("tx_hash", signedTx.Hash().Hex()).
		Uint64("nonce", nonce).
		Str("to", intent.Recipient.Hex()).
		Str("fee", intent.Fee.String()).
		Msg("Transaction submitted")

	return signedTx.Hash(), nil
}

func (s *service) getChainID(ctx context.Context) (*big.Int, error) {
	if s.chainID != nil {
		return s.chainID, nil
	}

	chainID, err := s.client.GetChainID(ctx)
	if err != nil {
		return nil, err
	}
	s.chainID = chainID

	return chainID, nil
}

func (s *service) nextNonce(ctx context.Context) (uint64, error) {
	if s.nonceKnown {
		return s.nonce, nil
	}

	nonce, err := s.client.PendingNonceAt(ctx, s.address)
	if err != nil {
		return 0, err
	}
	s.nonce = nonce
	s.nonceKnown = true

	return nonce, nil
}

func buildTx(chainID *big.Int, nonce uint64, intent *TransferIntent) *types.Transaction {
	to := intent.Recipient

	if intent.Fee.Kind() == fee.KindDynamic {
		return types.NewTx(&types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     nonce,
			GasTipCap: intent.Fee.MaxPriorityFeePerGas(),
			GasFeeCap: intent.Fee.MaxFeePerGas(),
			Gas:       intent.GasLimit,
			To:        &to,
			Value:     intent.Amount,
		})
	}

	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: intent.Fee.GasPrice(),
		Gas:      intent.GasLimit,
		To:       &to,
		Value:    intent.Amount,
	})
}

func isInsufficientFunds(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "insufficient funds")
}
