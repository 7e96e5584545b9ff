// Package ownership checks whether an address holds tokens of an ERC-721 collection.
package ownership

import (
	"context"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/nft-faucet/internal/chain"
)

// ErrUnavailable is returned when ownership could not be determined. It is
// never reported as "does not own".
var ErrUnavailable = errors.New("ownership verification unavailable")

const erc721BalanceOfABI = `[{
	"constant": true,
	"inputs": [{"name": "owner", "type": "address"}],
	"name": "balanceOf",
	"outputs": [{"name": "", "type": "uint256"}],
	"stateMutability": "view",
	"type": "function"
}]`

var erc721ABI = mustParseABI(erc721BalanceOfABI)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return parsed
}

// Caller performs read-only contract calls.
type Caller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type Verifier struct {
	caller  Caller
	timeout time.Duration
}

// NewVerifier returns a verifier whose calls are bounded by timeout; zero
// leaves the deadline to the caller's context.
func NewVerifier(caller Caller, timeout time.Duration) *Verifier {
	return &Verifier{caller: caller, timeout: timeout}
}

// HasAsset parses both addresses and reports whether holder owns at least
// one token of asset. Malformed addresses fail with chain.ErrInvalidAddress
// before any call is made.
func (v *Verifier) HasAsset(ctx context.Context, holderAddress string, assetContractAddress string) (bool, error) {
	holder, err := chain.ParseAddress(holderAddress)
	if err != nil {
		return false, errors.Wrap(err, "holder address")
	}

	asset, err := chain.ParseAddress(assetContractAddress)
	if err != nil {
		return false, errors.Wrap(err, "asset contract address")
	}

	return v.Owns(ctx, holder, asset)
}

// Owns reports whether balanceOf(holder) on asset is positive.
func (v *Verifier) Owns(ctx context.Context, holder common.Address, asset common.Address) (bool, error) {
	balance, err := v.BalanceOf(ctx, holder, asset)
	if err != nil {
		return false, err
	}

	return balance.Sign() > 0, nil
}

// BalanceOf returns the number of tokens of asset held by holder.
func (v *Verifier) BalanceOf(ctx context.Context, holder common.Address, asset common.Address) (*big.Int, error) {
	data, err := erc721ABI.Pack("balanceOf", holder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack balanceOf call")
	}

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	result, err := v.caller.CallContract(ctx, ethereum.CallMsg{To: &asset, Data: data}, nil)
	if err != nil {
		log.Warn().
			Str("holder", holder.Hex()).
			Str("asset", asset.Hex()).
			Err(err).
			Msg("balanceOf call failed")
		return nil, errors.Wrapf(ErrUnavailable, "balanceOf call: %v", err)
	}

	out, err := erc721ABI.Unpack("balanceOf", result)
	if err != nil || len(out) != 1 {
		return nil, errors.Wrapf(ErrUnavailable, "malformed balanceOf result 0x%x", result)
	}

	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.Wrapf(ErrUnavailable, "unexpected balanceOf result type %T", out[0])
	}

	return balance, nil
}
