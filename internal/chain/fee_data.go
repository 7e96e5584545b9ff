package chain

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var defaultTipCap = big.NewInt(1_000_000_000) // 1 gwei

// FeeData is the combined fee estimate of a node. Any field may be nil when
// the node does not support the corresponding query.
type FeeData struct {
	GasPrice             *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// GetFeeData queries the latest header, eth_gasPrice and eth_maxPriorityFeePerGas.
// EIP-1559 fields are only populated when the latest block carries a base fee;
// maxFeePerGas is then twice the base fee plus the tip.
func (c *RPCClient) GetFeeData(ctx context.Context) (*FeeData, error) {
	header, err := c.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get latest header")
	}

	data := &FeeData{}

	gasPrice, err := c.SuggestGasPrice(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("Gas price not available in fee data")
	} else {
		data.GasPrice = gasPrice
	}

	if header.BaseFee == nil {
		return data, nil
	}

	tip, err := c.SuggestGasTipCap(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to get gas tip cap, using default")
		tip = new(big.Int).Set(defaultTipCap)
	}

	data.MaxPriorityFeePerGas = tip
	data.MaxFeePerGas = new(big.Int).Add(
		new(big.Int).Mul(header.BaseFee, big.NewInt(2)),
		tip,
	)

	return data, nil
}
