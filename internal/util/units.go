package util

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	// EtherDecimals is the number of decimals of the native currency of EVM chains.
	EtherDecimals = 18
	// GweiDecimals is the number of decimals between gwei and wei.
	GweiDecimals = 9
)

// ParseUnits converts a decimal string such as "0.01" into its integer
// representation with the given number of decimals. Amounts that do not map to
// a whole number of base units are rejected.
func ParseUnits(amount string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid amount %q", amount)
	}

	if d.IsNegative() {
		return nil, errors.Errorf("amount %q must not be negative", amount)
	}

	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, errors.Errorf("amount %q has more than %d decimals", amount, decimals)
	}

	return shifted.BigInt(), nil
}

// ParseEther converts a whole-token amount into wei.
func ParseEther(amount string) (*big.Int, error) {
	return ParseUnits(amount, EtherDecimals)
}

// MustParseEther is ParseEther for constants, it panics on malformed input.
func MustParseEther(amount string) *big.Int {
	wei, err := ParseEther(amount)
	if err != nil {
		panic(err)
	}

	return wei
}

// FormatUnits renders an integer amount of base units as a decimal string.
func FormatUnits(value *big.Int, decimals int32) string {
	if value == nil {
		return "0"
	}

	return decimal.NewFromBigInt(value, -decimals).String()
}

// FormatEther renders a wei amount in whole tokens.
func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, EtherDecimals)
}

// FormatGwei renders a wei amount in gwei.
func FormatGwei(wei *big.Int) string {
	return FormatUnits(wei, GweiDecimals)
}
