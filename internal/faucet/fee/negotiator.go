// Package fee determines the pricing parameters of a disbursement transfer.
package fee

import (
	"context"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/nft-faucet/internal/chain"
	"github/chapool/nft-faucet/internal/config"
	"github/chapool/nft-faucet/internal/util"
)

var (
	// ErrUnavailable is returned when no usable price could be determined.
	ErrUnavailable = errors.New("fee unavailable")
	// ErrPriceTooHigh is returned when the negotiated price exceeds the configured cap.
	ErrPriceTooHigh = errors.Wrap(ErrUnavailable, "gas price above cap")
)

// Kind tags the variant of a Quote.
type Kind int

const (
	KindLegacy Kind = iota
	KindDynamic
)

func (k Kind) String() string {
	switch k {
	case KindDynamic:
		return "eip1559"
	default:
		return "legacy"
	}
}

// Source names where a quote came from.
type Source string

const (
	SourceFeeData  Source = "fee_data"
	SourceGasPrice Source = "gas_price"
	SourceDefault  Source = "default"
)

// Quote carries either a legacy gas price or EIP-1559 fee caps, never both.
// Use NewLegacyQuote or NewDynamicQuote to build one.
type Quote struct {
	kind                 Kind
	gasPrice             *big.Int
	maxFeePerGas         *big.Int
	maxPriorityFeePerGas *big.Int
	source               Source
}

func NewLegacyQuote(gasPrice *big.Int, source Source) Quote {
	return Quote{
		kind:     KindLegacy,
		gasPrice: new(big.Int).Set(gasPrice),
		source:   source,
	}
}

func NewDynamicQuote(maxFeePerGas *big.Int, maxPriorityFeePerGas *big.Int, source Source) Quote {
	return Quote{
		kind:                 KindDynamic,
		maxFeePerGas:         new(big.Int).Set(maxFeePerGas),
		maxPriorityFeePerGas: new(big.Int).Set(maxPriorityFeePerGas),
		source:               source,
	}
}

func (q Quote) Kind() Kind     { return q.kind }
func (q Quote) Source() Source { return q.source }

// GasPrice is nil for dynamic quotes.
func (q Quote) GasPrice() *big.Int { return copyInt(q.gasPrice) }

// MaxFeePerGas is nil for legacy quotes.
func (q Quote) MaxFeePerGas() *big.Int { return copyInt(q.maxFeePerGas) }

// MaxPriorityFeePerGas is nil for legacy quotes.
func (q Quote) MaxPriorityFeePerGas() *big.Int { return copyInt(q.maxPriorityFeePerGas) }

// PriceCap is the highest price per gas the quote may pay.
func (q Quote) PriceCap() *big.Int {
	if q.kind == KindDynamic {
		return copyInt(q.maxFeePerGas)
	}
	return copyInt(q.gasPrice)
}

func (q Quote) String() string {
	if q.kind == KindDynamic {
		return fmt.Sprintf("eip1559(maxFee=%s gwei, tip=%s gwei, source=%s)",
			util.FormatGwei(q.maxFeePerGas), util.FormatGwei(q.maxPriorityFeePerGas), q.source)
	}
	return fmt.Sprintf("legacy(gasPrice=%s gwei, source=%s)", util.FormatGwei(q.gasPrice), q.source)
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}

// Client is the subset of the chain client needed for fee estimation.
type Client interface {
	GetFeeData(ctx context.Context) (*chain.FeeData, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
}

type Config struct {
	Mode            config.FeeMode
	DefaultGasPrice *big.Int
	// nil or zero disables the cap
	MaxGasPrice *big.Int
}

// Negotiator picks a fee quote according to the fee capability the network
// is configured to expose.
type Negotiator struct {
	client Client
	cfg    Config
}

func NewNegotiator(client Client, cfg Config) *Negotiator {
	if cfg.Mode == "" {
		cfg.Mode = config.FeeModeAuto
	}
	if cfg.DefaultGasPrice == nil || cfg.DefaultGasPrice.Sign() <= 0 {
		cfg.DefaultGasPrice = big.NewInt(1_000_000_000)
	}

	return &Negotiator{client: client, cfg: cfg}
}

// Negotiate returns a quote or an error matching ErrUnavailable.
func (n *Negotiator) Negotiate(ctx context.Context) (Quote, error) {
	quote, err := n.quote(ctx)
	if err != nil {
		return Quote{}, err
	}

	if n.cfg.MaxGasPrice != nil && n.cfg.MaxGasPrice.Sign() > 0 && quote.PriceCap().Cmp(n.cfg.MaxGasPrice) > 0 {
		return Quote{}, errors.Wrapf(ErrPriceTooHigh, "%s exceeds %s gwei", quote, util.FormatGwei(n.cfg.MaxGasPrice))
	}

	return quote, nil
}

func (n *Negotiator) quote(ctx context.Context) (Quote, error) {
	switch n.cfg.Mode {
	case config.FeeModeDefault:
		return n.defaultQuote(), nil
	case config.FeeModeLegacy:
		return n.legacyQuote(ctx)
	}

	data, err := n.client.GetFeeData(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Fee data query failed, falling back to gas price")
		return n.legacyQuote(ctx)
	}

	if positive(data.MaxFeePerGas) && positive(data.MaxPriorityFeePerGas) {
		return NewDynamicQuote(data.MaxFeePerGas, data.MaxPriorityFeePerGas, SourceFeeData), nil
	}
	if positive(data.GasPrice) {
		return NewLegacyQuote(data.GasPrice, SourceFeeData), nil
	}

	log.Warn().Msg("Fee data contained no usable price, using default gas price")
	return n.defaultQuote(), nil
}

func (n *Negotiator) legacyQuote(ctx context.Context) (Quote, error) {
	price, err := n.client.SuggestGasPrice(ctx)
	if err != nil {
		return Quote{}, errors.Wrapf(ErrUnavailable, "gas price query failed: %v", err)
	}
	if !positive(price) {
		return Quote{}, errors.Wrapf(ErrUnavailable, "node returned gas price %v", price)
	}

	return NewLegacyQuote(price, SourceGasPrice), nil
}

func (n *Negotiator) defaultQuote() Quote {
	return NewLegacyQuote(n.cfg.DefaultGasPrice, SourceDefault)
}

func positive(v *big.Int) bool {
	return v != nil && v.Sign() > 0
}
