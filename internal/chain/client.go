package chain

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"github/chapool/nft-faucet/internal/config"
)

// ErrUnavailable is returned when no RPC node answered a read query, either
// because every node failed or because the circuit breaker is open.
var ErrUnavailable = errors.New("rpc unavailable")

// RPCClient wraps go-ethereum clients for one or more RPC URLs. Reads fail
// over to the next URL and are guarded by a circuit breaker; sends go to the
// current node only and are never retried.
type RPCClient struct {
	urls    []string
	clients []*ethclient.Client
	mu      sync.RWMutex
	current int

	timeout time.Duration
	breaker *gobreaker.CircuitBreaker
}

// NewRPCClient dials every configured URL. Unreachable URLs are redialed on use.
func NewRPCClient(cfg config.Chain) (*RPCClient, error) {
	if len(cfg.RPCURLs) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	clients := make([]*ethclient.Client, 0, len(cfg.RPCURLs))
	for _, url := range cfg.RPCURLs {
		client, err := ethclient.Dial(url)
		if err != nil {
			log.Warn().
				Str("url", url).
				Err(err).
				Msg("Failed to connect to RPC node, will retry on use")
			clients = append(clients, nil)
			continue
		}
		clients = append(clients, client)
	}

	if allClientsNil(clients) {
		return nil, errors.New("failed to connect to any RPC node")
	}

	return &RPCClient{
		urls:    cfg.RPCURLs,
		clients: clients,
		timeout: cfg.RequestTimeout,
		breaker: newBreaker(cfg),
	}, nil
}

func newBreaker(cfg config.Chain) *gobreaker.CircuitBreaker {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "rpc",
		Timeout: cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// answers such as "not found" or a reverted call come from a healthy node
		IsSuccessful: func(err error) bool {
			return err == nil || !isNodeFailure(err)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("RPC circuit breaker changed state")
		},
	})
}

func allClientsNil(clients []*ethclient.Client) bool {
	for _, client := range clients {
		if client != nil {
			return false
		}
	}
	return true
}

// Close closes all client connections.
func (c *RPCClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, client := range c.clients {
		if client != nil {
			client.Close()
		}
	}
}

// GetLatestBlockNumber returns the number of the most recent block.
func (c *RPCClient) GetLatestBlockNumber(ctx context.Context) (uint64, error) {
	return read(ctx, c, "block number", func(ctx context.Context, client *ethclient.Client) (uint64, error) {
		return client.BlockNumber(ctx)
	})
}

// GetChainID returns the chain ID reported by the node.
func (c *RPCClient) GetChainID(ctx context.Context) (*big.Int, error) {
	return read(ctx, c, "chain ID", func(ctx context.Context, client *ethclient.Client) (*big.Int, error) {
		return client.ChainID(ctx)
	})
}

// GetTransaction looks a transaction up by hash. ethereum.NotFound is passed through.
func (c *RPCClient) GetTransaction(ctx context.Context, txHash common.Hash) (*types.Transaction, bool, error) {
	type result struct {
		tx      *types.Transaction
		pending bool
	}

	res, err := read(ctx, c, "transaction", func(ctx context.Context, client *ethclient.Client) (result, error) {
		tx, pending, err := client.TransactionByHash(ctx, txHash)
		return result{tx: tx, pending: pending}, err
	})
	if err != nil {
		return nil, false, err
	}

	return res.tx, res.pending, nil
}

// GetTransactionReceipt returns the receipt of a mined transaction.
func (c *RPCClient) GetTransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return read(ctx, c, "transaction receipt", func(ctx context.Context, client *ethclient.Client) (*types.Receipt, error) {
		return client.TransactionReceipt(ctx, txHash)
	})
}

// BalanceAt returns the balance of an address at the latest known block.
func (c *RPCClient) BalanceAt(ctx context.Context, address common.Address) (*big.Int, error) {
	return read(ctx, c, "balance", func(ctx context.Context, client *ethclient.Client) (*big.Int, error) {
		return client.BalanceAt(ctx, address, nil)
	})
}

// PendingNonceAt returns the pending nonce for the given address.
func (c *RPCClient) PendingNonceAt(ctx context.Context, address common.Address) (uint64, error) {
	return read(ctx, c, "pending nonce", func(ctx context.Context, client *ethclient.Client) (uint64, error) {
		return client.PendingNonceAt(ctx, address)
	})
}

// CallContract executes a read-only message call against the latest block
// when blockNumber is nil.
func (c *RPCClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return read(ctx, c, "contract call", func(ctx context.Context, client *ethclient.Client) ([]byte, error) {
		return client.CallContract(ctx, msg, blockNumber)
	})
}

// SuggestGasPrice queries eth_gasPrice.
func (c *RPCClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return read(ctx, c, "gas price", func(ctx context.Context, client *ethclient.Client) (*big.Int, error) {
		return client.SuggestGasPrice(ctx)
	})
}

// SuggestGasTipCap queries eth_maxPriorityFeePerGas (EIP-1559).
func (c *RPCClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return read(ctx, c, "gas tip cap", func(ctx context.Context, client *ethclient.Client) (*big.Int, error) {
		return client.SuggestGasTipCap(ctx)
	})
}

// HeaderByNumber returns the header of the given block, the latest one when number is nil.
func (c *RPCClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return read(ctx, c, "header", func(ctx context.Context, client *ethclient.Client) (*types.Header, error) {
		return client.HeaderByNumber(ctx, number)
	})
}

// SendTransaction broadcasts a signed transaction to the current node. It is
// never retried on another node.
func (c *RPCClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	client, _, err := c.getClient()
	if err != nil {
		return errors.Wrap(err, "failed to get RPC client")
	}

	// bounded like reads: the signer holds its nonce lock across this call
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := client.SendTransaction(ctx, tx); err != nil {
		return errors.Wrap(err, "failed to send transaction")
	}

	return nil
}

// read runs fn through the circuit breaker, trying every node once starting
// at the current one.
func read[T any](ctx context.Context, c *RPCClient, op string, fn func(context.Context, *ethclient.Client) (T, error)) (T, error) {
	var zero T

	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.withFailover(ctx, op, func(ctx context.Context, client *ethclient.Client) (interface{}, error) {
			return fn(ctx, client)
		})
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, errors.Wrapf(ErrUnavailable, "%s: %v", op, err)
		}
		return zero, err
	}

	return res.(T), nil //nolint:forcetypeassert // fn returns T
}

func (c *RPCClient) withFailover(ctx context.Context, op string, fn func(context.Context, *ethclient.Client) (interface{}, error)) (interface{}, error) {
	var lastErr error

	for attempt := 0; attempt < len(c.urls); attempt++ {
		client, idx, err := c.clientAt(attempt)
		if err != nil {
			lastErr = err
			continue
		}

		callCtx, cancel := c.withTimeout(ctx)
		res, err := fn(callCtx, client)
		cancel()

		if err == nil || !isNodeFailure(err) {
			c.setCurrent(idx)
			return res, err
		}

		lastErr = err
		if ctx.Err() != nil {
			break
		}

		log.Warn().
			Str("url", c.urls[idx]).
			Str("op", op).
			Err(err).
			Msg("RPC read failed, trying next node")
	}

	return nil, errors.Wrapf(ErrUnavailable, "%s: %v", op, lastErr)
}

func (c *RPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// getClient returns the current client.
func (c *RPCClient) getClient() (*ethclient.Client, int, error) {
	return c.clientAt(0)
}

// clientAt returns the client offset positions after the current one,
// redialing it if the initial dial failed.
func (c *RPCClient) clientAt(offset int) (*ethclient.Client, int, error) {
	c.mu.RLock()
	idx := (c.current + offset) % len(c.clients)
	client := c.clients[idx]
	c.mu.RUnlock()

	if client != nil {
		return client, idx, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clients[idx] != nil {
		return c.clients[idx], idx, nil
	}

	client, err := ethclient.Dial(c.urls[idx])
	if err != nil {
		return nil, idx, errors.Wrapf(err, "failed to dial %s", c.urls[idx])
	}
	c.clients[idx] = client

	return client, idx, nil
}

func (c *RPCClient) setCurrent(idx int) {
	c.mu.Lock()
	c.current = idx
	c.mu.Unlock()
}

// isNodeFailure separates transport problems from answers a healthy node
// gives, such as an unknown transaction or a reverted call.
func isNodeFailure(err error) bool {
	if errors.Is(err, ethereum.NotFound) {
		return false
	}

	var dataErr interface{ ErrorData() interface{} }
	return !errors.As(err, &dataErr)
}
