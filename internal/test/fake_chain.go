package test

import (
	"bytes"
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/chain"
)

var balanceOfSelector = common.FromHex("0x70a08231")

// FakeChain is an in-memory EVM node. Transactions are "mined" as soon as they
// are sent. Errors injected through the *Err fields are returned by the
// corresponding calls.
type FakeChain struct {
	mu sync.Mutex

	ChainID     *big.Int
	BlockNumber uint64
	FeeData     *chain.FeeData
	GasPrice    *big.Int

	balances  map[common.Address]*big.Int
	nfts      map[common.Address]map[common.Address]*big.Int
	nonces    map[common.Address]uint64
	sent      []*types.Transaction
	txsByHash map[common.Hash]*types.Transaction

	ReadErr     error
	CallErr     error
	FeeDataErr  error
	GasPriceErr error
	SendErr     error
}

var _ api.ChainService = (*FakeChain)(nil)

func NewFakeChain() *FakeChain {
	return &FakeChain{
		ChainID:     big.NewInt(10143),
		BlockNumber: 1_000,
		FeeData: &chain.FeeData{
			GasPrice:             big.NewInt(50_000_000_000),
			MaxFeePerGas:         big.NewInt(102_000_000_000),
			MaxPriorityFeePerGas: big.NewInt(2_000_000_000),
		},
		GasPrice:  big.NewInt(50_000_000_000),
		balances:  make(map[common.Address]*big.Int),
		nfts:      make(map[common.Address]map[common.Address]*big.Int),
		nonces:    make(map[common.Address]uint64),
		txsByHash: make(map[common.Hash]*types.Transaction),
	}
}

func (f *FakeChain) SetBalance(address common.Address, balance *big.Int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.balances[address] = new(big.Int).Set(balance)
}

// SetNFTBalance sets the number of tokens holder owns of the ERC-721 collection at asset.
func (f *FakeChain) SetNFTBalance(asset common.Address, holder common.Address, count int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.nfts[asset] == nil {
		f.nfts[asset] = make(map[common.Address]*big.Int)
	}
	f.nfts[asset][holder] = big.NewInt(count)
}

// Sent returns the transactions submitted so far.
func (f *FakeChain) Sent() []*types.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*types.Transaction(nil), f.sent...)
}

func (f *FakeChain) GetLatestBlockNumber(context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ReadErr != nil {
		return 0, f.ReadErr
	}
	return f.BlockNumber, nil
}

func (f *FakeChain) GetChainID(context.Context) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	return new(big.Int).Set(f.ChainID), nil
}

func (f *FakeChain) GetTransaction(_ context.Context, txHash common.Hash) (*types.Transaction, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ReadErr != nil {
		return nil, false, f.ReadErr
	}

	tx, ok := f.txsByHash[txHash]
	if !ok {
		return nil, false, ethereum.NotFound
	}
	return tx, false, nil
}

func (f *FakeChain) GetTransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ReadErr != nil {
		return nil, f.ReadErr
	}

	tx, ok := f.txsByHash[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}

	return &types.Receipt{
		Type:              tx.Type(),
		Status:            types.ReceiptStatusSuccessful,
		CumulativeGasUsed: tx.Gas(),
		Logs:              []*types.Log{},
		TxHash:            txHash,
		GasUsed:           tx.Gas(),
		BlockNumber:       new(big.Int).SetUint64(f.BlockNumber),
	}, nil
}

func (f *FakeChain) BalanceAt(_ context.Context, address common.Address) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ReadErr != nil {
		return nil, f.ReadErr
	}

	if balance, ok := f.balances[address]; ok {
		return new(big.Int).Set(balance), nil
	}
	return new(big.Int), nil
}

func (f *FakeChain) PendingNonceAt(_ context.Context, address common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ReadErr != nil {
		return 0, f.ReadErr
	}
	return f.nonces[address], nil
}

// CallContract answers ERC-721 balanceOf calls only.
func (f *FakeChain) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.CallErr != nil {
		return nil, f.CallErr
	}
	if msg.To == nil || len(msg.Data) != 36 || !bytes.Equal(msg.Data[:4], balanceOfSelector) {
		return nil, errors.New("execution reverted")
	}

	holder := common.BytesToAddress(msg.Data[4:])
	count := new(big.Int)
	if c, ok := f.nfts[*msg.To][holder]; ok {
		count = c
	}

	return common.LeftPadBytes(count.Bytes(), 32), nil
}

func (f *FakeChain) SuggestGasPrice(context.Context) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.GasPriceErr != nil {
		return nil, f.GasPriceErr
	}
	return new(big.Int).Set(f.GasPrice), nil
}

func (f *FakeChain) GetFeeData(context.Context) (*chain.FeeData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FeeDataErr != nil {
		return nil, f.FeeDataErr
	}

	data := *f.FeeData
	return &data, nil
}

func (f *FakeChain) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.SendErr != nil {
		return f.SendErr
	}

	sender, err := types.Sender(types.LatestSignerForChainID(f.ChainID), tx)
	if err != nil {
		return errors.Wrap(err, "invalid sender")
	}

	f.sent = append(f.sent, tx)
	f.txsByHash[tx.Hash()] = tx
	f.nonces[sender] = tx.Nonce() + 1
	f.BlockNumber++

	return nil
}

func (f *FakeChain) Close() {}
