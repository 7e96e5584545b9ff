package signer_test

import (
	"context"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-faucet/internal/faucet/fee"
	"github/chapool/nft-faucet/internal/wallet/signer"
)

const gwei = 1_000_000_000

var recipient = common.HexToAddress("0x9858EfFD232B4033E47d90003D41EC34EcaEda94")

type fakeClient struct {
	mu sync.Mutex

	chainID      *big.Int
	pendingNonce uint64
	sendErr      error

	chainIDCalls int
	nonceCalls   int
	sent         []*types.Transaction
}

func (c *fakeClient) GetChainID(context.Context) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.chainIDCalls++
	return c.chainID, nil
}

func (c *fakeClient) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nonceCalls++
	return c.pendingNonce, nil
}

func (c *fakeClient) SendTransaction(_ context.Context, tx *types.Transaction) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sendErr != nil {
		return c.sendErr
	}
	c.sent = append(c.sent, tx)
	return nil
}

func newSigner(t *testing.T, client *fakeClient) signer.Service {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	return signer.NewService(client, key)
}

func legacyIntent() *signer.TransferIntent {
	return &signer.TransferIntent{
		Recipient: recipient,
		Amount:    big.NewInt(10_000_000_000_000_000),
		GasLimit:  21000,
		Fee:       fee.NewLegacyQuote(big.NewInt(gwei), fee.SourceDefault),
	}
}

func TestSignAndSubmitLegacy(t *testing.T) {
	client := &fakeClient{chainID: big.NewInt(10143), pendingNonce: 5}
	s := newSigner(t, client)

	hash, err := s.SignAndSubmit(context.Background(), legacyIntent())
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	tx := client.sent[0]
	assert.Equal(t, hash, tx.Hash())
	assert.Equal(t, uint8(types.LegacyTxType), tx.Type())
	assert.Equal(t, uint64(5), tx.Nonce())
	assert.Equal(t, big.NewInt(gwei), tx.GasPrice())
	assert.Equal(t, uint64(21000), tx.Gas())
	assert.Equal(t, recipient, *tx.To())
	assert.Equal(t, big.NewInt(10_000_000_000_000_000), tx.Value())
	assert.Equal(t, big.NewInt(10143), tx.ChainId())

	from, err := types.Sender(types.NewLondonSigner(big.NewInt(10143)), tx)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), from)
}

func TestSignAndSubmitDynamic(t *testing.T) {
	client := &fakeClient{chainID: big.NewInt(1)}
	s := newSigner(t, client)

	intent := legacyIntent()
	intent.Fee = fee.NewDynamicQuote(big.NewInt(3*gwei), big.NewInt(gwei), fee.SourceFeeData)

	_, err := s.SignAndSubmit(context.Background(), intent)
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	tx := client.sent[0]
	assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
	assert.Equal(t, big.NewInt(3*gwei), tx.GasFeeCap())
	assert.Equal(t, big.NewInt(gwei), tx.GasTipCap())

	from, err := types.Sender(types.NewLondonSigner(big.NewInt(1)), tx)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), from)
}

func TestNonceTrackedLocally(t *testing.T) {
	client := &fakeClient{chainID: big.NewInt(1), pendingNonce: 7}
	s := newSigner(t, client)

	for i := 0; i < 3; i++ {
		_, err := s.SignAndSubmit(context.Background(), legacyIntent())
		require.NoError(t, err)
	}

	require.Len(t, client.sent, 3)
	for i, tx := range client.sent {
		assert.Equal(t, uint64(7+i), tx.Nonce())
	}
	assert.Equal(t, 1, client.nonceCalls)
	assert.Equal(t, 1, client.chainIDCalls)
}

func TestConcurrentSubmissionsGetDistinctNonces(t *testing.T) {
	client := &fakeClient{chainID: big.NewInt(1)}
	s := newSigner(t, client)

	const workers = 16

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.SignAndSubmit(context.Background(), legacyIntent())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	seen := make(map[uint64]bool)
	for _, tx := range client.sent {
		assert.False(t, seen[tx.Nonce()], "duplicate nonce %d", tx.Nonce())
		seen[tx.Nonce()] = true
	}
	assert.Len(t, seen, workers)
}

func TestInsufficientFunds(t *testing.T) {
	client := &fakeClient{
		chainID: big.NewInt(1),
		sendErr: errors.New("insufficient funds for gas * price + value: balance 0, tx cost 31000000000000, overshot 31000000000000"),
	}
	s := newSigner(t, client)

	_, err := s.SignAndSubmit(context.Background(), legacyIntent())
	require.Error(t, err)
	assert.ErrorIs(t, err, signer.ErrInsufficientFunds)
	assert.NotErrorIs(t, err, signer.ErrSubmission)
}

func TestSubmissionErrorRefetchesNonce(t *testing.T) {
	client := &fakeClient{chainID: big.NewInt(1), sendErr: errors.New("nonce too low")}
	s := newSigner(t, client)

	_, err := s.SignAndSubmit(context.Background(), legacyIntent())
	require.Error(t, err)
	assert.ErrorIs(t, err, signer.ErrSubmission)
	assert.Contains(t, err.Error(), "nonce too low")

	client.sendErr = nil
	client.pendingNonce = 3

	_, err = s.SignAndSubmit(context.Background(), legacyIntent())
	require.NoError(t, err)
	assert.Equal(t, 2, client.nonceCalls)
	assert.Equal(t, uint64(3), client.sent[0].Nonce())
}

func TestRejectsNonPositiveAmount(t *testing.T) {
	client := &fakeClient{chainID: big.NewInt(1)}
	s := newSigner(t, client)

	intent := legacyIntent()
	intent.Amount = big.NewInt(0)

	_, err := s.SignAndSubmit(context.Background(), intent)
	assert.ErrorIs(t, err, signer.ErrSubmission)
	assert.Empty(t, client.sent)
}
