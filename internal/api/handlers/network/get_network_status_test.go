package network_test

import (
	"math/big"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/chain"
	"github/chapool/nft-faucet/internal/test"
	"github/chapool/nft-faucet/internal/types"
)

func getNetworkStatus(t *testing.T, s *api.Server) types.NetworkStatusResponse {
	t.Helper()

	res := test.PerformRequest(t, s, "GET", "/api/v1/network/status", nil, nil)
	require.Equal(t, http.StatusOK, res.Result().StatusCode)

	var response types.NetworkStatusResponse
	test.ParseResponseAndValidate(t, res, &response)

	return response
}

func TestGetNetworkStatus(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, _ *test.FakeChain) {
		response := getNetworkStatus(t, s)

		assert.True(t, *response.Success)
		assert.Equal(t, uint64(1000), *response.BlockNumber)
		assert.Equal(t, "10143", *response.ChainID)
		assert.Equal(t, "50 Gwei", *response.GasPrice)
		assert.Equal(t, test.FaucetAddress.Hex(), *response.FaucetAddress)
		assert.Equal(t, "100", *response.FaucetBalance)
		assert.Equal(t, s.Config.Chain.NetworkName, response.NetworkName)
	})
}

func TestGetNetworkStatusGasPriceDisplay(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, fake *test.FakeChain) {
		fake.FeeData = &chain.FeeData{MaxFeePerGas: big.NewInt(2_500_000_000), MaxPriorityFeePerGas: big.NewInt(1)}
		assert.Equal(t, "2.5 Gwei (Max Fee)", *getNetworkStatus(t, s).GasPrice)

		fake.FeeData = &chain.FeeData{}
		assert.Equal(t, "N/A", *getNetworkStatus(t, s).GasPrice)

		fake.FeeDataErr = errors.New("method not found")
		assert.Equal(t, "N/A", *getNetworkStatus(t, s).GasPrice)
	})
}

func TestGetNetworkStatusChainUnavailable(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, fake *test.FakeChain) {
		fake.ReadErr = errors.Wrap(chain.ErrUnavailable, "block number")

		res := test.PerformRequest(t, s, "GET", "/api/v1/network/status", nil, nil)
		require.Equal(t, http.StatusServiceUnavailable, res.Result().StatusCode)
	})
}
