package faucet_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/test"
	"github/chapool/nft-faucet/internal/types"
)

func TestGetFaucetInfo(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, _ *test.FakeChain) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/faucet", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.FaucetInfoResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, "0.01", *response.AmountPerRequest)
		assert.Equal(t, s.Config.Faucet.Cooldown.Milliseconds(), *response.CooldownMillis)
		assert.Equal(t, test.FaucetAddress.Hex(), *response.FaucetAddress)
		assert.Equal(t, s.Config.Chain.NativeSymbol, *response.Symbol)
		assert.Equal(t, requiredAsset(s).Hex(), *response.RequiredAssetContract)
	})
}
