package nft_test

import (
	"net/http"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/api/httperrors"
	"github/chapool/nft-faucet/internal/test"
	"github/chapool/nft-faucet/internal/types"
)

const (
	holder     = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa01"
	otherAsset = "0x00000000000000000000000000000000000000aa"
)

func TestGetNftOwnershipDefaultAsset(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, fake *test.FakeChain) {
		asset := common.HexToAddress(s.Config.Faucet.RequiredAssetContract)
		fake.SetNFTBalance(asset, common.HexToAddress(holder), 3)

		res := test.PerformRequestWithParams(t, s, "GET", "/api/v1/nft/ownership", nil, nil, map[string]string{
			"holderAddress": holder,
		})
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.NftOwnershipResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.True(t, *response.Success)
		assert.True(t, *response.HasAsset)
		assert.Equal(t, "NFT found.", response.Message)
		assert.Equal(t, asset.Hex(), *response.AssetContractAddress)
		assert.Equal(t, common.HexToAddress(holder).Hex(), *response.HolderAddress)
	})
}

func TestGetNftOwnershipOtherAssetNotOwned(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, fake *test.FakeChain) {
		fake.SetNFTBalance(common.HexToAddress(s.Config.Faucet.RequiredAssetContract), common.HexToAddress(holder), 1)

		res := test.PerformRequestWithParams(t, s, "GET", "/api/v1/nft/ownership", nil, nil, map[string]string{
			"holderAddress":        holder,
			"assetContractAddress": otherAsset,
		})
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.NftOwnershipResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.False(t, *response.HasAsset)
		assert.Equal(t, "NFT not found.", response.Message)
	})
}

func TestGetNftOwnershipMissingHolder(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, _ *test.FakeChain) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/nft/ownership", nil, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.PublicHTTPError
		test.ParseResponseAndValidate(t, res, &response)
		require.Len(t, response.ValidationErrors, 1)
		assert.Equal(t, "holderAddress", *response.ValidationErrors[0].Key)
		assert.Equal(t, "query", *response.ValidationErrors[0].In)
	})
}

func TestPostNftOwnership(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, fake *test.FakeChain) {
		fake.SetNFTBalance(common.HexToAddress(otherAsset), common.HexToAddress(holder), 1)

		res := test.PerformRequest(t, s, "POST", "/api/v1/nft/ownership", test.GenericPayload{
			"holderAddress":        holder,
			"assetContractAddress": otherAsset,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.NftOwnershipResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.True(t, *response.HasAsset)
	})
}

func TestPostNftOwnershipInvalidAddress(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, _ *test.FakeChain) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/nft/ownership", test.GenericPayload{
			"holderAddress":        holder,
			"assetContractAddress": "not-an-address",
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestInvalidAddress)
	})
}

func TestPostNftOwnershipUnavailable(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, fake *test.FakeChain) {
		fake.CallErr = errors.New("connection refused")

		res := test.PerformRequest(t, s, "POST", "/api/v1/nft/ownership", test.GenericPayload{
			"holderAddress": holder,
		}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrServiceUnavailableVerification)
	})
}
