package nft

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-openapi/swag"
	"github.com/pkg/errors"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/api/httperrors"
	"github/chapool/nft-faucet/internal/chain"
	"github/chapool/nft-faucet/internal/types"
	"github/chapool/nft-faucet/internal/util"
)

// checkOwnership answers an ownership query for holder, defaulting the
// collection to the required asset contract.
func checkOwnership(ctx context.Context, s *api.Server, holder string, asset string) (*types.NftOwnershipResponse, error) {
	if asset == "" {
		asset = s.Config.Faucet.RequiredAssetContract
	}

	hasAsset, err := s.Verifier.HasAsset(ctx, holder, asset)
	if err != nil {
		if errors.Is(err, chain.ErrInvalidAddress) {
			return nil, httperrors.ErrBadRequestInvalidAddress
		}

		util.LogFromContext(ctx).Warn().Err(err).Str("holder", holder).Str("asset", asset).Msg("Ownership check failed")
		return nil, httperrors.ErrServiceUnavailableVerification
	}

	message := "NFT not found."
	if hasAsset {
		message = "NFT found."
	}

	return &types.NftOwnershipResponse{
		Success:              swag.Bool(true),
		HasAsset:             swag.Bool(hasAsset),
		HolderAddress:        swag.String(common.HexToAddress(holder).Hex()),
		AssetContractAddress: swag.String(common.HexToAddress(asset).Hex()),
		Message:              message,
	}, nil
}
