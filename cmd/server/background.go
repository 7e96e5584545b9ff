package server

import (
	"context"

	"github.com/rs/zerolog/log"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/util"
)

func startBackgroundWorkers(ctx context.Context, s *api.Server) {
	log.Info().
		Str("faucet_address", s.Signer.Address().Hex()).
		Str("amount_per_request", util.FormatEther(s.Config.Faucet.AmountPerRequest)).
		Str("symbol", s.Config.Chain.NativeSymbol).
		Str("required_asset", s.Config.Faucet.RequiredAssetContract).
		Msg("Faucet account loaded")

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("Faucet balance watcher panicked")
			}
		}()

		s.BalanceWatcher.Run(ctx)
	}()
}
