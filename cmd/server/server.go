package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/api/router"
	"github/chapool/nft-faucet/internal/config"
	"github/chapool/nft-faucet/internal/util/command"
)

const (
	noBalanceWatcherFlag = "no-balance-watcher"

	shutdownTimeout = 30 * time.Second
)

type Flags struct {
	NoBalanceWatcher bool
}

func New() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the faucet HTTP server.

Requires configuration through ENV.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServer(flags)
		},
	}

	cmd.Flags().BoolVar(&flags.NoBalanceWatcher, noBalanceWatcherFlag, false, "Do not poll the faucet balance in the background.")

	return cmd
}

func runServer(flags Flags) error {
	cfg := config.DefaultServiceConfigFromEnv()
	command.ConfigureLogger(cfg.Logger)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := router.Init(s); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize router")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Serve(ctx, s, flags); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}

	return nil
}

// Serve runs the initialized server and its background workers until ctx is
// done or the server fails to start, then shuts everything down.
func Serve(ctx context.Context, s *api.Server, flags Flags) error {
	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if !flags.NoBalanceWatcher {
		startBackgroundWorkers(workerCtx, s)
	}

	startErr := make(chan error, 1)
	go func() {
		startErr <- s.Start()
	}()

	var runErr error
	select {
	case err := <-startErr:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = errors.Wrap(err, "failed to start server")
		}
	case <-ctx.Done():
		log.Info().Msg("Received shutdown signal")
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
		log.Error().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
		if runErr == nil {
			runErr = errors.Errorf("failed to gracefully shut down server: %v", errs)
		}
	}

	return runErr
}
