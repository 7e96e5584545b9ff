package server_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-faucet/cmd/server"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/test"
)

func TestServeStopsWhenContextDone(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, _ *test.FakeChain) {
		s.Config.Echo.ListenAddress = "127.0.0.1:0"

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan error, 1)
		go func() {
			done <- server.Serve(ctx, s, server.Flags{NoBalanceWatcher: true})
		}()

		require.Eventually(t, func() bool {
			return s.Echo.ListenerAddr() != nil
		}, 5*time.Second, 10*time.Millisecond)

		res, err := http.Get("http://" + s.Echo.ListenerAddr().String() + "/-/healthy") //nolint:noctx
		require.NoError(t, err)
		res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode)

		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("Serve did not return after the context was canceled")
		}
	})
}

func TestServeReportsStartFailure(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server, _ *test.FakeChain) {
		s.Config.Echo.ListenAddress = "not-an-address"

		err := server.Serve(context.Background(), s, server.Flags{NoBalanceWatcher: true})
		require.Error(t, err)
	})
}
