package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-faucet/internal/api"
	"github/chapool/nft-faucet/internal/test"
	"github/chapool/nft-faucet/internal/util/command"
)

func TestWithServer(t *testing.T) {
	ctx := t.Context()

	var testError = errors.New("test error")

	config := test.DefaultTestConfig()
	// HTTP endpoints are dialed lazily, nothing listens here
	config.Chain.RPCURLs = []string{"http://127.0.0.1:1"}

	resultErr := command.WithServer(ctx, config, func(ctx context.Context, s *api.Server) error {
		require.True(t, s.Ready())
		assert.Equal(t, test.FaucetAddress, s.Signer.Address())

		return testError
	})

	assert.Equal(t, testError, resultErr)
}

func TestWithServerInvalidSigner(t *testing.T) {
	config := test.DefaultTestConfig()
	config.Chain.RPCURLs = []string{"http://127.0.0.1:1"}
	config.Signer.Mnemonic = ""

	called := false
	err := command.WithServer(t.Context(), config, func(context.Context, *api.Server) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}

func TestNewSubcommandGroup(t *testing.T) {
	sub := &cobra.Command{Use: "child", RunE: func(*cobra.Command, []string) error { return nil }}
	group := command.NewSubcommandGroup("parent", sub)

	assert.Equal(t, "parent <subcommand>", group.Use)
	require.Len(t, group.Commands(), 1)
	assert.Equal(t, "child", group.Commands()[0].Name())
}
