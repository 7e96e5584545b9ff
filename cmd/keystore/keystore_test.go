package keystore_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-faucet/cmd/keystore"
	"github/chapool/nft-faucet/internal/test"
	"github/chapool/nft-faucet/internal/wallet"
	"github/chapool/nft-faucet/internal/wallet/address"
	ks "github/chapool/nft-faucet/internal/wallet/keystore"
)

func TestAddressPrintsRecordedAddress(t *testing.T) {
	file := filepath.Join(t.TempDir(), "faucet.json")
	_, err := wallet.CreateKeystore(file, test.Mnemonic, "correct horse", address.DefaultPath, ks.LightScryptParams())
	require.NoError(t, err)

	var out bytes.Buffer
	cmd := keystore.New()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"address", "--file", file})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, test.FaucetAddress.Hex(), strings.TrimSpace(out.String()))
}

func TestAddressMissingFile(t *testing.T) {
	cmd := keystore.New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"address", "--file", filepath.Join(t.TempDir(), "missing.json")})

	require.Error(t, cmd.Execute())
}
