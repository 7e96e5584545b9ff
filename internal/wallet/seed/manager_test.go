package seed_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-faucet/internal/wallet/seed"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestInitialize(t *testing.T) {
	m := seed.NewManager()
	assert.False(t, m.IsInitialized())
	assert.Nil(t, m.GetSeed())

	require.NoError(t, m.Initialize(testMnemonic, "TREZOR"))
	assert.True(t, m.IsInitialized())

	// BIP-39 reference vector
	assert.Equal(t,
		"c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		hex.EncodeToString(m.GetSeed()))
}

func TestInitializeNormalizesWhitespace(t *testing.T) {
	a := seed.NewManager()
	b := seed.NewManager()

	require.NoError(t, a.Initialize(testMnemonic, ""))
	require.NoError(t, b.Initialize("  "+strings.ReplaceAll(testMnemonic, " ", "\n  ")+"\t", ""))
	assert.Equal(t, a.GetSeed(), b.GetSeed())
}

func TestInitializeInvalidMnemonic(t *testing.T) {
	m := seed.NewManager()

	err := m.Initialize(strings.Replace(testMnemonic, "about", "abandon", 1), "")
	assert.ErrorIs(t, err, seed.ErrInvalidMnemonic)
	assert.False(t, m.IsInitialized())

	assert.ErrorIs(t, m.Initialize("not a mnemonic", ""), seed.ErrInvalidMnemonic)
}

func TestGetSeedReturnsCopy(t *testing.T) {
	m := seed.NewManager()
	require.NoError(t, m.Initialize(testMnemonic, ""))

	s := m.GetSeed()
	s[0] ^= 0xff
	assert.NotEqual(t, s, m.GetSeed())
}

func TestClear(t *testing.T) {
	m := seed.NewManager()
	require.NoError(t, m.Initialize(testMnemonic, ""))

	m.Clear()
	assert.False(t, m.IsInitialized())
	assert.Nil(t, m.GetSeed())
}

func TestNewMnemonic(t *testing.T) {
	mnemonic, err := seed.NewMnemonic(128)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(mnemonic), 12)

	m := seed.NewManager()
	require.NoError(t, m.Initialize(mnemonic, ""))

	_, err = seed.NewMnemonic(100)
	require.Error(t, err)
}
