package keystore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-faucet/internal/wallet/keystore"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestEncryptDecrypt(t *testing.T) {
	ks, err := keystore.Encrypt(testMnemonic, "correct horse", keystore.LightScryptParams())
	require.NoError(t, err)
	assert.Equal(t, 3, ks.Version)
	assert.Equal(t, "aes-128-ctr", ks.Crypto.Cipher)
	assert.Equal(t, "scrypt", ks.Crypto.KDF)
	assert.NotContains(t, ks.Crypto.Ciphertext, "abandon")

	mnemonic, err := keystore.Decrypt(ks, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, mnemonic)
}

func TestDecryptWrongPassword(t *testing.T) {
	ks, err := keystore.Encrypt(testMnemonic, "correct horse", keystore.LightScryptParams())
	require.NoError(t, err)

	_, err = keystore.Decrypt(ks, "battery staple")
	assert.ErrorIs(t, err, keystore.ErrInvalidPassword)
}

func TestDecryptUnsupported(t *testing.T) {
	ks, err := keystore.Encrypt(testMnemonic, "pw", keystore.LightScryptParams())
	require.NoError(t, err)

	ks.Crypto.KDF = "pbkdf2"
	_, err = keystore.Decrypt(ks, "pw")
	assert.ErrorIs(t, err, keystore.ErrUnsupported)
}

func TestEncryptUsesFreshSalt(t *testing.T) {
	a, err := keystore.Encrypt(testMnemonic, "pw", keystore.LightScryptParams())
	require.NoError(t, err)
	b, err := keystore.Encrypt(testMnemonic, "pw", keystore.LightScryptParams())
	require.NoError(t, err)

	assert.NotEqual(t, a.Crypto.KDFParams.Salt, b.Crypto.KDFParams.Salt)
	assert.NotEqual(t, a.Crypto.Ciphertext, b.Crypto.Ciphertext)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestWriteReadOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faucet.json")

	ks, err := keystore.Encrypt(testMnemonic, "pw", keystore.LightScryptParams())
	require.NoError(t, err)
	ks.Address = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"

	require.NoError(t, keystore.WriteFile(path, ks))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := keystore.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ks.Address, loaded.Address)

	mnemonic, err := keystore.Open(path, "pw")
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, mnemonic)

	_, err = keystore.Open(path, "nope")
	assert.ErrorIs(t, err, keystore.ErrInvalidPassword)
}

func TestWriteFileRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faucet.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	ks, err := keystore.Encrypt(testMnemonic, "pw", keystore.LightScryptParams())
	require.NoError(t, err)

	assert.ErrorIs(t, keystore.WriteFile(path, ks), keystore.ErrExists)
}

func TestReadFileMissing(t *testing.T) {
	_, err := keystore.ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
