package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/nft-faucet/internal/config"
	"github/chapool/nft-faucet/internal/wallet/address"
	"github/chapool/nft-faucet/internal/wallet/keystore"
	"github/chapool/nft-faucet/internal/wallet/seed"
	"golang.org/x/term"
)

var (
	ErrNoSigningKey        = errors.New("no signing key configured")
	ErrAmbiguousSigningKey = errors.New("more than one signing key source configured")
	// ErrAddressMismatch is returned when a keystore decrypts to a mnemonic
	// whose account differs from the address recorded in the file.
	ErrAddressMismatch = errors.New("derived address does not match keystore address")
)

// MinPasswordLength applies to newly created keystores.
const MinPasswordLength = 8

// PasswordPrompt reads a password interactively.
type PasswordPrompt func(prompt string) (string, error)

// LoadSigningKey resolves the faucet key from exactly one of a hex private
// key, a mnemonic, or a keystore file. prompt is only used for keystores
// without a configured password and may be nil.
func LoadSigningKey(cfg config.Signer, prompt PasswordPrompt) (*ecdsa.PrivateKey, error) {
	sources := 0
	for _, v := range []string{cfg.PrivateKey, cfg.Mnemonic, cfg.KeystoreFile} {
		if v != "" {
			sources++
		}
	}

	switch {
	case sources == 0:
		return nil, ErrNoSigningKey
	case sources > 1:
		return nil, ErrAmbiguousSigningKey
	}

	path := cfg.DerivationPath
	if path == "" {
		path = address.DefaultPath
	}

	switch {
	case cfg.PrivateKey != "":
		key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(cfg.PrivateKey), "0x"))
		if err != nil {
			return nil, errors.Wrap(err, "invalid private key")
		}
		return key, nil

	case cfg.Mnemonic != "":
		return keyFromMnemonic(cfg.Mnemonic, path)

	default:
		return keyFromKeystore(cfg.KeystoreFile, cfg.KeystorePassword, path, prompt)
	}
}

func keyFromMnemonic(mnemonic string, path string) (*ecdsa.PrivateKey, error) {
	seedManager := seed.NewManager()
	defer seedManager.Clear()

	if err := seedManager.Initialize(mnemonic, ""); err != nil {
		return nil, errors.Wrap(err, "failed to initialize seed manager")
	}

	key, err := address.NewService().DerivePrivateKey(seedManager.GetSeed(), path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive signing key")
	}

	return key, nil
}

func keyFromKeystore(file string, password string, path string, prompt PasswordPrompt) (*ecdsa.PrivateKey, error) {
	ks, err := keystore.ReadFile(file)
	if err != nil {
		return nil, err
	}

	if password == "" {
		if prompt == nil {
			return nil, errors.Errorf("keystore %s is locked and no password was configured", file)
		}

		log.Info().Str("file", file).Msg("Keystore found. Please enter password to unlock...")
		password, err = prompt("Enter keystore password: ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to read password")
		}
	}

	mnemonic, err := keystore.Decrypt(ks, password)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decrypt keystore %s", file)
	}

	key, err := keyFromMnemonic(mnemonic, path)
	if err != nil {
		return nil, err
	}

	if ks.Address != "" && common.HexToAddress(ks.Address) != crypto.PubkeyToAddress(key.PublicKey) {
		return nil, errors.Wrapf(ErrAddressMismatch, "keystore %s records %s, path %s derives %s",
			file, ks.Address, path, crypto.PubkeyToAddress(key.PublicKey).Hex())
	}

	return key, nil
}

// CreateKeystore encrypts mnemonic into a new keystore file at path and
// returns the account at derivationPath, which is recorded in the file.
func CreateKeystore(path string, mnemonic string, password string, derivationPath string, params keystore.ScryptParams) (common.Address, error) {
	if len(password) < MinPasswordLength {
		return common.Address{}, errors.Errorf("password must be at least %d characters", MinPasswordLength)
	}

	mnemonic = seed.NormalizeMnemonic(mnemonic)

	key, err := keyFromMnemonic(mnemonic, derivationPath)
	if err != nil {
		return common.Address{}, err
	}
	addr := crypto.PubkeyToAddress(key.PublicKey)

	ks, err := keystore.Encrypt(mnemonic, password, params)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "failed to encrypt mnemonic")
	}
	ks.Address = addr.Hex()

	if err := keystore.WriteFile(path, ks); err != nil {
		return common.Address{}, err
	}

	return addr, nil
}

// PromptPassword reads a password from the terminal without echoing it.
//
//nolint:forbidigo // password input requires direct terminal I/O
func PromptPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)

	passwordBytes, err := term.ReadPassword(fd)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password from terminal")
	}

	fmt.Fprintln(os.Stderr)

	return string(passwordBytes), nil
}

// PromptNewPassword asks for a password twice and checks that both match.
func PromptNewPassword(prompt PasswordPrompt) (string, error) {
	password, err := prompt(fmt.Sprintf("Enter password for keystore (min %d characters): ", MinPasswordLength))
	if err != nil {
		return "", err
	}

	if len(password) < MinPasswordLength {
		return "", errors.Errorf("password must be at least %d characters", MinPasswordLength)
	}

	confirm, err := prompt("Confirm password: ")
	if err != nil {
		return "", err
	}

	if password != confirm {
		return "", errors.New("passwords do not match")
	}

	return password, nil
}
