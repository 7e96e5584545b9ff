package keystore

import "github.com/pkg/errors"

var (
	// ErrInvalidPassword is returned when the MAC of a keystore does not match.
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnsupported     = errors.New("unsupported keystore")
	ErrExists          = errors.New("keystore file already exists")
)

const (
	version         = 3
	cipherAES128CTR = "aes-128-ctr"
	kdfScrypt       = "scrypt"
)

// JSON is a version 3 keystore whose ciphertext is a BIP-39 mnemonic
// instead of a raw private key. Address is informational and unencrypted.
type JSON struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	Address string `json:"address,omitempty"`
	Crypto  struct {
		Ciphertext   string `json:"ciphertext"`
		CipherParams struct {
			IV string `json:"iv"`
		} `json:"cipherparams"`
		Cipher    string `json:"cipher"`
		KDF       string `json:"kdf"`
		KDFParams struct {
			DKLen int    `json:"dklen"`
			Salt  string `json:"salt"`
			N     int    `json:"n"`
			R     int    `json:"r"`
			P     int    `json:"p"`
		} `json:"kdfparams"`
		MAC string `json:"mac"`
	} `json:"crypto"`
}

// ScryptParams defines scrypt KDF parameters.
type ScryptParams struct {
	DKLen int
	N     int
	R     int
	P     int
}

// StandardScryptParams matches the default cost of Ethereum keystores.
func StandardScryptParams() ScryptParams {
	return ScryptParams{DKLen: 32, N: 1 << 18, R: 8, P: 1}
}

// LightScryptParams trades security for speed, for tests and throwaway keys.
func LightScryptParams() ScryptParams {
	return ScryptParams{DKLen: 32, N: 1 << 12, R: 8, P: 1}
}
