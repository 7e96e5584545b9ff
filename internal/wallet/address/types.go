package address

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultPath is the first external account of the Ethereum BIP-44 tree.
const DefaultPath = "m/44'/60'/0'/0/0"

// Service derives EVM accounts from a BIP-39 seed.
type Service interface {
	// DeriveAddress derives the account address at the given BIP-44 path.
	DeriveAddress(seed []byte, path string) (common.Address, error)

	// DerivePrivateKey derives the account key at the given BIP-44 path.
	// Callers own the returned key and should not keep it longer than needed.
	DerivePrivateKey(seed []byte, path string) (*ecdsa.PrivateKey, error)
}
