package address

import (
	"crypto/ecdsa"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
)

var ErrInvalidPath = errors.New("invalid derivation path")

type service struct{}

//nolint:ireturn
func NewService() Service {
	return &service{}
}

func (s *service) DeriveAddress(seed []byte, path string) (common.Address, error) {
	key, err := s.DerivePrivateKey(seed, path)
	if err != nil {
		return common.Address{}, err
	}

	return crypto.PubkeyToAddress(key.PublicKey), nil
}

func (s *service) DerivePrivateKey(seed []byte, path string) (*ecdsa.PrivateKey, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
	}

	raw := key.Key
	defer func() {
		for i := range raw {
			raw[i] = 0
		}
	}()

	privateKey, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert to ECDSA private key")
	}

	return privateKey, nil
}

// ParsePath parses a BIP-32 path such as "m/44'/60'/0'/0/0" into child
// indices, hardened segments offset by bip32.FirstHardenedChild.
func ParsePath(path string) ([]uint32, error) {
	segments := strings.Split(strings.TrimSpace(path), "/")
	if len(segments) < 2 || segments[0] != "m" {
		return nil, errors.Wrapf(ErrInvalidPath, "%q", path)
	}

	indices := make([]uint32, 0, len(segments)-1)
	for _, segment := range segments[1:] {
		hardened := strings.HasSuffix(segment, "'") || strings.HasSuffix(segment, "h")
		if hardened {
			segment = segment[:len(segment)-1]
		}

		index, err := strconv.ParseUint(segment, 10, 31)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidPath, "segment %q of %q", segment, path)
		}

		if hardened {
			index += uint64(bip32.FirstHardenedChild)
		}
		indices = append(indices, uint32(index))
	}

	return indices, nil
}
