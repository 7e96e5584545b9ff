package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ErrInvalidAddress is returned for identifiers that are not 20-byte hex
// addresses or carry a broken EIP-55 checksum.
var ErrInvalidAddress = errors.New("invalid address")

// ParseAddress validates s and returns the normalized address. Mixed-case
// input must carry a valid EIP-55 checksum; all-lower and all-upper hex are
// accepted as is.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return common.Address{}, errors.Wrapf(ErrInvalidAddress, "%q is missing the 0x prefix", s)
	}

	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Wrapf(ErrInvalidAddress, "%q is not a 20 byte hex address", s)
	}

	addr := common.HexToAddress(s)

	body := s[2:]
	if body != strings.ToLower(body) && body != strings.ToUpper(body) && addr.Hex()[2:] != body {
		return common.Address{}, errors.Wrapf(ErrInvalidAddress, "%q has an invalid checksum", s)
	}

	return addr, nil
}
