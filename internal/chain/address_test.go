package chain_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-faucet/internal/chain"
)

func TestParseAddress(t *testing.T) {
	want := common.HexToAddress("0xFc983B762D564dD6388983BB45D2E59C46805DB2")

	for _, in := range []string{
		"0xFc983B762D564dD6388983BB45D2E59C46805DB2",
		"0xfc983b762d564dd6388983bb45d2e59c46805db2",
		"0xFC983B762D564DD6388983BB45D2E59C46805DB2",
		"  0xfc983b762d564dd6388983bb45d2e59c46805db2 ",
	} {
		got, err := chain.ParseAddress(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
}

func TestParseAddressInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"0x",
		"fc983b762d564dd6388983bb45d2e59c46805db2",
		"0xfc983b762d564dd6388983bb45d2e59c46805db",
		"0xzz983b762d564dd6388983bb45d2e59c46805db2",
		// checksum broken by lowering the first letter
		"0xfc983B762D564dD6388983BB45D2E59C46805DB2",
	} {
		_, err := chain.ParseAddress(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, chain.ErrInvalidAddress, in)
	}
}
