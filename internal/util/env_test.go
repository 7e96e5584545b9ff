package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github/chapool/nft-faucet/internal/util"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("FAUCET_TEST_STRING", "monad")
	assert.Equal(t, "monad", util.GetEnv("FAUCET_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", util.GetEnv("FAUCET_TEST_STRING_UNSET", "fallback"))
}

func TestGetEnvEnum(t *testing.T) {
	t.Setenv("FAUCET_TEST_ENUM", "legacy")
	assert.Equal(t, "legacy", util.GetEnvEnum("FAUCET_TEST_ENUM", "auto", []string{"auto", "legacy"}))

	t.Setenv("FAUCET_TEST_ENUM", "bogus")
	assert.Equal(t, "auto", util.GetEnvEnum("FAUCET_TEST_ENUM", "auto", []string{"auto", "legacy"}))

	assert.Panics(t, func() {
		util.GetEnvEnum("FAUCET_TEST_ENUM", "nope", []string{"auto"})
	})
}

func TestGetEnvAsTypes(t *testing.T) {
	t.Setenv("FAUCET_TEST_INT", "42")
	t.Setenv("FAUCET_TEST_BOOL", "true")
	t.Setenv("FAUCET_TEST_DURATION", "90m")
	t.Setenv("FAUCET_TEST_ARR", "https://a.example, https://b.example,,")
	t.Setenv("FAUCET_TEST_BROKEN_INT", "4x2")

	assert.Equal(t, 42, util.GetEnvAsInt("FAUCET_TEST_INT", 1))
	assert.Equal(t, 1, util.GetEnvAsInt("FAUCET_TEST_BROKEN_INT", 1))
	assert.Equal(t, uint64(42), util.GetEnvAsUint64("FAUCET_TEST_INT", 1))
	assert.True(t, util.GetEnvAsBool("FAUCET_TEST_BOOL", false))
	assert.Equal(t, 90*time.Minute, util.GetEnvAsDuration("FAUCET_TEST_DURATION", time.Hour))
	assert.Equal(t, time.Hour, util.GetEnvAsDuration("FAUCET_TEST_DURATION_UNSET", time.Hour))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, util.GetEnvAsStringArr("FAUCET_TEST_ARR", nil))
	assert.Equal(t, []string{"x"}, util.GetEnvAsStringArr("FAUCET_TEST_ARR_UNSET", []string{"x"}))
}
