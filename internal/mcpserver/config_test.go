package mcpserver

import (
	"testing"

	"github.com/erraggy/oasnorm/fixer"
	"github.com/stretchr/testify/assert"
)

// clearOASNORMEnv clears all OASNORM_* env vars to isolate tests from the ambient environment.
func clearOASNORMEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASNORM_CASE_MODE", "OASNORM_MAX_NAMES", "OASNORM_FIX_LIMIT",
		"OASNORM_MAX_LIMIT", "OASNORM_MAX_INLINE_SIZE", "OASNORM_ALLOW_PRIVATE_IPS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOASNORMEnv(t)

	c := loadConfig()

	assert.Equal(t, fixer.CaseModeOrdinal, c.CaseMode)
	assert.Equal(t, 1000, c.MaxNames)
	assert.Equal(t, 100, c.FixLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.False(t, c.AllowPrivateIPs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOASNORMEnv(t)
	t.Setenv("OASNORM_CASE_MODE", "unicode")
	t.Setenv("OASNORM_MAX_NAMES", "5")
	t.Setenv("OASNORM_FIX_LIMIT", "20")
	t.Setenv("OASNORM_MAX_LIMIT", "50")
	t.Setenv("OASNORM_MAX_INLINE_SIZE", "2048")
	t.Setenv("OASNORM_ALLOW_PRIVATE_IPS", "true")

	c := loadConfig()

	assert.Equal(t, fixer.CaseModeUnicodeFold, c.CaseMode)
	assert.Equal(t, 5, c.MaxNames)
	assert.Equal(t, 20, c.FixLimit)
	assert.Equal(t, 50, c.MaxLimit)
	assert.Equal(t, int64(2048), c.MaxInlineSize)
	assert.True(t, c.AllowPrivateIPs)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearOASNORMEnv(t)
	t.Setenv("OASNORM_CASE_MODE", "shouty")
	t.Setenv("OASNORM_MAX_NAMES", "banana")
	t.Setenv("OASNORM_FIX_LIMIT", "-5")
	t.Setenv("OASNORM_ALLOW_PRIVATE_IPS", "maybe")

	c := loadConfig()

	assert.Equal(t, fixer.CaseModeOrdinal, c.CaseMode)
	assert.Equal(t, 1000, c.MaxNames)
	assert.Equal(t, 100, c.FixLimit)
	assert.False(t, c.AllowPrivateIPs)
}
