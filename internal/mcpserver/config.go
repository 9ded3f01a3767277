package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/oasnorm/fixer"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// CaseMode is the dedupe_enums comparison used when a call omits case_mode.
	CaseMode fixer.CaseMode

	// MaxNames caps the names a single property_names call may convert.
	MaxNames int

	// FixLimit is the default page size for reported fixes; MaxLimit caps
	// any caller-supplied limit.
	FixLimit int
	MaxLimit int

	// MaxInlineSize caps inline spec content in bytes.
	MaxInlineSize int64

	// AllowPrivateIPs disables the SSRF guard on URL inputs.
	AllowPrivateIPs bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASNORM_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CaseMode:        envCaseMode("OASNORM_CASE_MODE", fixer.CaseModeOrdinal),
		MaxNames:        envInt("OASNORM_MAX_NAMES", 1000),
		FixLimit:        envInt("OASNORM_FIX_LIMIT", 100),
		MaxLimit:        envInt("OASNORM_MAX_LIMIT", 1000),
		MaxInlineSize:   int64(envInt("OASNORM_MAX_INLINE_SIZE", 10*1024*1024)),
		AllowPrivateIPs: envBool("OASNORM_ALLOW_PRIVATE_IPS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envCaseMode(key string, fallback fixer.CaseMode) fixer.CaseMode {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	mode, err := fixer.ParseCaseMode(v)
	if err != nil {
		slog.Warn("invalid case mode env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return mode
}
