package update

import (
	"os"
	"strconv"
	"strings"
)

// RuntimeConfig carries the knobs main resolves before the program starts.
type RuntimeConfig struct {
	// HandoffToken is a credential passed on the command line, typically
	// pasted from a browser redirect. It overrides any stored session.
	HandoffToken string
	// OAuthPort is the localhost port the one-shot callback listener binds.
	OAuthPort int
	// OAuthStartURL builds the provider URL for a given redirect address.
	OAuthStartURL func(redirect string) string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		OAuthPort: 8377,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("BRAINBOX_TOKEN")); v != "" {
		cfg.HandoffToken = v
	}
	if v, ok := getEnvInt("BRAINBOX_OAUTH_PORT"); ok && v > 0 {
		cfg.OAuthPort = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
