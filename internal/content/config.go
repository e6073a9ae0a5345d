package content

import (
	"os"
	"strconv"
	"time"
)

// Config controls synthesis and verification behavior.
type Config struct {
	// MaxRetries is the number of re-synthesis attempts after the first
	// failed verification. The total synthesis budget is MaxRetries+1.
	MaxRetries int

	// SynthesisTimeout bounds a single synthesis call.
	SynthesisTimeout time.Duration

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxRetries:       2,
		SynthesisTimeout: 30 * time.Second,
		MaxTokens:        768,
		Temperature:      0.7,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CODETUTOR_CONTENT_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("CODETUTOR_CONTENT_SYNTHESIS_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SynthesisTimeout = d
		}
	}

	return cfg
}
