package diagnosis

import (
	"os"
	"strconv"
)

// Config holds diagnosis parameters.
type Config struct {
	// ConfidenceThreshold filters low-confidence signature matches.
	ConfidenceThreshold float64

	// TopK caps the number of tags returned, keeping downstream
	// remediation focused.
	TopK int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: 0.6,
		TopK:                1,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CODETUTOR_DIAGNOSIS_CONFIDENCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.ConfidenceThreshold = f
		}
	}
	if v := os.Getenv("CODETUTOR_DIAGNOSIS_TOP_K"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TopK = n
		}
	}

	return cfg
}
