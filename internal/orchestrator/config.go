package orchestrator

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the decision policy thresholds. They are configuration,
// not constants, so experiments can tune them without code changes.
type Config struct {
	// AdvanceThreshold is the mastery score required to advance.
	AdvanceThreshold float64

	// ReteachThreshold is the mastery score below which an incorrect
	// attempt triggers remediation.
	ReteachThreshold float64

	// MinAttempts is the minimum attempts on a concept before ADVANCE.
	MinAttempts int

	// MaxAttempts caps attempts on a concept. Reaching it forces an
	// ADVANCE so no student loops indefinitely.
	MaxAttempts int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		AdvanceThreshold: 0.8,
		ReteachThreshold: 0.4,
		MinAttempts:      1,
		MaxAttempts:      5,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CODETUTOR_ADVANCE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= 1 {
			cfg.AdvanceThreshold = f
		}
	}
	if v := os.Getenv("CODETUTOR_RETEACH_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f < 1 {
			cfg.ReteachThreshold = f
		}
	}
	if v := os.Getenv("CODETUTOR_MIN_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MinAttempts = n
		}
	}
	if v := os.Getenv("CODETUTOR_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxAttempts = n
		}
	}

	return cfg
}

// Validate checks threshold consistency.
func (c Config) Validate() error {
	if c.ReteachThreshold >= c.AdvanceThreshold {
		return fmt.Errorf("reteach threshold %v must be below advance threshold %v",
			c.ReteachThreshold, c.AdvanceThreshold)
	}
	if c.MinAttempts > c.MaxAttempts {
		return fmt.Errorf("min attempts %d exceeds max attempts %d", c.MinAttempts, c.MaxAttempts)
	}
	return nil
}
