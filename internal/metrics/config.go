package metrics

import (
	"os"
	"strconv"
)

// Config holds the analytics thresholds.
type Config struct {
	// HighShareThreshold is the active-student share above which a
	// misconception cluster is classified high severity.
	HighShareThreshold float64

	// MediumShareThreshold is the share above which a cluster is at
	// least medium severity.
	MediumShareThreshold float64

	// ReteachEscalation promotes a cluster to high severity when the
	// tag has driven at least this many RETEACH cycles per affected
	// student, regardless of share.
	ReteachEscalation float64

	// StrugglingThreshold is the average mastery below which a student
	// counts as struggling.
	StrugglingThreshold float64

	// GroupSessionSize is the cluster size at which the recommended
	// intervention becomes a full group session.
	GroupSessionSize int

	// MaxClusters and MaxPriority bound the dashboard lists.
	MaxClusters int
	MaxPriority int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		HighShareThreshold:   0.30,
		MediumShareThreshold: 0.15,
		ReteachEscalation:    2,
		StrugglingThreshold:  0.4,
		GroupSessionSize:     5,
		MaxClusters:          10,
		MaxPriority:          20,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CODETUTOR_CLUSTER_HIGH_SHARE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f < 1 {
			cfg.HighShareThreshold = f
		}
	}
	if v := os.Getenv("CODETUTOR_CLUSTER_MEDIUM_SHARE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f < 1 {
			cfg.MediumShareThreshold = f
		}
	}
	if v := os.Getenv("CODETUTOR_STRUGGLING_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f < 1 {
			cfg.StrugglingThreshold = f
		}
	}

	return cfg
}
