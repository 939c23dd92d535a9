package config

import (
	"fmt"
	"os"
	"strconv"
)

const EnvBatchParallelism = "RADAR_ANALYSIS_BATCH_PARALLELISM"

// AnalysisConfig holds orchestration tuning parameters.
type AnalysisConfig struct {
	BatchParallelism int `toml:"batch_parallelism"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AnalysisConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AnalysisConfig) Merge(overlay *AnalysisConfig) {
	if overlay.BatchParallelism != 0 {
		c.BatchParallelism = overlay.BatchParallelism
	}
}

func (c *AnalysisConfig) loadDefaults() {
	if c.BatchParallelism == 0 {
		c.BatchParallelism = 3
	}
}

func (c *AnalysisConfig) loadEnv() {
	if v := os.Getenv(EnvBatchParallelism); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.BatchParallelism = n
		}
	}
}

func (c *AnalysisConfig) validate() error {
	if c.BatchParallelism < 1 {
		return fmt.Errorf("batch_parallelism must be positive")
	}
	return nil
}
