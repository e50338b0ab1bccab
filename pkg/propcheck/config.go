package propcheck

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"xnamath.theprimeagen.com/pkg/assert"
)

type Config struct {
	// Samples is the number of random inputs per property, and the length
	// of the batch used by the parallel check.
	Samples int
	Seed    int64
	// Workers bounds the goroutines of the sharded batch check.
	Workers   int
	Tolerance float64
}

func DefaultConfig() Config {
	return Config{
		Samples:   10_000,
		Seed:      69,
		Workers:   runtime.NumCPU(),
		Tolerance: 1e-9,
	}
}

func (c Config) Dump() string {
	return fmt.Sprintf("samples=%d seed=%d workers=%d tolerance=%g", c.Samples, c.Seed, c.Workers, c.Tolerance)
}

func readInt(key string, d int) int {
	vStr := os.Getenv(key)
	v, err := strconv.Atoi(vStr)
	assert.Assert(err == nil || len(vStr) == 0, "environment provided an invalid int", "key", key, "value", vStr)

	if err != nil {
		return d
	}

	return v
}

func readInt64(key string, d int64) int64 {
	vStr := os.Getenv(key)
	v, err := strconv.ParseInt(vStr, 10, 64)
	assert.Assert(err == nil || len(vStr) == 0, "environment provided an invalid int64", "key", key, "value", vStr)

	if err != nil {
		return d
	}

	return v
}

func readFloat(key string, d float64) float64 {
	vStr := os.Getenv(key)
	v, err := strconv.ParseFloat(vStr, 64)
	assert.Assert(err == nil || len(vStr) == 0, "environment provided an invalid float", "key", key, "value", vStr)

	if err != nil {
		return d
	}

	return v
}

// ConfigFromEnv reads PROPCHECK_SAMPLES, PROPCHECK_SEED, PROPCHECK_WORKERS
// and PROPCHECK_TOLERANCE, falling back to DefaultConfig for unset keys.
func ConfigFromEnv() Config {
	d := DefaultConfig()
	cfg := Config{
		Samples:   readInt("PROPCHECK_SAMPLES", d.Samples),
		Seed:      readInt64("PROPCHECK_SEED", d.Seed),
		Workers:   readInt("PROPCHECK_WORKERS", d.Workers),
		Tolerance: readFloat("PROPCHECK_TOLERANCE", d.Tolerance),
	}

	assert.Assert(cfg.Samples > 0, "PROPCHECK_SAMPLES must be positive", "samples", cfg.Samples)
	assert.Assert(cfg.Workers > 0, "PROPCHECK_WORKERS must be positive", "workers", cfg.Workers)
	assert.Assert(cfg.Tolerance >= 0, "PROPCHECK_TOLERANCE must not be negative", "tolerance", cfg.Tolerance)

	return cfg
}
