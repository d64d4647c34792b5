package circuit

import "strconv"

// Config controls a Generator.
type Config struct {
	Width  int
	Height int

	Seed int64

	Mode Mode
	// Bias overrides the independent-sides threshold; samples at or above
	// it become Present. A negative value (ModeBias) uses the mode's preset.
	// Ignored by ModeConnected.
	Bias float64
	// StepsPerTick is how many cells Step places.
	StepsPerTick int
}

// ModeBias is the Config.Bias value that defers to Mode.Bias.
const ModeBias = -1.0

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        32,
		Height:       24,
		Seed:         1337,
		Mode:         ModeBalanced,
		Bias:         ModeBias,
		StepsPerTick: 1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults. Without a bias key
// the mode's preset applies.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		if parsed, err := ParseMode(v); err == nil {
			c.Mode = parsed
		}
	}
	if v, ok := cfg["bias"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Bias = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.StepsPerTick = parsed
		}
	}
	return c
}

// HasBias reports whether Bias overrides the mode's preset.
func (c Config) HasBias() bool { return c.Bias >= 0 }

// EffectiveBias returns the threshold collapse will use.
func (c Config) EffectiveBias() float64 {
	if c.HasBias() {
		return c.Bias
	}
	return c.Mode.Bias()
}

// CollapseOptions returns the collapse options implied by the config.
func (c Config) CollapseOptions() []Option {
	opts := []Option{WithMode(c.Mode)}
	if c.HasBias() {
		opts = append(opts, WithBias(c.Bias))
	}
	return opts
}
