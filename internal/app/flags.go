package app

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"strconv"
)

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Mode    string
	Bias    float64
	Steps   int
	Scale   int
	TPS     int
	Seed    int64
	Verbose bool
	LogPath string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "circuit", Width: 32, Height: 24, Mode: "balanced", Bias: -1, Steps: 1, Scale: 24, TPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "generator to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Mode, "mode", c.Mode, "collapse mode: balanced, biased, connected (or 1-3)")
	fs.Float64Var(&c.Bias, "bias", c.Bias, "independent-sides bias in [0,1]; negative uses the mode default")
	fs.IntVar(&c.Steps, "steps", c.Steps, "cells placed per tick")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generator reset")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log generator events")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "write generator logs to this file (implies -v)")
}

// LogDestination returns where logs should go, or "" when logging is off.
// A set LogPath wins; otherwise -v falls back to fallback, where "-" means
// stderr.
func (c *Config) LogDestination(fallback string) string {
	if c.LogPath != "" {
		return c.LogPath
	}
	if c.Verbose {
		return fallback
	}
	return ""
}

// SimOptions converts the flags into the key/value map generator factories
// accept.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"mode":  c.Mode,
		"steps": strconv.Itoa(c.Steps),
	}
	if c.Bias >= 0 {
		opts["bias"] = strconv.FormatFloat(c.Bias, 'f', -1, 64)
	}
	return opts
}

// OpenLogger builds a debug-level text logger for LogDestination(fallback).
// It returns a nil logger when logging is off. The close func is never nil.
func (c *Config) OpenLogger(fallback string) (*slog.Logger, func() error, error) {
	nop := func() error { return nil }
	var (
		w     io.Writer
		closer = nop
	)
	switch path := c.LogDestination(fallback); path {
	case "":
		return nil, nop, nil
	case "-":
		w = os.Stderr
	default:
		f, err := os.Create(path)
		if err != nil {
			return nil, nop, err
		}
		w, closer = f, f.Close
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})), closer, nil
}
