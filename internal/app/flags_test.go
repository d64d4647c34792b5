package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBindAndSimOptions(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "10", "-mode", "connected", "-seed", "7", "-steps", "4"}); err != nil {
		t.Fatal(err)
	}

	want := map[string]string{"w": "10", "h": "24", "seed": "7", "mode": "connected", "steps": "4"}
	if diff := cmp.Diff(want, cfg.SimOptions()); diff != "" {
		t.Fatalf("SimOptions mismatch (-want +got):\n%s", diff)
	}

	if err := fs.Parse([]string{"-bias", "0.25"}); err != nil {
		t.Fatal(err)
	}
	if got := cfg.SimOptions()["bias"]; got != "0.25" {
		t.Fatalf("bias option = %q, want 0.25", got)
	}
}

func TestLogDestination(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "off", args: nil, want: ""},
		{name: "verbose uses fallback", args: []string{"-v"}, want: "fallback.log"},
		{name: "explicit path", args: []string{"-log", "run.log"}, want: "run.log"},
		{name: "explicit path with verbose", args: []string{"-v", "-log", "run.log"}, want: "run.log"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			cfg.Bind(fs)
			if err := fs.Parse(tc.args); err != nil {
				t.Fatal(err)
			}
			if got := cfg.LogDestination("fallback.log"); got != tc.want {
				t.Fatalf("LogDestination = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOpenLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.log")
	cfg := NewConfig()
	cfg.LogPath = path

	logger, closeLog, err := cfg.OpenLogger("-")
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("circuit saturated", "cells", 4)
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "cells=4") {
		t.Fatalf("log file missing record: %q", data)
	}
}

func TestOpenLoggerOff(t *testing.T) {
	logger, closeLog, err := NewConfig().OpenLogger("-")
	if err != nil || logger != nil {
		t.Fatalf("OpenLogger = %v, %v; want nil logger", logger, err)
	}
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}
}
