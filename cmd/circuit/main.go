//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"circuitgen/internal/app"
	"circuitgen/internal/circuit"
	"circuitgen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, closeLog, err := cfg.OpenLogger("-")
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()
	circuit.SetLogger(logger)

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown generator %q (have %v)", cfg.Sim, core.Names())
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("circuitgen - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
