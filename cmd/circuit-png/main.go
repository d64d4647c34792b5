// Command circuit-png fills a grid and writes it as a PNG image.
package main

import (
	"flag"
	"log"
	"os"

	"circuitgen/internal/app"
	"circuitgen/internal/circuit"
	"circuitgen/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "circuit.png", "output file")
	debug := flag.Bool("debug", false, "mark every side with its raw availability")
	bg := flag.String("bg", render.DefaultPNGOptions().Background, "background colour")
	fg := flag.String("fg", render.DefaultPNGOptions().Circuit, "cable colour")
	flag.Parse()

	logger, closeLog, err := cfg.OpenLogger("-")
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()
	circuit.SetLogger(logger)

	gen := circuit.NewWithConfig(circuit.FromMap(cfg.SimOptions()))
	gen.Reset(cfg.Seed)
	placed := gen.Fill()

	painter := render.NewPNGPainter(render.PNGOptions{
		CellSize:   float64(cfg.Scale),
		Background: *bg,
		Circuit:    *fg,
		Debug:      *debug,
	})

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	size := gen.Size()
	if err := painter.WritePNG(f, gen.Grid(), size.W, size.H); err != nil {
		f.Close()
		log.Fatalf("render %s: %v", *out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	stats := gen.Stats()
	log.Printf("wrote %s: %d cells, %d mismatches, run %s", *out, placed, stats.Mismatches, gen.RunID())
}
