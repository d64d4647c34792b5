// Command circuit-tui grows a grid in the terminal using box-drawing glyphs.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"circuitgen/internal/app"
	"circuitgen/internal/circuit"
	"circuitgen/internal/core"
	"circuitgen/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width = 60
	cfg.Height = 20
	cfg.TPS = 60
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The terminal belongs to termui, so logs always go to a file.
	logger, closeLog, err := cfg.OpenLogger("circuit-tui.log")
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()
	circuit.SetLogger(logger)

	gen := circuit.NewWithConfig(circuit.FromMap(cfg.SimOptions()))
	seed := cfg.Seed
	gen.Reset(seed)

	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	defer ui.Close()

	size := gen.Size()
	board := widgets.NewParagraph()
	board.Title = " circuit "
	board.SetRect(0, 0, size.W+2, size.H+2)

	status := widgets.NewParagraph()
	status.Border = false
	status.SetRect(0, size.H+2, size.W+2, size.H+4)

	draw := func(paused bool) {
		board.Text = render.Text(gen.Cells(), size.W, size.H)
		state := "running"
		switch {
		case gen.Done():
			state = "done"
		case paused:
			state = "paused"
		}
		status.Text = fmt.Sprintf("seed %d  mode %s  placed %d  %s\nq quit  space pause  n step  r reset  s new seed",
			seed, gen.Config().Mode, gen.Grid().Len(), state)
		ui.Render(board, status)
	}

	pacer := core.NewFixedStep(cfg.TPS)
	ticker := time.NewTicker(pacer.Interval() / 2)
	defer ticker.Stop()

	paused := false
	events := ui.PollEvents()
	draw(paused)
	for {
		select {
		case e := <-events:
			switch e.ID {
			case "q", "<C-c>", "<Escape>":
				return
			case "<Space>":
				paused = !paused
			case "n":
				gen.PlaceNext()
			case "r":
				gen.Reset(seed)
			case "s":
				seed = time.Now().UnixNano()
				gen.Reset(seed)
			}
			draw(paused)
		case now := <-ticker.C:
			if paused || gen.Done() || !pacer.ShouldStep(now) {
				continue
			}
			gen.Step()
			draw(paused)
		}
	}
}
