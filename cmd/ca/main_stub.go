//go:build !ebiten

package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/swifmaneum/cellpylib/internal/app"
	"github.com/swifmaneum/cellpylib/internal/sim"
	"github.com/swifmaneum/cellpylib/internal/view"
)

// Without the ebiten build tag the viewer falls back to an ANSI console
// animation. Build with `-tags ebiten` for the windowed version.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := sim.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	s := factory(cfg.SimOpts())
	s.Reset(cfg.Seed)

	delay := time.Second / time.Duration(max(cfg.TPS, 1))
	view.NewConsole(os.Stdout, delay).Run(s, cfg.Steps)
}
