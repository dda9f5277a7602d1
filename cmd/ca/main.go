//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/swifmaneum/cellpylib/internal/app"
	"github.com/swifmaneum/cellpylib/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

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

	game := app.New(s, cfg.Scale, cfg.Seed)
	size := s.Size()

	ebiten.SetWindowTitle("cellpylib: " + s.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
