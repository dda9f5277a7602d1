package main

import (
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/integrii/flaggy"

	"github.com/swifmaneum/cellpylib/internal/config"
	"github.com/swifmaneum/cellpylib/internal/sweep"
)

func main() {
	configPath := ""
	output := "sweep.csv"
	workers := runtime.NumCPU()
	seed := int64(-1)
	jsonLogs := false

	flaggy.SetName("lambda-sweep")
	flaggy.SetDescription("Evolve random rule tables across a lambda range and record complexity measures")
	flaggy.String(&configPath, "c", "config", "YAML experiment config (embedded defaults otherwise)")
	flaggy.String(&output, "o", "output", "CSV file for the result rows")
	flaggy.Int(&workers, "w", "workers", "number of worker goroutines")
	flaggy.Int64(&seed, "s", "seed", "override the configured sweep seed (-1 keeps it)")
	flaggy.Bool(&jsonLogs, "j", "json", "log as JSON instead of text")
	flaggy.Parse()

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, nil)
	if jsonLogs {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	log := slog.New(handler)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if seed >= 0 {
		cfg.Sweep.Seed = seed
	}

	start := time.Now()
	results, err := sweep.New(cfg, workers, log).Run()
	if err != nil {
		log.Error("sweep failed", "error", err)
		os.Exit(1)
	}

	if err := sweep.WriteCSV(output, results); err != nil {
		log.Error("failed to write results", "error", err)
		os.Exit(1)
	}

	log.Info("sweep finished",
		"rows", len(results),
		"output", output,
		"elapsed", time.Since(start).Round(time.Millisecond).String())
}
