// Command qlattice runs a spin-1/2 lattice simulation and streams the
// per-step magnetization to the console and, optionally, a CSV file.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/velikhov/qkit/spinlat"
)

func main() {
	var (
		size     = flag.Int("size", 8, "cubic lattice side length")
		steps    = flag.Int("steps", 100, "number of time steps")
		dt       = flag.Float64("dt", 0.05, "time step")
		coupling = flag.Float64("j", 1.0, "exchange coupling J")
		bz       = flag.Float64("bz", 0.5, "external field z component")
		temp     = flag.Float64("temp", 0.0, "thermal noise scale")
		seed     = flag.Int64("seed", 1, "RNG seed")
		workers  = flag.Int("workers", 1, "worker goroutines per step")
		csvPath  = flag.String("csv", "", "write per-step magnetization to this CSV file")
		level    = flag.String("level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	log := newLogger(*level)

	if err := run(log, config{
		size:     *size,
		steps:    *steps,
		dt:       *dt,
		coupling: *coupling,
		bz:       *bz,
		temp:     *temp,
		seed:     *seed,
		workers:  *workers,
		csvPath:  *csvPath,
	}); err != nil {
		log.Error().Err(err).Msg("simulation failed")
		os.Exit(1)
	}
}

type config struct {
	size     int
	steps    int
	dt       float64
	coupling float64
	bz       float64
	temp     float64
	seed     int64
	workers  int
	csvPath  string
}

// newLogger builds the console logger all components derive from.
func newLogger(level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	switch level {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).Level(lvl).With().Timestamp().Logger()
}

func run(log zerolog.Logger, cfg config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	simLog := log.With().Str("component", "spinlat").Logger()
	simLog.Info().
		Int("size", cfg.size).
		Int("steps", cfg.steps).
		Float64("dt", cfg.dt).
		Float64("j", cfg.coupling).
		Float64("bz", cfg.bz).
		Float64("temp", cfg.temp).
		Int64("seed", cfg.seed).
		Int("workers", cfg.workers).
		Msg("starting simulation")

	sim, err := spinlat.New(
		spinlat.WithExtents(cfg.size, cfg.size, cfg.size),
		spinlat.WithDt(cfg.dt),
		spinlat.WithCoupling(cfg.coupling),
		spinlat.WithField(0, 0, cfg.bz),
		spinlat.WithTemperature(cfg.temp),
		spinlat.WithSeed(cfg.seed),
		spinlat.WithWorkers(cfg.workers),
	)
	if err != nil {
		return fmt.Errorf("build lattice: %w", err)
	}

	var writer *csv.Writer
	if cfg.csvPath != "" {
		f, ferr := os.Create(cfg.csvPath)
		if ferr != nil {
			return fmt.Errorf("create csv: %w", ferr)
		}
		defer f.Close()
		writer = csv.NewWriter(f)
		defer writer.Flush()
		if err = writer.Write([]string{"step", "mx", "my", "mz"}); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
	}

	repLog := log.With().Str("component", "reporter").Logger()
	reporter := func(step int, m spinlat.Magnetization) {
		repLog.Debug().
			Int("step", step).
			Float64("mx", m[0]).
			Float64("my", m[1]).
			Float64("mz", m[2]).
			Msg("magnetization")
		if writer != nil {
			_ = writer.Write([]string{
				strconv.Itoa(step),
				strconv.FormatFloat(m[0], 'g', -1, 64),
				strconv.FormatFloat(m[1], 'g', -1, 64),
				strconv.FormatFloat(m[2], 'g', -1, 64),
			})
		}
	}

	start := time.Now()
	if err = sim.Run(ctx, cfg.steps, reporter); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	final, err := sim.Magnetization()
	if err != nil {
		return fmt.Errorf("final observables: %w", err)
	}
	purity, err := sim.PurityMean()
	if err != nil {
		return fmt.Errorf("final observables: %w", err)
	}

	simLog.Info().
		Dur("elapsed", time.Since(start)).
		Float64("mx", final[0]).
		Float64("my", final[1]).
		Float64("mz", final[2]).
		Float64("purity", purity).
		Msg("simulation complete")

	if writer != nil {
		writer.Flush()
		if err = writer.Error(); err != nil {
			return fmt.Errorf("flush csv: %w", err)
		}
	}

	return nil
}
