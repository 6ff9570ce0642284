package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"onebrc/gen"
)

var (
	rows     int
	stations int
	seed     uint64
	outPath  string
)

func init() {
	flag.IntVar(&rows, "n", 1_000_000, "number of records")
	flag.IntVar(&stations, "stations", len(gen.DefaultStations), "number of distinct stations")
	flag.Uint64Var(&seed, "seed", 42, "random seed")
	flag.StringVar(&outPath, "out", "data/measurements.txt", "output file, - for stdout")
	flag.Parse()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	g, err := gen.New(seed, gen.Stations(stations))
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "-" {
		out, err = os.Create(outPath)
		if err != nil {
			return fmt.Errorf("unable to create %s: %w", outPath, err)
		}
		defer out.Close()
	}

	t := time.Now()
	if err := g.Write(out, rows); err != nil {
		return err
	}
	if out != os.Stdout {
		if err := out.Close(); err != nil {
			return fmt.Errorf("unable to close %s: %w", outPath, err)
		}
	}
	slog.Info(
		"generated measurements",
		slog.String("out", outPath),
		slog.Int("rows", rows),
		slog.Int("stations", stations),
		slog.Duration("took", time.Since(t)),
	)
	return nil
}
