package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/olekukonko/tablewriter"

	"onebrc/brc"
)

const defaultPath = "data/measurements.txt"

var (
	numWorkers int
	profile    bool
	asTable    bool
	verbose    bool
)

func init() {
	flag.IntVar(&numWorkers, "workers", runtime.NumCPU(), "number of workers")
	flag.BoolVar(&profile, "profile", false, "write a cpu profile to cpu_profile.pprof")
	flag.BoolVar(&asTable, "table", false, "print results as a table")
	flag.BoolVar(&verbose, "v", false, "log progress to stderr")
	flag.Parse()
}

func main() {
	if profile {
		f, err := os.Create("cpu_profile.pprof")
		if err != nil {
			fmt.Fprintln(os.Stderr, "unable to create CPU profile:", err)
			os.Exit(1)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, "unable to start CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		// Deferred calls do not run after os.Exit.
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func run() error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	path := defaultPath
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	var in *brc.Input
	var err error
	if path == "-" {
		in, err = brc.ReadInput(os.Stdin)
	} else {
		in, err = brc.Load(path)
	}
	if err != nil {
		return err
	}
	defer in.Close()

	engine := brc.NewEngine(brc.WithWorkers(numWorkers), brc.WithLogger(logger))
	logger.Debug(
		"processing measurements",
		slog.String("path", path),
		slog.Int("bytes", len(in.Data)),
		slog.Int("workers", engine.Workers()),
	)
	summaries, err := engine.Summaries(in.Data)
	if err != nil {
		return fmt.Errorf("unable to process %s: %w", path, err)
	}

	if asTable {
		printTable(summaries)
		return nil
	}
	_, err = os.Stdout.Write(brc.Report(summaries))
	return err
}

func printTable(summaries []brc.Summary) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Station", "Min", "Mean", "Max"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, s := range summaries {
		table.Append([]string{s.Station, s.Min.String(), s.Mean.String(), s.Max.String()})
	}
	table.Render()
}
