package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fatih/color"
	"github.com/jamiealquiza/tachymeter"
	"github.com/rodaine/table"

	"onebrc/brc"
)

var (
	filePath string
	runs     int
	warmup   int
	workers  string
)

func init() {
	flag.StringVar(&filePath, "filePath", "data/measurements.txt", "measurements file")
	flag.IntVar(&runs, "runs", 5, "timed runs per worker count")
	flag.IntVar(&warmup, "warmup", 1, "untimed runs before measuring")
	flag.StringVar(&workers, "workers", "1,2,4,8", "comma separated worker counts")
	flag.Parse()
}

func main() {
	counts, err := parseCounts(workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	in, err := brc.Load(filePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer in.Close()

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()
	tbl := table.
		New("Workers", "Runs", "Min", "P50", "P99", "Max", "MB/s", "Digest").
		WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(columnFmt)

	var want uint64
	for i, n := range counts {
		res, err := bench(in.Data, n)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		if i == 0 {
			want = res.digest
		}

		digest := fmt.Sprintf("%016x", res.digest)
		if !res.stable || res.digest != want {
			digest = color.RedString("MISMATCH")
		}

		m := res.tach.Calc()
		tbl.AddRow(
			n,
			m.Count,
			m.Time.Min,
			m.Time.P50,
			m.Time.P99,
			m.Time.Max,
			fmt.Sprintf("%.1f", float64(len(in.Data))/m.Time.P50.Seconds()/1e6),
			digest,
		)
	}
	tbl.Print()
}

type result struct {
	tach   *tachymeter.Tachymeter
	digest uint64
	stable bool
}

// bench runs the pipeline repeatedly and checks that every run produced the
// same report.
func bench(data []byte, workers int) (result, error) {
	e := brc.NewEngine(brc.WithWorkers(workers))
	res := result{
		tach:   tachymeter.New(&tachymeter.Config{Size: runs}),
		stable: true,
	}

	for i := range warmup + runs {
		start := time.Now()
		out, err := e.Process(data)
		if err != nil {
			return res, err
		}
		elapsed := time.Since(start)

		d := xxhash.Sum64(out)
		switch {
		case i == 0:
			res.digest = d
		case d != res.digest:
			res.stable = false
		}
		if i >= warmup {
			res.tach.AddTime(elapsed)
		}
	}
	return res, nil
}

func parseCounts(s string) ([]int, error) {
	var counts []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid worker count %q", f)
		}
		counts = append(counts, n)
	}
	return counts, nil
}
