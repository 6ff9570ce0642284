package gen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/rand"

	"onebrc/brc"
)

const stdDev = 10.0

// Generator writes random measurements in the `station;temperature` format.
// Output is deterministic for a given seed and station list.
type Generator struct {
	rng      *rand.Rand
	stations []Station
}

func New(seed uint64, stations []Station) (*Generator, error) {
	if len(stations) == 0 {
		return nil, errors.New("at least one station is required")
	}
	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		stations: stations,
	}, nil
}

// Reading draws a temperature for s from a normal distribution around its
// mean, clamped to the range the record format can express.
func (g *Generator) Reading(s Station) brc.Reading {
	v := math.Round((s.Mean + g.rng.NormFloat64()*stdDev) * 10)
	return brc.Reading(min(max(v, -999), 999))
}

// Write emits rows records to w.
func (g *Generator) Write(w io.Writer, rows int) error {
	bw := bufio.NewWriterSize(w, 1<<20)
	line := make([]byte, 0, 128)

	for range rows {
		s := g.stations[g.rng.Intn(len(g.stations))]
		line = append(line[:0], s.Name...)
		line = append(line, ';')
		line = brc.AppendReading(line, g.Reading(s))
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("unable to write measurements: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("unable to flush measurements: %w", err)
	}
	return nil
}
