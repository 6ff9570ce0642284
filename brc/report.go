package brc

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrInvalidKey = errors.New("station name is not valid utf-8")

type Summary struct {
	Station string
	Min     Reading
	Mean    Reading
	Max     Reading
}

// Summarize sorts the stations by byte value and computes their means.
func Summarize(final map[string]Stats) ([]Summary, error) {
	stations := maps.Keys(final)
	slices.Sort(stations)

	summaries := make([]Summary, 0, len(stations))
	for _, station := range stations {
		if !utf8.ValidString(station) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, station)
		}
		s := final[station]
		summaries = append(summaries, Summary{
			Station: station,
			Min:     s.Min,
			Mean:    s.Mean(),
			Max:     s.Max,
		})
	}
	return summaries, nil
}

// Report renders summaries as {a=min/mean/max,b=...} followed by a newline.
func Report(summaries []Summary) []byte {
	buf := make([]byte, 0, 2+len(summaries)*32)
	buf = append(buf, '{')
	for i, s := range summaries {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, s.Station...)
		buf = append(buf, '=')
		buf = AppendReading(buf, s.Min)
		buf = append(buf, '/')
		buf = AppendReading(buf, s.Mean)
		buf = append(buf, '/')
		buf = AppendReading(buf, s.Max)
	}
	return append(buf, '}', '\n')
}
