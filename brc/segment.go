package brc

import "bytes"

// Range is a half-open byte range [Start, End) of the input.
type Range struct {
	Start, End int
}

func (r Range) Len() int {
	return r.End - r.Start
}

// Segment splits buf into workers contiguous ranges that start and end on
// line boundaries. Evenly spaced cut points are pushed forward past the next
// newline, so ranges can be uneven and some can be empty. An empty buffer has
// no ranges.
func Segment(buf []byte, workers int) []Range {
	size := len(buf)
	if size == 0 {
		return nil
	}
	workers = max(workers, 1)

	ranges := make([]Range, workers)
	start := 0
	for i := range workers {
		end := size
		if i < workers-1 {
			end = lineStart(buf, max(int(int64(i+1)*int64(size)/int64(workers)), start))
		}
		ranges[i] = Range{Start: start, End: end}
		start = end
	}
	return ranges
}

// lineStart returns the first offset at or after pos that begins a line.
func lineStart(buf []byte, pos int) int {
	if pos == 0 || pos >= len(buf) || buf[pos-1] == '\n' {
		return pos
	}
	idx := bytes.IndexByte(buf[pos:], '\n')
	if idx < 0 {
		return len(buf)
	}
	return pos + idx + 1
}
