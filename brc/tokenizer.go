package brc

import (
	"bytes"
	"errors"
	"fmt"
)

var ErrMalformedRecord = errors.New("malformed record")

// Numerals run from "1.2" to "-12.3".
const (
	minValueLen = 3
	maxValueLen = 5
)

// Tokenizer walks a buffer of complete `key;value\n` records. Key and Value
// borrow from the buffer and are only valid until the next call to Next.
type Tokenizer struct {
	buf []byte
	pos int

	key   []byte
	value []byte
	err   error
}

func NewTokenizer(buf []byte) *Tokenizer {
	return &Tokenizer{buf: buf}
}

// Next advances to the next record. It returns false at the end of the buffer
// or on the first malformed record, in which case Err is non-nil.
func (t *Tokenizer) Next() bool {
	if t.err != nil || t.pos >= len(t.buf) {
		return false
	}

	rest := t.buf[t.pos:]
	end := bytes.IndexByte(rest, '\n')
	advance := end + 1
	if end < 0 {
		end = len(rest)
		advance = end
	}
	line := rest[:end]

	// The value is at most five bytes, so the delimiter is found faster
	// from the back of the line.
	semi := len(line) - 1
	stop := max(len(line)-maxValueLen-1, 0)
	for semi >= stop && line[semi] != ';' {
		semi--
	}
	if semi < stop || !plausibleValue(line[semi+1:]) {
		t.err = fmt.Errorf("%w at offset %d: %q", ErrMalformedRecord, t.pos, line)
		return false
	}

	t.key = line[:semi]
	t.value = line[semi+1:]
	t.pos += advance
	return true
}

// plausibleValue checks the numeral's length and its trailing ".D" only. The
// leading digits are left to ParseReading's precondition.
func plausibleValue(v []byte) bool {
	n := len(v)
	return n >= minValueLen && n <= maxValueLen && v[n-2] == '.' && v[n-1]-'0' <= 9
}

func (t *Tokenizer) Key() []byte {
	return t.key
}

func (t *Tokenizer) Value() []byte {
	return t.value
}

func (t *Tokenizer) Reading() Reading {
	return ParseReading(t.value)
}

func (t *Tokenizer) Err() error {
	return t.err
}
