package brc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReading(t *testing.T) {
	var tests = []struct {
		in   string
		want Reading
	}{
		{"0.0", 0},
		{"1.2", 12},
		{"12.3", 123},
		{"99.9", 999},
		{"-0.5", -5},
		{"-1.2", -12},
		{"-45.6", -456},
		{"-99.9", -999},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseReading([]byte(tt.in)), tt.in)
	}
}

func TestFormatReading(t *testing.T) {
	var tests = []struct {
		in   Reading
		want string
	}{
		{0, "0.0"},
		{5, "0.5"},
		{-5, "-0.5"},
		{123, "12.3"},
		{-123, "-12.3"},
		{-999, "-99.9"},
		{1000, "100.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.String())
	}
}

func TestReadingRoundTrip(t *testing.T) {
	for r := Reading(-999); r <= 999; r++ {
		s := AppendReading(nil, r)
		assert.Equal(t, r, ParseReading(s))
		assert.Equal(t, string(s), ParseReading(s).String())
	}
}

func BenchmarkParseReading(b *testing.B) {
	vals := [][]byte{[]byte("-12.3"), []byte("4.5"), []byte("99.9"), []byte("-0.1")}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		ParseReading(vals[n%len(vals)])
	}
}
