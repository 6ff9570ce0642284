package brc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	key, value string
}

func tokenize(t *testing.T, in string) ([]record, error) {
	t.Helper()
	var recs []record
	tok := NewTokenizer([]byte(in))
	for tok.Next() {
		recs = append(recs, record{string(tok.Key()), string(tok.Value())})
	}
	return recs, tok.Err()
}

func TestTokenizer(t *testing.T) {
	var tests = []struct {
		name string
		in   string
		want []record
	}{
		{"empty", "", nil},
		{"single", "Hamburg;12.3\n", []record{{"Hamburg", "12.3"}}},
		{"no trailing newline", "A;1.0\nB;-2.5", []record{{"A", "1.0"}, {"B", "-2.5"}}},
		{"utf-8 keys", "São Paulo;25.1\nİzmir;-3.0\n", []record{{"São Paulo", "25.1"}, {"İzmir", "-3.0"}}},
		{"empty key", ";1.0\n", []record{{"", "1.0"}}},
	}

	for _, tt := range tests {
		recs, err := tokenize(t, tt.in)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, recs, tt.name)
	}
}

func TestTokenizerMalformed(t *testing.T) {
	var tests = []struct {
		name string
		in   string
		good int
	}{
		{"no delimiter", "Hamburg 12.3\n", 0},
		{"delimiter on next line", "A;1.0\nnodelim\nB;2.0\n", 1},
		{"empty value", "A;\n", 0},
		{"short value", "A;1.\n", 0},
		{"blank line", "A;1.0\n\nB;2.0\n", 1},
		{"carriage return", "A;1.0\r\nB;2.0\r\n", 0},
		{"value too long", "A;1.0\nB;1234.5\n", 1},
		{"no fraction dot", "A;1234\n", 0},
		{"non-digit fraction", "A;1.x\n", 0},
		{"delimiter far from end", "A;1.0 trailing\n", 0},
	}

	for _, tt := range tests {
		recs, err := tokenize(t, tt.in)
		assert.ErrorIs(t, err, ErrMalformedRecord, tt.name)
		assert.Len(t, recs, tt.good, tt.name)
	}
}

func TestTokenizerBorrows(t *testing.T) {
	buf := []byte("Oslo;-4.2\n")
	tok := NewTokenizer(buf)
	require.True(t, tok.Next())

	buf[0] = 'X'
	assert.Equal(t, "Xslo", string(tok.Key()))
	assert.Equal(t, Reading(-42), tok.Reading())
	assert.False(t, tok.Next())
	assert.NoError(t, tok.Err())
}
