package brc

// Aggregate folds every record of chunk into a fresh Table. The chunk must hold
// whole records only, as produced by Segment.
func Aggregate(chunk []byte) (*Table, error) {
	if len(chunk) == 0 {
		return newTableSize(1), nil
	}

	t := NewTable()
	tok := NewTokenizer(chunk)
	for tok.Next() {
		t.Add(tok.Key(), tok.Reading())
	}
	if err := tok.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
