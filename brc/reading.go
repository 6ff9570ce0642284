package brc

import "strconv"

// Reading is a temperature in tenths of a degree, so 12.3 is stored as 123.
type Reading int32

// ParseReading converts a numeral of the form [-]D[D].D into a Reading.
//
// The caller must hand it a well-formed numeral: no '+' sign, no exponent,
// exactly one fractional digit. Anything else yields an unspecified value.
func ParseReading(b []byte) Reading {
	var i int
	var negative bool
	if b[0] == '-' {
		negative = true
		i++
	}

	var v Reading
	for ; i < len(b); i++ {
		if b[i] == '.' {
			continue
		}
		v = v*10 + Reading(b[i]-'0')
	}

	if negative {
		return -v
	}
	return v
}

// AppendReading appends r formatted with exactly one fractional digit.
func AppendReading(dst []byte, r Reading) []byte {
	mag := int64(r)
	if mag < 0 {
		dst = append(dst, '-')
		mag = -mag
	}
	dst = strconv.AppendInt(dst, mag/10, 10)
	return append(dst, '.', byte('0'+mag%10))
}

func (r Reading) String() string {
	return string(AppendReading(make([]byte, 0, 8), r))
}
