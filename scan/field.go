package scan

import "bytes"

// NextField splits off the first delimiter-separated field of rem.
//
// It returns the field and the remainder after the delimiter. When rem
// holds no delimiter the whole of rem is the field and rest is nil. Both
// return values alias rem; nothing is copied.
func NextField(rem []byte, delim byte) (field, rest []byte) {
	if p := bytes.IndexByte(rem, delim); p >= 0 {
		return rem[:p], rem[p+1:]
	}

	return rem, nil
}

// FieldAt returns the zero-based index-th field of line, slicing over the
// preceding fields without materializing them. It reports false when line
// has fewer than index+1 fields.
//
// The returned slice aliases line; nothing is copied.
func FieldAt(line []byte, delim byte, index int) ([]byte, bool) {
	rem := line
	for ; index > 0; index-- {
		p := bytes.IndexByte(rem, delim)
		if p < 0 {
			return nil, false
		}
		rem = rem[p+1:]
	}
	if p := bytes.IndexByte(rem, delim); p >= 0 {
		return rem[:p], true
	}

	return rem, true
}
