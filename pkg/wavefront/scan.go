package wavefront

import (
	"bytes"
	"iter"
)

// Lines yields the newline-delimited records of text in order, together with
// their 1-based line numbers. The delimiter is excluded and nothing else is
// trimmed, so a CRLF file yields lines ending in '\r'. Content after the last
// '\n' is yielded as a final line; a trailing '\n' does not produce an empty
// extra line.
//
// Each call returns an independent sequence.
func Lines(text []byte) iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		rest := text
		for n := 1; len(rest) > 0; n++ {
			line := rest
			if i := bytes.IndexByte(rest, '\n'); i >= 0 {
				line, rest = rest[:i], rest[i+1:]
			} else {
				rest = nil
			}
			if !yield(n, line) {
				return
			}
		}
	}
}

// fields splits a raw line into whitespace-separated tokens after dropping a
// trailing '\r'. Comment lines and blank lines yield no fields.
func fields(line []byte) [][]byte {
	line = bytes.TrimSuffix(line, []byte{'\r'})
	f := bytes.Fields(line)
	if len(f) == 0 || f[0][0] == '#' {
		return nil
	}
	return f
}
