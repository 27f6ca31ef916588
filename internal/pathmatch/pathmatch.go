// Package pathmatch implements the robots.txt pattern grammar: literal
// bytes, `*` wildcards, a trailing `$` anchor, and percent-decode-on-compare
// semantics between a pattern and a request path.
package pathmatch

import "sort"

// NoMatch is returned by Match when the pattern does not match the path.
const NoMatch = -1

// Match reports whether pattern matches path, returning the number of
// pattern bytes consumed (counting a `%HH` triplet as three) as a priority
// on success, or NoMatch (-1) on failure. An empty pattern always matches
// at priority 0.
//
// The algorithm maintains the ascending set of path positions consistent
// with the pattern bytes consumed so far, expanding on `*` and narrowing on
// literal or percent-decoded bytes.
func Match(path, pattern []byte) int {
	positions := []int{0}
	pi := 0
	for pi < len(pattern) {
		ch := pattern[pi]
		switch {
		case ch == '*':
			lo := positions[0]
			positions = positions[:0]
			for p := lo; p <= len(path); p++ {
				positions = append(positions, p)
			}
			pi++
		case ch == '$' && pi == len(pattern)-1:
			if positions[len(positions)-1] == len(path) {
				return pi + 1
			}
			return NoMatch
		default:
			pc, patAdvance := decodeAt(pattern, pi)
			next := positions[:0]
			for _, p := range positions {
				dc, pathAdvance := decodeAt(path, p)
				if p < len(path) && dc == pc {
					next = append(next, p+pathAdvance)
				}
			}
			if len(next) == 0 {
				return NoMatch
			}
			sort.Ints(next)
			positions = dedupe(next)
			pi += patAdvance
		}
	}
	return len(pattern)
}

// decodeAt reads one logical byte at position i: a `%HH` triplet decodes to
// a single byte and advances 3, anything else is taken literally and
// advances 1. If i is at or past len(b), it reports 0 with an advance of 1;
// since %00 also decodes to 0, callers must guard with a bounds check
// before trusting the comparison.
func decodeAt(b []byte, i int) (c byte, advance int) {
	if i >= len(b) {
		return 0, 1
	}
	if b[i] == '%' && i+2 < len(b) && isHex(b[i+1]) && isHex(b[i+2]) {
		return hexVal(b[i+1])<<4 | hexVal(b[i+2]), 3
	}
	return b[i], 1
}

func dedupe(sorted []int) []int {
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
