package dna

// Coordinate conventions shared by the engines:
//
// A match on the forward strand at 0-based [start, end) maps to 1-based
// inclusive (start+1, end). A match found in the reverse-complement string
// maps back onto the original sequence with ReverseMatchCoords. A "cut
// boundary" is an integer b in [0, L-1] meaning the molecule is nicked
// between base b+1 and base b+2 (1-based), with arithmetic taken modulo L
// for circular topologies.

// ForwardMatchCoords converts a 0-based half-open forward-strand match to
// 1-based inclusive coordinates.
func ForwardMatchCoords(start0, end0 int) (start, end int) {
	return start0 + 1, end0
}

// ReverseMatchCoords converts a 0-based half-open match found in the
// reverse-complement of a length-L sequence back to 1-based inclusive
// coordinates on the original sequence.
func ReverseMatchCoords(start0, end0, L int) (start, end int) {
	return L - end0 + 1, L - start0
}

// ClampRange swaps a reversed range and reports whether the result lies
// within [1, L]. Callers silently drop hits where ok is false; an
// out-of-bounds hit is a permissive no-op, not an error.
func ClampRange(start, end, L int) (s, e int, ok bool) {
	if start > end {
		start, end = end, start
	}
	if start < 1 || end > L {
		return start, end, false
	}
	return start, end, true
}

// Mod wraps an index into [0, L-1], handling negative values.
func Mod(n, L int) int {
	return ((n % L) + L) % L
}

// Substring returns the bases of the 0-based inclusive range a0..b0. For
// circular sequences a0 > b0 denotes a range that wraps across the origin.
func Substring(seq string, a0, b0 int, circular bool) string {
	if !circular || a0 <= b0 {
		return seq[a0 : b0+1]
	}
	return seq[a0:] + seq[:b0+1]
}
