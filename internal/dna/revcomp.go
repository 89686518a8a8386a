package dna

import "strings"

// complement maps each IUPAC nucleotide code to its complement. Unknown
// characters map to N.
var complement = map[byte]byte{
	'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'N': 'N',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W', 'K': 'M', 'M': 'K',
	'B': 'V', 'V': 'B', 'D': 'H', 'H': 'D',
}

// ReverseComplement returns the reverse complement of a sequence. It is a
// total involution over the IUPAC alphabet: ReverseComplement applied twice
// returns the input (after uppercasing).
func ReverseComplement(seq string) string {
	s := strings.ToUpper(seq)
	rc := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c, ok := complement[s[len(s)-1-i]]
		if !ok {
			c = 'N'
		}
		rc[i] = c
	}
	return string(rc)
}
