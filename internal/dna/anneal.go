package dna

import (
	"fmt"
	"strings"
)

// AnnealOligos anneals two single-stranded oligos into a blunt
// double-stranded record. The oligos must be exact reverse complements; a
// partial match is a "no product" outcome, returned as a nil record plus a
// message carrying the complementarity percentage.
func AnnealOligos(oligo1, oligo2 string) (*SequenceRecord, string, error) {
	o1 := strings.ToUpper(strings.TrimSpace(oligo1))
	o2 := strings.ToUpper(strings.TrimSpace(oligo2))
	if o1 == "" || o2 == "" {
		return nil, "", fmt.Errorf("both oligo sequences are required")
	}

	if o1 != ReverseComplement(o2) {
		msg := fmt.Sprintf(
			"oligos are not fully complementary, no stable duplex formed (%.1f%% match)",
			complementarity(o1, o2))
		return nil, msg, nil
	}

	rec := &SequenceRecord{
		ID:       NewID(),
		Name:     "annealed oligo duplex",
		Seq:      o1,
		Length:   len(o1),
		Circular: false,
		Metadata: map[string]string{
			"oligo1": o1,
			"oligo2": o2,
			"type":   "double_stranded_oligo",
		},
	}
	return rec, "oligos annealed into a blunt double-stranded duplex", nil
}

// complementarity is the percent of positions where oligo1 matches the
// complement of oligo2, over the shorter of the two.
func complementarity(o1, o2 string) float64 {
	n := len(o1)
	if len(o2) < n {
		n = len(o2)
	}
	if n == 0 {
		return 0
	}

	matches := 0
	for i := 0; i < n; i++ {
		c, ok := complement[o2[i]]
		if !ok {
			c = 'N'
		}
		if o1[i] == c {
			matches++
		}
	}
	return float64(matches) / float64(n) * 100
}
