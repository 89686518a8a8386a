package ligate

import (
	"fmt"

	"github.com/Mochibw/PrimerPioneer/internal/dna"
)

// Side names one terminus of a fragment when building end identifiers.
type Side string

const (
	// Side5 is the fragment's 5' end
	Side5 Side = "5"

	// Side3 is the fragment's 3' end
	Side3 Side = "3"
)

// EndID is the identifier under which a fragment end is marked
// dephosphorylated: "<fragment id>:5" or "<fragment id>:3".
func EndID(fragmentID string, side Side) string {
	return fmt.Sprintf("%s:%s", fragmentID, side)
}

// normalized returns an end's single-stranded sequence read 5'->3' along the
// joining direction. A 5'-overhang is stored in that orientation already; a
// 3'-overhang must be reverse-complemented to compare in the same frame.
func normalized(end dna.FragmentEnd) string {
	if end.Kind == dna.Kind3Overhang {
		return dna.ReverseComplement(end.Seq)
	}
	return end.Seq
}

// compatible reports whether an upstream fragment's 3' end can ligate to a
// downstream fragment's 5' end: both blunt, or the same overhang polarity
// with equal length and normalized sequences that are exact reverse
// complements.
//
// Earlier revisions of this logic accepted same-kind overhangs whose raw
// sequences were textually equal. The reverse-complement rule is the
// canonical one; see DESIGN.md.
func compatible(up3, down5 dna.FragmentEnd) bool {
	if up3.IsBlunt() || down5.IsBlunt() {
		return up3.IsBlunt() && down5.IsBlunt()
	}
	if up3.Kind != down5.Kind || up3.Length != down5.Length {
		return false
	}
	return normalized(up3) == dna.ReverseComplement(normalized(down5))
}

// EndRepair converts a fragment's sticky ends to blunt ones, as a
// single-strand nuclease treatment would: protruding bases are chewed back
// from the stored sequence, recessed ends are left as they are. A fragment
// that is already blunt on both ends is returned unchanged.
func EndRepair(frag dna.Fragment) (dna.Fragment, string) {
	if frag.Overhang5.IsBlunt() && frag.Overhang3.IsBlunt() {
		return frag, "fragment is already blunt on both ends; nothing to repair"
	}

	seq := frag.Seq
	if frag.Overhang5.Kind == dna.Kind5Overhang && len(seq) >= frag.Overhang5.Length {
		seq = seq[frag.Overhang5.Length:]
	}
	if frag.Overhang3.Kind == dna.Kind3Overhang && len(seq) >= frag.Overhang3.Length {
		seq = seq[:len(seq)-frag.Overhang3.Length]
	}

	repaired := frag
	repaired.ID = dna.NewID()
	repaired.Seq = seq
	repaired.Length = len(seq)
	repaired.Overhang5 = dna.Blunt()
	repaired.Overhang3 = dna.Blunt()

	return repaired, fmt.Sprintf(
		"end repair removed overhangs (5' %q, 3' %q); both ends are now blunt",
		frag.Overhang5.Seq, frag.Overhang3.Seq)
}
