package ligate

import (
	"fmt"
	"strings"

	"github.com/Mochibw/PrimerPioneer/internal/dna"
)

// buildProduct assembles a circular record from fragments in cycle order.
//
// At each junction the shared overhang bases must appear once in the
// product: a 5'-overhang junction trims them from the start of the
// downstream fragment, a 3'-overhang junction trims them from the end of
// the upstream one. The closing junction (last fragment back to first) can
// trim the front of the first fragment, which shifts every feature offset
// assigned so far; all coordinates are normalized into [1, L] on the
// circular product at the end.
//
// ok is false when a fragment is shorter than the bases its junctions trim,
// which cannot form a sensible product.
func buildProduct(cycle []dna.Fragment) (dna.SequenceRecord, bool) {
	k := len(cycle)
	trimFront := make([]int, k)
	trimBack := make([]int, k)

	for i := 0; i < k; i++ {
		j := (i + 1) % k
		switch cycle[i].Overhang3.Kind {
		case dna.Kind5Overhang:
			trimFront[j] += cycle[i].Overhang3.Length
		case dna.Kind3Overhang:
			trimBack[i] += cycle[i].Overhang3.Length
		}
	}

	var seq strings.Builder
	var features []dna.Feature
	shifts := make([]int, k)

	for i := 0; i < k; i++ {
		s := cycle[i].Seq
		if trimFront[i]+trimBack[i] > len(s) {
			return dna.SequenceRecord{}, false
		}
		shifts[i] = seq.Len() - trimFront[i]
		seq.WriteString(s[trimFront[i] : len(s)-trimBack[i]])
	}

	product := seq.String()
	L := len(product)
	if L == 0 {
		return dna.SequenceRecord{}, false
	}

	for i := 0; i < k; i++ {
		for _, f := range cycle[i].Features {
			shifted := f
			shifted.Start = dna.Mod(f.Start+shifts[i]-1, L) + 1
			shifted.End = dna.Mod(f.End+shifts[i]-1, L) + 1
			features = append(features, shifted)
		}
	}

	ids := make([]string, k)
	for i, f := range cycle {
		ids[i] = f.ID
	}

	return dna.SequenceRecord{
		ID:       dna.NewID(),
		Name:     fmt.Sprintf("circular assembly of %d fragment(s)", k),
		Seq:      product,
		Length:   L,
		Circular: true,
		Features: features,
		Metadata: map[string]string{
			"assembly":  "ligation",
			"fragments": strings.Join(ids, ","),
		},
	}, true
}
