// Package digest simulates restriction digestion: multi-enzyme site
// scanning, cut-boundary resolution, overhang derivation and fragment
// assembly for linear and circular records.
package digest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Mochibw/PrimerPioneer/internal/dna"
)

// minFlankingBases is how close a recognition site may sit to a linear
// record's terminus before a reduced-efficiency advisory is emitted.
const minFlankingBases = 6

// Result is the outcome of a combined digestion with one or more enzymes
// cutting simultaneously.
type Result struct {
	// Enzymes requested for the digestion
	Enzymes []string `json:"enzymes"`

	// Cuts are the 1-based cut boundaries, pooled over all enzymes,
	// deduplicated and sorted. Boundary k means the molecule was nicked
	// between base k and base k+1.
	Cuts []int `json:"cuts"`

	// Fragments produced by walking consecutive boundaries
	Fragments []dna.Fragment `json:"fragments"`

	// Info carries non-fatal advisories, eg near-terminus efficiency warnings
	Info []string `json:"info"`
}

// cutSite is one resolved cut: the 0-based boundary it breaks at and the end
// chemistry it leaves on either side.
type cutSite struct {
	left3  dna.FragmentEnd // 3' end of the fragment left of the boundary
	right5 dna.FragmentEnd // 5' end of the fragment right of the boundary
}

// Digest cuts a record with every enzyme in enzymeNames at once. Unresolved
// enzyme names, malformed specs and empty sequences are validation errors;
// zero cuts is a legitimate outcome returning the intact molecule as a
// single fragment.
func Digest(rec *dna.SequenceRecord, enzymeNames []string, db EnzymeDB) (*Result, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	enzymes := make([]EnzymeSpec, 0, len(enzymeNames))
	for _, name := range enzymeNames {
		enz, err := db.Lookup(name)
		if err != nil {
			return nil, err
		}
		if err := enz.Validate(); err != nil {
			return nil, err
		}
		enzymes = append(enzymes, enz)
	}

	seq := strings.ToUpper(rec.Seq)
	L := len(seq)
	rc := dna.ReverseComplement(seq)

	cuts := map[int]cutSite{}
	var info []string
	seen := map[string]bool{}
	advise := func(msg string) {
		if !seen[msg] {
			seen[msg] = true
			info = append(info, msg)
		}
	}

	for _, enz := range enzymes {
		site := strings.ToUpper(enz.Site)
		mlen := len(site)
		re := regexp.MustCompile(regexp.QuoteMeta(site))

		// forward strand
		for _, m := range re.FindAllStringIndex(seq, -1) {
			start0 := m[0]
			if !rec.Circular && nearTerminus(start0, mlen, L) {
				advise(fmt.Sprintf(
					"site for %s at %d is within %d bases of a terminus; cutting efficiency may be reduced",
					enz.Name, start0+1, minFlankingBases))
			}
			recordCut(cuts, boundary(start0, enz.TopCut, L), enz, enz.TopCut, enz.BottomCut, true)
		}

		// reverse strand, hits mapped back to original coordinates
		revTop, revBottom := mlen-enz.BottomCut, mlen-enz.TopCut
		for _, m := range re.FindAllStringIndex(rc, -1) {
			start0 := L - (m[0] + mlen)
			if !rec.Circular && nearTerminus(start0, mlen, L) {
				advise(fmt.Sprintf(
					"site for %s at %d (reverse strand) is within %d bases of a terminus; cutting efficiency may be reduced",
					enz.Name, start0+1, minFlankingBases))
			}
			recordCut(cuts, boundary(start0, revTop, L), enz, revTop, revBottom, true)
		}

		// sites straddling the origin of a circular record; a site longer
		// than the molecule is not searched
		if rec.Circular && mlen > 1 && mlen <= L {
			ext := seq + seq[:mlen-1]
			for _, m := range re.FindAllStringIndex(ext, -1) {
				s0 := m[0]
				if s0 < L-(mlen-1) || s0 >= L {
					continue
				}
				recordCut(cuts, boundary(s0, enz.TopCut, L), enz, enz.TopCut, enz.BottomCut, false)
			}

			extRC := rc + rc[:mlen-1]
			for _, m := range re.FindAllStringIndex(extRC, -1) {
				s0 := m[0]
				if s0 < L-(mlen-1) || s0 >= L {
					continue
				}
				start0 := dna.Mod(L-(s0+mlen), L)
				recordCut(cuts, boundary(start0, revTop, L), enz, revTop, revBottom, false)
			}
		}
	}

	result := &Result{Enzymes: enzymeNames, Info: info, Cuts: []int{}}
	if len(cuts) == 0 {
		result.Fragments = []dna.Fragment{wholeFragment(rec, seq, L)}
		msg := "no cut sites found; linear molecule left intact"
		if rec.Circular {
			msg = "no cut sites found; molecule remains an intact circle"
		}
		result.Info = append(result.Info, msg)
		return result, nil
	}

	boundaries := make([]int, 0, len(cuts))
	for b := range cuts {
		boundaries = append(boundaries, b)
	}
	sort.Ints(boundaries)
	for _, b := range boundaries {
		result.Cuts = append(result.Cuts, b+1)
	}

	if rec.Circular {
		result.Fragments = circularFragments(seq, L, boundaries, cuts)
	} else {
		result.Fragments = linearFragments(seq, L, boundaries, cuts)
	}
	return result, nil
}

// boundary maps a cut (located by top_cut relative to the match start) to a
// 0-based boundary index: the molecule breaks between base b and base b+1.
func boundary(start0, topCut, L int) int {
	return dna.Mod(start0+topCut-1, L)
}

func nearTerminus(start0, mlen, L int) bool {
	return start0 < minFlankingBases || L-(start0+mlen) < minFlankingBases
}

// recordCut derives the stagger chemistry for a hit and stores it under its
// boundary. overwrite is false for origin-spanning rescans, which must not
// clobber cuts already found by the primary scans.
func recordCut(cuts map[int]cutSite, b int, enz EnzymeSpec, topCut, bottomCut int, overwrite bool) {
	if !overwrite {
		if _, ok := cuts[b]; ok {
			return
		}
	}

	site := strings.ToUpper(enz.Site)
	var left3, right5 dna.FragmentEnd
	switch {
	case topCut == bottomCut:
		left3, right5 = dna.Blunt(), dna.Blunt()
	case topCut < bottomCut:
		// 5' overhang: the right fragment's 5' end protrudes
		seg := site[topCut:bottomCut]
		left3 = dna.NewEnd(dna.Kind5Overhang, dna.ReverseComplement(seg))
		right5 = dna.NewEnd(dna.Kind5Overhang, seg)
	default:
		// 3' overhang: the left fragment's 3' end protrudes
		seg := site[bottomCut:topCut]
		left3 = dna.NewEnd(dna.Kind3Overhang, seg)
		right5 = dna.NewEnd(dna.Kind3Overhang, dna.ReverseComplement(seg))
	}
	cuts[b] = cutSite{left3: left3, right5: right5}
}

// wholeFragment is the zero-cut outcome: the record as a single fragment.
func wholeFragment(rec *dna.SequenceRecord, seq string, L int) dna.Fragment {
	return dna.Fragment{
		ID:        dna.NewID(),
		Start:     1,
		End:       L,
		Length:    L,
		Strand:    dna.Plus,
		Overhang5: dna.Blunt(),
		Overhang3: dna.Blunt(),
		Seq:       seq,
	}
}

// circularFragments walks consecutive boundaries with wraparound: the last
// boundary connects back to the first.
func circularFragments(seq string, L int, boundaries []int, cuts map[int]cutSite) []dna.Fragment {
	n := len(boundaries)
	frags := make([]dna.Fragment, 0, n)
	for i := 0; i < n; i++ {
		bLeft := boundaries[i]
		bRight := boundaries[(i+1)%n]
		a0 := dna.Mod(bLeft+1, L)
		b0 := bRight

		length := b0 - a0 + 1
		if a0 > b0 {
			length = (L - a0) + (b0 + 1)
		}

		frags = append(frags, dna.Fragment{
			ID:        dna.NewID(),
			Start:     a0 + 1,
			End:       b0 + 1,
			Length:    length,
			Strand:    dna.Plus,
			Overhang5: cuts[bLeft].right5,
			Overhang3: cuts[bRight].left3,
			Seq:       dna.Substring(seq, a0, b0, true),
		})
	}
	return frags
}

// linearFragments walks consecutive boundaries with implicit blunt termini
// at the two ends of the molecule.
func linearFragments(seq string, L int, boundaries []int, cuts map[int]cutSite) []dna.Fragment {
	points := []int{-1}
	for _, b := range boundaries {
		if b <= L-2 {
			points = append(points, b)
		}
	}
	points = append(points, L-1)

	var frags []dna.Fragment
	for i := 0; i+1 < len(points); i++ {
		left, right := points[i], points[i+1]
		a0, b0 := left+1, right
		if b0 < a0 {
			continue
		}

		overhang5 := dna.Blunt()
		if left != -1 {
			overhang5 = cuts[left].right5
		}
		overhang3 := dna.Blunt()
		if c, ok := cuts[right]; ok {
			overhang3 = c.left3
		}

		frags = append(frags, dna.Fragment{
			ID:        dna.NewID(),
			Start:     a0 + 1,
			End:       b0 + 1,
			Length:    b0 - a0 + 1,
			Strand:    dna.Plus,
			Overhang5: overhang5,
			Overhang3: overhang3,
			Seq:       seq[a0 : b0+1],
		})
	}
	return frags
}
