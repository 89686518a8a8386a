// Package annotate scans a record for known sequence motifs (restriction
// sites, promoters, signals) on both strands and returns them as features.
package annotate

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Mochibw/PrimerPioneer/internal/dna"
)

// Pattern is one motif to scan for.
type Pattern struct {
	// Name of the feature, eg "EcoRI_site"
	Name string `json:"name" yaml:"name"`

	// Type of the feature, eg "restriction_site", "promoter"
	Type string `json:"type" yaml:"type"`

	// Seq is the exact motif sequence searched on both strands
	Seq string `json:"pattern" yaml:"pattern"`
}

// builtinPatterns are the motifs scanned by default: common restriction
// sites plus a few functional elements.
func builtinPatterns() []Pattern {
	return []Pattern{
		{Name: "EcoRI_site", Type: "restriction_site", Seq: "GAATTC"},
		{Name: "BamHI_site", Type: "restriction_site", Seq: "GGATCC"},
		{Name: "HindIII_site", Type: "restriction_site", Seq: "AAGCTT"},
		{Name: "XhoI_site", Type: "restriction_site", Seq: "CTCGAG"},
		{Name: "NotI_site", Type: "restriction_site", Seq: "GCGGCCGC"},
		{Name: "NdeI_site", Type: "restriction_site", Seq: "CATATG"},
		{Name: "T7_promoter", Type: "promoter", Seq: "TAATACGACTCACTATAG"},
		{Name: "polyA_signal", Type: "polyA", Seq: "AATAAA"},
	}
}

// Options controls a scan.
type Options struct {
	// ScanBuiltin includes the built-in motif table
	ScanBuiltin bool

	// Custom motifs scanned in addition to the built-ins
	Custom []Pattern
}

// Scan finds every pattern occurrence on both strands and returns the hits
// as features in the record's 1-based coordinates. Reverse-strand hits are
// mapped back through the coordinate conversions; hits that fall outside
// [1, L] after mapping are silently dropped.
func Scan(rec *dna.SequenceRecord, opts Options) ([]dna.Feature, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	var patterns []Pattern
	if opts.ScanBuiltin {
		patterns = builtinPatterns()
	}
	patterns = append(patterns, opts.Custom...)

	seq := strings.ToUpper(rec.Seq)
	rc := dna.ReverseComplement(seq)
	L := len(seq)

	var found []dna.Feature
	add := func(name, typ string, start, end int, strand dna.Strand) {
		s, e, ok := dna.ClampRange(start, end, L)
		if !ok {
			return
		}
		found = append(found, dna.Feature{
			Type:   typ,
			Start:  s,
			End:    e,
			Strand: strand,
			Qualifiers: map[string]string{
				"label": name,
			},
		})
	}

	for _, p := range patterns {
		motif := strings.ToUpper(p.Seq)
		if motif == "" {
			continue
		}
		re := regexp.MustCompile(regexp.QuoteMeta(motif))
		palindromic := motif == dna.ReverseComplement(motif)

		for _, m := range re.FindAllStringIndex(seq, -1) {
			start, end := dna.ForwardMatchCoords(m[0], m[1])
			add(p.Name, p.Type, start, end, dna.Plus)
		}
		if palindromic {
			// a palindromic motif's reverse hits duplicate the forward ones
			continue
		}
		for _, m := range re.FindAllStringIndex(rc, -1) {
			start, end := dna.ReverseMatchCoords(m[0], m[1], L)
			add(p.Name, p.Type, start, end, dna.Minus)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].Start != found[j].Start {
			return found[i].Start < found[j].Start
		}
		return found[i].End < found[j].End
	})
	return found, nil
}
