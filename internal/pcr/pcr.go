// Package pcr simulates PCR amplification over a template record: the
// 3'-most portion of each primer is matched exactly against the template and
// the amplicon is assembled from the full primers, so non-annealing 5' tails
// (eg appended restriction sites) appear in the product.
package pcr

import (
	"fmt"
	"strings"

	"github.com/Mochibw/PrimerPioneer/internal/dna"
)

// DefaultMinAnnealLen is the annealing-core length used when the caller
// passes zero.
const DefaultMinAnnealLen = 15

// Amplicon is one PCR product: the fragment in template coordinates and the
// product as a standalone record.
type Amplicon struct {
	// Fragment of the template the primers bound, with the product payload
	Fragment dna.Fragment `json:"fragment"`

	// Record is the amplicon as a new linear record
	Record dna.SequenceRecord `json:"record"`
}

// Result is the outcome of one simulated amplification. An empty Amplicons
// list with a message is a legitimate outcome, not an error.
type Result struct {
	Amplicons []Amplicon `json:"amplicons"`
	Message   string     `json:"message"`
}

// Simulate amplifies a template with a forward and reverse primer. Each
// primer's 3'-most minAnnealLen bases must occur exactly in the template (the
// reverse primer's core is reverse-complemented onto the sense strand); only
// the first occurrence of each core is considered, with no mismatch
// tolerance. A primer shorter than minAnnealLen or an empty sequence is a
// validation error.
func Simulate(template *dna.SequenceRecord, forward, reverse string, minAnnealLen int) (*Result, error) {
	if minAnnealLen <= 0 {
		minAnnealLen = DefaultMinAnnealLen
	}

	if err := template.Validate(); err != nil {
		return nil, err
	}
	fwd := strings.ToUpper(strings.TrimSpace(forward))
	rev := strings.ToUpper(strings.TrimSpace(reverse))
	if fwd == "" || rev == "" {
		return nil, fmt.Errorf("both primer sequences are required")
	}
	if len(fwd) < minAnnealLen || len(rev) < minAnnealLen {
		return nil, fmt.Errorf("primers must be at least %d bases long", minAnnealLen)
	}

	seq := strings.ToUpper(template.Seq)

	// annealing cores on the template's sense strand
	fwdCore := fwd[len(fwd)-minAnnealLen:]
	revCore := dna.ReverseComplement(rev[len(rev)-minAnnealLen:])

	fwdPos := strings.Index(seq, fwdCore)
	revPos := strings.Index(seq, revCore)
	if fwdPos == -1 || revPos == -1 {
		return &Result{
			Amplicons: []Amplicon{},
			Message:   "no amplicon produced: one or both primers did not bind the template",
		}, nil
	}

	fwdEnd := fwdPos + minAnnealLen
	revEnd := revPos + minAnnealLen

	var middle string
	switch {
	case fwdPos < revEnd:
		// standard geometry; cores may abut or overlap, leaving no middle
		if fwdEnd < revPos {
			middle = seq[fwdEnd:revPos]
		}
	case template.Circular:
		// amplification across the origin
		middle = seq[fwdEnd:] + seq[:revPos]
	default:
		return &Result{
			Amplicons: []Amplicon{},
			Message:   "no amplicon produced: primer geometry is inverted on a linear template",
		}, nil
	}

	productSeq := fwd + middle + dna.ReverseComplement(rev)
	id := dna.NewID()

	frag := dna.Fragment{
		ID:        id,
		Start:     fwdPos + 1,
		End:       revEnd,
		Length:    len(productSeq),
		Strand:    dna.Plus,
		Overhang5: dna.Blunt(),
		Overhang3: dna.Blunt(),
		Seq:       productSeq,
	}

	name := template.Name
	if name == "" {
		name = "template"
	}
	rec := dna.SequenceRecord{
		ID:       id,
		Name:     fmt.Sprintf("PCR product of %s", name),
		Seq:      productSeq,
		Length:   len(productSeq),
		Circular: false,
		Metadata: map[string]string{
			"template": template.ID,
			"forward":  fwd,
			"reverse":  rev,
		},
	}

	return &Result{
		Amplicons: []Amplicon{{Fragment: frag, Record: rec}},
		Message:   "amplification succeeded",
	}, nil
}
