package dna

import (
	"strings"
	"testing"
)

func Test_ReverseComplement(t *testing.T) {
	cases := []struct {
		seq  string
		want string
	}{
		{"GAATTC", "GAATTC"}, // palindromic site
		{"ACGT", "ACGT"},
		{"AAAACCC", "GGGTTTT"},
		{"atgc", "GCAT"},
		{"RYSWKMBDHVN", "NBDHVKMWSRY"},
		{"AXZ", "NNT"}, // unknown characters map to N
	}
	for _, c := range cases {
		if got := ReverseComplement(c.seq); got != c.want {
			t.Errorf("ReverseComplement(%q) = %q, want %q", c.seq, got, c.want)
		}
	}
}

// the reverse complement must be an involution over {A,C,G,T,N}
func Test_ReverseComplementInvolution(t *testing.T) {
	seqs := []string{
		"A", "ACGTN", "GAATTCATGCATGC", "NNNNN",
		strings.Repeat("ACGTNTGCA", 20),
	}
	for _, s := range seqs {
		if got := ReverseComplement(ReverseComplement(s)); got != s {
			t.Errorf("revcomp(revcomp(%q)) = %q, not the input", s, got)
		}
	}
}

func Test_MatchCoords(t *testing.T) {
	// forward 0-based [2, 8) is 1-based inclusive (3, 8)
	if s, e := ForwardMatchCoords(2, 8); s != 3 || e != 8 {
		t.Errorf("forward match mapped to (%d, %d), want (3, 8)", s, e)
	}

	// a hit at the very start of the revcomp string maps to the far end
	// of the original
	if s, e := ReverseMatchCoords(0, 6, 20); s != 15 || e != 20 {
		t.Errorf("reverse match mapped to (%d, %d), want (15, 20)", s, e)
	}
	if s, e := ReverseMatchCoords(14, 20, 20); s != 1 || e != 6 {
		t.Errorf("reverse match mapped to (%d, %d), want (1, 6)", s, e)
	}
}

func Test_ClampRange(t *testing.T) {
	if s, e, ok := ClampRange(8, 3, 10); !ok || s != 3 || e != 8 {
		t.Errorf("reversed range not swapped: (%d, %d, %v)", s, e, ok)
	}
	if _, _, ok := ClampRange(0, 5, 10); ok {
		t.Error("range starting below 1 should be invalid")
	}
	if _, _, ok := ClampRange(5, 11, 10); ok {
		t.Error("range past the sequence end should be invalid")
	}
}

func Test_Mod(t *testing.T) {
	if got := Mod(-2, 16); got != 14 {
		t.Errorf("Mod(-2, 16) = %d, want 14", got)
	}
	if got := Mod(16, 16); got != 0 {
		t.Errorf("Mod(16, 16) = %d, want 0", got)
	}
}

func Test_Substring(t *testing.T) {
	seq := "ABCDEFGH"
	if got := Substring(seq, 2, 5, false); got != "CDEF" {
		t.Errorf("linear substring = %q, want CDEF", got)
	}
	// wrap across the origin
	if got := Substring(seq, 6, 1, true); got != "GHAB" {
		t.Errorf("wrapping substring = %q, want GHAB", got)
	}
}

func Test_RecordValidate(t *testing.T) {
	rec := &SequenceRecord{ID: NewID(), Seq: "ACGT", Length: 4}
	if err := rec.Validate(); err != nil {
		t.Errorf("valid record rejected: %v", err)
	}

	empty := &SequenceRecord{ID: NewID()}
	if err := empty.Validate(); err == nil {
		t.Error("record with empty sequence should be rejected")
	}

	junk := &SequenceRecord{ID: NewID(), Seq: "ACGU"}
	if err := junk.Validate(); err == nil {
		t.Error("record with non-IUPAC characters should be rejected")
	}

	badFeat := &SequenceRecord{
		ID:  NewID(),
		Seq: "ACGTACGT",
		Features: []Feature{
			{Type: "CDS", Start: 3, End: 12, Strand: Plus},
		},
	}
	if err := badFeat.Validate(); err == nil {
		t.Error("feature past the sequence end should be rejected")
	}

	// circular records may carry origin-spanning features
	spanning := &SequenceRecord{
		ID:       NewID(),
		Seq:      "ACGTACGT",
		Circular: true,
		Features: []Feature{
			{Type: "ori", Start: 7, End: 2, Strand: Plus},
		},
	}
	if err := spanning.Validate(); err != nil {
		t.Errorf("origin-spanning feature rejected on a circular record: %v", err)
	}
}

func Test_NewEnd(t *testing.T) {
	e := NewEnd(Kind5Overhang, "AATT")
	if e.Kind != Kind5Overhang || e.Seq != "AATT" || e.Length != 4 {
		t.Errorf("unexpected end %+v", e)
	}

	// blunt iff empty sequence
	if b := NewEnd(Kind5Overhang, ""); !b.IsBlunt() || b.Length != 0 {
		t.Errorf("empty overhang should collapse to blunt, got %+v", b)
	}
	if !Blunt().IsBlunt() {
		t.Error("Blunt() should be blunt")
	}
}

func Test_AnnealOligos(t *testing.T) {
	rec, msg, err := AnnealOligos("GATCACGT", "ACGTGATC")
	if err != nil {
		t.Fatalf("annealing failed: %v", err)
	}
	if rec == nil {
		t.Fatalf("no duplex formed: %s", msg)
	}
	if rec.Seq != "GATCACGT" || rec.Length != 8 || rec.Circular {
		t.Errorf("unexpected duplex record %+v", rec)
	}
	if rec.Metadata["oligo2"] != "ACGTGATC" {
		t.Errorf("duplex should record both strands, got %v", rec.Metadata)
	}
}

func Test_AnnealOligosMismatch(t *testing.T) {
	rec, msg, err := AnnealOligos("GATCACGT", "TTTTTTTT")
	if err != nil {
		t.Fatalf("mismatched oligos should not error: %v", err)
	}
	if rec != nil {
		t.Error("mismatched oligos should not form a duplex")
	}
	if msg == "" {
		t.Error("mismatched oligos should explain why no duplex formed")
	}
}

func Test_AnnealOligosEmpty(t *testing.T) {
	if _, _, err := AnnealOligos("", "ACGT"); err == nil {
		t.Error("empty oligo should be a validation error")
	}
}
