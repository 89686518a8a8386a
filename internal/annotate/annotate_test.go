package annotate

import (
	"testing"

	"github.com/Mochibw/PrimerPioneer/internal/dna"
)

func testRecord(seq string) *dna.SequenceRecord {
	return &dna.SequenceRecord{
		ID:     dna.NewID(),
		Name:   "test",
		Seq:    seq,
		Length: len(seq),
	}
}

func Test_ScanBuiltinPromoter(t *testing.T) {
	seq := "CCCCC" + "TAATACGACTCACTATAG" + "GGGGG"
	found, err := Scan(testRecord(seq), Options{ScanBuiltin: true})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if len(found) != 1 {
		t.Fatalf("got %d features, want 1: %+v", len(found), found)
	}
	f := found[0]
	if f.Type != "promoter" || f.Qualifiers["label"] != "T7_promoter" {
		t.Errorf("unexpected feature %+v", f)
	}
	if f.Start != 6 || f.End != 23 || f.Strand != dna.Plus {
		t.Errorf("feature at (%d, %d, %d), want (6, 23, +1)", f.Start, f.End, f.Strand)
	}
}

// a palindromic motif reads the same on both strands, so each occurrence is
// reported once, not mirrored
func Test_ScanPalindromicOnce(t *testing.T) {
	seq := "AAAA" + "GAATTC" + "TTTT"
	found, err := Scan(testRecord(seq), Options{ScanBuiltin: true})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if len(found) != 1 {
		t.Fatalf("got %d features, want 1: %+v", len(found), found)
	}
	f := found[0]
	if f.Qualifiers["label"] != "EcoRI_site" || f.Start != 5 || f.End != 10 {
		t.Errorf("unexpected feature %+v", f)
	}
	if f.Strand != dna.Plus {
		t.Error("palindromic hits are reported on the plus strand")
	}
}

// a custom motif present only on the reverse strand is found there with
// coordinates mapped back onto the record
func Test_ScanCustomReverseStrand(t *testing.T) {
	seq := "AAAA" + "CCATCC" + "TTTT" // CCATCC is revcomp of the motif
	opts := Options{Custom: []Pattern{
		{Name: "my_motif", Type: "misc", Seq: "GGATGG"},
	}}

	found, err := Scan(testRecord(seq), opts)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("got %d features, want 1: %+v", len(found), found)
	}

	f := found[0]
	if f.Start != 5 || f.End != 10 || f.Strand != dna.Minus {
		t.Errorf("feature at (%d, %d, %d), want (5, 10, -1)", f.Start, f.End, f.Strand)
	}
	if f.Qualifiers["label"] != "my_motif" {
		t.Errorf("unexpected label %q", f.Qualifiers["label"])
	}
}

func Test_ScanSortedByPosition(t *testing.T) {
	seq := "GAATTC" + "AAAA" + "GAATTC" + "AAAA" + "GAATTC"
	found, err := Scan(testRecord(seq), Options{ScanBuiltin: true})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if len(found) != 3 {
		t.Fatalf("got %d features, want 3", len(found))
	}
	for i := 1; i < len(found); i++ {
		if found[i-1].Start > found[i].Start {
			t.Errorf("features not sorted by start: %+v", found)
		}
	}
	if found[0].Start != 1 || found[2].Start != 21 {
		t.Errorf("hits at %d and %d, want 1 and 21", found[0].Start, found[2].Start)
	}
}

func Test_ScanLowercaseInput(t *testing.T) {
	found, err := Scan(testRecord("aaaagaattctttt"), Options{ScanBuiltin: true})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(found) != 1 {
		t.Errorf("case should not affect matching, got %+v", found)
	}
}

func Test_ScanValidation(t *testing.T) {
	if _, err := Scan(&dna.SequenceRecord{ID: dna.NewID()}, Options{ScanBuiltin: true}); err == nil {
		t.Error("an empty record should be rejected")
	}
}
