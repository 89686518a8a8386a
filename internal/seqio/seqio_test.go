package seqio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Mochibw/PrimerPioneer/internal/dna"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func Test_ReadRecord(t *testing.T) {
	path := writeFile(t, "rec.json", `{
  "name": "pUC-mini",
  "sequence": "ACGTACGT",
  "circular": true
}`)

	rec, err := ReadRecord(path)
	if err != nil {
		t.Fatalf("failed to read record: %v", err)
	}
	if rec.Seq != "ACGTACGT" || !rec.Circular {
		t.Errorf("unexpected record %+v", rec)
	}
	// omitted fields are filled in
	if rec.Length != 8 {
		t.Errorf("length = %d, want 8 derived from the sequence", rec.Length)
	}
	if rec.ID == "" {
		t.Error("a record without an id should be assigned one")
	}
}

func Test_ReadRecordErrors(t *testing.T) {
	if _, err := ReadRecord(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("a missing file should be an error")
	}

	bad := writeFile(t, "bad.json", `{not json`)
	if _, err := ReadRecord(bad); err == nil {
		t.Error("malformed JSON should be an error")
	}
}

func Test_ReadFragmentsShapes(t *testing.T) {
	wrapped := writeFile(t, "digest.json", `{
  "enzymes": ["EcoRI"],
  "cuts": [8],
  "fragments": [
    {"id": "f1", "sequence": "AAAAAAAG", "length": 8,
     "overhang_5": {"kind": "blunt", "seq": "", "length": 0},
     "overhang_3": {"kind": "5_overhang", "seq": "AATT", "length": 4}}
  ]
}`)
	frags, err := ReadFragments(wrapped)
	if err != nil {
		t.Fatalf("failed to read digest-result shape: %v", err)
	}
	if len(frags) != 1 || frags[0].ID != "f1" {
		t.Errorf("unexpected fragments %+v", frags)
	}
	if frags[0].Overhang3.Kind != dna.Kind5Overhang || frags[0].Overhang3.Seq != "AATT" {
		t.Errorf("overhang not decoded: %+v", frags[0].Overhang3)
	}

	list := writeFile(t, "list.json", `[
  {"id": "a", "sequence": "ACGT", "length": 4},
  {"id": "b", "sequence": "TGCA", "length": 4}
]`)
	frags, err = ReadFragments(list)
	if err != nil {
		t.Fatalf("failed to read bare list shape: %v", err)
	}
	if len(frags) != 2 {
		t.Errorf("got %d fragments, want 2", len(frags))
	}

	single := writeFile(t, "one.json", `{"id": "solo", "sequence": "ACGT", "length": 4}`)
	frags, err = ReadFragments(single)
	if err != nil {
		t.Fatalf("failed to read single-fragment shape: %v", err)
	}
	if len(frags) != 1 || frags[0].ID != "solo" {
		t.Errorf("unexpected fragments %+v", frags)
	}

	// a digest result that produced no fragments is an empty read, not an
	// error
	noFrags := writeFile(t, "nofrags.json", `{"enzymes": ["EcoRI"], "cuts": [], "fragments": []}`)
	frags, err = ReadFragments(noFrags)
	if err != nil {
		t.Fatalf("an empty fragments list should read cleanly: %v", err)
	}
	if len(frags) != 0 {
		t.Errorf("got %d fragments, want none", len(frags))
	}

	bareEmpty := writeFile(t, "bare.json", `[]`)
	frags, err = ReadFragments(bareEmpty)
	if err != nil {
		t.Fatalf("an empty bare list should read cleanly: %v", err)
	}
	if len(frags) != 0 {
		t.Errorf("got %d fragments, want none", len(frags))
	}

	empty := writeFile(t, "empty.json", `{}`)
	if _, err := ReadFragments(empty); err == nil {
		t.Error("a payload with no fragments key at all should be an error")
	}
}

func Test_WriteJSONRoundtrip(t *testing.T) {
	// nested output path exercises directory creation
	path := filepath.Join(t.TempDir(), "out", "nested", "rec.json")
	rec := &dna.SequenceRecord{
		ID:     dna.NewID(),
		Name:   "roundtrip",
		Seq:    "GATTACA",
		Length: 7,
	}

	if err := WriteJSON(path, rec); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	back, err := ReadRecord(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if back.ID != rec.ID || back.Seq != rec.Seq || back.Name != rec.Name {
		t.Errorf("roundtrip mismatch: wrote %+v, read %+v", rec, back)
	}
}
