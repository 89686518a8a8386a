// Package seqio loads and saves the JSON-shaped record contract for the CLI.
// The engines themselves never touch files; persistence is the caller's
// duty and the CLI is that caller.
package seqio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mochibw/PrimerPioneer/internal/dna"
)

// ReadRecord reads one SequenceRecord from a JSON file. A missing length is
// filled in from the sequence.
func ReadRecord(path string) (*dna.SequenceRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var rec dna.SequenceRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse record %s: %w", path, err)
	}
	if rec.Length == 0 {
		rec.Length = len(rec.Seq)
	}
	if rec.ID == "" {
		rec.ID = dna.NewID()
	}
	return &rec, nil
}

// ReadFragments reads fragments from a JSON file holding either a digest
// result ({"fragments": [...]}), a bare fragment list, or a single fragment
// object. A present-but-empty fragment list is a legitimate empty result,
// not an error.
func ReadFragments(path string) ([]dna.Fragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fragments: %w", err)
	}

	var wrapper struct {
		Fragments *[]dna.Fragment `json:"fragments"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Fragments != nil {
		return *wrapper.Fragments, nil
	}

	var list []dna.Fragment
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var single dna.Fragment
	if err := json.Unmarshal(data, &single); err == nil && single.Seq != "" {
		return []dna.Fragment{single}, nil
	}

	return nil, fmt.Errorf("%s holds no recognizable fragment payload", path)
}

// WriteJSON marshals v with indentation and writes it to path, creating
// parent directories as needed.
func WriteJSON(path string, v interface{}) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
