// Package dna holds the shared sequence entities passed between the
// digestion, PCR and ligation engines: records, features, fragments and
// fragment ends. All of them are value objects; an engine call owns what it
// creates and hands it to the caller. Nothing here performs I/O.
package dna

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Strand is the orientation of a feature or fragment: 1 or -1.
type Strand int

const (
	// Plus is the sense strand
	Plus Strand = 1

	// Minus is the antisense strand
	Minus Strand = -1
)

// EndKind classifies a fragment terminus.
type EndKind string

const (
	// KindBlunt is a double-stranded terminus with no protrusion
	KindBlunt EndKind = "blunt"

	// Kind5Overhang is a single-stranded protrusion on the 5' strand
	Kind5Overhang EndKind = "5_overhang"

	// Kind3Overhang is a single-stranded protrusion on the 3' strand
	Kind3Overhang EndKind = "3_overhang"
)

// FragmentEnd is the chemistry of one terminus of a fragment.
// Kind is blunt exactly when Seq is empty and Length is zero.
type FragmentEnd struct {
	// Kind of the end: blunt, 5_overhang or 3_overhang
	Kind EndKind `json:"kind"`

	// Seq is the single-stranded overhang, empty if blunt
	Seq string `json:"seq"`

	// Length equals len(Seq)
	Length int `json:"length"`
}

// Blunt returns a blunt fragment end.
func Blunt() FragmentEnd {
	return FragmentEnd{Kind: KindBlunt}
}

// NewEnd builds a FragmentEnd of the passed kind, keeping Length consistent.
func NewEnd(kind EndKind, seq string) FragmentEnd {
	if kind == KindBlunt || seq == "" {
		return Blunt()
	}
	return FragmentEnd{Kind: kind, Seq: seq, Length: len(seq)}
}

// IsBlunt is whether the end has no single-stranded protrusion.
func (e FragmentEnd) IsBlunt() bool {
	return e.Kind == KindBlunt || e.Length == 0
}

// Feature is an annotated region on a record. Coordinates are 1-based and
// inclusive. Circular records may have Start > End for origin-spanning
// features.
type Feature struct {
	// Type of the feature, eg 'CDS', 'promoter', 'ori'
	Type string `json:"type"`

	// Start of the feature (1-based, inclusive)
	Start int `json:"start"`

	// End of the feature (1-based, inclusive)
	End int `json:"end"`

	// Strand the feature sits on
	Strand Strand `json:"strand"`

	// Qualifiers are free-form labels, eg {"label": "T7 promoter"}
	Qualifiers map[string]string `json:"qualifiers,omitempty"`
}

// SequenceRecord is an in-memory DNA molecule. Records are never mutated by
// an engine; every operation creates new ones.
type SequenceRecord struct {
	// ID is an opaque unique identity assigned at creation
	ID string `json:"id"`

	// Name is a human-readable label
	Name string `json:"name"`

	// Seq is the uppercase base sequence
	Seq string `json:"sequence"`

	// Length equals len(Seq)
	Length int `json:"length"`

	// Circular is whether the molecule is a closed loop
	Circular bool `json:"circular"`

	// Features annotated on the record
	Features []Feature `json:"features,omitempty"`

	// Metadata is free-form key-value pairs
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Fragment is a piece of a parent record, usually the product of a cut.
// Start/End are 1-based on the parent's coordinate system and may wrap for
// circular parents. The overhangs annotate the adjacent cuts; they describe
// what would ligate, not extra stored bases.
type Fragment struct {
	// ID is an opaque unique identity assigned at creation
	ID string `json:"id"`

	// Start of the fragment on the parent (1-based, inclusive)
	Start int `json:"start"`

	// End of the fragment on the parent (1-based, inclusive)
	End int `json:"end"`

	// Length of the fragment's sequence
	Length int `json:"length"`

	// Strand the fragment was taken from
	Strand Strand `json:"strand"`

	// Overhang5 is the chemistry of the fragment's 5' end
	Overhang5 FragmentEnd `json:"overhang_5"`

	// Overhang3 is the chemistry of the fragment's 3' end
	Overhang3 FragmentEnd `json:"overhang_3"`

	// Seq is the fragment's sequence payload (optional)
	Seq string `json:"sequence,omitempty"`

	// Features carried from the parent record, in fragment coordinates
	Features []Feature `json:"features,omitempty"`
}

// NewID returns a process-wide-unique opaque identity for a new record or
// fragment.
func NewID() string {
	return uuid.New().String()
}

var validBases = regexp.MustCompile(`^[ACGTNRYSWKMBDHVacgtnryswkmbdhv]+$`)

// Validate checks that the record carries a well-formed sequence and that
// its length and feature coordinates are consistent.
func (r *SequenceRecord) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Seq,
			validation.Required.Error("sequence must not be empty"),
			validation.Match(validBases).Error("sequence may only contain IUPAC nucleotide codes")),
	)
	if err != nil {
		return err
	}

	for _, f := range r.Features {
		if f.Start < 1 || f.End < 1 || f.Start > len(r.Seq) || f.End > len(r.Seq) {
			return validation.NewError(
				"validation_feature_bounds",
				"feature coordinates must be within [1, length]")
		}
		if !r.Circular && f.Start > f.End {
			return validation.NewError(
				"validation_feature_order",
				"feature start must not exceed end on a linear record")
		}
	}
	return nil
}
