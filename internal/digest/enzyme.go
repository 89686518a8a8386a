package digest

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// EnzymeSpec describes a restriction enzyme: its recognition site and where
// each strand is nicked relative to the site's start. Specs are static; they
// are looked up by name and never mutated.
type EnzymeSpec struct {
	// Name of the enzyme, eg "EcoRI"
	Name string `json:"name" yaml:"name"`

	// Site is the recognition sequence, restricted to A/C/G/T/N
	Site string `json:"site" yaml:"site"`

	// TopCut is the sense-strand nick offset in [0, len(Site)]
	TopCut int `json:"top_cut" yaml:"top_cut"`

	// BottomCut is the antisense-strand nick offset in [0, len(Site)]
	BottomCut int `json:"bottom_cut" yaml:"bottom_cut"`
}

var validSite = regexp.MustCompile(`^[ACGTN]+$`)

// Validate checks the spec's site alphabet and cut offsets. A malformed spec
// is a validation error, never an advisory.
func (e EnzymeSpec) Validate() error {
	err := validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.Required),
		validation.Field(&e.Site,
			validation.Required,
			validation.Match(validSite).Error("recognition site may only contain A/C/G/T/N")),
	)
	if err != nil {
		return fmt.Errorf("enzyme %q: %w", e.Name, err)
	}

	if e.TopCut < 0 || e.TopCut > len(e.Site) || e.BottomCut < 0 || e.BottomCut > len(e.Site) {
		return fmt.Errorf(
			"enzyme %q: top_cut/bottom_cut must be within [0, %d]", e.Name, len(e.Site))
	}
	return nil
}

// EnzymeDB is a lookup table of enzyme specs keyed by name.
type EnzymeDB map[string]EnzymeSpec

// NewEnzymeDB returns the built-in table of common cloning enzymes.
func NewEnzymeDB() EnzymeDB {
	specs := []EnzymeSpec{
		{Name: "EcoRI", Site: "GAATTC", TopCut: 1, BottomCut: 5},
		{Name: "BamHI", Site: "GGATCC", TopCut: 1, BottomCut: 5},
		{Name: "BglII", Site: "AGATCT", TopCut: 1, BottomCut: 5},
		{Name: "HindIII", Site: "AAGCTT", TopCut: 1, BottomCut: 5},
		{Name: "KpnI", Site: "GGTACC", TopCut: 5, BottomCut: 1},
		{Name: "NcoI", Site: "CCATGG", TopCut: 1, BottomCut: 5},
		{Name: "NdeI", Site: "CATATG", TopCut: 2, BottomCut: 4},
		{Name: "NheI", Site: "GCTAGC", TopCut: 1, BottomCut: 5},
		{Name: "NotI", Site: "GCGGCCGC", TopCut: 2, BottomCut: 6},
		{Name: "PacI", Site: "TTAATTAA", TopCut: 5, BottomCut: 3},
		{Name: "PstI", Site: "CTGCAG", TopCut: 5, BottomCut: 1},
		{Name: "SacI", Site: "GAGCTC", TopCut: 1, BottomCut: 5},
		{Name: "SalI", Site: "GTCGAC", TopCut: 1, BottomCut: 5},
		{Name: "SmaI", Site: "CCCGGG", TopCut: 3, BottomCut: 3},
		{Name: "XbaI", Site: "TCTAGA", TopCut: 1, BottomCut: 5},
		{Name: "XhoI", Site: "CTCGAG", TopCut: 1, BottomCut: 5},
		{Name: "AflII", Site: "CTTAAG", TopCut: 1, BottomCut: 5},
	}

	db := make(EnzymeDB, len(specs))
	for _, e := range specs {
		db[e.Name] = e
	}
	return db
}

// Lookup resolves an enzyme name against the table. An unresolved name is a
// validation error.
func (db EnzymeDB) Lookup(name string) (EnzymeSpec, error) {
	if e, ok := db[name]; ok {
		return e, nil
	}
	return EnzymeSpec{}, fmt.Errorf("enzyme %q is not in the enzyme table", name)
}

// Names returns the enzyme names in the table, sorted.
func (db EnzymeDB) Names() []string {
	names := make([]string, 0, len(db))
	for name := range db {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadEnzymeFile merges user-defined enzyme specs from a YAML file over the
// table. Entries with the same name replace built-ins. Each entry is
// validated before it is merged.
func (db EnzymeDB) LoadEnzymeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enzyme file: %w", err)
	}

	var specs []EnzymeSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return fmt.Errorf("failed to parse enzyme file %s: %w", path, err)
	}

	for _, e := range specs {
		e.Site = strings.ToUpper(e.Site)
		if err := e.Validate(); err != nil {
			return err
		}
		db[e.Name] = e
	}
	return nil
}
