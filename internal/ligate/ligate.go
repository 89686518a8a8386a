// Package ligate simulates ligation and circularization: it searches
// fragment orderings for cycles whose every junction is end-compatible and
// builds the resulting circular records.
//
// The search space is every subset of the input fragments in every order, so
// the worst case grows as O(2^N * N!). The implementation prunes an ordering
// at the first incompatible junction, which keeps common cases fast, but
// callers must still bound N: Options.MaxFragments caps the input size and
// the context can carry a deadline to abort a runaway search.
package ligate

import (
	"context"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Mochibw/PrimerPioneer/internal/dna"
)

// DefaultMaxFragments is the input-size cap used when Options.MaxFragments
// is zero. Beyond 6-8 fragments the exhaustive search is impractical.
const DefaultMaxFragments = 8

// Options tunes a circularization run.
type Options struct {
	// Dephosphorylated holds end identifiers (see EndID) lacking the 5'
	// phosphate required for ligation. A junction is blocked only when both
	// of its sides are listed.
	Dephosphorylated []string

	// StickyEndTolerance is accepted for interface compatibility but is a
	// no-op: the canonical compatibility rule never consults it.
	StickyEndTolerance bool

	// MaxFragments caps the number of input fragments; 0 means
	// DefaultMaxFragments.
	MaxFragments int
}

// Product is one valid circular assembly.
type Product struct {
	// Record is the assembled circular molecule
	Record dna.SequenceRecord `json:"record"`

	// FragmentCount is how many input fragments the cycle consumed
	FragmentCount int `json:"fragment_count"`

	// FragmentIDs lists the consumed fragments in cycle order
	FragmentIDs []string `json:"fragment_ids"`
}

// Result is the outcome of a circularization search. An empty product list
// with a message is a legitimate outcome, not an error.
type Result struct {
	Products []Product `json:"products"`
	Messages []string  `json:"messages"`
}

// Circularize searches every subset and ordering of the input fragments for
// fully compatible cycles and returns one circular product per distinct
// cycle, sorted by the number of fragments consumed. Rotations of the same
// ordering are reported once; see DESIGN.md.
func Circularize(ctx context.Context, frags []dna.Fragment, opts Options) (*Result, error) {
	maxFrags := opts.MaxFragments
	if maxFrags == 0 {
		maxFrags = DefaultMaxFragments
	}

	if len(frags) == 0 {
		return nil, fmt.Errorf("at least one fragment is required")
	}
	if len(frags) > maxFrags {
		return nil, fmt.Errorf(
			"%d fragments exceed the search cap of %d; raise the cap only with a search timeout",
			len(frags), maxFrags)
	}
	for i := range frags {
		if frags[i].Seq == "" {
			return nil, validation.NewError(
				"validation_fragment_sequence",
				fmt.Sprintf("fragment %s carries no sequence payload", frags[i].ID))
		}
	}

	dephos := make(map[string]bool, len(opts.Dephosphorylated))
	for _, id := range opts.Dephosphorylated {
		dephos[id] = true
	}

	s := &search{frags: frags, dephos: dephos}
	if err := s.run(ctx); err != nil {
		return nil, err
	}

	// simplest assemblies first
	sort.SliceStable(s.products, func(i, j int) bool {
		return s.products[i].FragmentCount < s.products[j].FragmentCount
	})

	res := &Result{Products: s.products, Messages: []string{}}
	if len(res.Products) == 0 {
		res.Messages = append(res.Messages, fmt.Sprintf(
			"no compatible circular assembly found among %d fragments", len(frags)))
	} else {
		res.Messages = append(res.Messages, fmt.Sprintf(
			"found %d circular assembly candidate(s)", len(res.Products)))
	}
	if opts.StickyEndTolerance {
		res.Messages = append(res.Messages,
			"sticky_end_tolerance was requested but is not consulted; exact compatibility was enforced")
	}
	return res, nil
}

type search struct {
	frags    []dna.Fragment
	dephos   map[string]bool
	products []Product
}

// joinable is whether the junction upstream-3' -> downstream-5' both matches
// chemically and is not vetoed by dephosphorylation of both sides.
func (s *search) joinable(up, down dna.Fragment) bool {
	if !compatible(up.Overhang3, down.Overhang5) {
		return false
	}
	if s.dephos[EndID(up.ID, Side3)] && s.dephos[EndID(down.ID, Side5)] {
		return false
	}
	return true
}

// run enumerates cycles in canonical rotation: each cycle starts at the
// lowest-index fragment it contains, so a valid cycle is emitted exactly
// once rather than once per rotation.
func (s *search) run(ctx context.Context) error {
	n := len(s.frags)
	used := make([]bool, n)
	path := make([]int, 0, n)

	var extend func(start int) error
	extend = func(start int) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("circularization search aborted: %w", err)
		}

		last := path[len(path)-1]
		// closing the cycle back to the start is one candidate junction
		if s.joinable(s.frags[last], s.frags[start]) {
			s.emit(path)
		}

		for next := start + 1; next < n; next++ {
			if used[next] || !s.joinable(s.frags[last], s.frags[next]) {
				continue
			}
			used[next] = true
			path = append(path, next)
			if err := extend(start); err != nil {
				return err
			}
			path = path[:len(path)-1]
			used[next] = false
		}
		return nil
	}

	for start := 0; start < n; start++ {
		used[start] = true
		path = append(path, start)
		if err := extend(start); err != nil {
			return err
		}
		path = path[:0]
		used[start] = false
	}
	return nil
}

func (s *search) emit(path []int) {
	cycle := make([]dna.Fragment, len(path))
	ids := make([]string, len(path))
	for i, idx := range path {
		cycle[i] = s.frags[idx]
		ids[i] = s.frags[idx].ID
	}

	rec, ok := buildProduct(cycle)
	if !ok {
		return
	}
	s.products = append(s.products, Product{
		Record:        rec,
		FragmentCount: len(cycle),
		FragmentIDs:   ids,
	})
}
