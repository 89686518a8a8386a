package digest

import "fmt"

// SelectFragments models gel purification: it keeps only the fragments at
// the passed 0-based indices. Out-of-range indices are skipped with an
// advisory, not an error. The input result is not modified.
func SelectFragments(res *Result, indices []int) *Result {
	out := &Result{
		Enzymes: res.Enzymes,
		Cuts:    res.Cuts,
		Info:    append([]string{}, res.Info...),
	}

	var invalid []int
	for _, i := range indices {
		if i < 0 || i >= len(res.Fragments) {
			invalid = append(invalid, i)
			continue
		}
		out.Fragments = append(out.Fragments, res.Fragments[i])
	}

	out.Info = append(out.Info, fmt.Sprintf(
		"selected %d of %d fragments", len(out.Fragments), len(res.Fragments)))
	if len(invalid) > 0 {
		out.Info = append(out.Info, fmt.Sprintf(
			"ignored out-of-range fragment indices %v", invalid))
	}
	return out
}
