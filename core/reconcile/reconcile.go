package reconcile

import (
	"sort"

	"raildiff/core/railfile"
)

// Reconcile computes the matched and one-sided key lists for the key sets of
// two datasets. Empty inputs yield empty (non-nil) lists; no error is
// possible.
func Reconcile(d1, d2 railfile.Dataset) Result {
	res := Result{
		Matched:      []string{},
		MissingFrom2: []string{},
		MissingFrom1: []string{},
	}

	for key := range d1 {
		if _, ok := d2[key]; ok {
			res.Matched = append(res.Matched, key)
		} else {
			res.MissingFrom2 = append(res.MissingFrom2, key)
		}
	}
	for key := range d2 {
		if _, ok := d1[key]; !ok {
			res.MissingFrom1 = append(res.MissingFrom1, key)
		}
	}

	// Sort each list for deterministic report output.
	sort.Strings(res.Matched)
	sort.Strings(res.MissingFrom2)
	sort.Strings(res.MissingFrom1)

	return res
}
