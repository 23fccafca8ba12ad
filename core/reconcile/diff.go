package reconcile

import (
	"fmt"

	"raildiff/core/railfile"
)

// BuildComparisons produces one Comparison per matched key, preserving the
// input order. When both values are numeric the record carries the
// difference and percent deviation (DeviationInfinite when the file-2 value
// is zero); otherwise it carries a byte-equality verdict on the raw tokens.
//
// Every matched key came from the intersection of the two key sets, so a
// key absent from either dataset here is an invariant violation and is
// returned as an error rather than skipped.
func BuildComparisons(matched []string, d1, d2 railfile.Dataset) ([]Comparison, error) {
	out := make([]Comparison, 0, len(matched))
	for _, key := range matched {
		v1, ok1 := d1[key]
		v2, ok2 := d2[key]
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("matched key %q is absent from a dataset", key)
		}

		c := Comparison{Key: key, Raw1: v1.Raw, Raw2: v2.Raw}
		switch {
		case v1.IsNumeric() && v2.IsNumeric():
			c.Difference = v1.Number - v2.Number
			if v2.Number != 0 {
				c.Deviation = DeviationNumeric
				c.Percent = c.Difference / v2.Number * 100
			} else {
				c.Deviation = DeviationInfinite
			}
		default:
			c.Deviation = DeviationNotApplicable
			c.StringsEqual = v1.Raw == v2.Raw
		}
		out = append(out, c)
	}
	return out, nil
}
