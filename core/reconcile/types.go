package reconcile

// Result holds the reconciliation of two datasets' key sets. The three
// lists are pairwise disjoint and each is sorted lexicographically, so
// report output is reproducible regardless of map iteration order.
type Result struct {
	// Matched lists keys present in both files.
	Matched []string `json:"matched"`

	// MissingFrom2 lists keys present only in file 1.
	MissingFrom2 []string `json:"missing_from_2"`

	// MissingFrom1 lists keys present only in file 2.
	MissingFrom1 []string `json:"missing_from_1"`
}

// DeviationState discriminates how the deviation of a comparison is to be
// read. It is an explicit enum rather than a sentinel float so that an
// undefined deviation can never be confused with a real percentage.
type DeviationState int

const (
	// DeviationNumeric means Percent holds a real percent deviation.
	DeviationNumeric DeviationState = iota

	// DeviationInfinite means the file-2 value was zero and the percent
	// deviation is undefined.
	DeviationInfinite

	// DeviationNotApplicable means at least one value was non-numeric;
	// StringsEqual carries the verdict instead.
	DeviationNotApplicable
)

// Comparison is the diff record for one matched key. Difference and Percent
// are valid only in the numeric states; StringsEqual only when the state is
// DeviationNotApplicable.
type Comparison struct {
	// Key is the matched record key.
	Key string `json:"key"`

	// Raw1 is the file-1 value token as it appeared in the file.
	Raw1 string `json:"raw1"`

	// Raw2 is the file-2 value token as it appeared in the file.
	Raw2 string `json:"raw2"`

	// Deviation states how to interpret the fields below.
	Deviation DeviationState `json:"deviation"`

	// Difference is value1 - value2 when both values are numeric.
	Difference float64 `json:"difference"`

	// Percent is Difference / value2 * 100 when Deviation is DeviationNumeric.
	Percent float64 `json:"percent"`

	// StringsEqual reports byte equality of the raw tokens for the
	// non-numeric case.
	StringsEqual bool `json:"strings_equal"`
}

// Summary aggregates the counts of one comparison run.
type Summary struct {
	// Keys1 is the number of instances parsed from file 1.
	Keys1 int `json:"keys1"`

	// Keys2 is the number of instances parsed from file 2.
	Keys2 int `json:"keys2"`

	// Matched counts keys present in both files.
	Matched int `json:"matched"`

	// MissingFrom2 counts keys present only in file 1.
	MissingFrom2 int `json:"missing_from_2"`

	// MissingFrom1 counts keys present only in file 2.
	MissingFrom1 int `json:"missing_from_1"`
}

// Summarize derives the aggregate counts from a result and the two dataset
// sizes.
func Summarize(res Result, keys1, keys2 int) Summary {
	return Summary{
		Keys1:        keys1,
		Keys2:        keys2,
		Matched:      len(res.Matched),
		MissingFrom2: len(res.MissingFrom2),
		MissingFrom1: len(res.MissingFrom1),
	}
}
