package reconcile

import (
	"sort"
	"testing"

	"raildiff/core/railfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataset(keys ...string) railfile.Dataset {
	d := make(railfile.Dataset, len(keys))
	for _, k := range keys {
		d[k] = railfile.ParseValue("1")
	}
	return d
}

func TestReconcile_Partition(t *testing.T) {
	d1 := dataset("a", "b", "c", "d")
	d2 := dataset("b", "c", "e")

	res := Reconcile(d1, d2)

	assert.Equal(t, []string{"b", "c"}, res.Matched)
	assert.Equal(t, []string{"a", "d"}, res.MissingFrom2)
	assert.Equal(t, []string{"e"}, res.MissingFrom1)
}

func TestReconcile_SetProperties(t *testing.T) {
	d1 := dataset("u01", "u02", "u03", "u10", "u11", "u20")
	d2 := dataset("u02", "u03", "u04", "u11", "u30", "u31")

	res := Reconcile(d1, d2)

	// matched ∪ missing-from-2 == keys(d1)
	union1 := append(append([]string{}, res.Matched...), res.MissingFrom2...)
	sort.Strings(union1)
	want1 := d1.Keys()
	sort.Strings(want1)
	assert.Equal(t, want1, union1)

	// matched ∪ missing-from-1 == keys(d2)
	union2 := append(append([]string{}, res.Matched...), res.MissingFrom1...)
	sort.Strings(union2)
	want2 := d2.Keys()
	sort.Strings(want2)
	assert.Equal(t, want2, union2)

	// The three lists are pairwise disjoint.
	seen := map[string]int{}
	for _, k := range res.Matched {
		seen[k]++
	}
	for _, k := range res.MissingFrom2 {
		seen[k]++
	}
	for _, k := range res.MissingFrom1 {
		seen[k]++
	}
	for k, n := range seen {
		assert.Equal(t, 1, n, "key %q appears in more than one list", k)
	}
}

func TestReconcile_SortedOutput(t *testing.T) {
	d1 := dataset("z", "m", "a", "q")
	d2 := dataset("q", "a", "k", "b")

	res := Reconcile(d1, d2)

	assert.True(t, sort.StringsAreSorted(res.Matched))
	assert.True(t, sort.StringsAreSorted(res.MissingFrom2))
	assert.True(t, sort.StringsAreSorted(res.MissingFrom1))
}

func TestReconcile_EmptyInputs(t *testing.T) {
	res := Reconcile(railfile.Dataset{}, railfile.Dataset{})
	assert.Empty(t, res.Matched)
	assert.Empty(t, res.MissingFrom2)
	assert.Empty(t, res.MissingFrom1)
	// Lists are non-nil so sinks can range over them unconditionally.
	require.NotNil(t, res.Matched)
	require.NotNil(t, res.MissingFrom2)
	require.NotNil(t, res.MissingFrom1)

	res = Reconcile(dataset("a"), railfile.Dataset{})
	assert.Empty(t, res.Matched)
	assert.Equal(t, []string{"a"}, res.MissingFrom2)
	assert.Empty(t, res.MissingFrom1)
}

func TestSummarize(t *testing.T) {
	res := Reconcile(dataset("a", "b", "c"), dataset("b", "c", "d", "e"))
	sum := Summarize(res, 3, 4)

	assert.Equal(t, 3, sum.Keys1)
	assert.Equal(t, 4, sum.Keys2)
	assert.Equal(t, 2, sum.Matched)
	assert.Equal(t, 1, sum.MissingFrom2)
	assert.Equal(t, 2, sum.MissingFrom1)
}
