package reconcile

import (
	"testing"

	"raildiff/core/railfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildComparisons_Numeric(t *testing.T) {
	d1 := railfile.Dataset{"U1": railfile.ParseValue("10.0")}
	d2 := railfile.Dataset{"U1": railfile.ParseValue("4.0")}

	comps, err := BuildComparisons([]string{"U1"}, d1, d2)
	require.NoError(t, err)
	require.Len(t, comps, 1)

	c := comps[0]
	assert.Equal(t, "U1", c.Key)
	assert.Equal(t, "10.0", c.Raw1)
	assert.Equal(t, "4.0", c.Raw2)
	assert.Equal(t, DeviationNumeric, c.Deviation)
	assert.Equal(t, 6.0, c.Difference)
	assert.Equal(t, 150.0, c.Percent)
}

func TestBuildComparisons_ZeroDenominator(t *testing.T) {
	d1 := railfile.Dataset{"U1": railfile.ParseValue("5")}
	d2 := railfile.Dataset{"U1": railfile.ParseValue("0.0")}

	comps, err := BuildComparisons([]string{"U1"}, d1, d2)
	require.NoError(t, err)
	require.Len(t, comps, 1)

	c := comps[0]
	assert.Equal(t, DeviationInfinite, c.Deviation)
	assert.Equal(t, 5.0, c.Difference)
}

func TestBuildComparisons_Strings(t *testing.T) {
	tests := []struct {
		name  string
		raw1  string
		raw2  string
		equal bool
	}{
		{"equal tokens", "FOO", "FOO", true},
		{"different tokens", "FOO", "BAR", false},
		{"numeric vs string", "1.5", "FOO", false},
		{"string vs numeric", "FOO", "1.5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d1 := railfile.Dataset{"k": railfile.ParseValue(tt.raw1)}
			d2 := railfile.Dataset{"k": railfile.ParseValue(tt.raw2)}

			comps, err := BuildComparisons([]string{"k"}, d1, d2)
			require.NoError(t, err)
			require.Len(t, comps, 1)

			assert.Equal(t, DeviationNotApplicable, comps[0].Deviation)
			assert.Equal(t, tt.equal, comps[0].StringsEqual)
		})
	}
}

func TestBuildComparisons_NegativeDeviation(t *testing.T) {
	// The end-to-end scenario from the report format: 10 vs 11.
	d1 := railfile.Dataset{"U1": railfile.ParseValue("10")}
	d2 := railfile.Dataset{"U1": railfile.ParseValue("11")}

	comps, err := BuildComparisons([]string{"U1"}, d1, d2)
	require.NoError(t, err)
	require.Len(t, comps, 1)

	assert.Equal(t, -1.0, comps[0].Difference)
	assert.InDelta(t, -9.0909, comps[0].Percent, 0.001)
}

func TestBuildComparisons_PreservesOrder(t *testing.T) {
	d1 := railfile.Dataset{
		"a": railfile.ParseValue("1"),
		"b": railfile.ParseValue("2"),
		"c": railfile.ParseValue("3"),
	}
	d2 := railfile.Dataset{
		"a": railfile.ParseValue("1"),
		"b": railfile.ParseValue("2"),
		"c": railfile.ParseValue("3"),
	}

	comps, err := BuildComparisons([]string{"c", "a", "b"}, d1, d2)
	require.NoError(t, err)

	keys := make([]string, len(comps))
	for i, c := range comps {
		keys[i] = c.Key
	}
	assert.Equal(t, []string{"c", "a", "b"}, keys)
}

func TestBuildComparisons_MissingMatchedKeyIsError(t *testing.T) {
	d1 := railfile.Dataset{"U1": railfile.ParseValue("1")}
	d2 := railfile.Dataset{}

	_, err := BuildComparisons([]string{"U1"}, d1, d2)
	assert.Error(t, err)
}
