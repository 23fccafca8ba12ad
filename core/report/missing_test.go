package report

import (
	"bytes"
	"strings"
	"testing"

	"raildiff/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMissing(t *testing.T) {
	res := reconcile.Result{
		Matched:      []string{"U1"},
		MissingFrom2: []string{"U2", "U5"},
		MissingFrom1: []string{"U3"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMissing(&buf, "a.rpt", "b.rpt", res))
	out := buf.String()

	assert.Contains(t, out, "Instances missing from b.rpt:")
	assert.Contains(t, out, "Instances missing from a.rpt:")
	assert.Contains(t, out, banner)

	// One-sided keys are listed under the right heading, matched keys never
	// appear.
	fromB := strings.Index(out, "missing from b.rpt")
	fromA := strings.Index(out, "missing from a.rpt")
	require.Less(t, fromB, fromA)
	assert.Contains(t, out[fromB:fromA], "U2")
	assert.Contains(t, out[fromB:fromA], "U5")
	assert.Contains(t, out[fromA:], "U3")
	assert.NotContains(t, out, "U1")
}

func TestWriteMissing_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMissing(&buf, "a", "b", reconcile.Result{}))
	assert.Contains(t, buf.String(), "Instances missing from b:")
}
