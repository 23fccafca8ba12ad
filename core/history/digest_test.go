package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDigest(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.rpt")
	b := filepath.Join(dir, "b.rpt")
	c := filepath.Join(dir, "c.rpt")
	require.NoError(t, os.WriteFile(a, []byte("U1 0 1 10\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("U1 0 1 10\n"), 0o644))
	require.NoError(t, os.WriteFile(c, []byte("U1 0 1 11\n"), 0o644))

	da, err := FileDigest(a)
	require.NoError(t, err)
	db, err := FileDigest(b)
	require.NoError(t, err)
	dc, err := FileDigest(c)
	require.NoError(t, err)

	assert.Len(t, da, 16)
	assert.Equal(t, da, db)
	assert.NotEqual(t, da, dc)
}

func TestFileDigest_MissingFile(t *testing.T) {
	_, err := FileDigest(filepath.Join(t.TempDir(), "gone"))
	assert.Error(t, err)
}
