package railfile

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_ResultIndependentOfWorkerCount(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("VERSION 2.1\n")
	sb.WriteString("DESIGN top\n")
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&sb, "inst_%03d net%d 1 %d.%d\n", i, i%4, i, i%10)
	}
	sb.WriteString("# trailing comment\n")
	path := writeTempFile(t, sb.String())
	cols := Columns{Instance: []int{0, 1}, Value: 3}

	reference, err := LoadFile(context.Background(), path, cols, 1)
	require.NoError(t, err)
	require.Len(t, reference, 500)

	for _, workers := range []int{2, 3, 5, 8, 32} {
		got, err := LoadFile(context.Background(), path, cols, workers)
		require.NoError(t, err)
		assert.Equal(t, reference, got, "workers=%d changed the merged dataset", workers)
	}
}

func TestLoadFile_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "")

	data, err := LoadFile(context.Background(), path, Columns{Instance: []int{0}, Value: 1}, 4)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLoadFile_MissingFileFails(t *testing.T) {
	_, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "gone.txt"),
		Columns{Instance: []int{0}, Value: 1}, 2)
	assert.Error(t, err)
}

func TestLoadFile_InvalidColumnsRejected(t *testing.T) {
	path := writeTempFile(t, "U1 0 1 10\n")

	_, err := LoadFile(context.Background(), path, Columns{Instance: []int{-1}, Value: 3}, 1)
	assert.Error(t, err)

	_, err = LoadFile(context.Background(), path, Columns{Instance: []int{0}, Value: -2}, 1)
	assert.Error(t, err)

	_, err = LoadFile(context.Background(), path, Columns{}, 1)
	assert.Error(t, err)
}

func TestLoadFile_DuplicateKeyLastOccurrenceWins(t *testing.T) {
	// Many lines so the duplicates land in different chunks; the physically
	// last occurrence must win for any worker count.
	var sb strings.Builder
	sb.WriteString("dup 0 1 1\n")
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&sb, "filler_%03d 0 1 %d\n", i, i)
	}
	sb.WriteString("dup 0 1 2\n")
	path := writeTempFile(t, sb.String())
	cols := Columns{Instance: []int{0}, Value: 3}

	for _, workers := range []int{1, 2, 4, 8} {
		data, err := LoadFile(context.Background(), path, cols, workers)
		require.NoError(t, err)
		assert.Equal(t, 2.0, data["dup"].Number, "workers=%d", workers)
	}
}

func TestLoadFile_DefaultWorkerCount(t *testing.T) {
	path := writeTempFile(t, "U1 0 1 10\n")

	data, err := LoadFile(context.Background(), path, Columns{Instance: []int{0}, Value: 3}, 0)
	require.NoError(t, err)
	assert.Len(t, data, 1)
}
