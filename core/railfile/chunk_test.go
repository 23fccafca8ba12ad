package railfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPlanChunks_PartitionsFile(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString("inst")
		sb.WriteString(strings.Repeat("x", i%7))
		sb.WriteString(" 0 1 42.5\n")
	}
	content := sb.String()
	path := writeTempFile(t, content)

	for _, workers := range []int{1, 2, 3, 4, 8, 16} {
		ranges, err := PlanChunks(path, workers)
		require.NoError(t, err)
		require.NotEmpty(t, ranges)
		assert.LessOrEqual(t, len(ranges), workers)

		// Ranges are contiguous and cover the whole file.
		assert.Equal(t, int64(0), ranges[0].Start)
		for i := 1; i < len(ranges); i++ {
			assert.Equal(t, ranges[i-1].End, ranges[i].Start)
		}
		assert.Equal(t, int64(len(content)), ranges[len(ranges)-1].End)

		// Every non-final boundary sits just past a line terminator.
		for i := 0; i < len(ranges)-1; i++ {
			end := ranges[i].End
			assert.Equal(t, byte('\n'), content[end-1],
				"workers=%d range %d does not end on a line terminator", workers, i)
		}

		// Concatenating the ranges reproduces the file exactly.
		var rebuilt strings.Builder
		for _, rng := range ranges {
			rebuilt.WriteString(content[rng.Start:rng.End])
		}
		assert.Equal(t, content, rebuilt.String())
	}
}

func TestPlanChunks_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "")

	ranges, err := PlanChunks(path, 4)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestPlanChunks_MoreWorkersThanBytes(t *testing.T) {
	path := writeTempFile(t, "a 1\nb 2\n")

	ranges, err := PlanChunks(path, 64)
	require.NoError(t, err)
	require.NotEmpty(t, ranges)
	assert.Equal(t, int64(0), ranges[0].Start)
	assert.Equal(t, int64(8), ranges[len(ranges)-1].End)
}

func TestPlanChunks_UnterminatedLastLine(t *testing.T) {
	content := "a 1\nb 2\nc 3"
	path := writeTempFile(t, content)

	ranges, err := PlanChunks(path, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), ranges[len(ranges)-1].End)
}

func TestPlanChunks_MissingFile(t *testing.T) {
	_, err := PlanChunks(filepath.Join(t.TempDir(), "nope.txt"), 2)
	assert.Error(t, err)
}
