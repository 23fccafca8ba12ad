package shard

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/xxh3"
)

// maxLineSize bounds the scanner buffer; rail report lines are short, but a
// pathological input should fail loudly rather than truncate.
const maxLineSize = 1 << 20

// Split distributes the data lines of the file at path across n shard files
// in outDir, assigning each line by the xxh3 hash of its instance key so
// that every occurrence of a key lands in the same shard. Shard pairs built
// this way can be compared independently and their outputs merged.
//
// Empty lines, comment lines, and lines too short to yield a key are
// dropped, matching the legacy sharder. Returns the shard file paths in
// shard-index order.
func Split(path string, keyCols []int, n int, outDir string) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("shard count must be at least 1, got %d", n)
	}
	if len(keyCols) == 0 {
		return nil, fmt.Errorf("at least one key column is required")
	}
	maxCol := 0
	for _, c := range keyCols {
		if c < 0 {
			return nil, fmt.Errorf("key column index must be non-negative, got %d", c)
		}
		if c > maxCol {
			maxCol = c
		}
	}

	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", outDir, err)
	}

	base := filepath.Base(path)
	paths := make([]string, n)
	writers := make([]*bufio.Writer, n)
	files := make([]*os.File, n)
	for i := range files {
		paths[i] = filepath.Join(outDir, fmt.Sprintf("%s_shard_%d.txt", base, i))
		f, err := os.Create(paths[i])
		if err != nil {
			closeAll(files[:i], writers[:i])
			return nil, fmt.Errorf("create %s: %w", paths[i], err)
		}
		files[i] = f
		writers[i] = bufio.NewWriter(f)
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, ok := instanceKey(trimmed, keyCols, maxCol)
		if !ok {
			continue
		}
		idx := int(xxh3.HashString(key) % uint64(n))
		if _, err := writers[idx].WriteString(line); err != nil {
			closeAll(files, writers)
			return nil, fmt.Errorf("write shard %d: %w", idx, err)
		}
		if err := writers[idx].WriteByte('\n'); err != nil {
			closeAll(files, writers)
			return nil, fmt.Errorf("write shard %d: %w", idx, err)
		}
	}
	if err := scanner.Err(); err != nil {
		closeAll(files, writers)
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	for i := range files {
		if err := writers[i].Flush(); err != nil {
			closeAll(files, writers)
			return nil, fmt.Errorf("flush %s: %w", paths[i], err)
		}
		if err := files[i].Close(); err != nil {
			return nil, fmt.Errorf("close %s: %w", paths[i], err)
		}
		files[i] = nil
	}
	return paths, nil
}

// instanceKey joins the key-column tokens with '_', mirroring the legacy
// sharder. ok is false when the line has too few columns.
func instanceKey(line string, keyCols []int, maxCol int) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) <= maxCol {
		return "", false
	}
	parts := make([]string, 0, len(keyCols))
	for _, c := range keyCols {
		parts = append(parts, fields[c])
	}
	return strings.Join(parts, "_"), true
}

func closeAll(files []*os.File, writers []*bufio.Writer) {
	for i, f := range files {
		if f == nil {
			continue
		}
		if writers[i] != nil {
			_ = writers[i].Flush()
		}
		_ = f.Close()
	}
}
