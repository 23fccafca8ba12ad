package railfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseChunk reads the lines of one byte range into a partial Dataset.
// Metadata lines, comments, and lines with too few columns are dropped
// silently. A later occurrence of a key overwrites an earlier one within the
// chunk, so the physically last line wins.
func ParseChunk(path string, rng Range, cols Columns) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Seek(rng.Start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek %s: %w", path, err)
	}

	data := make(Dataset)
	maxCol := cols.maxIndex()
	r := bufio.NewReader(f)
	pos := rng.Start
	for pos < rng.End {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			pos += int64(len(line))
			parseLine(data, line, cols, maxCol)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return data, nil
}

// parseLine applies the skip rules and, if the line survives them, inserts
// one record into data.
func parseLine(data Dataset, line string, cols Columns, maxCol int) {
	line = strings.TrimRight(line, "\n")
	if line == "" || line[0] == '#' || line[0] == '\r' {
		return
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	if IsMetadataKeyword(fields[0]) {
		return
	}
	if len(fields) <= maxCol {
		return
	}

	parts := make([]string, 0, len(cols.Instance))
	for _, idx := range cols.Instance {
		parts = append(parts, fields[idx])
	}
	key := strings.Join(parts, KeySeparator)
	data[key] = ParseValue(fields[cols.Value])
}
