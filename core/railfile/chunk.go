package railfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Range is a contiguous byte range [Start, End) of an input file. Every
// range produced by PlanChunks ends exactly at a line terminator, except the
// final one which ends at end-of-file.
type Range struct {
	Start int64
	End   int64
}

// PlanChunks divides the file at path into up to workers non-overlapping
// byte ranges whose union covers the whole file. Candidate boundaries are
// extended forward to the next line terminator so that no line is split
// across two ranges. An empty file yields no ranges and no error; the caller
// treats that as an empty dataset, not a failure.
func PlanChunks(path string, workers int) ([]Range, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	size := info.Size()
	if size == 0 {
		return nil, nil
	}
	if workers < 1 {
		workers = 1
	}

	step := size / int64(workers)
	if step == 0 {
		step = 1
	}

	var ranges []Range
	var pos int64
	for i := 0; i < workers && pos < size; i++ {
		start := pos
		end := start + step
		if i == workers-1 || end >= size {
			end = size
		} else {
			end, err = nextLineEnd(f, end, size)
			if err != nil {
				return nil, fmt.Errorf("scan %s: %w", path, err)
			}
		}
		// A boundary landing exactly on a terminator can produce an
		// empty candidate; drop it.
		if start < end {
			ranges = append(ranges, Range{Start: start, End: end})
		}
		pos = end
	}
	return ranges, nil
}

// nextLineEnd returns the offset one past the first line terminator at or
// after off, or size if the last line is unterminated.
func nextLineEnd(f *os.File, off, size int64) (int64, error) {
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return 0, err
	}
	r := bufio.NewReader(f)
	line, err := r.ReadBytes('\n')
	if err == io.EOF {
		return size, nil
	}
	if err != nil {
		return 0, err
	}
	return off + int64(len(line)), nil
}
