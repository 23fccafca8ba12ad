package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// MergeComparisonCSVs concatenates per-shard comparison CSVs into one file,
// keeping a single header row. Shard comparisons are independent, so plain
// concatenation of their data rows is a complete merge.
func MergeComparisonCSVs(outPath string, inputs []string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}

	cw := csv.NewWriter(out)
	wroteHeader := false
	for _, in := range inputs {
		if err := appendComparisonCSV(cw, in, &wroteHeader); err != nil {
			out.Close()
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func appendComparisonCSV(cw *csv.Writer, path string, wroteHeader *bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	first := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if first {
			first = false
			if *wroteHeader {
				continue
			}
			*wroteHeader = true
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write merged row: %w", err)
		}
	}
}

// MergeMissingReports concatenates per-shard missing-instance reports into
// one file, separated by blank lines.
func MergeMissingReports(outPath string, inputs []string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}

	for i, in := range inputs {
		f, err := os.Open(in)
		if err != nil {
			out.Close()
			return fmt.Errorf("open %s: %w", in, err)
		}
		if i > 0 {
			if _, err := io.WriteString(out, "\n"); err != nil {
				f.Close()
				out.Close()
				return err
			}
		}
		if _, err := io.Copy(out, f); err != nil {
			f.Close()
			out.Close()
			return fmt.Errorf("copy %s: %w", in, err)
		}
		f.Close()
	}
	return out.Close()
}
