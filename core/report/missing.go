package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"raildiff/core/reconcile"
)

const banner = "============================================================"

// WriteMissing writes the banner-delimited missing-instance report: first
// the keys present only in file 1, then the keys present only in file 2.
func WriteMissing(w io.Writer, file1, file2 string, res reconcile.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, banner)
	fmt.Fprintf(bw, "Instances missing from %s:\n", file2)
	fmt.Fprintln(bw, banner)
	for _, key := range res.MissingFrom2 {
		fmt.Fprintln(bw, key)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, banner)
	fmt.Fprintf(bw, "Instances missing from %s:\n", file1)
	fmt.Fprintln(bw, banner)
	for _, key := range res.MissingFrom1 {
		fmt.Fprintln(bw, key)
	}

	return bw.Flush()
}

// WriteMissingFile writes the missing-instance report to path.
func WriteMissingFile(path, file1, file2 string, res reconcile.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteMissing(f, file1, file2, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Paths derives the comparison and missing-instance output paths for a run
// prefix. An empty prefix yields the bare default file names.
func Paths(prefix string) (csvPath, missingPath string) {
	prefix = strings.TrimSpace(prefix)
	return prefix + "comparison.csv", prefix + "missing_instances.txt"
}
