package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"raildiff/core/reconcile"
)

// WriteComparisonCSV writes one row per comparison record in the format
// consumed by the downstream report tooling:
//
//	Key,Value_<file1>,Value_<file2>,Difference,Deviation_Match
//
// Numeric rows carry the difference and a percent deviation; an undefined
// deviation (zero file-2 value) is rendered as the literal token "inf".
// Non-numeric rows carry "N/A" and a YES/NO equality verdict.
func WriteComparisonCSV(w io.Writer, file1, file2 string, comps []reconcile.Comparison) error {
	cw := csv.NewWriter(w)

	header := []string{"Key", "Value_" + file1, "Value_" + file2, "Difference", "Deviation_Match"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, c := range comps {
		row := []string{c.Key, c.Raw1, c.Raw2, "", ""}
		switch c.Deviation {
		case reconcile.DeviationNumeric:
			row[3] = formatFloat(c.Difference)
			row[4] = formatFloat(c.Percent) + "%"
		case reconcile.DeviationInfinite:
			row[3] = formatFloat(c.Difference)
			row[4] = "inf"
		case reconcile.DeviationNotApplicable:
			row[3] = "N/A"
			if c.StringsEqual {
				row[4] = "YES"
			} else {
				row[4] = "NO"
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", c.Key, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteComparisonFile writes the comparison CSV to path.
func WriteComparisonFile(path, file1, file2 string, comps []reconcile.Comparison) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteComparisonCSV(f, file1, file2, comps); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
