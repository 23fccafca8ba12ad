package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"raildiff/core/config"
	"raildiff/core/history"
	"raildiff/core/logger"
	"raildiff/core/railfile"
	"raildiff/core/reconcile"
	"raildiff/core/report"
	"raildiff/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	compareFile1        string
	compareInstCols1    string
	compareValCol1      int
	compareFile2        string
	compareInstCols2    string
	compareValCol2      int
	compareOutputPrefix string
	compareWorkers      int
	compareFetch        bool
	compareUpload       bool
	compareNoHistory    bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two rail report files",
	Long: `Compare two rail report files instance by instance.

Instances are identified by one or more key columns; the value column of
each matched instance is compared numerically (difference and percent
deviation) or, for non-numeric values, by string equality. Results go to
<prefix>comparison.csv and <prefix>missing_instances.txt.

Examples:
  # Same layout in both files, key in column 0, value in column 3
  raildiff compare --file1 a.rpt --file2 b.rpt --instcol1 0 --valcol1 3 --instcol2 0 --valcol2 3

  # Composite key from columns 0 and 1
  raildiff compare --file1 a.rpt --file2 b.rpt --instcol1 0,1 --valcol1 4 --instcol2 0,1 --valcol2 4

  # Inputs live in object storage
  raildiff compare --fetch --file1 runs/a.rpt --file2 runs/b.rpt --instcol1 0 --valcol1 3 --instcol2 0 --valcol2 3`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareFile1, "file1", "", "First input file (or object name with --fetch)")
	compareCmd.Flags().StringVar(&compareInstCols1, "instcol1", "0", "Comma-separated key column indexes in file 1")
	compareCmd.Flags().IntVar(&compareValCol1, "valcol1", 1, "Value column index in file 1")
	compareCmd.Flags().StringVar(&compareFile2, "file2", "", "Second input file (or object name with --fetch)")
	compareCmd.Flags().StringVar(&compareInstCols2, "instcol2", "0", "Comma-separated key column indexes in file 2")
	compareCmd.Flags().IntVar(&compareValCol2, "valcol2", 1, "Value column index in file 2")
	compareCmd.Flags().StringVar(&compareOutputPrefix, "output-prefix", "", "Prefix for the output file names")
	compareCmd.Flags().IntVar(&compareWorkers, "workers", 0, "Parallel chunk parsers per file (0 = one per CPU)")
	compareCmd.Flags().BoolVar(&compareFetch, "fetch", false, "Fetch the input files from object storage")
	compareCmd.Flags().BoolVar(&compareUpload, "upload", false, "Upload the reports to object storage")
	compareCmd.Flags().BoolVar(&compareNoHistory, "no-history", false, "Skip recording this run in the history database")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	started := time.Now()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	// Missing file flags fall back to an interactive prompt so the tool can
	// be driven without remembering the flag names.
	if compareFile1 == "" {
		compareFile1 = promptLine("First file to compare: ")
	}
	if compareFile2 == "" {
		compareFile2 = promptLine("Second file to compare: ")
	}
	if compareFile1 == "" || compareFile2 == "" {
		return fmt.Errorf("both input files are required")
	}

	cols1, err := buildColumns(compareInstCols1, compareValCol1)
	if err != nil {
		return fmt.Errorf("file 1 columns: %w", err)
	}
	cols2, err := buildColumns(compareInstCols2, compareValCol2)
	if err != nil {
		return fmt.Errorf("file 2 columns: %w", err)
	}

	prefix := compareOutputPrefix
	if prefix == "" {
		prefix = cfg.Compare.OutputPrefix
	}
	workers := compareWorkers
	if workers == 0 {
		workers = cfg.Compare.Workers
	}

	// Remote inputs are pulled into a scratch directory first; everything
	// downstream works on local paths.
	path1, path2 := compareFile1, compareFile2
	var client storage.Client
	if compareFetch || compareUpload {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		ok, err := client.BucketExists(ctx, cfg.Storage.Bucket)
		if err != nil {
			return fmt.Errorf("check bucket %s: %w", cfg.Storage.Bucket, err)
		}
		if !ok {
			return fmt.Errorf("bucket %s does not exist", cfg.Storage.Bucket)
		}
	}
	if compareFetch {
		dir, err := os.MkdirTemp("", "raildiff-fetch-")
		if err != nil {
			return fmt.Errorf("create scratch dir: %w", err)
		}
		defer os.RemoveAll(dir)

		l.Info("Fetching inputs from storage", zap.String("bucket", cfg.Storage.Bucket))
		if path1, err = storage.Fetch(ctx, client, cfg.Storage.Bucket, compareFile1, dir); err != nil {
			return err
		}
		if path2, err = storage.Fetch(ctx, client, cfg.Storage.Bucket, compareFile2, dir); err != nil {
			return err
		}
	}

	l.Info("Loading files",
		zap.String("file1", path1),
		zap.String("file2", path2),
		zap.Int("workers", workers),
	)

	data1, err := railfile.LoadFile(ctx, path1, cols1, workers)
	if err != nil {
		return fmt.Errorf("load %s: %w", path1, err)
	}
	data2, err := railfile.LoadFile(ctx, path2, cols2, workers)
	if err != nil {
		return fmt.Errorf("load %s: %w", path2, err)
	}

	res := reconcile.Reconcile(data1, data2)
	summary := reconcile.Summarize(res, len(data1), len(data2))

	l.Info("Reconciliation complete",
		zap.Int("keys1", summary.Keys1),
		zap.Int("keys2", summary.Keys2),
		zap.Int("matched", summary.Matched),
		zap.Int("missing_from_2", summary.MissingFrom2),
		zap.Int("missing_from_1", summary.MissingFrom1),
	)

	name1 := filepath.Base(path1)
	name2 := filepath.Base(path2)
	csvPath, missingPath := report.Paths(prefix)

	if len(res.Matched) > 0 {
		comps, err := reconcile.BuildComparisons(res.Matched, data1, data2)
		if err != nil {
			return err
		}
		if err := report.WriteComparisonFile(csvPath, name1, name2, comps); err != nil {
			return err
		}
		l.Info("Comparison written", zap.String("path", csvPath))
	} else {
		l.Warn("No matching instances; comparison CSV not written")
	}

	if err := report.WriteMissingFile(missingPath, name1, name2, res); err != nil {
		return err
	}
	l.Info("Missing-instance report written", zap.String("path", missingPath))

	if compareUpload {
		l.Info("Uploading reports to storage", zap.String("bucket", cfg.Storage.Bucket))
		if len(res.Matched) > 0 {
			if err := storage.Upload(ctx, client, cfg.Storage.Bucket, csvPath, csvPath); err != nil {
				return err
			}
		}
		if err := storage.Upload(ctx, client, cfg.Storage.Bucket, missingPath, missingPath); err != nil {
			return err
		}
	}

	if cfg.History.Enabled && !compareNoHistory {
		recordRun(ctx, l, cfg.History, summary, path1, path2, time.Since(started))
	}

	return nil
}

// recordRun persists the run summary. Failures are logged and swallowed;
// history is bookkeeping, not part of the comparison result.
func recordRun(ctx context.Context, l *zap.Logger, cfg history.Config, summary reconcile.Summary, path1, path2 string, elapsed time.Duration) {
	store, err := history.Open(cfg)
	if err != nil {
		l.Warn("History database unavailable, run not recorded", zap.Error(err))
		return
	}

	digest1, err := history.FileDigest(path1)
	if err != nil {
		l.Warn("Digest failed", zap.String("path", path1), zap.Error(err))
	}
	digest2, err := history.FileDigest(path2)
	if err != nil {
		l.Warn("Digest failed", zap.String("path", path2), zap.Error(err))
	}

	run := &history.Run{
		File1:        path1,
		File2:        path2,
		Digest1:      digest1,
		Digest2:      digest2,
		Keys1:        summary.Keys1,
		Keys2:        summary.Keys2,
		Matched:      summary.Matched,
		MissingFrom2: summary.MissingFrom2,
		MissingFrom1: summary.MissingFrom1,
		DurationMS:   elapsed.Milliseconds(),
	}
	if err := store.Record(ctx, run); err != nil {
		l.Warn("Failed to record run", zap.Error(err))
		return
	}
	l.Info("Run recorded", zap.String("id", run.ID))
}

// buildColumns parses the instance column list and assembles the column
// layout for one file.
func buildColumns(instCols string, valCol int) (railfile.Columns, error) {
	instance, err := parseColumnList(instCols)
	if err != nil {
		return railfile.Columns{}, err
	}
	cols := railfile.Columns{Instance: instance, Value: valCol}
	if err := cols.Validate(); err != nil {
		return railfile.Columns{}, err
	}
	return cols, nil
}

// parseColumnList parses a comma-separated list of non-negative column
// indexes, e.g. "0,1".
func parseColumnList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("column list is empty")
	}
	parts := strings.Split(s, ",")
	cols := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid column index %q", p)
		}
		if n < 0 {
			return nil, fmt.Errorf("column index must be non-negative, got %d", n)
		}
		cols = append(cols, n)
	}
	return cols, nil
}

// promptLine reads one trimmed line from stdin.
func promptLine(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
