package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"raildiff/core/config"
	"raildiff/core/logger"
	"raildiff/core/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	mergeInputDir  string
	mergePrefix    string
	mergeOutPrefix string
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge per-shard comparison outputs",
	Long: `Merge per-shard comparison CSVs and missing-instance reports into
single files. Shards partition the key space, so the merge is a plain
concatenation keeping one CSV header. Inputs are discovered in the input
directory by their run prefix and merged in sorted (shard) order.

Example:
  # Merges shards/s*_comparison.csv and shards/s*_missing_instances.txt
  raildiff merge --input-dir shards --prefix s --output-prefix full_`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVar(&mergeInputDir, "input-dir", ".", "Directory holding the per-shard outputs")
	mergeCmd.Flags().StringVar(&mergePrefix, "prefix", "", "Run prefix the per-shard outputs were written with")
	mergeCmd.Flags().StringVar(&mergeOutPrefix, "output-prefix", "merged_", "Prefix for the merged file names")

	RootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	csvInputs, err := findShardOutputs(mergeInputDir, mergePrefix+"*comparison.csv")
	if err != nil {
		return err
	}
	missingInputs, err := findShardOutputs(mergeInputDir, mergePrefix+"*missing_instances.txt")
	if err != nil {
		return err
	}
	if len(csvInputs) == 0 && len(missingInputs) == 0 {
		return fmt.Errorf("no shard outputs matching prefix %q in %s", mergePrefix, mergeInputDir)
	}

	csvPath, missingPath := report.Paths(mergeOutPrefix)

	if len(csvInputs) > 0 {
		if err := report.MergeComparisonCSVs(csvPath, csvInputs); err != nil {
			return err
		}
		l.Info("Merged comparison written",
			zap.String("path", csvPath),
			zap.Int("inputs", len(csvInputs)),
		)
	}

	if len(missingInputs) > 0 {
		if err := report.MergeMissingReports(missingPath, missingInputs); err != nil {
			return err
		}
		l.Info("Merged missing-instance report written",
			zap.String("path", missingPath),
			zap.Int("inputs", len(missingInputs)),
		)
	}

	return nil
}

// findShardOutputs globs dir for per-shard output files and returns them
// sorted, so the merge order is stable across runs.
func findShardOutputs(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}
