package cmd

import (
	"context"
	"fmt"

	"raildiff/core/config"
	"raildiff/core/history"
	"raildiff/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent comparison runs",
	Long:  `List the most recent comparison runs recorded in the history database.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")

	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	store, err := history.Open(cfg.History)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}

	runs, err := store.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		l.Info("No runs recorded yet")
		return nil
	}

	for _, r := range runs {
		l.Info("Run",
			zap.String("id", r.ID),
			zap.Time("at", r.CreatedAt),
			zap.String("file1", r.File1),
			zap.String("file2", r.File2),
			zap.Int("matched", r.Matched),
			zap.Int("missing_from_2", r.MissingFrom2),
			zap.Int("missing_from_1", r.MissingFrom1),
			zap.Int64("duration_ms", r.DurationMS),
		)
	}
	return nil
}
