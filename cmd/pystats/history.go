package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pystats/internal/config"
	"pystats/internal/storage"
)

var (
	historyLimit int

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Show recent recorded statistics runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context())
		},
	}
)

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of runs to show")
}

func runHistory(ctx context.Context) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	store, err := storage.NewRunStore(historyDBPath(cfg))
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	header := color.New(color.Bold)
	for _, run := range runs {
		header.Printf("#%d  %s  %s\n", run.ID, run.CreatedAt.Format(time.RFC3339), run.Root)
		data, err := json.Marshal(run.Report)
		if err != nil {
			return fmt.Errorf("marshal run %d: %w", run.ID, err)
		}
		fmt.Println(string(data))
	}
	return nil
}
