package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pystats/internal/collector"
	"pystats/internal/config"
	"pystats/internal/crawler"
	"pystats/internal/report"
	"pystats/internal/storage"
	"pystats/internal/syntax"
)

var (
	localConfiguration string
	recordRun          bool

	statisticsCmd = &cobra.Command{
		Use:   "statistics [filter-paths...]",
		Short: "Collect annotation and fixme statistics for a Python source tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatistics(cmd.Context(), args)
		},
	}
)

func init() {
	statisticsCmd.Flags().StringVarP(&localConfiguration, "local-configuration", "l", "",
		"Local configuration path; the base directory is derived from it")
	statisticsCmd.Flags().BoolVar(&recordRun, "record", false,
		"Persist this run to the history database")
}

func runStatistics(ctx context.Context, filters []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	paths, err := crawler.FindPaths(localConfiguration, filters)
	if err != nil {
		return err
	}

	c := crawler.NewCrawler(syntax.NewParser(), cfg.Analysis.Extension)
	trees, err := c.ParsePaths(paths)
	if err != nil {
		return err
	}

	annotations := collector.Run(trees, collector.NewAnnotationCollector())
	fixmes := collector.Run(trees, collector.NewFixmeCollector(cfg.Analysis.FixmeMarker))

	rep := report.Assemble(annotations, fixmes)
	if err := report.NewJSONSink(os.Stdout).Emit(rep); err != nil {
		return err
	}

	if recordRun || cfg.History.Record {
		store, err := storage.NewRunStore(historyDBPath(cfg))
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer store.Close()
		if err := store.SaveRun(ctx, paths[0], rep); err != nil {
			return err
		}
	}
	return nil
}
