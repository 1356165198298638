package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pystats/internal/config"
	"pystats/internal/version"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pystats",
		Short: "Annotation coverage and suppression statistics for Python codebases",
	}
	dbPath     string
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Path to the run history database (SQLite); overrides the config file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the configuration file")

	rootCmd.AddCommand(statisticsCmd)
	rootCmd.AddCommand(historyCmd)
}

// historyDBPath picks the history database path, preferring the --db flag.
func historyDBPath(cfg *config.Config) string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.History.Path
}
