// sfmc is the operator CLI: search puzzles by id, render grids in the
// terminal, classify accuracy ratios, and list symbol sets. It shares the
// server's config and wiring but runs one-shot commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sfmc",
	Short: "Mission Control puzzle console tools",
	Long: `sfmc operates on the Officer Academy puzzle catalog: it searches the
analytics and title-data stores for puzzles, renders ARC grids in the
terminal, and classifies AI accuracy into difficulty bands.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(worstCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
