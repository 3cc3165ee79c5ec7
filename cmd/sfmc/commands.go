package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/cache"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/config"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/difficulty"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/display"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/infrastructure/analytics"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/infrastructure/content"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/infrastructure/titledata"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/ports"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/search"
	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/symbols"
)

var (
	renderMode string
	renderSet  string
	worstLimit int
)

type toolkit struct {
	cfg       *config.Config
	registry  *symbols.Registry
	resolver  *display.Resolver
	searcher  *search.Searcher
	content   *content.Store
	analytics *analytics.Client
	closers   []func() error
}

func (t *toolkit) close() {
	for _, c := range t.closers {
		_ = c()
	}
}

// buildToolkit wires the same component graph the server uses.
func buildToolkit() (*toolkit, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	t := &toolkit{cfg: cfg}
	t.registry = symbols.NewRegistry(logger)
	t.resolver = display.NewResolver(t.registry)
	t.content = content.NewStore(cfg.ContentDir)

	var titles ports.TitleData
	if cfg.TitleData.LocalDB != "" {
		local, err := titledata.OpenLocal(cfg.TitleData.LocalDB, cfg.TitleData.Namespace)
		if err != nil {
			return nil, err
		}
		t.closers = append(t.closers, local.Close)
		titles = local
	} else {
		titles = titledata.NewRemote(cfg.TitleData.BaseURL, cfg.TitleData.SecretKey, cfg.TitleData.Namespace, cfg.TitleDataTimeout())
	}
	t.analytics = analytics.New(cfg.Analytics.BaseURL, cfg.AnalyticsTimeout())
	t.searcher = search.New(t.analytics, titles, cache.New(cfg.CacheTTL()), cfg.BatchCounts(), logger)
	return t, nil
}

var searchCmd = &cobra.Command{
	Use:   "search [id]",
	Short: "Locate a puzzle by bare or namespaced id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildToolkit()
		if err != nil {
			return err
		}
		defer t.close()
		res := t.searcher.ByID(cmd.Context(), args[0])
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render [dataset] [bareId]",
	Short: "Render a puzzle's grids in the terminal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildToolkit()
		if err != nil {
			return err
		}
		defer t.close()
		dataset, err := domain.ParseDataset(args[0])
		if err != nil {
			return err
		}
		rec, err := t.content.Puzzle(cmd.Context(), dataset, args[1])
		if err != nil {
			return err
		}
		mode := domain.ParseDisplayMode(renderMode)
		for i, pair := range rec.Train {
			fmt.Printf("train %d\n", i+1)
			if err := printPair(t.resolver, pair, mode, renderSet); err != nil {
				return err
			}
		}
		for i, pair := range rec.Test {
			fmt.Printf("test %d\n", i+1)
			if err := printPair(t.resolver, pair, mode, renderSet); err != nil {
				return err
			}
		}
		return nil
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify [accuracy]",
	Short: "Map an AI accuracy ratio to a difficulty band",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		acc, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("accuracy must be a number: %w", err)
		}
		band, err := difficulty.Classify(acc)
		if err != nil {
			return err
		}
		fmt.Printf("%s (struggling=%v)\n", band, difficulty.IsStruggling(acc))
		return nil
	},
}

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List the registered symbol sets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := symbols.NewRegistry(logger)
		for _, info := range reg.List() {
			set, _ := reg.Lookup(info.ID)
			fmt.Printf("%-16s %-18s %s\n", info.ID, info.Name, info.Description)
			for _, g := range set.Glyphs {
				fmt.Printf("%s ", g)
			}
			fmt.Println()
		}
		return nil
	},
}

var worstCmd = &cobra.Command{
	Use:   "worst",
	Short: "List the puzzles AI models struggle with most",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildToolkit()
		if err != nil {
			return err
		}
		defer t.close()
		records, err := t.analytics.WorstPerforming(cmd.Context(), worstLimit, "")
		if err != nil {
			return err
		}
		for _, rec := range records {
			band := "-"
			if rec.Performance != nil {
				if b, err := difficulty.Classify(rec.Performance.AvgAccuracy); err == nil {
					band = string(b)
				}
			}
			acc := 0.0
			if rec.Performance != nil {
				acc = rec.Performance.AvgAccuracy
			}
			fmt.Printf("%-20s acc=%.3f %s\n", rec.ID, acc, band)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderMode, "mode", "hybrid", "display mode: numeric|symbolic|hybrid")
	renderCmd.Flags().StringVar(&renderSet, "set", symbols.DefaultSetID, "symbol set id")
	worstCmd.Flags().IntVar(&worstLimit, "limit", 20, "maximum puzzles to list")
}
