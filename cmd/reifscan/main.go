package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"reifscan/internal/analysis"
	"reifscan/internal/catalog"
	"reifscan/internal/config"
	"reifscan/internal/logging"
	"reifscan/internal/session"
)

var (
	// Global flags
	configPath  string
	catalogPath string
	debug       bool

	// Wired in PersistentPreRunE
	engine *analysis.Engine
	sess   *session.Session
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "reifscan",
	Short: "reifscan - reified metaphor scanner",
	Long: `reifscan analyzes short text statements for reified metaphors:
abstract terms (boundaries, intelligence, safety, ...) treated as fixed
constants rather than context-dependent variables.

For each detected term it reports the functional (variable) framing,
traces the dependency chain it forces, scores institutional entropy,
and can rewrite the statement with functional forms substituted.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if debug {
			cfg.Logging.Debug = true
		}
		if err := logging.Initialize(cfg.Logging.Debug); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		builder := catalog.DefaultBuilder()
		extra := catalogPath
		if extra == "" {
			extra = cfg.Catalog.ExtensionPath
		}
		if extra != "" {
			if err := builder.LoadYAMLFile(extra); err != nil {
				return err
			}
		}

		engine = analysis.New(builder.Build())
		sess = session.New(engine)
		logging.CLI("session %s ready (%d metaphors)", sess.ID, engine.Catalog().Len())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

// analyzeCmd runs the full six-phase analysis
var analyzeCmd = &cobra.Command{
	Use:   "analyze <statement>",
	Short: "Run the full analysis over a statement",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		statement := strings.Join(args, " ")
		report := sess.FullAnalysis(statement)
		renderReport(cmd.OutOrStdout(), report, engine.Restate(statement, report.Metaphors))
		return nil
	},
}

// scoreCmd prints the entropy report only
var scoreCmd = &cobra.Command{
	Use:   "score <statement>",
	Short: "Compute the entropy report for a statement",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		statement := strings.Join(args, " ")
		renderEntropy(cmd.OutOrStdout(), engine.Score(statement))
		return nil
	},
}

// restateCmd rewrites a statement with functional forms
var restateCmd = &cobra.Command{
	Use:   "restate <statement>",
	Short: "Rewrite a statement, substituting functional forms",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		statement := strings.Join(args, " ")
		matches := engine.Detect(statement)
		fmt.Fprintln(cmd.OutOrStdout(), engine.Restate(statement, matches))
		return nil
	},
}

// traceCmd shows the dependency chain for a term
var traceCmd = &cobra.Command{
	Use:   "trace <term>",
	Short: "Trace the dependency chain of a catalog term",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trace, ok := engine.TraceChain(args[0])
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "no dependency chain recorded for %q\n", args[0])
			return nil
		}
		renderTrace(cmd.OutOrStdout(), trace)
		return nil
	},
}

// catalogCmd groups catalog introspection
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the metaphor catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog terms in insertion order",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, term := range engine.Catalog().Terms() {
			entry, _ := engine.Catalog().Get(term)
			fmt.Fprintf(cmd.OutOrStdout(), "%-15s %s -> %s\n", term, entry.ReifiedAs, entry.FunctionalForm)
		}
		return nil
	},
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := engine.Catalog().Stats()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "metaphors: %d\n", stats.TotalMetaphors)
		fmt.Fprintf(out, "chains:    %d\n", stats.TotalChains)
		fmt.Fprintf(out, "avg forces per chain: %.2f\n", stats.AvgForcesPerChain)
		return nil
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Find terms by institutional-function keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches := engine.Catalog().FindByFunctionKeyword(args[0])
		if len(matches) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no matches")
			return nil
		}
		for _, term := range matches {
			fmt.Fprintln(cmd.OutOrStdout(), term)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .reifscan/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog extension YAML file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	catalogCmd.AddCommand(catalogListCmd, catalogStatsCmd, catalogSearchCmd)
	rootCmd.AddCommand(analyzeCmd, scoreCmd, restateCmd, traceCmd, catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
