package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hdlforge/spanalyze/cmd/spananalyze/internal/applog"
	"github.com/hdlforge/spanalyze/cmd/spananalyze/internal/fixture"
	"github.com/hdlforge/spanalyze/span"
)

func init() {
	rootCmd.AddCommand(newAnalyzeCmd())
}

func newAnalyzeCmd() *cobra.Command {
	var (
		noPrefixCollapse bool
		noAllOthers      bool
	)
	cmd := &cobra.Command{
		Use:   "analyze <fixture.json>",
		Short: "Analyze a span fixture and print its canonical partition",
		Long: `analyze loads a span type and partial index assignment from a
JSON fixture file, runs it through categorization, merging, and
refinement, and reports the resulting minimal partition.

Example:
  spananalyze analyze testdata/adjacent_members.json
  spananalyze analyze testdata/adjacent_members.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args, noPrefixCollapse, noAllOthers)
		},
	}
	cmd.Flags().BoolVar(&noPrefixCollapse, "no-prefix-collapse", false, "Skip prefix-collapse refinement")
	cmd.Flags().BoolVar(&noAllOthers, "no-all-others", false, "Skip all-others collapse refinement")
	return cmd
}

func runAnalyze(args []string, noPrefixCollapse, noAllOthers bool) error {
	if err := checkArgs(args, 1, "spananalyze analyze <fixture.json>"); err != nil {
		return err
	}
	fixturePath := args[0]

	printVerbose("Loading fixture: %s\n", fixturePath)
	loaded, err := fixture.Load(fixturePath)
	if err != nil {
		return fmt.Errorf("failed to load fixture: %w", err)
	}

	opts := &span.Options{
		Logger:                applog.L,
		DisablePrefixCollapse: noPrefixCollapse,
		DisableAllOthers:      noAllOthers,
	}

	result, err := span.AnalyzeSpans(loaded.SpanType, loaded.Indices, loaded.Sem, loaded.Others, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if jsonOut {
		return printJSON(reportOf(result))
	}

	printInfo("\nSpan Analysis:\n")
	printInfo("  Fixture: %s\n", fixturePath)
	printInfo("  Entries: %d\n", result.Map.Len())
	printInfo("  Max bound: %d\n", result.MaxBound)
	printInfo("  All specified: %t\n", result.AllSpecified)
	printInfo("  Collapsed to all-others: %t\n", result.AllOthers)
	printInfo("\nPartition:\n")
	printPartitionText(result)

	return nil
}
