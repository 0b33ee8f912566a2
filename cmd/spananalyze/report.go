package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hdlforge/spanalyze/cmd/spananalyze/internal/fixture"
	"github.com/hdlforge/spanalyze/pkg/hdlval"
	"github.com/hdlforge/spanalyze/span"
)

func init() {
	rootCmd.AddCommand(newReportCmd())
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <fixture.json>",
		Short: "Analyze a fixture and print the synthesized concatenation",
		Long: `report runs the same analysis as the analyze command and then
folds the finalized partition into a single concatenation expression,
printing it as an indented expression tree.

Example:
  spananalyze report testdata/unsized_span.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args)
		},
	}
	return cmd
}

func runReport(args []string) error {
	if err := checkArgs(args, 1, "spananalyze report <fixture.json>"); err != nil {
		return err
	}
	fixturePath := args[0]

	printVerbose("Loading fixture: %s\n", fixturePath)
	loaded, err := fixture.Load(fixturePath)
	if err != nil {
		return fmt.Errorf("failed to load fixture: %w", err)
	}

	concat, err := span.CreateConcatFromSpans(loaded.SpanType, loaded.Indices, loaded.Sem, loaded.Others, nil)
	if err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{"concat": renderValueFlat(concat)})
	}

	printInfo("\nSynthesized concatenation:\n")
	printTreeText(concat, 1)
	return nil
}

// reportRow is the JSON shape of one partition entry.
type reportRow struct {
	Kind  string `json:"kind"`
	Min   uint64 `json:"min"`
	Max   uint64 `json:"max"`
	Value string `json:"value"`
}

// reportSummary is the JSON shape the analyze command prints.
type reportSummary struct {
	Entries      int         `json:"entries"`
	MaxBound     uint64      `json:"maxBound"`
	AllSpecified bool        `json:"allSpecified"`
	AllOthers    bool        `json:"allOthers"`
	Partition    []reportRow `json:"partition"`
}

func reportOf(result span.Result) reportSummary {
	entries := result.Entries()
	rows := make([]reportRow, len(entries))
	for i, e := range entries {
		rows[i] = reportRow{
			Kind:  e.Index.Kind().String(),
			Min:   e.Index.Min(),
			Max:   e.Index.Max(),
			Value: renderValueFlat(e.Value),
		}
	}
	return reportSummary{
		Entries:      result.Map.Len(),
		MaxBound:     result.MaxBound,
		AllSpecified: result.AllSpecified,
		AllOthers:    result.AllOthers,
		Partition:    rows,
	}
}

// printPartitionText renders the finalized partition as a table, one
// row per entry in ascending key order.
func printPartitionText(result span.Result) {
	for _, e := range result.Entries() {
		printInfo("  [%3d:%3d] %-10s = %s\n", e.Index.Min(), e.Index.Max(), e.Index.Kind(), renderValueFlat(e.Value))
	}
}

// printTreeText recursively prints a Value expression, one operand per
// indented line, descending through concat/cast nodes it recognizes.
func printTreeText(v hdlval.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := v.(type) {
	case interface{ ConcatOperands() (hdlval.Value, hdlval.Value) }:
		printInfo("%s++\n", indent)
		a, b := n.ConcatOperands()
		printTreeText(a, depth+1)
		printTreeText(b, depth+1)
	case interface{ CastOperand() hdlval.Value }:
		printInfo("%scast(\n", indent)
		printTreeText(n.CastOperand(), depth+1)
		printInfo("%s)\n", indent)
	default:
		printInfo("%s%s\n", indent, renderValueFlat(v))
	}
}

// renderValueFlat renders a Value as a single-line expression, the
// JSON-safe counterpart to printTreeText's indented walk.
func renderValueFlat(v hdlval.Value) string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind() {
	case hdlval.KindIntValue:
		iv := v.(hdlval.IntValue)
		return strconv.FormatInt(iv.IntVal(), 10)
	case hdlval.KindMember:
		m := v.(hdlval.Member)
		return fmt.Sprintf("%s[%s]", renderValueFlat(m.Prefix()), renderValueFlat(m.Index()))
	case hdlval.KindSlice:
		s := v.(hdlval.Slice)
		return fmt.Sprintf("%s%s", renderValueFlat(s.Prefix()), renderRange(s.Span()))
	case hdlval.KindRange:
		return renderRange(v.(hdlval.RangeExpr))
	default:
		if cv, ok := v.(*fixture.ConcatNode); ok {
			a, b := cv.ConcatOperands()
			return fmt.Sprintf("(%s ++ %s)", renderValueFlat(a), renderValueFlat(b))
		}
		if cv, ok := v.(*fixture.CastNode); ok {
			return fmt.Sprintf("cast(%s)", renderValueFlat(cv.CastOperand()))
		}
		if av, ok := v.(*fixture.AggregateNode); ok {
			return fmt.Sprintf("(others => %s)", renderValueFlat(av.Others))
		}
		if cv, ok := v.(fixture.ConstVal); ok {
			return cv.Name
		}
		if vr, ok := v.(*fixture.Var); ok {
			return vr.Name
		}
		return fmt.Sprintf("<%s>", v.Kind())
	}
}

func renderRange(r hdlval.RangeExpr) string {
	return fmt.Sprintf("[%s %s %s]", renderValueFlat(r.Left()), r.Direction(), renderValueFlat(r.Right()))
}
