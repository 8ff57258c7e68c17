package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/reconmut/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayScanFailures prints one warning per skipped file.
func (s *SimpleUI) DisplayScanFailures(ctx context.Context, failures []m.ScanFailure) {
	if ctx.Err() != nil {
		return
	}

	for _, failure := range failures {
		s.printf("warning: skipped %s: %v\n", failure.File, failure.Err)
	}
}

// DisplayMutations prints the candidate list as a table.
func (s *SimpleUI) DisplayMutations(ctx context.Context, mutations []m.Mutation) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n%s", renderMutationTable(mutations))
}

func renderMutationTable(mutations []m.Mutation) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Type", "Pattern", "Location", "Mutated"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, mutation := range mutations {
		table.Append([]string{
			strconv.FormatUint(uint64(mutation.ID), 10),
			string(mutation.Type),
			mutation.Pattern,
			location(mutation),
			mutation.MutatedText,
		})
	}

	table.SetFooter([]string{"", "", "", "Total", strconv.Itoa(len(mutations))})
	table.Render()

	return tableBuffer.String()
}

// DisplaySummary prints the per-type counts.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(summary))
}

func renderSummaryTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Type", "Mutations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, row := range summaryRows(summary) {
		table.Append([]string{string(row.mutationType), strconv.Itoa(row.count)})
	}

	table.SetFooter([]string{"Total", strconv.Itoa(summary.Total)})
	table.Render()

	return tableBuffer.String()
}

// DisplayMaterializeStart announces the materialization run.
func (s *SimpleUI) DisplayMaterializeStart(ctx context.Context, strategy m.Strategy, total int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Materializing %d mutation(s) with the %s strategy\n", total, strategy)
}

// DisplayMaterializeProgress prints progress roughly every tenth of the run.
func (s *SimpleUI) DisplayMaterializeProgress(ctx context.Context, done, total int) {
	if ctx.Err() != nil || total == 0 {
		return
	}

	step := total / 10
	if step < 1 {
		step = 1
	}

	if done == total || done%step == 0 {
		s.printf("Materialized %d/%d\n", done, total)
	}
}

// DisplayMaterializeResult prints where the artifacts were written.
func (s *SimpleUI) DisplayMaterializeResult(ctx context.Context, result m.MaterializeResult) {
	if ctx.Err() != nil {
		return
	}

	if result.Strategy == m.StrategyCopy {
		s.printf("Wrote %d mutant(s) to %s\n", len(result.Mutants), result.Output)
	}

	for _, failure := range result.Failures {
		s.printf("failed: %s (%s:%d): %v\n", failure.Mutation.Name(), failure.Mutation.File, failure.Mutation.Line, failure.Err)
	}

	if result.Manifest != "" {
		s.printf("Manifest: %s\n", result.Manifest)
	}
}

// DisplayDiff prints a unified diff of one mutation.
func (s *SimpleUI) DisplayDiff(ctx context.Context, mutation m.Mutation, diff string) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s %s (%s) %s\n", mutation.Name(), mutation.Type, mutation.Pattern, mutation.Description)
	s.printf("%s", diff)
}

// DisplayPatched confirms an in-place apply or revert.
func (s *SimpleUI) DisplayPatched(ctx context.Context, mutation m.Mutation, reverted bool) {
	if ctx.Err() != nil {
		return
	}

	verb := "Applied"
	if reverted {
		verb = "Reverted"
	}

	s.printf("%s %s (%s) at %s\n", verb, mutation.Name(), mutation.Pattern, location(mutation))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func location(mutation m.Mutation) string {
	return fmt.Sprintf("%s:%d", mutation.File, mutation.Line)
}

type summaryRow struct {
	mutationType m.MutationType
	count        int
}

// summaryRows orders the summary by catalog type order.
func summaryRows(summary m.Summary) []summaryRow {
	rows := make([]summaryRow, 0, len(summary.ByType))

	for _, mutationType := range m.AllMutationTypes {
		count, ok := summary.ByType[mutationType]
		if !ok {
			continue
		}

		rows = append(rows, summaryRow{mutationType: mutationType, count: count})
	}

	return rows
}
