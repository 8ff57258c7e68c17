package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "gooze.dev/pkg/reconmut/internal/model"
)

// generateModel follows a materialization run.
type generateModel struct {
	width       int
	strategy    m.Strategy
	total       int
	done        int
	progressBar progress.Model
	warnings    []string
	summary     *m.Summary
	result      *m.MaterializeResult
	finished    bool
}

func newGenerateModel() generateModel {
	return generateModel{
		progressBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
		),
	}
}

func (gm generateModel) Init() tea.Cmd {
	return nil
}

func (gm generateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		gm.width = msg.Width

		gm.progressBar.Width = msg.Width - 8
		if gm.progressBar.Width < 20 {
			gm.progressBar.Width = 20
		}

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return gm, tea.Quit
		}

	case scanFailuresMsg:
		for _, failure := range msg.failures {
			gm.warnings = append(gm.warnings, fmt.Sprintf("skipped %s: %v", failure.File, failure.Err))
		}

	case materializeStartMsg:
		gm.strategy = msg.strategy
		gm.total = msg.total
		gm.done = 0

	case materializeProgressMsg:
		gm.total = msg.total
		if msg.done > gm.done {
			gm.done = msg.done
		}

	case materializeResultMsg:
		result := msg.result
		gm.result = &result

		for _, failure := range result.Failures {
			gm.warnings = append(gm.warnings, fmt.Sprintf("failed %s (%s:%d): %v",
				failure.Mutation.Name(), failure.Mutation.File, failure.Mutation.Line, failure.Err))
		}

	case summaryMsg:
		summary := msg.summary
		gm.summary = &summary

	case finishMsg:
		gm.finished = true
		return gm, tea.Quit
	}

	return gm, nil
}

func (gm generateModel) percent() float64 {
	if gm.total == 0 {
		if gm.result != nil {
			return 1
		}

		return 0
	}

	return float64(gm.done) / float64(gm.total)
}

func (gm generateModel) View() string {
	sections := []string{titleStyle.Render("🧬 reconmut")}

	if gm.strategy != "" {
		sections = append(sections, summaryStyle.Render(fmt.Sprintf(
			"Strategy: %s   Mutants: %s",
			accentStyle.Render(string(gm.strategy)),
			accentStyle.Render(fmt.Sprintf("%d/%d", gm.done, gm.total)),
		)))
		sections = append(sections, "  "+gm.progressBar.ViewAs(gm.percent()))
	}

	if len(gm.warnings) > 0 {
		lines := make([]string, 0, len(gm.warnings))
		for _, warning := range gm.warnings {
			lines = append(lines, warningStyle.Render("! ")+warning)
		}

		sections = append(sections, "", strings.Join(lines, "\n"))
	}

	if gm.summary != nil {
		sections = append(sections, "", renderSummaryBox(*gm.summary))
	}

	if gm.result != nil && gm.result.Manifest != "" {
		sections = append(sections, mutedStyle.Render("  Manifest: "+string(gm.result.Manifest)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func renderSummaryBox(summary m.Summary) string {
	lines := make([]string, 0, len(summary.ByType)+2)

	for _, row := range summaryRows(summary) {
		count := fmt.Sprintf("%6d", row.count)
		if row.count == 0 {
			count = mutedStyle.Render(count)
		} else {
			count = accentStyle.Render(count)
		}

		lines = append(lines, fmt.Sprintf("%-16s%s", row.mutationType, count))
	}

	lines = append(lines, mutedStyle.Render(strings.Repeat("─", 22)))
	lines = append(lines, fmt.Sprintf("%-16s%6d", "total", summary.Total))

	return boxStyle.Render(strings.Join(lines, "\n"))
}
