package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "gooze.dev/pkg/reconmut/internal/model"
)

type mutationDelegate struct{}

func (d mutationDelegate) Height() int  { return 1 }
func (d mutationDelegate) Spacing() int { return 0 }
func (d mutationDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d mutationDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	mi, ok := item.(mutationItem)
	if !ok {
		return
	}

	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(5).Align(lipgloss.Right)
	typeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Width(15)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	if index == lm.Index() {
		idStyle = idStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		typeStyle = typeStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		textStyle = textStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	}

	text := fmt.Sprintf("%s:%d  %s", mi.mutation.File, mi.mutation.Line, mi.mutation.MutatedText)
	width := lm.Width() - 22

	_, _ = fmt.Fprintf(w, "%s  %s %s",
		idStyle.Render(fmt.Sprintf("%d", mi.mutation.ID)),
		typeStyle.Render(string(mi.mutation.Type)),
		textStyle.Render(truncateToWidth(text, width)),
	)
}

// listModel shows the candidate list of a scan.
type listModel struct {
	width    int
	height   int
	list     list.Model
	summary  *m.Summary
	warnings int
	rendered bool
}

func newListModel() listModel {
	mutationList := list.New([]list.Item{}, mutationDelegate{}, 80, 20)
	mutationList.SetShowPagination(false)
	mutationList.SetShowFilter(true)
	mutationList.SetShowHelp(false)
	mutationList.SetShowTitle(false)
	mutationList.SetShowStatusBar(false)
	mutationList.FilterInput.Placeholder = "Filter by type, pattern or file…"

	return listModel{list: mutationList}
}

func (lm listModel) Init() tea.Cmd {
	return nil
}

func (lm listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		lm.width = msg.Width
		lm.height = msg.Height

	case tea.KeyMsg:
		if lm.list.FilterState() != list.Filtering && (msg.String() == "q" || msg.String() == "ctrl+c") {
			return lm, tea.Quit
		}

		lm.list, cmd = lm.list.Update(msg)

	case mutationsMsg:
		items := make([]list.Item, 0, len(msg.mutations))
		for _, mutation := range msg.mutations {
			items = append(items, mutationItem{mutation: mutation})
		}

		cmd = lm.list.SetItems(items)
		lm.rendered = true

	case scanFailuresMsg:
		lm.warnings += len(msg.failures)

	case summaryMsg:
		summary := msg.summary
		lm.summary = &summary

	case finishMsg:
		return lm, tea.Quit
	}

	return lm, cmd
}

func (lm listModel) View() string {
	if !lm.rendered {
		return "Scanning controllers…\n"
	}

	total := len(lm.list.Items())
	if lm.summary != nil {
		total = lm.summary.Total
	}

	header := summaryStyle.Render(fmt.Sprintf(
		"Mutations: %s   Skipped files: %s",
		accentStyle.Render(fmt.Sprintf("%d", total)),
		accentStyle.Render(fmt.Sprintf("%d", lm.warnings)),
	))

	listHeight := lm.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := lm.width - 6
	if listWidth < 40 {
		listWidth = 74
	}

	lm.list.SetHeight(listHeight)
	lm.list.SetWidth(listWidth)

	footer := mutedStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🧬 reconmut candidates"),
		header,
		boxStyle.Render(lm.list.View()),
		footer,
	)
}
