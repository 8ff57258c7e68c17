package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "gooze.dev/pkg/reconmut/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display. List and
// generate modes run a Bubble Tea program; every other output is rendered once
// with lipgloss styles.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	mode    StartMode
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin}
}

// Start launches the Bubble Tea program for the requested mode.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("ui already started")
	}

	t.mode = cfg.mode

	switch cfg.mode {
	case ModeList:
		t.run(ctx, newListModel(), tea.WithAltScreen(), tea.WithInput(t.input))
	case ModeGenerate:
		t.run(ctx, newGenerateModel(), tea.WithInput(nil))
	case ModeStatic:
	}

	return nil
}

func (t *TUI) run(ctx context.Context, model tea.Model, options ...tea.ProgramOption) {
	options = append([]tea.ProgramOption{tea.WithOutput(t.output), tea.WithContext(ctx)}, options...)
	program := tea.NewProgram(model, options...)
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("TUI program stopped", "error", err)
		}
	}()

	t.program = program
	t.done = done
}

// Close stops the running program and waits for its final render.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done, mode := t.program, t.done, t.mode
	t.program = nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	if mode == ModeGenerate {
		program.Send(finishMsg{})
	} else {
		program.Quit()
	}

	<-done
}

// Wait blocks until the user closes an interactive list.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done, mode := t.done, t.mode
	t.mu.Unlock()

	if done == nil || mode != ModeList {
		return
	}

	select {
	case <-ctx.Done():
	case <-done:
	}
}

// send delivers msg to the running program and reports whether one was running.
func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// DisplayScanFailures reports skipped files.
func (t *TUI) DisplayScanFailures(ctx context.Context, failures []m.ScanFailure) {
	if ctx.Err() != nil || len(failures) == 0 || t.send(scanFailuresMsg{failures: failures}) {
		return
	}

	for _, failure := range failures {
		t.printf("%s skipped %s: %v\n", warningStyle.Render("!"), failure.File, failure.Err)
	}
}

// DisplayMutations shows the candidate list.
func (t *TUI) DisplayMutations(ctx context.Context, mutations []m.Mutation) {
	if ctx.Err() != nil || t.send(mutationsMsg{mutations: mutations}) {
		return
	}

	t.printf("\n%s", renderMutationTable(mutations))
}

// DisplaySummary shows per-type counts.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if ctx.Err() != nil || t.send(summaryMsg{summary: summary}) {
		return
	}

	t.printf("%s\n", renderSummaryBox(summary))
}

// DisplayMaterializeStart resets the progress bar.
func (t *TUI) DisplayMaterializeStart(ctx context.Context, strategy m.Strategy, total int) {
	if ctx.Err() != nil || t.send(materializeStartMsg{strategy: strategy, total: total}) {
		return
	}

	t.printf("Materializing %s mutation(s) with the %s strategy\n",
		accentStyle.Render(fmt.Sprintf("%d", total)), accentStyle.Render(string(strategy)))
}

// DisplayMaterializeProgress advances the progress bar.
func (t *TUI) DisplayMaterializeProgress(ctx context.Context, done, total int) {
	if ctx.Err() != nil {
		return
	}

	t.send(materializeProgressMsg{done: done, total: total})
}

// DisplayMaterializeResult shows failures and the manifest location.
func (t *TUI) DisplayMaterializeResult(ctx context.Context, result m.MaterializeResult) {
	if ctx.Err() != nil || t.send(materializeResultMsg{result: result}) {
		return
	}

	for _, failure := range result.Failures {
		t.printf("%s %s: %v\n", errorStyle.Render("failed"), failure.Mutation.Name(), failure.Err)
	}

	if result.Manifest != "" {
		t.printf("%s\n", mutedStyle.Render("Manifest: "+string(result.Manifest)))
	}
}

// DisplayDiff prints a colored unified diff.
func (t *TUI) DisplayDiff(ctx context.Context, mutation m.Mutation, diff string) {
	if ctx.Err() != nil {
		return
	}

	t.printf("%s %s %s\n",
		accentStyle.Render(mutation.Name()),
		string(mutation.Type),
		mutedStyle.Render("("+mutation.Pattern+") "+mutation.Description))
	t.printf("%s", colorizeDiff(diff))
}

// DisplayPatched confirms an in-place apply or revert.
func (t *TUI) DisplayPatched(ctx context.Context, mutation m.Mutation, reverted bool) {
	if ctx.Err() != nil {
		return
	}

	verb := addedStyle.Render("applied")
	if reverted {
		verb = removedStyle.Render("reverted")
	}

	t.printf("%s %s (%s) at %s\n", verb, accentStyle.Render(mutation.Name()), mutation.Pattern, location(mutation))
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}

func colorizeDiff(diff string) string {
	lines := strings.SplitAfter(diff, "\n")

	var b strings.Builder

	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		newline := line[len(body):]

		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			b.WriteString(mutedStyle.Render(body))
		case strings.HasPrefix(body, "+"):
			b.WriteString(addedStyle.Render(body))
		case strings.HasPrefix(body, "-"):
			b.WriteString(removedStyle.Render(body))
		case strings.HasPrefix(body, "@@"):
			b.WriteString(accentStyle.Render(body))
		default:
			b.WriteString(body)
		}

		b.WriteString(newline)
	}

	return b.String()
}
