// Package controller provides output adapters for displaying mutation generation results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/reconmut/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	// ModeStatic prints results once and returns.
	ModeStatic StartMode = iota
	// ModeList shows the candidate list and waits for the user to close it.
	ModeList
	// ModeGenerate follows materialization progress.
	ModeGenerate
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithListMode sets the UI to candidate listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithGenerateMode sets the UI to materialization mode.
func WithGenerateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeGenerate
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying scan and materialization results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayScanFailures(ctx context.Context, failures []m.ScanFailure)
	DisplayMutations(ctx context.Context, mutations []m.Mutation)
	DisplaySummary(ctx context.Context, summary m.Summary)
	DisplayMaterializeStart(ctx context.Context, strategy m.Strategy, total int)
	DisplayMaterializeProgress(ctx context.Context, done, total int)
	DisplayMaterializeResult(ctx context.Context, result m.MaterializeResult)
	DisplayDiff(ctx context.Context, mutation m.Mutation, diff string)
	DisplayPatched(ctx context.Context, mutation m.Mutation, reverted bool)
}

// NewUI returns the TUI for interactive terminals and the SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
