package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/reconmut/internal/model"
)

func updateGenerate(t *testing.T, model generateModel, msg tea.Msg) generateModel {
	t.Helper()

	updated, _ := model.Update(msg)

	gm, ok := updated.(generateModel)
	require.True(t, ok)

	return gm
}

func TestGenerateModel_Progress(t *testing.T) {
	model := newGenerateModel()

	model = updateGenerate(t, model, materializeStartMsg{strategy: m.StrategyCopy, total: 4})
	model = updateGenerate(t, model, materializeProgressMsg{done: 1, total: 4})
	model = updateGenerate(t, model, materializeProgressMsg{done: 3, total: 4})
	model = updateGenerate(t, model, materializeProgressMsg{done: 2, total: 4})

	assert.Equal(t, 3, model.done)
	assert.InDelta(t, 0.75, model.percent(), 0.0001)

	view := model.View()
	assert.Contains(t, view, "copy")
	assert.Contains(t, view, "3/4")
}

func TestGenerateModel_ResultAndSummary(t *testing.T) {
	model := newGenerateModel()
	mutation := sampleMutations()[0]

	model = updateGenerate(t, model, scanFailuresMsg{failures: []m.ScanFailure{{File: "bad.go", Err: errors.New("invalid utf-8")}}})
	model = updateGenerate(t, model, materializeResultMsg{result: m.MaterializeResult{
		Strategy: m.StrategyDeferred,
		Manifest: "/work/.reconmut/mutations.json",
		Failures: []m.MutantFailure{{Mutation: mutation, Err: errors.New("boom")}},
	}})
	model = updateGenerate(t, model, summaryMsg{summary: m.Summary{
		Total:  1,
		ByType: map[m.MutationType]int{m.MutationConditionals: 1, m.MutationStatus: 0},
	}})

	view := model.View()
	assert.Contains(t, view, "skipped bad.go")
	assert.Contains(t, view, "failed mutant-001")
	assert.Contains(t, view, "conditionals")
	assert.Contains(t, view, "/work/.reconmut/mutations.json")
	assert.InDelta(t, 1.0, model.percent(), 0.0001)
}

func TestGenerateModel_FinishQuits(t *testing.T) {
	model := newGenerateModel()

	updated, cmd := model.Update(finishMsg{})
	require.NotNil(t, cmd)
	assert.True(t, updated.(generateModel).finished)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestGenerateModel_WindowSize(t *testing.T) {
	model := updateGenerate(t, newGenerateModel(), tea.WindowSizeMsg{Width: 10, Height: 10})
	assert.Equal(t, 20, model.progressBar.Width)

	model = updateGenerate(t, model, tea.WindowSizeMsg{Width: 100, Height: 10})
	assert.Equal(t, 92, model.progressBar.Width)
}

func TestListModel_ShowsMutations(t *testing.T) {
	model := newListModel()
	assert.Contains(t, model.View(), "Scanning")

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated, _ = updated.Update(mutationsMsg{mutations: sampleMutations()})
	updated, _ = updated.Update(summaryMsg{summary: m.Summary{Total: 2}})

	view := updated.View()
	assert.Contains(t, view, "conditionals")
	assert.Contains(t, view, "guestbook_controller.go:12")
	assert.Contains(t, view, "Mutations: 2")
}

func TestListModel_QuitKey(t *testing.T) {
	model := newListModel()

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMutationItem_FilterValue(t *testing.T) {
	item := mutationItem{mutation: sampleMutations()[1]}
	assert.Equal(t, "requeue requeue-disabled internal/controller/guestbook_controller.go", item.FilterValue())
}

func TestTUI_StaticOutput(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx))
	ui.DisplayMutations(ctx, sampleMutations())
	ui.DisplayDiff(ctx, sampleMutations()[0], "--- a/x.go\n+++ b/x.go\n@@ -1 +1 @@\n-if a == b {\n+if a != b {\n")
	ui.DisplayPatched(ctx, sampleMutations()[0], false)
	ui.Wait(ctx)
	ui.Close(ctx)

	output := out.String()
	assert.Contains(t, output, "equal-to-not-equal")
	assert.Contains(t, output, "+if a != b {")
	assert.Contains(t, output, "applied")
}

func TestTUI_GenerateMode(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithGenerateMode()))
	require.Error(t, ui.Start(ctx, WithGenerateMode()))

	ui.DisplayMaterializeStart(ctx, m.StrategyCopy, 2)
	ui.DisplayMaterializeProgress(ctx, 1, 2)
	ui.DisplayMaterializeProgress(ctx, 2, 2)
	ui.DisplayMaterializeResult(ctx, m.MaterializeResult{Strategy: m.StrategyCopy, Manifest: "out/mutations.json"})
	ui.Close(ctx)

	assert.Contains(t, out.String(), "out/mutations.json")
}

func TestColorizeDiff_KeepsLines(t *testing.T) {
	diff := "--- a/x.go\n+++ b/x.go\n@@ -1 +1 @@\n-old\n+new\n ctx\n"
	colored := colorizeDiff(diff)

	assert.Equal(t, 6, bytes.Count([]byte(colored), []byte("\n")))
	assert.Contains(t, colored, "old")
	assert.Contains(t, colored, "new")
}
