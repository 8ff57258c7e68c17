package controller

import (
	m "gooze.dev/pkg/reconmut/internal/model"
)

// Message types.
type scanFailuresMsg struct {
	failures []m.ScanFailure
}

type mutationsMsg struct {
	mutations []m.Mutation
}

type summaryMsg struct {
	summary m.Summary
}

type materializeStartMsg struct {
	strategy m.Strategy
	total    int
}

type materializeProgressMsg struct {
	done  int
	total int
}

type materializeResultMsg struct {
	result m.MaterializeResult
}

type finishMsg struct{}

// List item types.
type mutationItem struct {
	mutation m.Mutation
}

func (i mutationItem) FilterValue() string {
	return string(i.mutation.Type) + " " + i.mutation.Pattern + " " + string(i.mutation.File)
}
