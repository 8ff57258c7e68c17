package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/reconmut/internal/adapter"
	"gooze.dev/pkg/reconmut/internal/domain/mutagens"
	m "gooze.dev/pkg/reconmut/internal/model"
)

const guestbookController = `package controller

import (
	"context"
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Reconcile compares desired and observed state.
func (r *GuestbookReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var gb Guestbook
	if err := r.Get(ctx, req.NamespacedName, &gb); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if gb.Spec.Replicas == 0 && gb.Spec.Paused {
		return ctrl.Result{Requeue: true}, nil
	}

	if err := r.Create(ctx, &gb); client.IgnoreNotFound(err) != nil {
		return ctrl.Result{}, fmt.Errorf("create guestbook: %w", err)
	}

	gb.Status.Ready = true
	meta.SetStatusCondition(&gb.Status.Conditions, metav1.Condition{Status: metav1.ConditionTrue})
	if err := r.Status().Update(ctx, &gb); err != nil {
		return ctrl.Result{}, err
	}

	return ctrl.Result{RequeueAfter: time.Minute}, nil
}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}

func newTestMutagen() Mutagen {
	return NewMutagen(adapter.NewLocalGoFileAdapter(), adapter.NewLocalSourceFSAdapter(), mutagens.Catalog{})
}

// newOperatorRepo lays out a small operator repository and returns its root.
func newOperatorRepo(t *testing.T, files map[string]string) m.Path {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/guestbook\n\ngo 1.22\n")

	for name, content := range files {
		writeFile(t, filepath.Join(root, filepath.FromSlash(name)), content)
	}

	return m.Path(root)
}

type candidateKey struct {
	file    m.Path
	line    int
	pattern string
	mutated string
}

func candidateKeys(mutations []m.Mutation) []candidateKey {
	keys := make([]candidateKey, 0, len(mutations))
	for _, mutation := range mutations {
		keys = append(keys, candidateKey{mutation.File, mutation.Line, mutation.Pattern, mutation.MutatedText})
	}

	return keys
}
