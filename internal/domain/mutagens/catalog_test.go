package mutagens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/reconmut/internal/model"
)

func matchedTexts(matches []Match) []string {
	texts := make([]string, 0, len(matches))
	for _, match := range matches {
		texts = append(texts, match.MutatedText)
	}

	return texts
}

func TestCatalog_Conditionals(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{"not equal", "if err != nil {", []string{"if err == nil {"}},
		{
			"several operators",
			"if a == b && c > 0 {",
			[]string{"if a != b && c > 0 {", "if a == b && c >= 0 {", "if a == b || c > 0 {"},
		},
		{"negation", "if !ok {", []string{"if ok {"}},
		{"comment only", "// if a == b {", nil},
		{"channel", "case v := <-ch:", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Match(tt.line, m.MutationConditionals)
			assert.Equal(t, tt.want, nilIfEmpty(matchedTexts(got)))
		})
	}
}

func TestCatalog_ErrorHandling(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name    string
		line    string
		pattern string
		want    string
	}{
		{"error check", "if err != nil {", "error-check-neutralized", "if false && err != nil {"},
		{"named error", "if updateErr != nil {", "error-check-neutralized", "if false && updateErr != nil {"},
		{"not found", "if apierrors.IsNotFound(err) {", "not-found-to-already-exists", "if apierrors.IsAlreadyExists(err) {"},
		{"already exists", "if errors.IsAlreadyExists(err) {", "already-exists-to-not-found", "if errors.IsNotFound(err) {"},
		{"conflict", "if apierrors.IsConflict(err) {", "conflict-to-not-found", "if apierrors.IsNotFound(err) {"},
		{"ignore not found", "return client.IgnoreNotFound(err)", "ignore-not-found-removed", "return err"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Match(tt.line, m.MutationErrorHandling)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.pattern, got[0].Pattern)
			assert.Equal(t, tt.want, got[0].MutatedText)
			assert.Equal(t, m.MutationErrorHandling, got[0].Type)
		})
	}
}

func TestCatalog_ErrorHandling_AlreadyNeutralized(t *testing.T) {
	got := DefaultCatalog().Match("if false && err != nil {", m.MutationErrorHandling)
	assert.Empty(t, got)
}

func TestCatalog_ErrorHandling_Boundaries(t *testing.T) {
	got := DefaultCatalog().Match("if IsNotFoundError(err) {", m.MutationErrorHandling)
	assert.Empty(t, got)
}

func TestCatalog_Returns(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name     string
		line     string
		pattern  string
		want     string
		requires string
	}{
		{"result and err", "\t\treturn ctrl.Result{}, err", "return-error-to-nil", "\t\treturn ctrl.Result{}, nil", ""},
		{"bare err", "return err", "return-error-to-nil", "return nil", ""},
		{"wrapped", `return nil, fmt.Errorf("get: %w", err)`, "return-wrapped-error-to-nil", "return nil, nil", ""},
		{"errors new", `return errors.New("boom")`, "return-wrapped-error-to-nil", "return nil", ""},
		{
			"success",
			"return ctrl.Result{}, nil",
			"return-nil-to-error",
			"return ctrl.Result{}, " + InjectedError,
			"fmt",
		},
		{
			"success with delay",
			"return reconcile.Result{RequeueAfter: time.Minute}, nil",
			"return-nil-to-error",
			"return reconcile.Result{RequeueAfter: time.Minute}, " + InjectedError,
			"fmt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Match(tt.line, m.MutationReturns)
			require.Len(t, got, 1)
			assert.Equal(t, tt.pattern, got[0].Pattern)
			assert.Equal(t, tt.want, got[0].MutatedText)
			assert.Equal(t, tt.requires, got[0].Requires)
		})
	}
}

func TestCatalog_ReturnsWrappedNested(t *testing.T) {
	catalog := DefaultCatalog()

	got := catalog.Match(`return r.record(obj, fmt.Errorf("sync: %w", err))`, m.MutationReturns)
	assert.Empty(t, got)

	got = catalog.Match(`return nil, errors.Wrapf(err, "get (%s)", name) // keep`, m.MutationReturns)
	require.Len(t, got, 1)
	assert.Equal(t, "return nil, nil // keep", got[0].MutatedText)
}

func TestCatalog_Requeue(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{"requeue true", "Requeue: true,", []string{"Requeue: false,"}},
		{"requeue false", "return ctrl.Result{Requeue: false}, nil", nil},
		{
			"requeue after",
			"return ctrl.Result{RequeueAfter: 30 * time.Second}, nil",
			[]string{"return ctrl.Result{RequeueAfter: 0}, nil"},
		},
		{
			"requeue after call",
			"return ctrl.Result{RequeueAfter: r.backoff(obj.Generation)}, nil",
			[]string{"return ctrl.Result{RequeueAfter: 0}, nil"},
		},
		{
			"requeue after inside call",
			"r.schedule(RequeueAfter: d)",
			[]string{"r.schedule(RequeueAfter: 0)"},
		},
		{"requeue after zero", "RequeueAfter: 0,", nil},
		{"empty result", "return ctrl.Result{}, nil", []string{"return ctrl.Result{Requeue: true}, nil"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Match(tt.line, m.MutationRequeue)
			assert.Equal(t, tt.want, nilIfEmpty(matchedTexts(got)))
		})
	}
}

func TestCatalog_Status(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name    string
		line    string
		pattern string
		want    string
	}{
		{"statement", "\tr.Status().Update(ctx, obj)", "status-update-dropped", "\t_ = error(nil)"},
		{
			"if statement",
			"\tif err := r.Status().Update(ctx, &obj); err != nil {",
			"status-update-suppressed",
			"\tif err := error(nil); err != nil {",
		},
		{"return", "return r.Client.Status().Patch(ctx, obj, patch)", "status-update-suppressed", "return error(nil)"},
		{"condition true", "Status: metav1.ConditionTrue,", "condition-true-to-false", "Status: metav1.ConditionFalse,"},
		{"condition false", "Status: corev1.ConditionFalse,", "condition-false-to-true", "Status: corev1.ConditionTrue,"},
		{"flag true", "obj.Status.Ready = true", "status-flag-true-to-false", "obj.Status.Ready = false"},
		{"flag false", "obj.Status.Spec.Paused = false", "status-flag-false-to-true", "obj.Status.Spec.Paused = true"},
		{
			"nested in call",
			"return client.IgnoreNotFound(r.Status().Update(ctx, obj))",
			"status-update-suppressed",
			"return client.IgnoreNotFound(error(nil))",
		},
		{
			"statement with comment",
			"\tr.Status().Patch(ctx, obj, client.MergeFrom(base)) // publish",
			"status-update-dropped",
			"\t_ = error(nil) // publish",
		},
		{
			"assignment",
			"err = r.Status().Update(ctx, withName(obj, \"a)b\"))",
			"status-update-suppressed",
			"err = error(nil)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Match(tt.line, m.MutationStatus)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.pattern, got[0].Pattern)
			assert.Equal(t, tt.want, got[0].MutatedText)
		})
	}
}

func TestCatalog_StatusFlagComparisonIgnored(t *testing.T) {
	got := DefaultCatalog().Match("if obj.Status.Ready == true {", m.MutationStatus)
	assert.Empty(t, got)
}

func TestCatalog_APICalls(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name    string
		line    string
		pattern string
		want    string
	}{
		{
			"get",
			"if err := r.Get(ctx, req.NamespacedName, &obj); err != nil {",
			"get-to-list",
			"if err := r.List(ctx, req.NamespacedName, &obj); err != nil {",
		},
		{"create", "if err := r.Create(ctx, pod); err != nil {", "create-to-update", "if err := r.Update(ctx, pod); err != nil {"},
		{"update", "return r.Update(ctx, obj)", "update-to-create", "return r.Create(ctx, obj)"},
		{
			"patch",
			"if err := r.Patch(ctx, obj, client.MergeFrom(base)); err != nil {",
			"patch-to-update",
			"if err := r.Update(ctx, obj); err != nil {",
		},
		{
			"delete",
			"if err := r.Client.Delete(ctx, &pod); err != nil {",
			"delete-to-update",
			"if err := r.Client.Update(ctx, &pod); err != nil {",
		},
		{"list", "err := r.List(ctx, &pods, client.InNamespace(ns))", "list-to-get", "err := r.Get(ctx, &pods, client.InNamespace(ns))"},
		{
			"nested delete",
			"return client.IgnoreNotFound(r.Delete(ctx, obj, opts))",
			"delete-to-update",
			"return client.IgnoreNotFound(r.Update(ctx, obj))",
		},
		{
			"nested patch",
			"return client.IgnoreNotFound(r.Patch(ctx, obj, patch))",
			"patch-to-update",
			"return client.IgnoreNotFound(r.Update(ctx, obj))",
		},
		{
			"delete with options",
			"if err := r.Delete(ctx, &job, client.PropagationPolicy(metav1.DeletePropagationBackground)); err != nil {",
			"delete-to-update",
			"if err := r.Update(ctx, &job); err != nil {",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Match(tt.line, m.MutationAPICalls)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.pattern, got[0].Pattern)
			assert.Equal(t, tt.want, got[0].MutatedText)
		})
	}
}

func TestCatalog_APICalls_StatusWriterIgnored(t *testing.T) {
	got := DefaultCatalog().Match("if err := r.Status().Update(ctx, obj); err != nil {", m.MutationAPICalls)
	assert.Empty(t, got)
}

func TestCatalog_OrderFollowsTypePriority(t *testing.T) {
	line := "if err := r.Get(ctx, key, &obj); err != nil {"
	got := DefaultCatalog().Match(line, m.MutationAPICalls, m.MutationConditionals, m.MutationErrorHandling)

	require.Len(t, got, 3)
	assert.Equal(t, m.MutationConditionals, got[0].Type)
	assert.Equal(t, m.MutationErrorHandling, got[1].Type)
	assert.Equal(t, m.MutationAPICalls, got[2].Type)
}

func TestCatalog_WithKeepsOriginal(t *testing.T) {
	base := DefaultCatalog()
	extended := base.With(TokenOperator("policy", m.MutationAPICalls, "", "Policy", "PolicyList"))

	assert.Equal(t, base.Len()+1, extended.Len())
	assert.Empty(t, base.Match("p := &v1.Policy{}", m.MutationAPICalls))
	assert.Len(t, extended.Match("p := &v1.Policy{}", m.MutationAPICalls), 1)
	assert.Empty(t, extended.Match("l := &v1.PolicyList{}", m.MutationAPICalls))
}

func TestFromDefinition(t *testing.T) {
	t.Run("token", func(t *testing.T) {
		op, err := FromDefinition(m.OperatorDefinition{Name: "kind", Type: "api-calls", From: "Policy", To: "PolicyList"})
		require.NoError(t, err)
		assert.Equal(t, "kind", op.Description)

		_, ok := op.Apply("x := &v1.PolicyList{}")
		assert.False(t, ok)
	})

	t.Run("pattern", func(t *testing.T) {
		op, err := FromDefinition(m.OperatorDefinition{
			Name:        "finalizer",
			Type:        "Status",
			Pattern:     `\bcontrollerutil\.AddFinalizer\(`,
			Replacement: "controllerutil.RemoveFinalizer(",
			Skip:        `RemoveFinalizer`,
			Requires:    "sigs.k8s.io/controller-runtime/pkg/controller/controllerutil",
		})
		require.NoError(t, err)
		assert.Equal(t, m.MutationStatus, op.Type)
		assert.NotNil(t, op.Skip)

		got, ok := op.Apply("controllerutil.AddFinalizer(obj, name)")
		assert.True(t, ok)
		assert.Equal(t, "controllerutil.RemoveFinalizer(obj, name)", got)
	})

	errorCases := []struct {
		name string
		def  m.OperatorDefinition
	}{
		{"missing name", m.OperatorDefinition{Type: "status", From: "a", To: "b"}},
		{"unknown type", m.OperatorDefinition{Name: "x", Type: "arithmetic", From: "a", To: "b"}},
		{"no rule", m.OperatorDefinition{Name: "x", Type: "status"}},
		{"both rules", m.OperatorDefinition{Name: "x", Type: "status", From: "a", Pattern: "a"}},
		{"bad pattern", m.OperatorDefinition{Name: "x", Type: "status", Pattern: "("}},
		{"bad skip", m.OperatorDefinition{Name: "x", Type: "status", From: "a", To: "b", Skip: "("}},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromDefinition(tc.def)
			assert.Error(t, err)
		})
	}
}

func TestFromDefinitions_StopsAtFirstError(t *testing.T) {
	ops, err := FromDefinitions([]m.OperatorDefinition{
		{Name: "ok", Type: "requeue", From: "a", To: "b"},
		{Name: "broken", Type: "nope", From: "a", To: "b"},
	})
	assert.Error(t, err)
	assert.Nil(t, ops)
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}

	return s
}
