package msgtree

import (
	"testing"

	"github.com/golang/mock/gomock"
	mock_msgtree "github.com/loopcontext/msgtree/test/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func diagnosticTree() Tree {
	return Tree{
		"common": Tree{"yes": Leaf("Yes")},
		"link":   Leaf("@.nope:common.yes @:common"),
	}
}

func TestObserver_ReceivesDiagnostics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	obs := mock_msgtree.NewMockObserver(ctrl)
	obs.EXPECT().OnKeyMissing("en", "missing").Times(1)
	obs.EXPECT().OnTypeMismatch("en", "common").Times(2)
	obs.EXPECT().OnUnknownModifier("en", "nope").Times(1)

	r := New(Config{DisableLogging: true, Observer: obs})
	r.SetMessages(diagnosticTree(), "en")

	assert.Equal(t, "missing", r.Translate("missing"))
	assert.Equal(t, "common", r.Translate("common"))
	assert.Equal(t, "Yes @:common", r.Translate("link"))
}

type panickingObserver struct{}

func (panickingObserver) OnKeyMissing(string, string)      { panic("boom") }
func (panickingObserver) OnTypeMismatch(string, string)    { panic("boom") }
func (panickingObserver) OnUnknownModifier(string, string) { panic("boom") }

func TestObserver_PanicIsRecovered(t *testing.T) {
	r := New(Config{DisableLogging: true, Observer: panickingObserver{}})
	r.SetMessages(diagnosticTree(), "en")

	assert.NotPanics(t, func() {
		assert.Equal(t, "missing", r.Translate("missing"))
		assert.Equal(t, "Yes @:common", r.Translate("link"))
	})
	assert.Equal(t, 1, r.SnapshotStats().MissingKeys["en:missing"])
}

func TestLogging_WarnsOnDiagnostics(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	r := New(Config{Logger: zap.New(core)})
	r.SetMessages(diagnosticTree(), "fr")

	r.Translate("missing")
	r.Translate("link")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "localization key missing not found", entries[0].Message)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.Equal(t, "key_missing", entries[0].ContextMap()["kind"])
	assert.Equal(t, "fr", entries[0].ContextMap()["locale"])
	assert.Equal(t, "undefined modifier nope, available modifiers: capitalize, lower, upper", entries[1].Message)
	assert.Equal(t, "resource common is not a string", entries[2].Message)
}

func TestLogging_Disabled(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := New(Config{Logger: zap.New(core), DisableLogging: true})
	r.SetMessages(diagnosticTree(), "en")

	r.Translate("missing")
	r.Pluralize("missing", 3)

	assert.Zero(t, logs.Len())
	assert.Equal(t, 1, r.SnapshotStats().MissingKeys["en:missing"])
}

func TestStats_OverflowAndReset(t *testing.T) {
	r := New(Config{DisableLogging: true, StatsMaxKeys: 3})
	r.SetMessages(Tree{"sub": Tree{}}, "en")

	for _, key := range []string{"a", "b", "c", "d", "a"} {
		r.Translate(key)
	}
	r.Translate("sub")

	stats := r.SnapshotStats()
	assert.Equal(t, map[string]int{"en:a": 2, "en:b": 1, overflowStatKey: 2}, stats.MissingKeys)
	assert.Equal(t, map[string]int{"en:sub": 1}, stats.TypeMismatches)
	assert.Empty(t, stats.UnknownModifiers)

	stats.MissingKeys["en:a"] = 100
	assert.Equal(t, 2, r.SnapshotStats().MissingKeys["en:a"])

	r.ResetStats()
	stats = r.SnapshotStats()
	assert.Empty(t, stats.MissingKeys)
	assert.Empty(t, stats.TypeMismatches)
	assert.True(t, stats.LastMessagesAt.IsZero())
}

func TestStats_NoLocale(t *testing.T) {
	r := New(Config{DisableLogging: true})

	r.Translate("missing")

	assert.Equal(t, map[string]int{"-:missing": 1}, r.SnapshotStats().MissingKeys)
}

func TestDiagnostic_Error(t *testing.T) {
	tests := []struct {
		d    *Diagnostic
		want string
		kind string
	}{
		{newDiagnostic(KeyMissing, "a.b", "ns"), "localization key a.b not found", "key_missing"},
		{newDiagnostic(TypeMismatch, "a", ""), "resource a is not a string", "type_mismatch"},
		{newDiagnostic(UnknownModifier, "neant", "lower, upper"), "undefined modifier neant, available modifiers: lower, upper", "unknown_modifier"},
		{newDiagnostic(UnknownModifier, "neant", ""), "undefined modifier neant", "unknown_modifier"},
		{&Diagnostic{Kind: DiagnosticKind(9), Key: "x"}, "diagnostic(9): x", "diagnostic(9)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var err error = tt.d
			assert.EqualError(t, err, tt.want)
			assert.Equal(t, tt.kind, tt.d.Kind.String())
		})
	}
}
