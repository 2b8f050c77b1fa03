package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogWriter_JSON(t *testing.T) {
	t.Setenv("ENV", "")

	var buf bytes.Buffer
	l := NewSlogWriter(&buf, InfoLevel, false)
	l.With("run_id", "abc").Info("scan step", "step", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "scan step", rec["msg"])
	assert.Equal(t, "abc", rec["run_id"])
	assert.InDelta(t, 3, rec["step"], 0)
	assert.Contains(t, rec, "ts")
}

func TestSlogWriter_Level(t *testing.T) {
	t.Setenv("ENV", "")

	var buf bytes.Buffer
	l := NewSlogWriter(&buf, WarnLevel, false)
	assert.Equal(t, WarnLevel, l.Level())

	l.Info("dropped")
	assert.Zero(t, buf.Len())

	l.SetLevel(DebugLevel)
	assert.Equal(t, DebugLevel, l.Level())
	l.Debug("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Level
	}{
		{"debug", "debug", DebugLevel},
		{"info", "INFO", InfoLevel},
		{"warning", "warning", WarnLevel},
		{"error", "error", ErrorLevel},
		{"fatal", "fatal", FatalLevel},
		{"unknown falls back", "verbose", InfoLevel},
		{"empty falls back", "", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in, InfoLevel))
		})
	}
}

func TestSlogWriter_WithSharesLevel(t *testing.T) {
	t.Setenv("ENV", "")

	var buf bytes.Buffer
	parent := NewSlogWriter(&buf, ErrorLevel, false)
	child := parent.With("axis", "x")

	child.Info("dropped")
	assert.Zero(t, buf.Len())

	parent.SetLevel(InfoLevel)
	assert.Equal(t, InfoLevel, child.Level())
	child.Info("kept")
	assert.Contains(t, buf.String(), `"axis":"x"`)
}

func TestSetLogger(t *testing.T) {
	orig := GetLogger()
	t.Cleanup(func() { SetLogger(orig) })

	m := NewMockLogger().Permissive()
	SetLogger(m)
	SetLogger(nil)
	assert.Same(t, m, GetLogger())

	Info("hello", "k", 1)
	assert.Same(t, m, With("k", 2))
	m.AssertCalled(t, "Info", "hello", []any{"k", 1})
	m.AssertCalled(t, "With", []any{"k", 2})
}
