package plan

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-iterscan/axis"
	"github.com/arloliu/go-iterscan/logger"
	"github.com/arloliu/go-iterscan/scan"
	"github.com/arloliu/go-iterscan/virtual"
)

var quiet = logger.NewSlogWriter(io.Discard, logger.DebugLevel, false)

const linearPlan = `
mode: linear
axes:
  - name: x
    start: 2
    source:
      range: 3
  - name: y
    tolerance: 0.01
    source:
      linspace: {start: 0, stop: 1, intervals: 4}
`

const meshPlan = `
mode: mesh
axes:
  - name: x
    source:
      values: [0, 1]
  - group:
      - name: y
      - name: z
    source:
      points: [[0, 4], [1, 3], [2, 2]]
`

const nestedPlan = `
mode: mesh
axes:
  - name: x
    source:
      values: [0, 1]
  - group:
      - group:
          - name: y
          - name: z
      - name: w
    source:
      points:
        - [[0, 1], 2]
        - [[4, 3], 6]
`

func strs(points [][]axis.Position) [][]string {
	out := make([][]string, len(points))
	for i, pts := range points {
		out[i] = make([]string, len(pts))
		for j, p := range pts {
			out[i][j] = p.String()
		}
	}

	return out
}

func load(t *testing.T, doc string) *Plan {
	t.Helper()

	p, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	return p
}

func build(t *testing.T, p *Plan, reg *virtual.Registry) *scan.Scan {
	t.Helper()

	s, err := p.Build(reg, scan.WithLogger(quiet), scan.WithHooks(scan.DefaultHooks{}))
	require.NoError(t, err)

	return s
}

func TestLoad_Linear(t *testing.T) {
	p := load(t, linearPlan)

	assert.Equal(t, ModeLinear, p.Mode)
	assert.Equal(t, scan.ModeLinear, p.ScanMode())
	assert.Equal(t, []string{"x", "y"}, p.Labels())
	require.NotNil(t, p.Axes[0].Source.Range)
	assert.Equal(t, 3, *p.Axes[0].Source.Range)
	assert.Equal(t, 0.01, p.Axes[1].Tolerance)

	reg := virtual.NewRegistry()
	s := build(t, p, reg)
	assert.Equal(t, []string{"x", "y"}, reg.Names())

	assert.Equal(t, [][]string{{"0", "0"}, {"1", "0.25"}, {"2", "0.5"}}, strs(p.DryRun(context.Background(), s)))

	res := p.Run(context.Background(), s)
	assert.Equal(t, scan.StatusDone, res.Status)
	assert.Equal(t, scan.ModeLinear, res.Mode)
	assert.Equal(t, 3, res.Steps)

	positions, err := reg.Positions()
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 2, "y": 0}, positions, "default hooks restore the start positions")
}

func TestLoad_MeshGroup(t *testing.T) {
	p := load(t, meshPlan)
	assert.Equal(t, scan.ModeMesh, p.ScanMode())
	assert.Equal(t, []string{"x", "(y, z)"}, p.Labels())

	reg := virtual.NewRegistry()
	s := build(t, p, reg)

	want := [][]string{
		{"0", "(0, 4)"}, {"1", "(0, 4)"}, {"0", "(1, 3)"}, {"1", "(1, 3)"}, {"0", "(2, 2)"}, {"1", "(2, 2)"},
	}
	assert.Equal(t, want, strs(p.DryRun(context.Background(), s)))

	res := p.Run(context.Background(), s)
	assert.Equal(t, scan.StatusDone, res.Status)
	assert.Equal(t, scan.ModeMesh, res.Mode)
	assert.Equal(t, 6, res.Steps)
}

func TestLoad_Nested(t *testing.T) {
	p := load(t, nestedPlan)
	assert.Equal(t, []string{"x", "((y, z), w)"}, p.Labels())

	s := build(t, p, virtual.NewRegistry())

	want := [][]string{
		{"0", "((0, 1), 2)"}, {"1", "((0, 1), 2)"}, {"0", "((4, 3), 6)"}, {"1", "((4, 3), 6)"},
	}
	assert.Equal(t, want, strs(p.DryRun(context.Background(), s)))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"empty document", "", "empty document"},
		{"not yaml", "axes: [", ""},
		{"unknown field", "axes:\n  - name: x\n    sped: 2\n    source: {range: 2}\n", "sped"},
		{"bad mode", "mode: spiral\naxes:\n  - name: x\n    source: {range: 2}\n", "spiral"},
		{"no axes", "mode: mesh\n", "no axes"},
		{"missing source", "axes:\n  - name: x\n", "source is required"},
		{"missing name", "axes:\n  - source: {range: 2}\n", "name is required"},
		{"duplicate name", "axes:\n  - name: x\n    source: {range: 2}\n  - name: x\n    source: {range: 2}\n", "duplicate"},
		{"two kinds", "axes:\n  - name: x\n    source: {range: 2, values: [1]}\n", "only one kind"},
		{"no kind", "axes:\n  - name: x\n    source: {}\n", "is required"},
		{"negative range", "axes:\n  - name: x\n    source: {range: -1}\n", "range"},
		{"negative intervals", "axes:\n  - name: x\n    source: {linspace: {start: 0, stop: 1, intervals: -2}}\n", "intervals"},
		{"zero step", "axes:\n  - name: x\n    source: {arange: {start: 0, stop: 1, step: 0}}\n", "step"},
		{"negative speed", "axes:\n  - name: x\n    speed: -1\n    source: {range: 2}\n", "speed"},
		{"member source", "axes:\n  - group:\n      - name: y\n        source: {range: 2}\n    source: {points: [[1]]}\n", "group members"},
		{"group speed", "axes:\n  - speed: 3\n    group:\n      - name: y\n    source: {points: [[1]]}\n", "a group cannot"},
		{"bad point", "axes:\n  - name: x\n    source: {points: [abc]}\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, ErrInvalidPlan)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}

	_, err := Load(strings.NewReader("axes:\n  - name: x\n    source: {points: [abc]}\n"))
	require.ErrorIs(t, err, ErrInvalidPoint)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	p := &Plan{
		Mode: "spiral",
		Axes: []AxisSpec{{Speed: -1}, {Name: "y"}},
	}

	err := p.Validate()
	require.ErrorIs(t, err, ErrInvalidPlan)
	for _, msg := range []string{"spiral", "axes[0]: name is required", "axes[0]: speed", "axes[1]: source is required"} {
		assert.Contains(t, err.Error(), msg)
	}
}

func TestBuild_SharesRegisteredMotors(t *testing.T) {
	reg := virtual.NewRegistry()
	x, err := virtual.NewSimMotor("x", virtual.WithStart(7))
	require.NoError(t, err)
	require.NoError(t, reg.Register("x", x))

	p := load(t, linearPlan)
	s := build(t, p, reg)

	assert.Same(t, x, s.Axes()[0].Axis())
	assert.Equal(t, 2, reg.Len())

	_, err = (&Plan{}).Build(reg)
	require.ErrorIs(t, err, ErrInvalidPlan)
}

func TestBuild_ShapeMismatch(t *testing.T) {
	p := load(t, "axes:\n  - group:\n      - name: y\n      - name: z\n    source: {values: [1, 2]}\n")

	_, err := p.Build(virtual.NewRegistry(), scan.WithLogger(quiet))
	require.ErrorIs(t, err, scan.ErrConfiguration)
	require.ErrorIs(t, err, axis.ErrShapeMismatch)
}

func TestEncode(t *testing.T) {
	p := load(t, nestedPlan)

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))

	again := load(t, buf.String())
	assert.Equal(t, p.Labels(), again.Labels())

	s1 := build(t, p, virtual.NewRegistry())
	s2 := build(t, again, virtual.NewRegistry())
	assert.Equal(t, strs(p.DryRun(context.Background(), s1)), strs(again.DryRun(context.Background(), s2)))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(meshPlan), 0o600))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ModeMesh, p.Mode)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("mode: spiral\n"), 0o600))
	_, err = LoadFile(bad)
	require.ErrorIs(t, err, ErrInvalidPlan)
	assert.Contains(t, err.Error(), "bad.yaml")

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
