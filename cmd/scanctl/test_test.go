package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-iterscan/axis"
)

func TestTestCmd_Mesh(t *testing.T) {
	path := writePlan(t, "mesh.yaml", meshPlan)

	out, err := execute(t, newTestCmd(), path)
	require.NoError(t, err)

	assert.Contains(t, out, "Step")
	assert.Contains(t, out, "(y, z)")
	assert.Contains(t, out, "(2, 2)")
	assert.Contains(t, out, "6 steps")
}

func TestTestCmd_MeshOverride(t *testing.T) {
	path := writePlan(t, "linear.yaml", linearPlan)

	out, err := execute(t, newTestCmd(), path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 steps")

	out, err = execute(t, newTestCmd(), "--mesh", path)
	require.NoError(t, err)
	assert.Contains(t, out, "12 steps")
}

func TestTestCmd_InvalidPlan(t *testing.T) {
	path := writePlan(t, "bad.yaml", "mode: spiral\n")

	_, err := execute(t, newTestCmd(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid plan")
}

func TestRenderPointsTable(t *testing.T) {
	out := renderPointsTable([]string{"x", "y"}, [][]axis.Position{
		{axis.Scalar(0), axis.Scalar(1.5)},
		{axis.Scalar(1), axis.Floats(2, 3)},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[0], "x")
	assert.Contains(t, out, "1.5")
	assert.Contains(t, out, "(2, 3)")
	assert.Contains(t, out, "2 steps")
}
