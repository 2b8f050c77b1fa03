package scan

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-iterscan/axis"
	"github.com/arloliu/go-iterscan/source"
)

func TestDryRunMesh_Order(t *testing.T) {
	s := newTestScan(t, leaves(newMotors(t, "1", "2", "3")...),
		[]source.Source{source.Range(2), source.Range(3), source.Range(2)})

	want := [][]string{
		{"0", "0", "0"}, {"1", "0", "0"}, {"0", "1", "0"}, {"1", "1", "0"}, {"0", "2", "0"}, {"1", "2", "0"},
		{"0", "0", "1"}, {"1", "0", "1"}, {"0", "1", "1"}, {"1", "1", "1"}, {"0", "2", "1"}, {"1", "2", "1"},
	}
	assert.Equal(t, want, strs(s.DryRunMesh(context.Background())))
}

func TestDryRunMesh_Replays(t *testing.T) {
	sqrt := source.Map(source.Range(10), func(p axis.Position) axis.Position {
		return axis.Scalar(math.Sqrt(p.Value()))
	})
	s := newTestScan(t, leaves(newMotors(t, "1", "2", "3")...),
		[]source.Source{squares(10, 2), sqrt, squares(10, 3)})

	data1 := s.DryRunMesh(context.Background())
	data2 := s.DryRunMesh(context.Background())

	require.Len(t, data1, 1000)
	assert.Equal(t, strs(data1), strs(data2), "sources give different results after repeated mesh dry runs")
}

func TestRunMesh(t *testing.T) {
	h := &countingHooks{}
	s := newTestScan(t, leaves(newMotors(t, "1", "2")...),
		[]source.Source{source.Range(2), squares(3, 2)}, WithHooks(h))

	res := s.RunMesh(context.Background())

	assert.Equal(t, StatusDone, res.Status)
	assert.Equal(t, ModeMesh, res.Mode)
	assert.Equal(t, 6, res.Steps)
	h.assertCalls(t, 1, 1, 6, 6)
	assert.Equal(t, [][]string{{"0", "0"}, {"1", "0"}, {"0", "1"}, {"1", "1"}, {"0", "4"}, {"1", "4"}}, strs(h.positions))

	positions, err := s.Positions()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, positionStrings(positions), "scan did not end on the last point")
	assert.Equal(t, ModeMesh, s.Mode())
	assert.Nil(t, s.CurrentMesh(), "mesh state is cleared after a run")

	again := s.RunMesh(context.Background())
	assert.Equal(t, 6, again.Steps, "a completed mesh restarts from the first point")
}

func TestRunMesh_CurrentMesh(t *testing.T) {
	var seen [][]axis.Position
	h := HookFuncs{OnPostStep: func(_ context.Context, s *Scan) error {
		seen = append(seen, s.CurrentMesh())
		return nil
	}}
	s := newTestScan(t, leaves(newMotors(t, "1", "2")...),
		[]source.Source{source.Values(5, 6), source.Values(7, 8)}, WithHooks(h))

	res := s.RunMesh(context.Background())

	assert.Equal(t, StatusDone, res.Status)
	assert.Equal(t, [][]string{{"5", "7"}, {"6", "7"}, {"5", "8"}, {"6", "8"}}, strs(seen))

	seen = nil
	s.Run(context.Background())
	require.Len(t, seen, 2)
	assert.Nil(t, seen[0], "linear runs have no mesh point")
	assert.Nil(t, seen[1], "linear runs have no mesh point")
}

func TestRunMesh_AbortMidMesh(t *testing.T) {
	h := &countingHooks{onPostStep: func(_ context.Context, s *Scan) error {
		if s.CurrentStep() == 4 {
			return s.Abort("enough")
		}
		return nil
	}}
	s := newTestScan(t, leaves(newMotors(t, "1", "2")...),
		[]source.Source{source.Range(3), source.Range(3)}, WithHooks(h))

	res := s.RunMesh(context.Background())
	assert.Equal(t, StatusAborted, res.Status)
	assert.Equal(t, 4, res.Steps)

	h.onPostStep = nil
	res = s.RunMesh(context.Background())
	assert.Equal(t, StatusDone, res.Status)
	assert.Equal(t, 9, res.Steps, "an aborted mesh does not resume where it stopped")
	assert.Equal(t, []string{"0", "0"}, positionStrings(h.positions[4]))
}

func TestMeshWalker(t *testing.T) {
	tests := []struct {
		name    string
		sources []source.Source
		want    [][]string
	}{
		{
			name:    "no sources",
			sources: nil,
			want:    [][]string{},
		},
		{
			name:    "empty source",
			sources: []source.Source{source.Range(3), source.Values()},
			want:    [][]string{},
		},
		{
			name:    "single points",
			sources: []source.Source{source.Range(1), source.Range(1)},
			want:    [][]string{{"0", "0"}},
		},
		{
			name:    "single axis",
			sources: []source.Source{source.Values(1, 2, 3)},
			want:    [][]string{{"1"}, {"2"}, {"3"}},
		},
		{
			name:    "single fast axis point",
			sources: []source.Source{source.Values(9), source.Range(2)},
			want:    [][]string{{"9", "0"}, {"9", "1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newMeshWalker(tt.sources)
			defer w.stop()

			for pass := range 2 {
				got := [][]string{}
				for {
					pts, ok := w.next()
					if !ok {
						break
					}
					got = append(got, positionStrings(pts))
				}
				assert.Equal(t, tt.want, got, "pass %d", pass)
				assert.Nil(t, w.current(), "an exhausted walker has no current point")
			}
		})
	}
}

func TestMeshWalker_CurrentIsCopy(t *testing.T) {
	w := newMeshWalker([]source.Source{source.Range(2)})
	defer w.stop()

	pts, ok := w.next()
	require.True(t, ok)
	pts[0] = axis.Scalar(42)

	assert.Equal(t, []string{"0"}, positionStrings(w.current()))
}

func TestStats_Mesh(t *testing.T) {
	s := newTestScan(t, leaves(newMotors(t, "1", "2", "3")...),
		[]source.Source{source.Range(2), source.Range(3), source.Range(2)})

	st := s.Stats(NoStepLimit)
	assert.Equal(t, float64(len(s.DryRunMesh(context.Background()))), st.MeshPoints)
}
