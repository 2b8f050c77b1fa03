package scan

import (
	"math"

	"github.com/arloliu/go-iterscan/axis"
)

// NoStepLimit disables the step limit of Stats.
const NoStepLimit = 0

// Stats holds descriptive statistics of a scan, computed without running it.
//
// Counts are float64 so that sources cut off by the step limit can be reported as +Inf.
// Statistics of sources yielding tuple positions are NaN.
type Stats struct {
	// NPoints is the number of positions of each source.
	NPoints []float64
	// IterMaxes is the greatest position of each source.
	IterMaxes []float64
	// IterMins is the least position of each source.
	IterMins []float64
	// IterStepAvg is the average step between consecutive positions of each source.
	IterStepAvg []float64
	// ScanMaxes is the greatest position reached by each axis in a linear scan.
	ScanMaxes []float64
	// ScanMins is the least position reached by each axis in a linear scan.
	ScanMins []float64
	// ScanStepAvg is the average step of each axis in a linear scan.
	ScanStepAvg []float64
	// ScanPoints is the number of steps of a linear scan, bounded by the shortest source.
	ScanPoints float64
	// MeshPoints is the number of steps of a mesh scan, the product of NPoints.
	MeshPoints float64
}

// Stats drains fresh replays of every source and returns statistics about the scan.
//
// It is intended to describe a scan before running it, for example from a pre-scan hook.
// When maxSteps is positive, a source is not iterated more than maxSteps times and its
// count is reported as +Inf if that limit is reached, which guards against infinite sources.
// Use NoStepLimit to drain every source completely.
func (s *Scan) Stats(maxSteps int) Stats {
	st := Stats{
		NPoints:     make([]float64, len(s.sources)),
		IterMaxes:   make([]float64, len(s.sources)),
		IterMins:    make([]float64, len(s.sources)),
		IterStepAvg: make([]float64, len(s.sources)),
		ScanMaxes:   make([]float64, len(s.sources)),
		ScanMins:    make([]float64, len(s.sources)),
		ScanStepAvg: make([]float64, len(s.sources)),
	}

	for i, src := range s.sources {
		c := src.Cursor()
		is := sequenceStats(c.Next, maxSteps)
		c.Stop()

		st.NPoints[i] = is.count
		st.IterMaxes[i] = is.max
		st.IterMins[i] = is.min
		st.IterStepAvg[i] = is.stepAvg
	}

	steps := s.linearPoints(maxSteps)
	for i := range s.sources {
		j := 0
		column := func() (axis.Position, bool) {
			if j >= len(steps) {
				return axis.Position{}, false
			}
			p := steps[j][i]
			j++
			return p, true
		}
		is := sequenceStats(column, maxSteps)

		st.ScanMaxes[i] = is.max
		st.ScanMins[i] = is.min
		st.ScanStepAvg[i] = is.stepAvg
		st.ScanPoints = is.count
	}

	st.MeshPoints = meshPoints(st.NPoints)

	return st
}

// linearPoints collects at most maxSteps position vectors of a linear traversal.
func (s *Scan) linearPoints(maxSteps int) [][]axis.Position {
	w := newLinearWalker(s.sources)
	defer w.stop()

	var steps [][]axis.Position
	for maxSteps <= 0 || len(steps) < maxSteps {
		pts, ok := w.next()
		if !ok {
			break
		}
		steps = append(steps, pts)
	}

	return steps
}

func meshPoints(counts []float64) float64 {
	if len(counts) == 0 {
		return 0
	}

	total := 1.0
	for _, n := range counts {
		if n == 0 {
			return 0
		}
		total *= n
	}

	return total
}

type seqStats struct {
	count   float64
	max     float64
	min     float64
	stepAvg float64
}

// sequenceStats consumes next and returns the number of positions, the extrema and the
// average step. Tuple positions turn the extrema and the step average into NaN.
func sequenceStats(next func() (axis.Position, bool), maxSteps int) seqStats {
	n := 0
	maxVal := math.Inf(-1)
	minVal := math.Inf(1)
	stepSum := 0.0
	nonNumeric := false

	var prev float64
	for {
		p, ok := next()
		if !ok {
			break
		}
		n++

		if p.IsTuple() {
			nonNumeric = true
		} else if !nonNumeric {
			v := p.Value()
			maxVal = math.Max(maxVal, v)
			minVal = math.Min(minVal, v)
			if n > 1 {
				stepSum += v - prev
			}
			prev = v
		}

		if maxSteps > 0 && n >= maxSteps {
			break
		}
	}

	st := seqStats{count: float64(n), max: maxVal, min: minVal}
	if nonNumeric || math.IsInf(maxVal, -1) || math.IsInf(minVal, 1) {
		st.max = math.NaN()
		st.min = math.NaN()
	}

	switch {
	case n <= 1:
		st.stepAvg = 0
	case nonNumeric:
		st.stepAvg = math.NaN()
	default:
		st.stepAvg = stepSum / float64(n-1)
	}

	if maxSteps > 0 && n >= maxSteps {
		st.count = math.Inf(1)
	}

	return st
}
