package plan

import (
	"github.com/arloliu/go-iterscan/axis"
	"github.com/arloliu/go-iterscan/source"
)

// SourceSpec selects exactly one kind of source.
type SourceSpec struct {
	// Range yields 0, 1, ..., Range-1.
	Range *int `yaml:"range,omitempty"`
	// Linspace yields evenly spaced positions including both ends.
	Linspace *LinspaceSpec `yaml:"linspace,omitempty"`
	// Arange yields positions from start, by step, stopping before stop.
	Arange *ArangeSpec `yaml:"arange,omitempty"`
	// Values yields the listed numbers.
	Values []float64 `yaml:"values,omitempty"`
	// Points yields the listed points; group axes need tuple points.
	Points []Point `yaml:"points,omitempty"`
}

type LinspaceSpec struct {
	Start     float64 `yaml:"start"`
	Stop      float64 `yaml:"stop"`
	Intervals int     `yaml:"intervals"`
}

type ArangeSpec struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Step  float64 `yaml:"step"`
}

func (s *SourceSpec) kinds() int {
	n := 0
	if s.Range != nil {
		n++
	}
	if s.Linspace != nil {
		n++
	}
	if s.Arange != nil {
		n++
	}
	if s.Values != nil {
		n++
	}
	if s.Points != nil {
		n++
	}

	return n
}

// Build creates the source described by the spec.
func (s *SourceSpec) Build() (source.Source, error) {
	switch {
	case s.Range != nil:
		return source.Range(*s.Range), nil
	case s.Linspace != nil:
		return source.Linspace(s.Linspace.Start, s.Linspace.Stop, s.Linspace.Intervals)
	case s.Arange != nil:
		return source.Arange(s.Arange.Start, s.Arange.Stop, s.Arange.Step)
	case s.Values != nil:
		return source.Values(s.Values...), nil
	}

	points := make([]axis.Position, len(s.Points))
	for i, p := range s.Points {
		points[i] = p.Position
	}

	return source.Points(points...), nil
}
