package plan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/go-iterscan/axis"
	"github.com/arloliu/go-iterscan/scan"
)

const (
	// ModeLinear steps all axes together through their sources.
	ModeLinear = "linear"
	// ModeMesh visits every combination of source positions.
	ModeMesh = "mesh"
)

// Plan is a decoded scan plan.
type Plan struct {
	// Mode is ModeLinear or ModeMesh. An empty mode is linear.
	Mode string `yaml:"mode,omitempty"`
	// Axes lists the scanned axes in registration order. The first axis moves fastest in a mesh.
	Axes []AxisSpec `yaml:"axes"`
}

// AxisSpec describes one scanned axis: either a simulated motor or a group of nested axes.
type AxisSpec struct {
	Name      string  `yaml:"name,omitempty"`
	Speed     float64 `yaml:"speed,omitempty"`
	Tolerance float64 `yaml:"tolerance,omitempty"`
	Start     float64 `yaml:"start,omitempty"`

	// Group lists the members of a group axis. Members have no source of their own.
	Group []AxisSpec `yaml:"group,omitempty"`
	// Source is required on top-level axes.
	Source *SourceSpec `yaml:"source,omitempty"`
}

// IsGroup reports whether the spec describes a group axis.
func (a AxisSpec) IsGroup() bool { return len(a.Group) > 0 }

// Label returns the name of a motor, or the member names of a group, for display.
func (a AxisSpec) Label() string {
	if !a.IsGroup() {
		return a.Name
	}
	if a.Name != "" {
		return a.Name
	}

	label := "("
	for i, m := range a.Group {
		if i > 0 {
			label += ", "
		}
		label += m.Label()
	}

	return label + ")"
}

// Load decodes a plan from r and validates it. Unknown fields are rejected.
func Load(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidPlan)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadFile loads the plan stored at path.
func LoadFile(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Encode writes the plan as YAML.
func (p *Plan) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}

	return enc.Close()
}

// ScanMode returns the traversal mode of the plan.
func (p *Plan) ScanMode() scan.Mode {
	if p.Mode == ModeMesh {
		return scan.ModeMesh
	}

	return scan.ModeLinear
}

// Run executes s in the mode of the plan.
func (p *Plan) Run(ctx context.Context, s *scan.Scan) scan.Result {
	if p.ScanMode() == scan.ModeMesh {
		return s.RunMesh(ctx)
	}

	return s.Run(ctx)
}

// DryRun returns the positions s would visit in the mode of the plan.
func (p *Plan) DryRun(ctx context.Context, s *scan.Scan) [][]axis.Position {
	if p.ScanMode() == scan.ModeMesh {
		return s.DryRunMesh(ctx)
	}

	return s.DryRun(ctx)
}

// Labels returns the display label of every top-level axis.
func (p *Plan) Labels() []string {
	labels := make([]string, len(p.Axes))
	for i, a := range p.Axes {
		labels[i] = a.Label()
	}

	return labels
}
