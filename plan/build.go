package plan

import (
	"fmt"

	"github.com/arloliu/go-iterscan/axis"
	"github.com/arloliu/go-iterscan/logger"
	"github.com/arloliu/go-iterscan/scan"
	"github.com/arloliu/go-iterscan/virtual"
)

// Build creates the scan described by the plan.
//
// Motors are simulated and registered in reg under their names. A name that is already
// registered reuses the existing axis, so several plans can share motors. The options are
// passed to scan.New; the motors log through the logger set with scan.WithLogger.
func (p *Plan) Build(reg *virtual.Registry, opts ...scan.Option) (*scan.Scan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s, err := scan.New(nil, nil, opts...)
	if err != nil {
		return nil, err
	}

	for i, a := range p.Axes {
		n, err := buildNode(reg, a, s.Logger())
		if err != nil {
			return nil, fmt.Errorf("axes[%d]: %w", i, err)
		}
		src, err := a.Source.Build()
		if err != nil {
			return nil, fmt.Errorf("axes[%d].source: %w", i, err)
		}
		if err := s.Add(n, src); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func buildNode(reg *virtual.Registry, a AxisSpec, l logger.Logger) (axis.Node, error) {
	if a.IsGroup() {
		members := make([]axis.Node, len(a.Group))
		for i, m := range a.Group {
			n, err := buildNode(reg, m, l)
			if err != nil {
				return axis.Node{}, err
			}
			members[i] = n
		}
		return axis.Group(members...), nil
	}

	if existing, ok := reg.Get(a.Name); ok {
		return axis.Leaf(existing), nil
	}

	m, err := virtual.NewSimMotor(a.Name,
		virtual.WithSpeed(a.Speed),
		virtual.WithSimTolerance(a.Tolerance),
		virtual.WithStart(a.Start),
		virtual.WithSimLogger(l),
	)
	if err != nil {
		return axis.Node{}, fmt.Errorf("motor %s: %w", a.Name, err)
	}
	if err := reg.Register(a.Name, m); err != nil {
		// another goroutine registered the name first
		if existing, ok := reg.Get(a.Name); ok {
			return axis.Leaf(existing), nil
		}
		return axis.Node{}, err
	}

	return axis.Leaf(m), nil
}
