package plan

import (
	"errors"
	"fmt"
)

// Validate checks the plan and reports every problem found, wrapped in ErrInvalidPlan.
func (p *Plan) Validate() error {
	var errs []error

	switch p.Mode {
	case "", ModeLinear, ModeMesh:
	default:
		errs = append(errs, fmt.Errorf("mode %q must be %q or %q", p.Mode, ModeLinear, ModeMesh))
	}

	if len(p.Axes) == 0 {
		errs = append(errs, errors.New("plan has no axes"))
	}

	names := make(map[string]struct{})
	for i, a := range p.Axes {
		path := fmt.Sprintf("axes[%d]", i)
		errs = append(errs, validateAxis(path, a, names)...)

		if a.Source == nil {
			errs = append(errs, fmt.Errorf("%s: source is required", path))
			continue
		}
		errs = append(errs, validateSource(path+".source", a.Source)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, errors.Join(errs...))
	}

	return nil
}

func validateAxis(path string, a AxisSpec, names map[string]struct{}) []error {
	var errs []error

	if a.IsGroup() {
		if a.Speed != 0 || a.Tolerance != 0 || a.Start != 0 {
			errs = append(errs, fmt.Errorf("%s: a group cannot set speed, tolerance or start", path))
		}
		for i, m := range a.Group {
			mpath := fmt.Sprintf("%s.group[%d]", path, i)
			if m.Source != nil {
				errs = append(errs, fmt.Errorf("%s: group members cannot have a source", mpath))
			}
			errs = append(errs, validateAxis(mpath, m, names)...)
		}
		return errs
	}

	switch _, dup := names[a.Name]; {
	case a.Name == "":
		errs = append(errs, fmt.Errorf("%s: name is required", path))
	case dup:
		errs = append(errs, fmt.Errorf("%s: duplicate axis name %q", path, a.Name))
	default:
		names[a.Name] = struct{}{}
	}
	if a.Speed < 0 {
		errs = append(errs, fmt.Errorf("%s: speed must not be negative", path))
	}
	if a.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("%s: tolerance must not be negative", path))
	}

	return errs
}

func validateSource(path string, s *SourceSpec) []error {
	switch n := s.kinds(); {
	case n == 0:
		return []error{fmt.Errorf("%s: one of range, linspace, arange, values or points is required", path)}
	case n > 1:
		return []error{fmt.Errorf("%s: only one kind of source may be set", path)}
	}

	var errs []error
	if s.Range != nil && *s.Range < 0 {
		errs = append(errs, fmt.Errorf("%s.range: must not be negative", path))
	}
	if s.Linspace != nil && s.Linspace.Intervals < 0 {
		errs = append(errs, fmt.Errorf("%s.linspace.intervals: must not be negative", path))
	}
	if s.Arange != nil && s.Arange.Step == 0 {
		errs = append(errs, fmt.Errorf("%s.arange.step: must not be zero", path))
	}

	return errs
}
