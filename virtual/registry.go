package virtual

import (
	"fmt"
	"slices"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-iterscan/axis"
)

// Registry keeps axes by name. It is safe for concurrent use.
type Registry struct {
	axes *xsync.MapOf[string, axis.Axis]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{axes: xsync.NewMapOf[string, axis.Axis]()}
}

// Register adds a under name. It returns ErrDuplicateName if the name is taken.
func (r *Registry) Register(name string, a axis.Axis) error {
	if name == "" {
		return ErrEmptyName
	}
	if a == nil {
		return axis.ErrNilAxis
	}

	if _, loaded := r.axes.LoadOrStore(name, a); loaded {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	return nil
}

// Get returns the axis registered under name.
func (r *Registry) Get(name string) (axis.Axis, bool) {
	return r.axes.Load(name)
}

// Remove deletes the axis registered under name.
func (r *Registry) Remove(name string) {
	r.axes.Delete(name)
}

// Len returns the number of registered axes.
func (r *Registry) Len() int {
	return r.axes.Size()
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.axes.Size())
	r.axes.Range(func(name string, _ axis.Axis) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)

	return names
}

// Positions reads the position of every registered axis.
func (r *Registry) Positions() (map[string]float64, error) {
	positions := make(map[string]float64, r.axes.Size())

	var err error
	r.axes.Range(func(name string, a axis.Axis) bool {
		var pos float64
		pos, err = a.Position()
		if err != nil {
			err = fmt.Errorf("axis %s: %w", name, err)
			return false
		}
		positions[name] = pos
		return true
	})
	if err != nil {
		return nil, err
	}

	return positions, nil
}
