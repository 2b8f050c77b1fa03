package axis

import (
	"context"
	"fmt"
	"strings"
)

// Node is either a leaf wrapping a single Axis or an ordered group of nodes that
// is moved and waited on as one logical unit.
type Node struct {
	axis  Axis
	group []Node
	isGrp bool
}

// Leaf returns a node for a single axis.
func Leaf(a Axis) Node {
	return Node{axis: a}
}

// Group returns a node grouping nodes in order. Groups may be nested to any depth.
func Group(nodes ...Node) Node {
	n := Node{group: make([]Node, len(nodes)), isGrp: true}
	copy(n.group, nodes)

	return n
}

// Leaves returns a group node with one leaf per axis.
func Leaves(axes ...Axis) Node {
	n := Node{group: make([]Node, len(axes)), isGrp: true}
	for i, a := range axes {
		n.group[i] = Leaf(a)
	}

	return n
}

// IsGroup reports whether n is a group node.
func (n Node) IsGroup() bool { return n.isGrp }

// Axis returns the axis of a leaf node, nil for groups.
func (n Node) Axis() Axis { return n.axis }

// Children returns a copy of the members of a group node, nil for leaves.
func (n Node) Children() []Node {
	if !n.isGrp {
		return nil
	}
	children := make([]Node, len(n.group))
	copy(children, n.group)

	return children
}

// Axes returns every leaf axis under n in depth-first order.
func (n Node) Axes() []Axis {
	if !n.isGrp {
		if n.axis == nil {
			return nil
		}
		return []Axis{n.axis}
	}

	var axes []Axis
	for _, c := range n.group {
		axes = append(axes, c.Axes()...)
	}

	return axes
}

// Validate checks that every leaf under n has a non-nil axis.
func (n Node) Validate() error {
	if !n.isGrp {
		if n.axis == nil {
			return ErrNilAxis
		}
		return nil
	}

	for i, c := range n.group {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("group member %d: %w", i, err)
		}
	}

	return nil
}

// Check verifies that pos has the same nesting shape as n.
func (n Node) Check(pos Position) error {
	if !n.isGrp {
		if pos.IsTuple() {
			return fmt.Errorf("%w: axis %s got tuple %s", ErrShapeMismatch, n.Name(), pos)
		}
		return nil
	}

	if !pos.IsTuple() || pos.Len() != len(n.group) {
		return fmt.Errorf("%w: group %s of %d got %s", ErrShapeMismatch, n.Name(), len(n.group), pos)
	}
	for i, c := range n.group {
		if err := c.Check(pos.At(i)); err != nil {
			return err
		}
	}

	return nil
}

// Move issues the move commands for pos to every leaf under n, depth-first, without waiting.
func (n Node) Move(pos Position) error {
	if err := n.Check(pos); err != nil {
		return err
	}

	return n.move(pos)
}

func (n Node) move(pos Position) error {
	if !n.isGrp {
		if n.axis == nil {
			return ErrNilAxis
		}
		return n.axis.Move(pos.Value())
	}

	for i, c := range n.group {
		if err := c.move(pos.At(i)); err != nil {
			return err
		}
	}

	return nil
}

// Wait blocks until every leaf under n has completed its motion, depth-first.
// It returns the first error reported by an axis.
func (n Node) Wait(ctx context.Context) error {
	if !n.isGrp {
		if n.axis == nil {
			return ErrNilAxis
		}
		return n.axis.Wait(ctx)
	}

	for _, c := range n.group {
		if err := c.Wait(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Position reads the current position of n, as a tuple mirroring the group structure.
func (n Node) Position() (Position, error) {
	if !n.isGrp {
		if n.axis == nil {
			return Position{}, ErrNilAxis
		}
		v, err := n.axis.Position()
		if err != nil {
			return Position{}, err
		}
		return Scalar(v), nil
	}

	elems := make([]Position, len(n.group))
	for i, c := range n.group {
		p, err := c.Position()
		if err != nil {
			return Position{}, err
		}
		elems[i] = p
	}

	return Tuple(elems...), nil
}

// Name returns the axis name of a leaf, or the parenthesized member names of a group.
// Unnamed leaves are reported as "?".
func (n Node) Name() string {
	if !n.isGrp {
		if n.axis == nil {
			return "<nil>"
		}
		return NameOf(n.axis, "?")
	}

	names := make([]string, len(n.group))
	for i, c := range n.group {
		names[i] = c.Name()
	}

	return "(" + strings.Join(names, ", ") + ")"
}
