package plan

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/go-iterscan/axis"
)

// Point is a YAML scan position: a number for a single axis or a nested list for a group.
type Point struct {
	axis.Position
}

var _ yaml.Unmarshaler = (*Point)(nil)

// UnmarshalYAML decodes a number into a scalar and a sequence into a tuple.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	pos, err := decodePosition(node)
	if err != nil {
		return err
	}
	p.Position = pos

	return nil
}

// MarshalYAML encodes the point back into a number or a nested list.
func (p Point) MarshalYAML() (any, error) {
	return encodePosition(p.Position), nil
}

func decodePosition(node *yaml.Node) (axis.Position, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return axis.Position{}, fmt.Errorf("%w: line %d: %q", ErrInvalidPoint, node.Line, node.Value)
		}
		return axis.Scalar(v), nil

	case yaml.SequenceNode:
		elems := make([]axis.Position, len(node.Content))
		for i, child := range node.Content {
			elem, err := decodePosition(child)
			if err != nil {
				return axis.Position{}, err
			}
			elems[i] = elem
		}
		return axis.Tuple(elems...), nil

	case yaml.AliasNode:
		return decodePosition(node.Alias)
	}

	return axis.Position{}, fmt.Errorf("%w: line %d", ErrInvalidPoint, node.Line)
}

func encodePosition(p axis.Position) any {
	if !p.IsTuple() {
		return p.Value()
	}

	out := make([]any, p.Len())
	for i := range out {
		out[i] = encodePosition(p.At(i))
	}

	return out
}
