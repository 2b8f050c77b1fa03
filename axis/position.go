package axis

import (
	"math"
	"strconv"
	"strings"
)

// Position is a target or read-back position for a Node.
//
// It is either a scalar value or an ordered tuple of positions. The zero value is the scalar 0.
type Position struct {
	value float64
	elems []Position
	tuple bool
}

// Scalar returns a scalar position.
func Scalar(v float64) Position {
	return Position{value: v}
}

// Tuple returns a tuple position holding a copy of elems.
func Tuple(elems ...Position) Position {
	p := Position{elems: make([]Position, len(elems)), tuple: true}
	copy(p.elems, elems)

	return p
}

// Floats returns a tuple of scalar positions.
func Floats(values ...float64) Position {
	p := Position{elems: make([]Position, len(values)), tuple: true}
	for i, v := range values {
		p.elems[i] = Scalar(v)
	}

	return p
}

// IsTuple reports whether p is a tuple position.
func (p Position) IsTuple() bool { return p.tuple }

// Value returns the scalar value of p, or NaN if p is a tuple.
func (p Position) Value() float64 {
	if p.tuple {
		return math.NaN()
	}

	return p.value
}

// Len returns the number of elements of a tuple position, 0 for scalars.
func (p Position) Len() int { return len(p.elems) }

// At returns the i-th element of a tuple position.
func (p Position) At(i int) Position { return p.elems[i] }

// Elems returns a copy of the elements of a tuple position, nil for scalars.
func (p Position) Elems() []Position {
	if !p.tuple {
		return nil
	}
	elems := make([]Position, len(p.elems))
	copy(elems, p.elems)

	return elems
}

// Equal reports whether p and other have the same shape and values.
func (p Position) Equal(other Position) bool {
	if p.tuple != other.tuple {
		return false
	}
	if !p.tuple {
		return p.value == other.value
	}
	if len(p.elems) != len(other.elems) {
		return false
	}
	for i := range p.elems {
		if !p.elems[i].Equal(other.elems[i]) {
			return false
		}
	}

	return true
}

// SameShape reports whether p and other have the same nesting shape, ignoring values.
func (p Position) SameShape(other Position) bool {
	if p.tuple != other.tuple || len(p.elems) != len(other.elems) {
		return false
	}
	for i := range p.elems {
		if !p.elems[i].SameShape(other.elems[i]) {
			return false
		}
	}

	return true
}

// String returns the position as a scalar ("1.5") or a parenthesized tuple ("(0, (1, 2))").
func (p Position) String() string {
	var sb strings.Builder
	p.write(&sb)

	return sb.String()
}

func (p Position) write(sb *strings.Builder) {
	if !p.tuple {
		sb.WriteString(strconv.FormatFloat(p.value, 'g', -1, 64))
		return
	}

	sb.WriteByte('(')
	for i, e := range p.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		e.write(sb)
	}
	sb.WriteByte(')')
}
