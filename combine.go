package pathkit

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOp is returned by Combine for an unknown operation tag.
var ErrUnsupportedOp = errors.New("pathkit: unsupported combine operation")

// CombineOp selects the boolean operation performed by Combine.
type CombineOp int

const (
	// CombineUnion merges both paths, keeping the first path's fill rule.
	CombineUnion CombineOp = iota
	// CombineIntersect approximates set intersection via even-odd overlap.
	CombineIntersect
	// CombineDifference approximates subtracting the second path from the
	// first via even-odd cancellation.
	CombineDifference
	// CombineXor approximates symmetric difference via even-odd overlap.
	CombineXor
)

// String returns the operation's conventional tag name.
func (op CombineOp) String() string {
	switch op {
	case CombineUnion:
		return "union"
	case CombineIntersect:
		return "intersect"
	case CombineDifference:
		return "difference"
	case CombineXor:
		return "xor"
	}
	return fmt.Sprintf("CombineOp(%d)", int(op))
}

// Combine returns a new Path approximating a boolean operation between
// a and b by concatenating their command sequences and adjusting the
// fill rule. No polygon clipping is performed.
//
// Union keeps a's fill rule. Intersect, difference and xor force the
// result to FillRuleEvenOdd and rely on even-odd cancellation, which
// matches the true set operation only for simple non-self-overlapping
// shapes (and, for difference, only when b is fully nested inside a).
//
// The result shares no storage with either input; its current point is
// b's current point. Returns ErrUnsupportedOp for an unknown op.
func Combine(op CombineOp, a, b *Path) (*Path, error) {
	switch op {
	case CombineUnion, CombineIntersect, CombineDifference, CombineXor:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOp, op)
	}

	result := &Path{
		commands: make([]Command, 0, len(a.commands)+len(b.commands)),
		start:    b.start,
		current:  b.current,
	}
	result.commands = append(result.commands, a.commands...)
	result.commands = append(result.commands, b.commands...)

	if op == CombineUnion {
		result.fillRule = a.fillRule
	} else {
		result.fillRule = FillRuleEvenOdd
	}
	return result, nil
}
