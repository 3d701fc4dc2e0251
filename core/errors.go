package core

import "github.com/pkg/errors"

// Threading an error return through every recursive split/merge/query call
// would bury the algorithm in plumbing. Instead, failures panic with one of
// the typed errors below, and the public entry point recovers and converts
// back to a normal error return (see HandleDecomposePanicRecover).

// UnsupportedEdge is returned when a polygon edge is vertical. The core does
// not support vertical edges; recover by preprocessing the input polygon.
type UnsupportedEdge struct {
	Edge Edge
}

func (e *UnsupportedEdge) Error() string {
	return errors.Errorf("unsupported vertical edge %v-%v", e.Edge.P1, e.Edge.P2).Error()
}

// MalformedInput is returned when polygon text input fails to parse: wrong
// vertex count, unparsable coordinates, or too few points.
type MalformedInput struct {
	Reason string
}

func (e *MalformedInput) Error() string {
	return errors.Errorf("malformed polygon input: %s", e.Reason).Error()
}

// DegeneracyViolation is returned when the input violates the general
// position assumption in a way the core cannot handle (e.g. two polygon
// vertices sharing an x-coordinate).
type DegeneracyViolation struct {
	Reason string
}

func (e *DegeneracyViolation) Error() string {
	return errors.Errorf("general position violated: %s", e.Reason).Error()
}

// InvariantBroken indicates a bug in the core: a data structure invariant
// that should be impossible to violate was violated anyway. It carries the
// phase and offending data for postmortem debugging; there is no local
// recovery.
type InvariantBroken struct {
	Phase     string
	Detail    string
	Trapezoid *Trapezoid
	Edge      *Edge
}

func (e *InvariantBroken) Error() string {
	msg := errors.Errorf("invariant broken during %s: %s", e.Phase, e.Detail)
	if e.Trapezoid != nil {
		msg = errors.Wrapf(msg, "trapezoid=%s", e.Trapezoid.DebugName())
	}
	if e.Edge != nil {
		msg = errors.Wrapf(msg, "edge=%v-%v", e.Edge.P1, e.Edge.P2)
	}
	return msg.Error()
}

func failUnsupportedEdge(edge Edge) {
	panic(&UnsupportedEdge{Edge: edge})
}

func failMalformed(format string, args ...interface{}) {
	panic(&MalformedInput{Reason: errors.Errorf(format, args...).Error()})
}

func failDegenerate(format string, args ...interface{}) {
	panic(&DegeneracyViolation{Reason: errors.Errorf(format, args...).Error()})
}

func failInvariant(phase, format string, args ...interface{}) {
	panic(&InvariantBroken{Phase: phase, Detail: errors.Errorf(format, args...).Error()})
}

func failInvariantT(phase string, t *Trapezoid, format string, args ...interface{}) {
	panic(&InvariantBroken{Phase: phase, Detail: errors.Errorf(format, args...).Error(), Trapezoid: t})
}

// HandleDecomposePanicRecover converts a panic raised by one of the fail*
// helpers above back into a normal error. Any other panic is re-raised: it
// represents a genuine bug outside the documented error taxonomy.
func HandleDecomposePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	switch err := r.(type) {
	case *UnsupportedEdge:
		return err
	case *MalformedInput:
		return err
	case *DegeneracyViolation:
		return err
	case *InvariantBroken:
		return err
	default:
		panic(r)
	}
}
