package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexRange is returned when connectivity references a node that
	// does not exist.
	ErrIndexRange = errors.New("mesh: index out of range")

	// ErrDegenerate matches every *GeometryError via errors.Is.
	ErrDegenerate = errors.New("mesh: degenerate geometry")
)

// GeometryError reports a mesh that is structurally valid but numerically
// degenerate for the requested computation.
type GeometryError struct {
	Op     string
	Reason string
}

// NewGeometryError creates a geometry error for the named operation
func NewGeometryError(op, format string, args ...any) *GeometryError {
	return &GeometryError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

func (e *GeometryError) Error() string {
	return e.Op + ": " + e.Reason
}

// Is makes errors.Is(err, ErrDegenerate) true for geometry errors
func (e *GeometryError) Is(target error) bool {
	return target == ErrDegenerate
}
