package core

import "gonum.org/v1/gonum/spatial/r3"

// Field is a scalar field defined over 3D space. Implementations must be
// deterministic: the same point always yields the same value for the
// lifetime of the field.
type Field interface {
	Evaluate(p r3.Vec) float64
}
