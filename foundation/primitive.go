package foundation

import (
	"fmt"

	"github.com/katalvlaran/tightbinding/lattice"
)

// Primitive is a periodic block of unit cells given by its size.
type Primitive struct {
	Size lattice.Index3D
}

// NewPrimitive returns a block of the given cell counts; omitted axes are 1.
// NewPrimitive(5) is a 5-cell chain, NewPrimitive(3, 2) a 3×2 sheet.
func NewPrimitive(cells ...int) Primitive {
	size := lattice.Index3D{1, 1, 1}
	copy(size[:], cells)
	return Primitive{Size: size}
}

// validate checks the size against the lattice dimensionality.
func (p Primitive) validate(l *lattice.Lattice) error {
	for axis, n := range p.Size {
		if n < 1 {
			return fmt.Errorf("size %v axis %d: %w", p.Size, axis, ErrBadSize)
		}
		if axis >= l.NDim() && n != 1 {
			return fmt.Errorf("size %v axis %d beyond %dD lattice: %w", p.Size, axis, l.NDim(), ErrBadSize)
		}
	}
	return nil
}
