// Package shape defines the regions a Foundation is cut from.
//
// A Shape supplies shape-local boundary vertices (used only to size the
// search box), an offset that places the shape in space, and a batch
// containment test over absolute Cartesian positions.
//
// Implementations:
//
//   - Polygon:   2D polygon in the xy-plane, even-odd ray casting.
//   - Rectangle: axis-aligned Polygon centred on the origin.
//   - Circle:    disk in the xy-plane.
//   - Line:      1D segment, points whose projection falls on it.
//   - FreeForm:  user predicate inside a bounding box.
//
// Every constructor accepts WithOffset.
package shape

import (
	"errors"

	"github.com/katalvlaran/tightbinding/lattice"
)

var (
	// ErrTooFewVertices indicates a polygon with fewer than 3 vertices.
	ErrTooFewVertices = errors.New("shape: polygon needs at least 3 vertices")
	// ErrNonPositive indicates a non-positive radius, width or height.
	ErrNonPositive = errors.New("shape: dimensions must be > 0")
	// ErrDegenerateLine indicates a line whose endpoints coincide.
	ErrDegenerateLine = errors.New("shape: line endpoints coincide")
	// ErrNilContains indicates a FreeForm without a predicate.
	ErrNilContains = errors.New("shape: contains function is nil")
)

// Shape is the region collaborator consumed by foundation.NewFromShape.
type Shape interface {
	// Vertices returns shape-local points whose lattice coordinates bound the shape.
	Vertices() []lattice.Cartesian
	// Offset returns the translation applied to the shape.
	Offset() lattice.Cartesian
	// Contains reports, for each absolute position, whether it lies inside.
	Contains(positions []lattice.Cartesian) []bool
}

// Option configures a shape at construction.
type Option func(*base)

// WithOffset translates the shape by offset.
func WithOffset(offset lattice.Cartesian) Option {
	return func(b *base) { b.offset = offset }
}

// base carries what every shape shares.
type base struct {
	vertices []lattice.Cartesian
	offset   lattice.Cartesian
}

func newBase(vertices []lattice.Cartesian, opts []Option) base {
	b := base{vertices: vertices}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Vertices returns a copy of the shape-local vertices.
func (b *base) Vertices() []lattice.Cartesian {
	out := make([]lattice.Cartesian, len(b.vertices))
	copy(out, b.vertices)
	return out
}

// Offset returns the shape translation.
func (b *base) Offset() lattice.Cartesian { return b.offset }

// containsEach evaluates inside on every position shifted into the shape frame.
func (b *base) containsEach(positions []lattice.Cartesian, inside func(p lattice.Cartesian) bool) []bool {
	out := make([]bool, len(positions))
	for i, p := range positions {
		out[i] = inside(p.Sub(b.offset))
	}
	return out
}
