package shape

import (
	"fmt"

	"github.com/katalvlaran/tightbinding/lattice"
)

// Polygon is a closed polygon in the xy-plane. The z component is ignored.
type Polygon struct {
	base
}

// NewPolygon builds a polygon from at least 3 vertices in order.
func NewPolygon(vertices []lattice.Cartesian, opts ...Option) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("NewPolygon: %d vertices: %w", len(vertices), ErrTooFewVertices)
	}
	vs := make([]lattice.Cartesian, len(vertices))
	copy(vs, vertices)
	return &Polygon{base: newBase(vs, opts)}, nil
}

// Contains uses even-odd ray casting along +x.
// Complexity: O(len(positions)·len(vertices)).
func (p *Polygon) Contains(positions []lattice.Cartesian) []bool {
	return p.containsEach(positions, func(q lattice.Cartesian) bool {
		inside := false
		n := len(p.vertices)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			vi, vj := p.vertices[i], p.vertices[j]
			if (vi[1] > q[1]) != (vj[1] > q[1]) &&
				q[0] < (vj[0]-vi[0])*(q[1]-vi[1])/(vj[1]-vi[1])+vi[0] {
				inside = !inside
			}
		}
		return inside
	})
}

// NewRectangle returns a width×height rectangle centred on the origin.
func NewRectangle(width, height float64, opts ...Option) (*Polygon, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("NewRectangle(%g, %g): %w", width, height, ErrNonPositive)
	}
	x, y := width/2, height/2
	return NewPolygon([]lattice.Cartesian{{-x, -y}, {x, -y}, {x, y}, {-x, y}}, opts...)
}

// Circle is a disk of the given radius in the xy-plane.
type Circle struct {
	base
	radius float64
}

// NewCircle builds a disk centred on the origin. Its vertices are the
// corners of the enclosing square.
func NewCircle(radius float64, opts ...Option) (*Circle, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("NewCircle(%g): %w", radius, ErrNonPositive)
	}
	r := radius
	vs := []lattice.Cartesian{{-r, -r}, {r, -r}, {r, r}, {-r, r}}
	return &Circle{base: newBase(vs, opts), radius: radius}, nil
}

// Radius returns the disk radius.
func (c *Circle) Radius() float64 { return c.radius }

// Contains reports x²+y² <= r².
func (c *Circle) Contains(positions []lattice.Cartesian) []bool {
	r2 := c.radius * c.radius
	return c.containsEach(positions, func(q lattice.Cartesian) bool {
		return q[0]*q[0]+q[1]*q[1] <= r2
	})
}

// Line is the segment between two points; a position is inside when its
// orthogonal projection onto the segment lies between the endpoints.
type Line struct {
	base
	a, dir lattice.Cartesian
	len2   float64
}

// NewLine builds a segment from a to b.
func NewLine(a, b lattice.Cartesian, opts ...Option) (*Line, error) {
	dir := b.Sub(a)
	len2 := dir.Dot(dir)
	if len2 == 0 {
		return nil, fmt.Errorf("NewLine: %w", ErrDegenerateLine)
	}
	return &Line{base: newBase([]lattice.Cartesian{a, b}, opts), a: a, dir: dir, len2: len2}, nil
}

// Contains reports 0 <= t <= 1 for the projection parameter t.
func (l *Line) Contains(positions []lattice.Cartesian) []bool {
	return l.containsEach(positions, func(q lattice.Cartesian) bool {
		t := q.Sub(l.a).Dot(l.dir) / l.len2
		return t >= 0 && t <= 1
	})
}

// FreeForm delegates containment to a user predicate. Positions passed to
// the predicate are in the shape frame (offset already removed).
type FreeForm struct {
	base
	contains func(p lattice.Cartesian) bool
}

// NewFreeForm builds a shape bounded by the box of the given width centred
// at center. Axes with zero width are not bounded.
func NewFreeForm(contains func(p lattice.Cartesian) bool, width, center lattice.Cartesian, opts ...Option) (*FreeForm, error) {
	if contains == nil {
		return nil, ErrNilContains
	}
	half := width.Scale(0.5)
	lo, hi := center.Sub(half), center.Add(half)
	vs := []lattice.Cartesian{
		{lo[0], lo[1], lo[2]}, {hi[0], lo[1], lo[2]}, {lo[0], hi[1], lo[2]}, {hi[0], hi[1], lo[2]},
		{lo[0], lo[1], hi[2]}, {hi[0], lo[1], hi[2]}, {lo[0], hi[1], hi[2]}, {hi[0], hi[1], hi[2]},
	}
	return &FreeForm{base: newBase(vs, opts), contains: contains}, nil
}

// Contains evaluates the predicate on every position.
func (f *FreeForm) Contains(positions []lattice.Cartesian) []bool {
	return f.containsEach(positions, f.contains)
}
