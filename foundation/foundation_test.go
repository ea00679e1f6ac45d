package foundation_test

import (
	"testing"

	"github.com/katalvlaran/tightbinding/foundation"
	"github.com/katalvlaran/tightbinding/internal/testutil"
	"github.com/katalvlaran/tightbinding/lattice"
	"github.com/katalvlaran/tightbinding/repository"
	"github.com/katalvlaran/tightbinding/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Helpers
//----------------------------------------------------------------------------//

// stubShape lets tests control vertices and containment directly.
type stubShape struct {
	vertices []lattice.Cartesian
	offset   lattice.Cartesian
	contains func([]lattice.Cartesian) []bool
}

func (s stubShape) Vertices() []lattice.Cartesian { return s.vertices }
func (s stubShape) Offset() lattice.Cartesian     { return s.offset }
func (s stubShape) Contains(p []lattice.Cartesian) []bool {
	return s.contains(p)
}

// chain returns a unit chain with the given neighbour threshold.
func chain(t *testing.T, minNeighbours int) *lattice.Lattice {
	t.Helper()
	l := repository.Chain(1)
	require.NoError(t, l.SetMinNeighbours(minNeighbours))
	return l
}

// square returns a unit square lattice with the given neighbour threshold.
func square(t *testing.T, minNeighbours int) *lattice.Lattice {
	t.Helper()
	l := repository.Square(1)
	require.NoError(t, l.SetMinNeighbours(minNeighbours))
	return l
}

// countTrue counts set flags.
func countTrue(flags []bool) int {
	n := 0
	for _, v := range flags {
		if v {
			n++
		}
	}
	return n
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewFromPrimitive_Errors covers rejected inputs.
func TestNewFromPrimitive_Errors(t *testing.T) {
	_, err := foundation.NewFromPrimitive(nil, foundation.NewPrimitive(1))
	require.ErrorIs(t, err, foundation.ErrNilLattice)

	_, err = foundation.NewFromPrimitive(chain(t, 1), foundation.NewPrimitive(0))
	require.ErrorIs(t, err, foundation.ErrBadSize)

	_, err = foundation.NewFromPrimitive(chain(t, 1), foundation.NewPrimitive(5, 2))
	require.ErrorIs(t, err, foundation.ErrBadSize)

	empty, err := lattice.New(lattice.Cartesian{1})
	require.NoError(t, err)
	_, err = foundation.NewFromPrimitive(empty, foundation.NewPrimitive(1))
	require.ErrorIs(t, err, lattice.ErrNoSublattices)
}

// TestNewFromPrimitive_Invariants checks site counts, array lengths,
// validity and the centring of the block.
func TestNewFromPrimitive_Invariants(t *testing.T) {
	cases := []struct {
		name string
		l    *lattice.Lattice
		p    foundation.Primitive
	}{
		{"Chain5", repository.Chain(1), foundation.NewPrimitive(5)},
		{"Square3x4", repository.Square(0.5), foundation.NewPrimitive(3, 4)},
		{"Cubic2x2x3", repository.Cubic(1), foundation.NewPrimitive(2, 2, 3)},
		{"Graphene4x3", repository.GrapheneMonolayer(), foundation.NewPrimitive(4, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := foundation.NewFromPrimitive(tc.l, tc.p, foundation.WithLogger(testutil.NewTestLogger(t)))
			require.NoError(t, err)

			want := tc.p.Size.Prod() * tc.l.NumSublattices()
			require.Equal(t, want, f.NumSites())
			require.Len(t, f.Positions(), want)
			require.Len(t, f.IsValid(), want)
			assert.Equal(t, want, f.CountValid(), "primitive blocks keep every site")
			assert.Equal(t, tc.p.Size, f.Size())
			assert.Same(t, tc.l, f.Lattice())

			var centroid lattice.Cartesian
			for _, p := range f.Positions() {
				centroid = centroid.Add(p)
			}
			centroid = centroid.Scale(1 / float64(want))
			assert.InDelta(t, 0, centroid.Norm(), 1e-9, "block must be centred on the origin")
		})
	}
}

// TestNewFromShape_Errors covers nil inputs, vertex-less shapes and
// containment results of the wrong length.
func TestNewFromShape_Errors(t *testing.T) {
	line, err := shape.NewLine(lattice.Cartesian{-1}, lattice.Cartesian{1})
	require.NoError(t, err)

	_, err = foundation.NewFromShape(nil, line)
	require.ErrorIs(t, err, foundation.ErrNilLattice)

	_, err = foundation.NewFromShape(chain(t, 1), nil)
	require.ErrorIs(t, err, foundation.ErrNilShape)

	_, err = foundation.NewFromShape(chain(t, 1), stubShape{})
	require.ErrorIs(t, err, foundation.ErrNoVertices)

	short := stubShape{
		vertices: []lattice.Cartesian{{0}},
		contains: func([]lattice.Cartesian) []bool { return []bool{true} },
	}
	_, err = foundation.NewFromShape(chain(t, 1), short)
	require.ErrorIs(t, err, foundation.ErrContainsLength)
}

// TestNewFromShape_Geometry checks the box and origin derived from a line.
func TestNewFromShape_Geometry(t *testing.T) {
	line, err := shape.NewLine(lattice.Cartesian{-2}, lattice.Cartesian{2}, shape.WithOffset(lattice.Cartesian{10}))
	require.NoError(t, err)

	f, err := foundation.NewFromShape(chain(t, 1), line, foundation.WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err)

	// vertices at ±2 → [-2, 2] padded to [-3, 3]
	assert.Equal(t, lattice.Index3D{7, 1, 1}, f.Size())
	positions := f.Positions()
	for i, p := range positions {
		assert.InDelta(t, 10-3+float64(i), p[0], 1e-12)
	}
	assert.Equal(t, []bool{false, true, true, true, true, true, false}, f.IsValid())
}

//----------------------------------------------------------------------------//
// Flat index and site cursor
//----------------------------------------------------------------------------//

// TestFlatIndex_RoundTrip checks the bijection between flat indices and
// (a, b, c, sublattice) on a 3D two-sublattice box.
func TestFlatIndex_RoundTrip(t *testing.T) {
	l, err := lattice.New(lattice.Cartesian{1, 0, 0}, lattice.Cartesian{0, 1, 0}, lattice.Cartesian{0, 0, 1})
	require.NoError(t, err)
	_, err = l.AddSublattice("A", lattice.Cartesian{}, 0)
	require.NoError(t, err)
	_, err = l.AddSublattice("B", lattice.Cartesian{0.5, 0.5, 0.5}, 0)
	require.NoError(t, err)

	f, err := foundation.NewFromPrimitive(l, foundation.NewPrimitive(3, 2, 4))
	require.NoError(t, err)

	size := f.Size()
	for a := 0; a < size[0]; a++ {
		for b := 0; b < size[1]; b++ {
			for c := 0; c < size[2]; c++ {
				for sub := 0; sub < 2; sub++ {
					flat := f.FlatIndex(lattice.Index3D{a, b, c}, sub)
					require.Equal(t, ((a*size[1]+b)*size[2]+c)*2+sub, flat)

					index, gotSub := f.Decompose(flat)
					require.Equal(t, lattice.Index3D{a, b, c}, index)
					require.Equal(t, sub, gotSub)
					require.Equal(t, flat, f.FlatIndex(index, gotSub))
				}
			}
		}
	}

	visited := 0
	for s := range f.Sites() {
		index, sub := f.Decompose(s.Idx())
		assert.Equal(t, index, s.Index())
		assert.Equal(t, sub, s.Sublattice())
		visited++
	}
	assert.Equal(t, f.NumSites(), visited)
}

// TestSite_SharedState verifies that cursors are views, not copies.
func TestSite_SharedState(t *testing.T) {
	f, err := foundation.NewFromPrimitive(chain(t, 1), foundation.NewPrimitive(5))
	require.NoError(t, err)

	s1, err := f.Site(2)
	require.NoError(t, err)
	s2, err := f.Site(2)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
	assert.Same(t, f, s1.Foundation())

	s1.SetValid(false)
	assert.False(t, s2.IsValid())
	assert.False(t, f.IsValid()[2])
	assert.Equal(t, 4, f.CountValid())
	assert.Equal(t, "site 2 (2, 0, 0) sub 0", s1.String())
	assert.InDelta(t, 0, s1.Position()[0], 1e-12)

	_, err = f.Site(-1)
	require.ErrorIs(t, err, foundation.ErrSiteOutOfRange)
	_, err = f.Site(5)
	require.ErrorIs(t, err, foundation.ErrSiteOutOfRange)
}

// TestSite_Neighbours checks in-box neighbour enumeration on a chain.
func TestSite_Neighbours(t *testing.T) {
	f, err := foundation.NewFromPrimitive(chain(t, 1), foundation.NewPrimitive(5))
	require.NoError(t, err)

	idx := func(sites []foundation.Site) []int {
		out := make([]int, 0, len(sites))
		for _, s := range sites {
			out = append(out, s.Idx())
		}
		return out
	}
	first, _ := f.Site(0)
	middle, _ := f.Site(2)
	last, _ := f.Site(4)

	assert.Equal(t, []int{1}, idx(first.Neighbours()))
	assert.ElementsMatch(t, []int{1, 3}, idx(middle.Neighbours()))
	assert.Equal(t, []int{3}, idx(last.Neighbours()))

	// neighbours are reported regardless of validity
	n, _ := f.Site(3)
	n.SetValid(false)
	assert.ElementsMatch(t, []int{1, 3}, idx(middle.Neighbours()))
}

// TestSlice checks fixed-axis iteration.
func TestSlice(t *testing.T) {
	f, err := foundation.NewFromPrimitive(square(t, 1), foundation.NewPrimitive(3, 2))
	require.NoError(t, err)

	collect := func(axis, i int) []int {
		var out []int
		for s := range f.Slice(axis, i) {
			out = append(out, s.Idx())
		}
		return out
	}
	assert.Equal(t, []int{2, 3}, collect(0, 1))
	assert.Equal(t, []int{0, 2, 4}, collect(1, 0))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, collect(2, 0))
	assert.Empty(t, collect(0, 3))
	assert.Empty(t, collect(3, 0))
	assert.Empty(t, collect(-1, 0))

	// early termination
	n := 0
	for range f.Slice(1, 1) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
