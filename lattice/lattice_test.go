package lattice_test

import (
	"testing"

	"github.com/katalvlaran/tightbinding/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Errors verifies vector-count and zero-length validation.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		vectors []lattice.Cartesian
		err     error
	}{
		{"NoVectors", nil, lattice.ErrNoVectors},
		{"TooMany", []lattice.Cartesian{{1}, {0, 1}, {0, 0, 1}, {1, 1, 1}}, lattice.ErrTooManyVectors},
		{"ZeroVector", []lattice.Cartesian{{1}, {}}, lattice.ErrZeroVector},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lattice.New(tc.vectors...)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestAddHopping_Conjugate checks that every rule is mirrored onto its target.
func TestAddHopping_Conjugate(t *testing.T) {
	l, err := lattice.New(lattice.Cartesian{1, 0, 0}, lattice.Cartesian{0, 1, 0})
	require.NoError(t, err)
	a, err := l.AddSublattice("A", lattice.Cartesian{}, 0)
	require.NoError(t, err)
	b, err := l.AddSublattice("B", lattice.Cartesian{0.5, 0, 0}, 0)
	require.NoError(t, err)

	require.NoError(t, l.AddHopping(lattice.Index3D{1, -1, 0}, "A", "B", -1))

	require.Len(t, l.Sublattice(a).Hoppings, 1)
	require.Len(t, l.Sublattice(b).Hoppings, 1)
	assert.Equal(t, lattice.Hopping{RelativeIndex: lattice.Index3D{1, -1, 0}, To: b, Energy: -1}, l.Sublattice(a).Hoppings[0])
	assert.Equal(t, lattice.Hopping{RelativeIndex: lattice.Index3D{-1, 1, 0}, To: a, Energy: -1}, l.Sublattice(b).Hoppings[0])
	assert.Equal(t, 2, l.NumHoppings())
}

// TestAddHopping_Errors covers the rejected hopping rules.
func TestAddHopping_Errors(t *testing.T) {
	l, err := lattice.New(lattice.Cartesian{1, 0, 0})
	require.NoError(t, err)
	_, err = l.AddSublattice("A", lattice.Cartesian{}, 0)
	require.NoError(t, err)

	require.ErrorIs(t, l.AddHopping(lattice.Index3D{1, 0, 0}, "A", "X", 1), lattice.ErrUnknownSublattice)
	require.ErrorIs(t, l.AddHopping(lattice.Index3D{}, "A", "A", 1), lattice.ErrSelfHopping)
	require.ErrorIs(t, l.AddHopping(lattice.Index3D{0, 1, 0}, "A", "A", 1), lattice.ErrIndexDimension)

	require.NoError(t, l.AddHopping(lattice.Index3D{1, 0, 0}, "A", "A", 1))
	require.ErrorIs(t, l.AddHopping(lattice.Index3D{1, 0, 0}, "A", "A", 1), lattice.ErrDuplicateHopping)
	// the conjugate of the first rule is already present as well
	require.ErrorIs(t, l.AddHopping(lattice.Index3D{-1, 0, 0}, "A", "A", 1), lattice.ErrDuplicateHopping)
}

// TestSublatticeBookkeeping checks ids, names and duplicate detection.
func TestSublatticeBookkeeping(t *testing.T) {
	l, err := lattice.New(lattice.Cartesian{1, 0, 0})
	require.NoError(t, err)
	require.ErrorIs(t, l.Validate(), lattice.ErrNoSublattices)

	id, err := l.AddSublattice("A", lattice.Cartesian{}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	_, err = l.AddSublattice("A", lattice.Cartesian{}, 0)
	require.ErrorIs(t, err, lattice.ErrDuplicateSublattice)

	got, err := l.SublatticeID("A")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
	_, err = l.SublatticeID("B")
	require.ErrorIs(t, err, lattice.ErrUnknownSublattice)

	require.NoError(t, l.Validate())
	assert.Equal(t, 1, l.NDim())
	assert.Equal(t, lattice.Cartesian{}, l.Vector(2))
}

// TestMinNeighbours checks the default and the negative guard.
func TestMinNeighbours(t *testing.T) {
	l, err := lattice.New(lattice.Cartesian{1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, lattice.DefaultMinNeighbours, l.MinNeighbours())

	require.ErrorIs(t, l.SetMinNeighbours(-1), lattice.ErrNegativeMinNeighbours)
	require.NoError(t, l.SetMinNeighbours(3))
	assert.Equal(t, 3, l.MinNeighbours())
}

// TestIndex3D covers the box test and arithmetic helpers.
func TestIndex3D(t *testing.T) {
	size := lattice.Index3D{3, 2, 1}
	assert.True(t, lattice.Index3D{0, 0, 0}.InBox(size))
	assert.True(t, lattice.Index3D{2, 1, 0}.InBox(size))
	assert.False(t, lattice.Index3D{3, 0, 0}.InBox(size))
	assert.False(t, lattice.Index3D{0, -1, 0}.InBox(size))
	assert.False(t, lattice.Index3D{0, 0, 1}.InBox(size))

	assert.Equal(t, 6, size.Prod())
	assert.Equal(t, lattice.Index3D{4, 1, 1}, size.Add(lattice.Index3D{1, -1, 0}))
	assert.Equal(t, lattice.Index3D{2, 2, 1}, size.Sub(lattice.Index3D{1, 0, 0}))
	assert.Equal(t, "(3, 2, 1)", size.String())
}

// TestCartesian covers vector arithmetic.
func TestCartesian(t *testing.T) {
	a := lattice.Cartesian{3, 4, 0}
	assert.InDelta(t, 5.0, a.Norm(), 1e-12)
	assert.Equal(t, lattice.Cartesian{6, 8, 0}, a.Scale(2))
	assert.Equal(t, lattice.Cartesian{4, 4, 1}, a.Add(lattice.Cartesian{1, 0, 1}))
	assert.Equal(t, lattice.Cartesian{2, 4, -1}, a.Sub(lattice.Cartesian{1, 0, 1}))
	assert.InDelta(t, 11.0, a.Dot(lattice.Cartesian{1, 2, 7}), 1e-12)
}
