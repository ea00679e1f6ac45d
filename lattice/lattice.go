package lattice

import "fmt"

// DefaultMinNeighbours is the neighbour threshold of a freshly created Lattice.
const DefaultMinNeighbours = 1

// maxDimensions bounds the number of primitive vectors.
const maxDimensions = 3

// Lattice is the unit cell definition consumed by foundation builders.
// A Lattice is not safe for concurrent mutation; finish building it before
// handing it to a Foundation.
type Lattice struct {
	vectors       []Cartesian
	sublattices   []Sublattice
	ids           map[string]int
	minNeighbours int
}

// New creates a lattice spanned by 1..3 primitive vectors.
// Returns ErrNoVectors, ErrTooManyVectors or ErrZeroVector on bad input.
func New(vectors ...Cartesian) (*Lattice, error) {
	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}
	if len(vectors) > maxDimensions {
		return nil, fmt.Errorf("New: got %d vectors: %w", len(vectors), ErrTooManyVectors)
	}
	for i, v := range vectors {
		if v.Norm() == 0 {
			return nil, fmt.Errorf("New: vector %d: %w", i, ErrZeroVector)
		}
	}
	vs := make([]Cartesian, len(vectors))
	copy(vs, vectors)

	return &Lattice{
		vectors:       vs,
		ids:           make(map[string]int),
		minNeighbours: DefaultMinNeighbours,
	}, nil
}

// AddSublattice registers a site type at offset (relative to the unit cell
// origin) and returns its id. Ids are assigned in registration order.
func (l *Lattice) AddSublattice(name string, offset Cartesian, onsite float64) (int, error) {
	if _, ok := l.ids[name]; ok {
		return 0, fmt.Errorf("AddSublattice %q: %w", name, ErrDuplicateSublattice)
	}
	id := len(l.sublattices)
	l.sublattices = append(l.sublattices, Sublattice{Name: name, Offset: offset, Onsite: onsite})
	l.ids[name] = id

	return id, nil
}

// AddHopping connects sublattice from (in cell 0) with sublattice to in the
// cell displaced by rel. The conjugate rule to→from at -rel is added too.
// Complexity: O(h) where h is the number of rules already on from/to.
func (l *Lattice) AddHopping(rel Index3D, from, to string, energy float64) error {
	fromID, ok := l.ids[from]
	if !ok {
		return fmt.Errorf("AddHopping: from %q: %w", from, ErrUnknownSublattice)
	}
	toID, ok := l.ids[to]
	if !ok {
		return fmt.Errorf("AddHopping: to %q: %w", to, ErrUnknownSublattice)
	}
	for axis := l.NDim(); axis < maxDimensions; axis++ {
		if rel[axis] != 0 {
			return fmt.Errorf("AddHopping %v: %w", rel, ErrIndexDimension)
		}
	}
	if rel == (Index3D{}) && fromID == toID {
		return fmt.Errorf("AddHopping %q: %w", from, ErrSelfHopping)
	}
	if l.hasHopping(fromID, rel, toID) {
		return fmt.Errorf("AddHopping %v %q->%q: %w", rel, from, to, ErrDuplicateHopping)
	}

	l.sublattices[fromID].Hoppings = append(l.sublattices[fromID].Hoppings,
		Hopping{RelativeIndex: rel, To: toID, Energy: energy})
	l.sublattices[toID].Hoppings = append(l.sublattices[toID].Hoppings,
		Hopping{RelativeIndex: rel.Neg(), To: fromID, Energy: energy})

	return nil
}

func (l *Lattice) hasHopping(from int, rel Index3D, to int) bool {
	for _, h := range l.sublattices[from].Hoppings {
		if h.RelativeIndex == rel && h.To == to {
			return true
		}
	}
	return false
}

// SetMinNeighbours sets the threshold used by edge trimming.
func (l *Lattice) SetMinNeighbours(n int) error {
	if n < 0 {
		return fmt.Errorf("SetMinNeighbours(%d): %w", n, ErrNegativeMinNeighbours)
	}
	l.minNeighbours = n
	return nil
}

// MinNeighbours returns the minimum neighbour count a site must keep.
func (l *Lattice) MinNeighbours() int { return l.minNeighbours }

// NDim returns the number of primitive vectors (1, 2 or 3).
func (l *Lattice) NDim() int { return len(l.vectors) }

// Vector returns primitive vector i, or the zero vector for axes the
// lattice does not span.
func (l *Lattice) Vector(i int) Cartesian {
	if i < 0 || i >= len(l.vectors) {
		return Cartesian{}
	}
	return l.vectors[i]
}

// Vectors returns a copy of the primitive vectors.
func (l *Lattice) Vectors() []Cartesian {
	out := make([]Cartesian, len(l.vectors))
	copy(out, l.vectors)
	return out
}

// NumSublattices returns the number of site types per unit cell.
func (l *Lattice) NumSublattices() int { return len(l.sublattices) }

// Sublattice returns the sublattice with the given id. The returned value
// shares its Hoppings slice with the lattice; treat it as read-only.
func (l *Lattice) Sublattice(id int) Sublattice { return l.sublattices[id] }

// SublatticeID resolves a sublattice name.
func (l *Lattice) SublatticeID(name string) (int, error) {
	id, ok := l.ids[name]
	if !ok {
		return 0, fmt.Errorf("SublatticeID %q: %w", name, ErrUnknownSublattice)
	}
	return id, nil
}

// NumHoppings returns the total number of directed hopping rules.
func (l *Lattice) NumHoppings() int {
	n := 0
	for _, s := range l.sublattices {
		n += len(s.Hoppings)
	}
	return n
}

// Validate checks that the lattice can seed a Foundation.
func (l *Lattice) Validate() error {
	if len(l.vectors) == 0 {
		return ErrNoVectors
	}
	if len(l.sublattices) == 0 {
		return ErrNoSublattices
	}
	return nil
}
