// Package foundation builds the site skeleton of a finite lattice model:
// every candidate site of a box of unit cells, which of them survive in the
// requested region, and the dense index each survivor gets in a Hamiltonian.
//
// 🚀 Pipeline:
//
//	Lattice + Primitive ─────────────────────────────┐
//	                                                 ├─► positions + validity
//	Lattice + Shape ─► FindBounds ─► GeneratePositions ─► Shape.Contains ─► TrimEdges
//	                                                 │
//	                                                 └─► NewHamiltonianIndices / SublatticeIDs
//
// Site layout:
//
//	Sites are stored in flat arrays. The nesting a → b → c → sublattice is
//	fixed, so
//
//	  flat = ((a·size_b + b)·size_c + c)·n_sub + sublattice
//
//	and the sublattice is the fastest-varying component.
//
// Trimming:
//
//	TrimEdges counts, for every site, the hopping rules that stay inside the
//	box, then walks every invalid site and takes it away from its valid
//	neighbours. A neighbour whose count drops below Lattice.MinNeighbours is
//	invalidated and processed in turn, via a FIFO worklist. Validity only
//	flips true→false and counts only decrease, so the fixed point does not
//	depend on visiting order and a second pass changes nothing.
//
// Concurrency:
//
//	A Foundation is not safe for concurrent use. It is mutated only by
//	trimming (and explicit Site.SetValid calls); afterwards treat it as
//	read-only.
//
// Complexity:
//
//   - GeneratePositions: O(N) for N = size_a·size_b·size_c·n_sub sites.
//   - CountNeighbours, TrimEdges: O(N·h), h = hoppings per sublattice.
//   - NewHamiltonianIndices, SublatticeIDs: O(N).
//   - Components: O(N·h), breadth-first over valid sites.
package foundation
