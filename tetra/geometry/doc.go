// Package geometry produces the reference geometric structures the rest of
// the stack is built on: simplex vertex sets, polyhedral lattices and
// hypercube sign grids.
//
// Structures have a fixed shape for a given dimension. Their values are
// freshly sampled per call unless a seed is supplied; seeded variants are
// fully deterministic, which is what key exchange and hash verification
// require when two independent instances must agree on a structure.
// Hypercube grids are deterministic with or without a seed.
package geometry
