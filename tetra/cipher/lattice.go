package cipher

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tetracrypt/tetra/tetra/geometry"
)

var ErrUnsupportedDimension = errors.New("cipher: dimension not supported by lattice strategy")

// LatticeStrategy produces the lattice a Cipher is built on. dim is the
// chunk dimensionality and becomes the lattice's column count. A nil seed
// requests fresh entropy; a non-nil seed must be deterministic.
type LatticeStrategy interface {
	Lattice(dim int, seed []byte) (*mat.Dense, error)
}

// PolyhedralStrategy samples a Rows x dim lattice. The zero value uses the
// classic 12-vertex polyhedron, which with dim = 20 yields the canonical
// 12x20 QIDL lattice. Set Rows equal to dim to obtain a square lattice that
// supports decryption.
type PolyhedralStrategy struct {
	Rows int
}

func (p PolyhedralStrategy) Lattice(dim int, seed []byte) (*mat.Dense, error) {
	rows := p.Rows
	if rows == 0 {
		rows = geometry.PolyhedralVertexCount
	}
	if seed == nil {
		return geometry.PolyhedralLattice(rows, dim)
	}
	return geometry.PolyhedralLatticeSeeded(rows, dim, seed)
}

// IcosahedralStrategy builds the lattice from the twelve vertices of the
// regular icosahedron, zero-extended beyond three coordinates and truncated
// to dim rows. It is fully deterministic; the seed is ignored. Supported for
// dimensions up to twelve. Above dimension three the zero columns make the
// lattice singular, so this strategy encrypts one-way only.
type IcosahedralStrategy struct{}

func (IcosahedralStrategy) Lattice(dim int, _ []byte) (*mat.Dense, error) {
	if dim <= 0 {
		return nil, geometry.ErrInvalidDimension
	}
	if dim > len(icosahedronVertices) {
		return nil, ErrUnsupportedDimension
	}
	out := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim && j < 3; j++ {
			out.Set(i, j, icosahedronVertices[i][j])
		}
	}
	return out, nil
}

// icosahedronVertices are the vertices of the regular icosahedron with edge
// length 2, built from the golden ratio.
var icosahedronVertices = [12][3]float64{
	{0, 1, math.Phi}, {0, -1, math.Phi}, {0, 1, -math.Phi}, {0, -1, -math.Phi},
	{1, math.Phi, 0}, {-1, math.Phi, 0}, {1, -math.Phi, 0}, {-1, -math.Phi, 0},
	{math.Phi, 0, 1}, {-math.Phi, 0, 1}, {math.Phi, 0, -1}, {-math.Phi, 0, -1},
}
