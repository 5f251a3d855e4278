package geometry

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrInvalidDimension = errors.New("geometry: dimension must be a positive integer")
	ErrInvalidShape     = errors.New("geometry: rows and columns must be positive")
)

// Default shape of the quantum isoca-dodecahedral lattice: 12 vertices, 20 faces.
const (
	PolyhedralVertexCount = 12
	PolyhedralFaceCount   = 20
)

// MaxHypercubeDimension bounds the 2^dim vertex count of a hypercube grid.
const MaxHypercubeDimension = 24

// SimplexVertices returns dim+1 freshly sampled points in dim-dimensional
// space. With probability 1 the points are in general position and form a
// valid simplex for tetrahedral decomposition.
func SimplexVertices(dim int) (*mat.Dense, error) {
	return simplexVertices(dim, NewSampler())
}

// SimplexVerticesSeeded is the deterministic variant of SimplexVertices.
// Two calls with the same dimension and seed return identical vertices.
func SimplexVerticesSeeded(dim int, seed []byte) (*mat.Dense, error) {
	return simplexVertices(dim, NewSeededSampler(seed, "tetra-simplex"))
}

func simplexVertices(dim int, s *Sampler) (*mat.Dense, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}
	data := make([]float64, (dim+1)*dim)
	if err := s.Fill(data); err != nil {
		return nil, err
	}
	return mat.NewDense(dim+1, dim, data), nil
}

// PolyhedralLattice returns a rows x cols matrix of freshly sampled values.
func PolyhedralLattice(rows, cols int) (*mat.Dense, error) {
	return polyhedralLattice(rows, cols, NewSampler())
}

// PolyhedralLatticeSeeded is the deterministic variant of PolyhedralLattice.
func PolyhedralLatticeSeeded(rows, cols int, seed []byte) (*mat.Dense, error) {
	return polyhedralLattice(rows, cols, NewSeededSampler(seed, "tetra-lattice"))
}

func polyhedralLattice(rows, cols int, s *Sampler) (*mat.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidShape
	}
	data := make([]float64, rows*cols)
	if err := s.Fill(data); err != nil {
		return nil, err
	}
	return mat.NewDense(rows, cols, data), nil
}

// HypercubeVertices returns the 2^dim sign-combination vertices of a
// dim-dimensional hypercube as a 2^dim x dim matrix. Row i, column j is +1
// when bit j of i is set and -1 otherwise. The result is a pure function of
// the dimension: no entropy is involved.
func HypercubeVertices(dim int) (*mat.Dense, error) {
	if dim <= 0 || dim > MaxHypercubeDimension {
		return nil, ErrInvalidDimension
	}
	n := 1 << dim
	data := make([]float64, n*dim)
	for i := 0; i < n; i++ {
		for j := 0; j < dim; j++ {
			if i&(1<<j) != 0 {
				data[i*dim+j] = 1
			} else {
				data[i*dim+j] = -1
			}
		}
	}
	return mat.NewDense(n, dim, data), nil
}

// HypercubeMatrix returns the hypercube vertex grid truncated to its first
// dim rows, the square dim x dim transform used by iterative hashing.
func HypercubeMatrix(dim int) (*mat.Dense, error) {
	v, err := HypercubeVertices(dim)
	if err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(v.Slice(0, dim, 0, dim)), nil
}
