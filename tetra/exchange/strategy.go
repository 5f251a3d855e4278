package exchange

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tetracrypt/tetra/tetra/geometry"
)

// Strategy samples private key material for a given dimension.
// A nil seed requests fresh entropy; a non-nil seed must produce the same
// material on every call.
type Strategy interface {
	Material(dim int, seed []byte) ([]float64, error)
}

// HarmonicStrategy samples uniform values and weights them by ascending
// powers of the golden ratio.
type HarmonicStrategy struct{}

func (HarmonicStrategy) Material(dim int, seed []byte) ([]float64, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}
	var s *geometry.Sampler
	if seed == nil {
		s = geometry.NewSampler()
	} else {
		s = geometry.NewSeededSampler(seed, "tetra-harmonic-key")
	}
	material := make([]float64, dim)
	if err := s.Fill(material); err != nil {
		return nil, err
	}
	w := 1.0
	for i := range material {
		material[i] *= w
		w *= goldenRatio
	}
	return material, nil
}

// SimplexStrategy derives private material from a simplex vertex set: the
// material is the centroid of dim+1 sampled vertices.
type SimplexStrategy struct{}

func (SimplexStrategy) Material(dim int, seed []byte) ([]float64, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}
	var (
		vertices *mat.Dense
		err      error
	)
	if seed == nil {
		vertices, err = geometry.SimplexVertices(dim)
	} else {
		vertices, err = geometry.SimplexVerticesSeeded(dim, seed)
	}
	if err != nil {
		return nil, err
	}
	material := make([]float64, dim)
	rows, _ := vertices.Dims()
	for j := 0; j < dim; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += vertices.At(i, j)
		}
		material[j] = sum / float64(rows)
	}
	return material, nil
}
