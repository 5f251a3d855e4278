package digest

import (
	"encoding/binary"
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tetracrypt/tetra/tetra/geometry"
)

var (
	ErrInvalidDimension  = errors.New("digest: dimension must be a positive integer")
	ErrInvalidIterations = errors.New("digest: iterations must be a positive integer")
	ErrInvalidEncoding   = errors.New("digest: encoded digest length is not a multiple of 8")
)

// Default parameters: 4-dimensional tesseract, three rounds.
const (
	DefaultDimension  = 4
	DefaultIterations = 3
)

// Hasher computes fixed-width digests through repeated hypercube transforms.
// The hypercube matrix is derived deterministically from the dimension at
// construction and never resampled, so independent hashers of the same
// dimension agree on every digest. A Hasher is safe for concurrent use.
type Hasher struct {
	dim        int
	iterations int
	cube       *mat.Dense
}

// New creates a hasher for the given dimension and round count.
func New(dim, iterations int) (*Hasher, error) {
	if iterations <= 0 {
		return nil, ErrInvalidIterations
	}
	cube, err := geometry.HypercubeMatrix(dim)
	if err != nil {
		return nil, ErrInvalidDimension
	}
	return &Hasher{dim: dim, iterations: iterations, cube: cube}, nil
}

// Dimension returns the digest width.
func (h *Hasher) Dimension() int { return h.dim }

// Iterations returns the round count.
func (h *Hasher) Iterations() int { return h.iterations }

// Sum digests data. Every input, including an empty one, runs exactly the
// configured number of rounds; short inputs are zero-padded, never rejected.
func (h *Hasher) Sum(data []byte) []float64 {
	window := mat.NewVecDense(h.dim, nil)
	for i := 0; i < h.dim; i++ {
		if i < len(data) {
			window.SetVec(i, float64(data[i]))
		}
	}

	var out mat.VecDense
	for round := 0; round < h.iterations; round++ {
		out.MulVec(h.cube, window)
		if round == h.iterations-1 {
			break
		}
		// Carry the round output forward as bytes, wrapping mod 256.
		for i := 0; i < h.dim; i++ {
			window.SetVec(i, float64(byte(int64(out.AtVec(i)))))
		}
	}

	digest := make([]float64, h.dim)
	for i := range digest {
		digest[i] = out.AtVec(i)
	}
	return digest
}

// Verify recomputes the digest of data with the hasher's own matrix and
// compares element-wise. The transform is deterministic, so equality is
// exact, not approximate.
func (h *Hasher) Verify(data []byte, expected []float64) bool {
	if len(expected) != h.dim {
		return false
	}
	got := h.Sum(data)
	for i := range got {
		if got[i] != expected[i] {
			return false
		}
	}
	return true
}

// Encode serializes a digest as fixed-width big-endian IEEE-754 float64
// coordinates, the transport and ledger payload representation.
func Encode(digest []float64) []byte {
	out := make([]byte, 8*len(digest))
	for i, v := range digest {
		binary.BigEndian.PutUint64(out[i*8:], math.Float64bits(v))
	}
	return out
}

// Decode parses an encoded digest.
func Decode(b []byte) ([]float64, error) {
	if len(b)%8 != 0 {
		return nil, ErrInvalidEncoding
	}
	digest := make([]float64, len(b)/8)
	for i := range digest {
		digest[i] = math.Float64frombits(binary.BigEndian.Uint64(b[i*8:]))
	}
	return digest, nil
}
