package geometry

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Sampler produces a stream of float64 values in [0, 1).
//
// A fresh Sampler draws from crypto/rand. A seeded Sampler expands the seed
// through HKDF-SHA256, so two samplers built from the same seed and context
// produce identical streams on any platform.
type Sampler struct {
	r io.Reader
}

// NewSampler returns a sampler backed by the system entropy source.
func NewSampler() *Sampler {
	return &Sampler{r: rand.Reader}
}

// NewSeededSampler returns a deterministic sampler. The context string
// separates independent streams derived from the same seed.
func NewSeededSampler(seed []byte, context string) *Sampler {
	return &Sampler{r: hkdf.New(sha256.New, seed, nil, []byte(context))}
}

// Float64 returns the next value in [0, 1).
func (s *Sampler) Float64() (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		return 0, err
	}
	// Use the top 53 bits so the value is an exact dyadic in [0, 1).
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53), nil
}

// Fill populates dst with sampled values.
func (s *Sampler) Fill(dst []float64) error {
	for i := range dst {
		v, err := s.Float64()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}
