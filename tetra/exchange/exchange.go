package exchange

import (
	"encoding/binary"
	"errors"
	"math"
)

var (
	ErrInvalidDimension  = errors.New("exchange: dimension must be a positive integer")
	ErrDimensionMismatch = errors.New("exchange: peer vector length does not match dimension")
)

// goldenRatio is (1 + sqrt(5)) / 2, the weight base for public derivation.
const goldenRatio = math.Phi

// KeyPair holds a party's private key material and the public vector derived
// from it. The material is sampled exactly once at construction; Public is
// stable across calls, which is what makes the peer's shared-secret
// computation reproducible.
type KeyPair struct {
	dim     int
	private []float64
	public  []float64
}

// New samples a key pair of the given dimension using fresh entropy.
// A nil strategy selects HarmonicStrategy.
func New(dim int, strategy Strategy) (*KeyPair, error) {
	return NewSeeded(dim, strategy, nil)
}

// NewSeeded samples a key pair deterministically from a seed. The same
// dimension, strategy and seed always yield the same pair.
func NewSeeded(dim int, strategy Strategy, seed []byte) (*KeyPair, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}
	if strategy == nil {
		strategy = HarmonicStrategy{}
	}
	private, err := strategy.Material(dim, seed)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		dim:     dim,
		private: private,
		public:  DerivePublic(private),
	}, nil
}

// Dimension returns the configured dimension.
func (kp *KeyPair) Dimension() int { return kp.dim }

// Public returns a copy of the derived public vector.
func (kp *KeyPair) Public() []float64 {
	out := make([]float64, len(kp.public))
	copy(out, kp.public)
	return out
}

// DerivePublic derives the public vector from private material:
// pub[i] = phi^i * private[i]. It is a pure function, never a fresh draw,
// so repeated calls agree and counterparties can rely on the result.
func DerivePublic(private []float64) []float64 {
	public := make([]float64, len(private))
	w := 1.0
	for i, p := range private {
		public[i] = w * p
		w *= goldenRatio
	}
	return public
}

// SharedSecret combines this party's key material with the peer's public
// vector. Each coordinate is the product of the two derived coordinates:
// secret[i] = phi^2i * a[i] * b[i]. Both sides multiply the same two stored
// float64 values, and IEEE multiplication commutes, so the secrets are
// bit-identical on both ends.
func (kp *KeyPair) SharedSecret(peerPublic []float64) ([]float64, error) {
	if len(peerPublic) != kp.dim {
		return nil, ErrDimensionMismatch
	}
	secret := make([]float64, kp.dim)
	for i := range secret {
		secret[i] = kp.public[i] * peerPublic[i]
	}
	return secret, nil
}

// encodeVector is the canonical byte encoding of a key or secret vector:
// big-endian IEEE-754 float64 per coordinate.
func encodeVector(v []float64) []byte {
	out := make([]byte, 8*len(v))
	for i, x := range v {
		binary.BigEndian.PutUint64(out[i*8:], math.Float64bits(x))
	}
	return out
}
