package cipher

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"
	"sync/atomic"

	"golang.org/x/crypto/chacha20poly1305"
)

var (
	ErrSealedTooShort = errors.New("cipher: sealed frame too short")
	ErrOpenFailed     = errors.New("cipher: open failed")
)

// Sealer authenticates and encrypts lattice frames for transit under a
// session key, using ChaCha20-Poly1305 with automatic nonce management
// (32-bit random prefix plus 64-bit counter, no reuse for ~2^64 frames).
//
// The lattice transform itself is deterministic and unauthenticated; the
// Sealer is what protects a frame between exchanging parties.
type Sealer struct {
	aead   cipher.AEAD
	prefix [4]byte
	seq    atomic.Uint64
}

// NewSealer creates a Sealer from a 32-byte session key.
func NewSealer(key []byte) (*Sealer, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, errors.New("cipher: invalid session key size")
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	s := &Sealer{aead: aead}
	if _, err := io.ReadFull(rand.Reader, s.prefix[:]); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sealer) nextNonce() []byte {
	seq := s.seq.Add(1)
	nonce := make([]byte, chacha20poly1305.NonceSize)
	copy(nonce[:4], s.prefix[:])
	binary.BigEndian.PutUint64(nonce[4:], seq)
	return nonce
}

// Seal encrypts and authenticates a frame.
// Output: nonce (12 bytes) || ciphertext || tag (16 bytes)
func (s *Sealer) Seal(frame, additionalData []byte) []byte {
	nonce := s.nextNonce()
	sealed := s.aead.Seal(nil, nonce, frame, additionalData)
	out := make([]byte, len(nonce)+len(sealed))
	copy(out, nonce)
	copy(out[len(nonce):], sealed)
	return out
}

// Open verifies and decrypts a sealed frame.
func (s *Sealer) Open(sealed, additionalData []byte) ([]byte, error) {
	nonceSize := chacha20poly1305.NonceSize
	if len(sealed) < nonceSize+s.aead.Overhead() {
		return nil, ErrSealedTooShort
	}
	frame, err := s.aead.Open(nil, sealed[:nonceSize], sealed[nonceSize:], additionalData)
	if err != nil {
		return nil, ErrOpenFailed
	}
	return frame, nil
}

// Overhead returns the per-frame sealing overhead.
func (s *Sealer) Overhead() int {
	return chacha20poly1305.NonceSize + s.aead.Overhead()
}
