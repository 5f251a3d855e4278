package exchange

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/curve25519"
)

var ErrInvalidPublicKey = errors.New("exchange: invalid X25519 public key")

// X25519KeyPair is an ephemeral ECDH keypair used by the hybrid exchange.
type X25519KeyPair struct {
	PublicKey  [32]byte
	PrivateKey [32]byte
}

// GenerateX25519 generates a new ephemeral X25519 keypair.
func GenerateX25519() (X25519KeyPair, error) {
	var kp X25519KeyPair
	if _, err := io.ReadFull(rand.Reader, kp.PrivateKey[:]); err != nil {
		return X25519KeyPair{}, err
	}
	// Clamp private key per RFC 7748
	kp.PrivateKey[0] &= 248
	kp.PrivateKey[31] &= 127
	kp.PrivateKey[31] |= 64

	curve25519.ScalarBaseMult(&kp.PublicKey, &kp.PrivateKey)
	return kp, nil
}

// ECDH computes the raw X25519 shared secret.
func ECDH(privateKey, peerPublicKey [32]byte) ([]byte, error) {
	var zero [32]byte
	if peerPublicKey == zero {
		return nil, ErrInvalidPublicKey
	}
	return curve25519.X25519(privateKey[:], peerPublicKey[:])
}

// HybridKeyPair binds a geometric key pair to an ephemeral X25519 pair.
// The combined secret mixes both exchanges, so it is no weaker than the
// stronger of the two.
type HybridKeyPair struct {
	Geometric *KeyPair
	Ephemeral X25519KeyPair
}

// NewHybrid creates a hybrid pair of the given dimension.
func NewHybrid(dim int, strategy Strategy) (*HybridKeyPair, error) {
	geo, err := New(dim, strategy)
	if err != nil {
		return nil, err
	}
	eph, err := GenerateX25519()
	if err != nil {
		return nil, err
	}
	return &HybridKeyPair{Geometric: geo, Ephemeral: eph}, nil
}

// Secret derives the combined session key from the peer's geometric public
// vector and ephemeral public key. Both parties derive the same key.
func (h *HybridKeyPair) Secret(peerPublic []float64, peerEphemeral [32]byte) ([]byte, error) {
	geoKey, err := h.Geometric.SessionKey(peerPublic)
	if err != nil {
		return nil, err
	}
	ecdh, err := ECDH(h.Ephemeral.PrivateKey, peerEphemeral)
	if err != nil {
		return nil, err
	}
	secret := make([]byte, 0, len(geoKey)+len(ecdh))
	secret = append(secret, geoKey...)
	secret = append(secret, ecdh...)
	return deriveSessionKey(secret, h.Ephemeral.PublicKey[:], peerEphemeral[:])
}
