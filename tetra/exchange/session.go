package exchange

import (
	"bytes"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// SessionKeySize is the size of derived symmetric session keys.
const SessionKeySize = 32

// SessionKey derives a 32-byte symmetric key from the shared secret with the
// peer. The HKDF info binds both public vectors in a fixed order (smaller
// encoding first), so initiator and responder derive the same key.
func (kp *KeyPair) SessionKey(peerPublic []float64) ([]byte, error) {
	secret, err := kp.SharedSecret(peerPublic)
	if err != nil {
		return nil, err
	}
	return deriveSessionKey(encodeVector(secret), encodeVector(kp.public), encodeVector(peerPublic))
}

func deriveSessionKey(secret, pubA, pubB []byte) ([]byte, error) {
	if bytes.Compare(pubB, pubA) < 0 {
		pubA, pubB = pubB, pubA
	}
	info := make([]byte, 0, len("tetra-session-key")+len(pubA)+len(pubB))
	info = append(info, []byte("tetra-session-key")...)
	info = append(info, pubA...)
	info = append(info, pubB...)

	hk := hkdf.New(sha256.New, secret, nil, info)
	key := make([]byte, SessionKeySize)
	if _, err := io.ReadFull(hk, key); err != nil {
		return nil, err
	}
	return key, nil
}
