package exchange

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ID is the stable identifier of a party, defined as the SHA-256 of the
// canonical encoding of its public vector.
type ID [32]byte

// Fingerprint computes the identifier for a public vector.
func Fingerprint(public []float64) ID {
	sum := sha256.Sum256(encodeVector(public))
	return ID(sum)
}

// ParseIDHex parses a hex-encoded identifier.
func ParseIDHex(s string) (ID, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ID{}, err
	}
	if len(b) != 32 {
		return ID{}, errors.New("exchange: invalid ID length")
	}
	var id ID
	copy(id[:], b)
	return id, nil
}

func (id ID) String() string {
	return hex.EncodeToString(id[:])
}
