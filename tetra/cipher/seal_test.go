package cipher

import (
	"bytes"
	"testing"
)

func TestSealerRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	sealer, err := NewSealer(key)
	if err != nil {
		t.Fatalf("NewSealer: %v", err)
	}

	frame := []byte("lattice frame bytes")
	ad := []byte("block context")

	sealed := sealer.Seal(frame, ad)
	if len(sealed) != len(frame)+sealer.Overhead() {
		t.Fatalf("unexpected sealed length")
	}

	opened, err := sealer.Open(sealed, ad)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(opened, frame) {
		t.Fatalf("opened frame does not match")
	}

	// Tampering must be detected.
	sealed[len(sealed)-1] ^= 0xff
	if _, err := sealer.Open(sealed, ad); err != ErrOpenFailed {
		t.Fatalf("expected ErrOpenFailed on tampered frame, got %v", err)
	}
}

func TestSealerSharedKey(t *testing.T) {
	key := make([]byte, 32)
	a, err := NewSealer(key)
	if err != nil {
		t.Fatalf("NewSealer: %v", err)
	}
	b, err := NewSealer(key)
	if err != nil {
		t.Fatalf("NewSealer: %v", err)
	}

	sealed := a.Seal([]byte("cross-party frame"), nil)
	opened, err := b.Open(sealed, nil)
	if err != nil {
		t.Fatalf("Open with peer sealer: %v", err)
	}
	if string(opened) != "cross-party frame" {
		t.Fatalf("peer open mismatch")
	}
}

func TestSealerErrors(t *testing.T) {
	if _, err := NewSealer(make([]byte, 16)); err == nil {
		t.Fatalf("expected error for short key")
	}

	sealer, _ := NewSealer(make([]byte, 32))
	if _, err := sealer.Open([]byte{1, 2, 3}, nil); err != ErrSealedTooShort {
		t.Fatalf("expected ErrSealedTooShort, got %v", err)
	}
}
