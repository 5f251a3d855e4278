package tetra

import (
	"testing"

	"github.com/tetracrypt/tetra/tetra/cipher"
	"github.com/tetracrypt/tetra/tetra/digest"
	"github.com/tetracrypt/tetra/tetra/exchange"
)

func TestPipelineRecord(t *testing.T) {
	n, err := NewNexus(Config{})
	if err != nil {
		t.Fatalf("NewNexus: %v", err)
	}

	block, err := n.Record([]byte("application data"))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if block.Index != 1 {
		t.Fatalf("first recorded block should have index 1, got %d", block.Index)
	}
	if !n.Ledger().IsValid() {
		t.Fatalf("ledger should be valid after recording")
	}

	// Without an established session the pipeline is deterministic, so the
	// block payload is the verifiable digest of the lattice frame.
	frame, err := n.Cipher().Encrypt([]byte("application data"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	d, err := digest.Decode(block.Payload)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !n.Hasher().Verify(frame, d) {
		t.Fatalf("block payload is not the digest of the frame")
	}
}

func TestEstablishAndRecord(t *testing.T) {
	alice, err := NewNexus(Config{Dimension: 4})
	if err != nil {
		t.Fatalf("NewNexus alice: %v", err)
	}
	bob, err := NewNexus(Config{Dimension: 4})
	if err != nil {
		t.Fatalf("NewNexus bob: %v", err)
	}

	if alice.Established() {
		t.Fatalf("session should not be established yet")
	}
	if err := alice.Establish(bob.Public()); err != nil {
		t.Fatalf("Establish alice: %v", err)
	}
	if err := bob.Establish(alice.Public()); err != nil {
		t.Fatalf("Establish bob: %v", err)
	}
	if !alice.Established() || !bob.Established() {
		t.Fatalf("both parties should be established")
	}

	if _, err := alice.Record([]byte("sealed payload")); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !alice.Ledger().IsValid() {
		t.Fatalf("ledger should stay valid with sealing enabled")
	}

	if err := alice.Establish([]float64{1, 2}); err != exchange.ErrDimensionMismatch {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestSeededNexusAgreement(t *testing.T) {
	seed := []byte("shared deployment seed")
	a, err := NewNexus(Config{Seed: seed})
	if err != nil {
		t.Fatalf("NewNexus: %v", err)
	}
	b, err := NewNexus(Config{Seed: seed})
	if err != nil {
		t.Fatalf("NewNexus: %v", err)
	}

	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("same seed should yield the same identity")
	}

	// Same seed, same lattice, same hasher: digests agree across instances.
	ba, err := a.Record([]byte("x"))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	bb, err := b.Record([]byte("x"))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if string(ba.Payload) != string(bb.Payload) {
		t.Fatalf("seeded instances disagree on the recorded digest")
	}
}

func TestRecordBatchOrder(t *testing.T) {
	n, err := NewNexus(Config{
		Dimension: 4,
		Lattice:   cipher.PolyhedralStrategy{Rows: 4},
	})
	if err != nil {
		t.Fatalf("NewNexus: %v", err)
	}

	payloads := make([][]byte, 50)
	for i := range payloads {
		payloads[i] = []byte{byte(i), byte(i + 1)}
	}

	blocks, err := n.RecordBatch(payloads, 4)
	if err != nil {
		t.Fatalf("RecordBatch: %v", err)
	}
	if len(blocks) != len(payloads) {
		t.Fatalf("expected %d blocks, got %d", len(payloads), len(blocks))
	}
	for i, b := range blocks {
		if b.Index != uint64(i+1) {
			t.Fatalf("block %d has index %d; appends must follow input order", i, b.Index)
		}
	}
	if !n.Ledger().IsValid() {
		t.Fatalf("ledger should be valid after batch recording")
	}
}

func TestInvalidConfig(t *testing.T) {
	if _, err := NewNexus(Config{Dimension: -4}); err != exchange.ErrInvalidDimension {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
	if _, err := NewNexus(Config{Iterations: -1}); err != digest.ErrInvalidIterations {
		t.Fatalf("expected ErrInvalidIterations, got %v", err)
	}
}
