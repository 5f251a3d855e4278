package ledger

import (
	"bytes"
	"errors"
	"testing"
)

func TestChainRoundTrip(t *testing.T) {
	l := New()
	l.Append([]byte("alpha"))
	l.Append([]byte("beta"))
	l.Append(nil) // empty payloads are legal

	snapshot, err := l.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	restored, err := Restore(snapshot)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.Len() != l.Len() {
		t.Fatalf("restored length %d, want %d", restored.Len(), l.Len())
	}

	want := l.Blocks()
	got := restored.Blocks()
	for i := range want {
		if got[i].Index != want[i].Index ||
			got[i].PreviousHash != want[i].PreviousHash ||
			!bytes.Equal(got[i].Payload, want[i].Payload) ||
			got[i].Timestamp != want[i].Timestamp ||
			got[i].Hash != want[i].Hash {
			t.Fatalf("block %d does not round trip", i)
		}
	}

	if l.IsValid() != restored.IsValid() {
		t.Fatalf("round trip changed the validity verdict")
	}
	if !restored.IsValid() {
		t.Fatalf("restored chain should be valid")
	}

	// A restored chain keeps growing from its latest block.
	b := restored.Append([]byte("gamma"))
	if b.Index != 4 || !restored.IsValid() {
		t.Fatalf("restored chain should accept appends")
	}
}

func TestRoundTripPreservesInvalidVerdict(t *testing.T) {
	l := New()
	l.Append([]byte("a"))
	l.chain[1].Payload = []byte("forged")
	if l.IsValid() {
		t.Fatalf("setup: chain should be invalid")
	}

	snapshot, err := l.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	restored, err := Restore(snapshot)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.IsValid() {
		t.Fatalf("round trip must preserve the invalid verdict")
	}
}

func TestCodecErrors(t *testing.T) {
	if _, err := Restore([]byte{0xfe, 0, 0, 0, 1}); !errors.Is(err, ErrInvalidFrame) {
		t.Fatalf("expected ErrInvalidFrame for bad version, got %v", err)
	}

	if _, err := Restore(nil); err == nil {
		t.Fatalf("expected error for empty snapshot")
	}

	// Truncated block record.
	l := New()
	snapshot, _ := l.Snapshot()
	if _, err := Restore(snapshot[:len(snapshot)-10]); err == nil {
		t.Fatalf("expected error for truncated snapshot")
	}

	var buf bytes.Buffer
	oversized := Block{
		PreviousHash: genesisPreviousHash,
		Payload:      make([]byte, MaxBlockPayload+1),
		Hash:         genesisPreviousHash,
	}
	if err := WriteChain(&buf, []Block{oversized}); !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
}

func TestRestoreEmptyChain(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteChain(&buf, nil); err != nil {
		t.Fatalf("WriteChain: %v", err)
	}
	l, err := Restore(buf.Bytes())
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if _, err := l.Latest(); err != ErrEmptyChain {
		t.Fatalf("expected ErrEmptyChain, got %v", err)
	}
	if !l.IsValid() {
		t.Fatalf("an empty chain has nothing invalid in it")
	}
}
