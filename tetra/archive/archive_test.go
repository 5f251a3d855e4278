package archive

import (
	"bytes"
	"testing"

	"github.com/tetracrypt/tetra/tetra/ledger"
)

func buildChain(n int) *ledger.Ledger {
	l := ledger.New()
	for i := 0; i < n; i++ {
		l.Append(bytes.Repeat([]byte{byte(i)}, 32))
	}
	return l
}

func TestSnapshotLoadRoundTrip(t *testing.T) {
	for _, level := range []CompressionLevel{CompressionFast, CompressionDefault, CompressionBest} {
		l := buildChain(10)

		snapshot, err := Snapshot(l, level)
		if err != nil {
			t.Fatalf("Snapshot: %v", err)
		}

		restored, err := Load(snapshot)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if restored.Len() != l.Len() {
			t.Fatalf("restored length %d, want %d", restored.Len(), l.Len())
		}
		if l.IsValid() != restored.IsValid() {
			t.Fatalf("round trip changed the validity verdict")
		}
	}
}

func TestLoadGarbage(t *testing.T) {
	if _, err := Load([]byte("definitely not lz4")); err == nil {
		t.Fatalf("expected error for garbage input")
	}
}

func TestShardRecover(t *testing.T) {
	s, err := NewSharder(4, 2)
	if err != nil {
		t.Fatalf("NewSharder: %v", err)
	}

	l := buildChain(25)
	snapshot, err := Snapshot(l, CompressionDefault)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	set, err := s.Shard(snapshot)
	if err != nil {
		t.Fatalf("Shard: %v", err)
	}
	if len(set.Shards) != s.TotalShards() {
		t.Fatalf("expected %d shards, got %d", s.TotalShards(), len(set.Shards))
	}
	ok, err := s.Verify(set)
	if err != nil || !ok {
		t.Fatalf("Verify: ok=%v err=%v", ok, err)
	}

	// Lose as many shards as we have parity.
	set.Shards[1] = nil
	set.Shards[4] = nil

	recovered, err := s.Recover(set)
	if err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if !bytes.Equal(recovered, snapshot) {
		t.Fatalf("recovered snapshot differs")
	}

	restored, err := Load(recovered)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !restored.IsValid() {
		t.Fatalf("restored chain should be valid")
	}
}

func TestTooManyLost(t *testing.T) {
	s, err := NewSharder(4, 2)
	if err != nil {
		t.Fatalf("NewSharder: %v", err)
	}
	set, err := s.Shard([]byte("a small snapshot payload"))
	if err != nil {
		t.Fatalf("Shard: %v", err)
	}

	set.Shards[0] = nil
	set.Shards[1] = nil
	set.Shards[2] = nil
	if _, err := s.Recover(set); err != ErrTooManyLost {
		t.Fatalf("expected ErrTooManyLost, got %v", err)
	}
}

func TestSharderConfig(t *testing.T) {
	if _, err := NewSharder(0, 2); err != ErrInvalidShardConfig {
		t.Fatalf("expected ErrInvalidShardConfig, got %v", err)
	}
	if _, err := NewSharder(4, 0); err != ErrInvalidShardConfig {
		t.Fatalf("expected ErrInvalidShardConfig, got %v", err)
	}

	s, err := NewSharder(10, 4)
	if err != nil {
		t.Fatalf("NewSharder: %v", err)
	}
	if s.DataShards() != 10 || s.ParityShards() != 4 || s.TotalShards() != 14 {
		t.Fatalf("unexpected shard accounting")
	}
}
