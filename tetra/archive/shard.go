package archive

import (
	"errors"

	"github.com/klauspost/reedsolomon"
)

var (
	ErrTooManyLost        = errors.New("archive: too many shards lost, cannot recover")
	ErrInvalidShardConfig = errors.New("archive: invalid data/parity configuration")
)

// Sharder splits snapshots into Reed-Solomon shards for resilient storage.
type Sharder struct {
	enc          reedsolomon.Encoder
	dataShards   int
	parityShards int
}

// NewSharder creates a sharder with the given data/parity split.
func NewSharder(dataShards, parityShards int) (*Sharder, error) {
	if dataShards <= 0 || parityShards <= 0 {
		return nil, ErrInvalidShardConfig
	}
	enc, err := reedsolomon.New(dataShards, parityShards)
	if err != nil {
		return nil, err
	}
	return &Sharder{
		enc:          enc,
		dataShards:   dataShards,
		parityShards: parityShards,
	}, nil
}

// DataShards returns the number of data shards.
func (s *Sharder) DataShards() int { return s.dataShards }

// ParityShards returns the number of parity shards.
func (s *Sharder) ParityShards() int { return s.parityShards }

// TotalShards returns the total shard count.
func (s *Sharder) TotalShards() int { return s.dataShards + s.parityShards }

// ShardSet is a sharded snapshot. Size is the snapshot length before
// padding; it is needed to rejoin the shards.
type ShardSet struct {
	Shards [][]byte
	Size   int
}

// Shard splits a snapshot into data shards and computes parity.
func (s *Sharder) Shard(snapshot []byte) (ShardSet, error) {
	shards, err := s.enc.Split(snapshot)
	if err != nil {
		return ShardSet{}, err
	}
	if err := s.enc.Encode(shards); err != nil {
		return ShardSet{}, err
	}
	return ShardSet{Shards: shards, Size: len(snapshot)}, nil
}

// Verify reports whether parity shards are consistent with the data shards.
func (s *Sharder) Verify(set ShardSet) (bool, error) {
	return s.enc.Verify(set.Shards)
}

// Recover reconstructs the snapshot from a shard set with missing entries
// set to nil. Up to ParityShards shards may be lost.
func (s *Sharder) Recover(set ShardSet) ([]byte, error) {
	if err := s.enc.ReconstructData(set.Shards); err != nil {
		if errors.Is(err, reedsolomon.ErrTooFewShards) {
			return nil, ErrTooManyLost
		}
		return nil, err
	}
	out := make([]byte, 0, set.Size)
	for i := 0; i < s.dataShards && len(out) < set.Size; i++ {
		remaining := set.Size - len(out)
		if remaining >= len(set.Shards[i]) {
			out = append(out, set.Shards[i]...)
		} else {
			out = append(out, set.Shards[i][:remaining]...)
		}
	}
	return out, nil
}
