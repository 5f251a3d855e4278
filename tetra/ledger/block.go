package ledger

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// HashHexLen is the length of a hex-encoded block hash.
const HashHexLen = 64

// GenesisPayload is the sentinel payload of every chain's first block.
var GenesisPayload = []byte("genesis")

// Block is one immutable record of the chain. Hash is computed once at
// creation from the remaining fields; PreviousHash links the block to its
// predecessor.
type Block struct {
	Index        uint64
	PreviousHash string
	Payload      []byte
	Timestamp    int64
	Hash         string
}

// computeHash is the block hash derivation: SHA-256 over the deterministic
// encoding index (8 BE) || previousHash || payloadLen (8 BE) || payload ||
// timestamp (8 BE), hex encoded.
func computeHash(index uint64, previousHash string, payload []byte, timestamp int64) string {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], index)
	h.Write(buf[:])
	h.Write([]byte(previousHash))
	binary.BigEndian.PutUint64(buf[:], uint64(len(payload)))
	h.Write(buf[:])
	h.Write(payload)
	binary.BigEndian.PutUint64(buf[:], uint64(timestamp))
	h.Write(buf[:])
	return hex.EncodeToString(h.Sum(nil))
}

func newBlock(index uint64, previousHash string, payload []byte, timestamp int64) Block {
	p := make([]byte, len(payload))
	copy(p, payload)
	return Block{
		Index:        index,
		PreviousHash: previousHash,
		Payload:      p,
		Timestamp:    timestamp,
		Hash:         computeHash(index, previousHash, p, timestamp),
	}
}

// Recompute re-derives the hash from the block's stored fields. It equals
// Hash exactly when the block has not been tampered with.
func (b Block) Recompute() string {
	return computeHash(b.Index, b.PreviousHash, b.Payload, b.Timestamp)
}

// genesisPreviousHash is the all-zero predecessor hash of a genesis block.
var genesisPreviousHash = strings.Repeat("0", HashHexLen)
