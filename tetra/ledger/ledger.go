package ledger

import (
	"errors"
	"sync"
	"time"
)

var ErrEmptyChain = errors.New("ledger: chain has no blocks")

// Ledger is an append-only, tamper-evident chain of blocks. Appends and
// reads are serialized internally, so a Ledger is safe for concurrent use;
// the chain only ever grows.
type Ledger struct {
	mu    sync.Mutex
	chain []Block
	now   func() time.Time
}

// New creates a ledger holding its genesis block: index 0, an all-zero
// previous hash and the genesis sentinel payload.
func New() *Ledger {
	l := &Ledger{now: time.Now}
	l.chain = []Block{newBlock(0, genesisPreviousHash, GenesisPayload, l.now().UnixNano())}
	return l
}

// Append creates a new block carrying payload, linked to the latest block,
// and returns it. Timestamps never decrease across appends even if the wall
// clock steps backwards.
func (l *Ledger) Append(payload []byte) Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	// A chain restored from an empty snapshot regrows from a fresh genesis.
	if len(l.chain) == 0 {
		l.chain = []Block{newBlock(0, genesisPreviousHash, GenesisPayload, l.now().UnixNano())}
	}

	prev := l.chain[len(l.chain)-1]
	ts := l.now().UnixNano()
	if ts < prev.Timestamp {
		ts = prev.Timestamp
	}
	b := newBlock(prev.Index+1, prev.Hash, payload, ts)
	l.chain = append(l.chain, b)
	return b
}

// Latest returns the most recent block.
func (l *Ledger) Latest() (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.chain) == 0 {
		return Block{}, ErrEmptyChain
	}
	return l.chain[len(l.chain)-1], nil
}

// Len returns the chain length including genesis.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.chain)
}

// Blocks returns a snapshot copy of the chain.
func (l *Ledger) Blocks() []Block {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Block, len(l.chain))
	copy(out, l.chain)
	return out
}

// IsValid recomputes every block's hash from its stored fields and checks
// the previous-hash linkage, returning false on the first mismatch. It is a
// total function: it never fails, it only reports.
func (l *Ledger) IsValid() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := 0; i < len(l.chain); i++ {
		current := l.chain[i]
		if current.Hash != current.Recompute() {
			return false
		}
		if i > 0 && current.PreviousHash != l.chain[i-1].Hash {
			return false
		}
	}
	return true
}
