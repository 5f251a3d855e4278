package ledger

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var (
	ErrProofFail     = errors.New("ledger: merkle proof verification failed")
	ErrIndexRange    = errors.New("ledger: block index out of range")
	ErrNoBlockHashes = errors.New("ledger: no block hashes")
)

// merkleTree is a full binary tree over block hashes, padded to a power of
// two with hashes of empty input.
type merkleTree struct {
	leafCount int
	nodes     [][]byte
}

func buildMerkle(blockHashes []string) (*merkleTree, error) {
	if len(blockHashes) == 0 {
		return nil, ErrNoBlockHashes
	}

	n := 1
	for n < len(blockHashes) {
		n *= 2
	}
	nodes := make([][]byte, 2*n-1)
	empty := sha256.Sum256(nil)
	for i := 0; i < n; i++ {
		if i < len(blockHashes) {
			leaf, err := hex.DecodeString(blockHashes[i])
			if err != nil {
				return nil, err
			}
			nodes[n-1+i] = leaf
		} else {
			nodes[n-1+i] = empty[:]
		}
	}
	for i := n - 2; i >= 0; i-- {
		h := sha256.New()
		h.Write(nodes[2*i+1])
		h.Write(nodes[2*i+2])
		nodes[i] = h.Sum(nil)
	}
	return &merkleTree{leafCount: n, nodes: nodes}, nil
}

// Root returns the Merkle root over all block hashes, a compact commitment
// to the whole chain that external consumers can hold instead of the chain
// itself.
func (l *Ledger) Root() ([]byte, error) {
	t, err := buildMerkle(l.hashes())
	if err != nil {
		return nil, err
	}
	return t.nodes[0], nil
}

// InclusionProof shows that a specific block hash is committed to by a root.
type InclusionProof struct {
	Index     uint64
	BlockHash string
	Siblings  [][]byte
	IsLeft    []bool // sibling position at each level, leaf to root
}

// Prove generates an inclusion proof for the block at index.
func (l *Ledger) Prove(index uint64) (InclusionProof, error) {
	hashes := l.hashes()
	if index >= uint64(len(hashes)) {
		return InclusionProof{}, ErrIndexRange
	}
	t, err := buildMerkle(hashes)
	if err != nil {
		return InclusionProof{}, err
	}

	var siblings [][]byte
	var isLeft []bool
	idx := t.leafCount - 1 + int(index)
	for idx > 0 {
		var sibling int
		if idx%2 == 1 {
			sibling = idx + 1
		} else {
			sibling = idx - 1
		}
		siblings = append(siblings, t.nodes[sibling])
		isLeft = append(isLeft, idx%2 == 0)
		idx = (idx - 1) / 2
	}
	return InclusionProof{
		Index:     index,
		BlockHash: hashes[index],
		Siblings:  siblings,
		IsLeft:    isLeft,
	}, nil
}

// VerifyProof checks an inclusion proof against an expected root.
func VerifyProof(proof InclusionProof, expectedRoot []byte) error {
	current, err := hex.DecodeString(proof.BlockHash)
	if err != nil {
		return ErrProofFail
	}
	for i, sibling := range proof.Siblings {
		h := sha256.New()
		if proof.IsLeft[i] {
			h.Write(sibling)
			h.Write(current)
		} else {
			h.Write(current)
			h.Write(sibling)
		}
		current = h.Sum(nil)
	}
	if !bytes.Equal(current, expectedRoot) {
		return ErrProofFail
	}
	return nil
}

func (l *Ledger) hashes() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.chain))
	for i, b := range l.chain {
		out[i] = b.Hash
	}
	return out
}
