// Package ledger implements the hypercube block ledger (HBB), an append-only
// hash-linked chain of blocks.
//
// Every chain starts from a fixed genesis block. Appends are serialized
// internally, blocks are never mutated after creation, and IsValid checks
// both the stored hash of every block and its linkage to the previous one.
// Block hashes are SHA-256 over a deterministic encoding of the block fields,
// so validation of an unmodified chain always succeeds.
//
// The package also provides a framed wire codec for persisting or shipping
// chains, and a Merkle summary over block hashes for compact inclusion
// proofs.
package ledger
