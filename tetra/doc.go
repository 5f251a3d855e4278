// Package tetra wires the geometric crypto stack into one pipeline: a
// tetrahedral key exchange (exchange), a lattice cipher (cipher), a recursive
// tesseract hash (digest) and a hash-linked block ledger (ledger).
//
// The Nexus facade runs the canonical flow: application data is
// lattice-encrypted, optionally sealed under an established session key,
// digested, and the digest appended to the ledger as a new block.
package tetra
