// Package cipher implements the quantum isoca-dodecahedral lattice cipher
// (QIDL).
//
// Encryption splits the plaintext into chunks of the lattice's column count,
// zero-pads the final chunk, and applies the lattice as a linear transform to
// each chunk. The ciphertext frame records the original plaintext length so
// decryption can strip the padding exactly.
//
// Exact decryption only exists when the lattice is square and non-singular.
// The default polyhedral lattice is 12x20, for which no general inverse
// exists; Decrypt refuses such lattices with ErrNonInvertibleLattice rather
// than returning approximate bytes.
//
// A ChaCha20-Poly1305 Sealer is provided to protect lattice frames in
// transit under a session key from the exchange package.
package cipher
