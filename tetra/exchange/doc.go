// Package exchange implements the tetrahedral key exchange (TKE).
//
// Each party samples private material once, derives a stable public vector
// from it, and combines its own material with the peer's public vector into a
// shared secret. The derivation is a pure function of the private material,
// so the shared-secret computation is symmetric: both parties arrive at the
// same value without ever transmitting private material.
//
// Two sampling strategies are provided, selected per deployment:
// golden-ratio harmonic weighting and simplex vertex combination.
//
// An X25519 hybrid binding is available for deployments that want the
// geometric secret mixed with a conventional ECDH exchange.
package exchange
