// Package archive persists chains as compact snapshots.
//
// A snapshot is the ledger's framed chain encoding compressed with LZ4.
// Snapshots can additionally be split into Reed-Solomon shards so a chain
// survives the loss of storage locations: with d data and p parity shards,
// any p shards can be lost and the chain is still fully recoverable.
//
// Round trip: Load(Snapshot(l)) reproduces a ledger whose IsValid verdict
// matches the original.
package archive
