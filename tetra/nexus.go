package tetra

import (
	"sync"

	"github.com/tetracrypt/tetra/tetra/cipher"
	"github.com/tetracrypt/tetra/tetra/digest"
	"github.com/tetracrypt/tetra/tetra/exchange"
	"github.com/tetracrypt/tetra/tetra/ledger"
)

// Config selects the stack's parameters. The zero value uses dimension 4,
// three hash rounds, harmonic key derivation and a fresh polyhedral lattice.
// Set Seed for fully deterministic keys and lattices (two parties sharing a
// seed agree on every structure).
type Config struct {
	Dimension   int
	Iterations  int
	Seed        []byte
	KeyStrategy exchange.Strategy
	Lattice     cipher.LatticeStrategy
}

// Nexus is a high-level helper that combines the exchange, cipher, digest
// and ledger components. It intentionally stays small so applications can
// use the packages directly for anything beyond the canonical pipeline.
type Nexus struct {
	mu     sync.Mutex
	keys   *exchange.KeyPair
	cipher *cipher.Cipher
	hasher *digest.Hasher
	chain  *ledger.Ledger
	sealer *cipher.Sealer
}

// NewNexus builds a stack from the configuration.
func NewNexus(cfg Config) (*Nexus, error) {
	dim := cfg.Dimension
	if dim == 0 {
		dim = digest.DefaultDimension
	}
	iterations := cfg.Iterations
	if iterations == 0 {
		iterations = digest.DefaultIterations
	}

	keys, err := exchange.NewSeeded(dim, cfg.KeyStrategy, cfg.Seed)
	if err != nil {
		return nil, err
	}

	strategy := cfg.Lattice
	if strategy == nil {
		strategy = cipher.PolyhedralStrategy{}
	}
	lattice, err := strategy.Lattice(dim, cfg.Seed)
	if err != nil {
		return nil, err
	}
	c, err := cipher.New(lattice)
	if err != nil {
		return nil, err
	}

	hasher, err := digest.New(dim, iterations)
	if err != nil {
		return nil, err
	}

	return &Nexus{
		keys:   keys,
		cipher: c,
		hasher: hasher,
		chain:  ledger.New(),
	}, nil
}

// Public returns this party's public key vector.
func (n *Nexus) Public() []float64 { return n.keys.Public() }

// Fingerprint returns this party's stable identifier.
func (n *Nexus) Fingerprint() exchange.ID {
	return exchange.Fingerprint(n.keys.Public())
}

// Establish completes the key exchange with a peer's public vector and arms
// the frame sealer with the derived session key.
func (n *Nexus) Establish(peerPublic []float64) error {
	key, err := n.keys.SessionKey(peerPublic)
	if err != nil {
		return err
	}
	sealer, err := cipher.NewSealer(key)
	if err != nil {
		return err
	}
	n.mu.Lock()
	n.sealer = sealer
	n.mu.Unlock()
	return nil
}

// Established reports whether a session key has been derived.
func (n *Nexus) Established() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sealer != nil
}

// Record runs the pipeline on data: lattice-encrypt, seal when a session is
// established, digest the result, and append the digest as a new block.
func (n *Nexus) Record(data []byte) (ledger.Block, error) {
	encoded, err := n.process(data)
	if err != nil {
		return ledger.Block{}, err
	}
	return n.chain.Append(encoded), nil
}

// process computes the encoded digest for data without touching the ledger.
func (n *Nexus) process(data []byte) ([]byte, error) {
	frame, err := n.cipher.Encrypt(data)
	if err != nil {
		return nil, err
	}
	n.mu.Lock()
	sealer := n.sealer
	n.mu.Unlock()
	if sealer != nil {
		frame = sealer.Seal(frame, nil)
	}
	return digest.Encode(n.hasher.Sum(frame)), nil
}

// Ledger exposes the underlying chain for validation and persistence.
func (n *Nexus) Ledger() *ledger.Ledger { return n.chain }

// Cipher exposes the underlying lattice cipher.
func (n *Nexus) Cipher() *cipher.Cipher { return n.cipher }

// Hasher exposes the underlying digest hasher.
func (n *Nexus) Hasher() *digest.Hasher { return n.hasher }
