package archive

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/tetracrypt/tetra/tetra/ledger"
)

var (
	ErrCompressionFailed   = errors.New("archive: compression failed")
	ErrDecompressionFailed = errors.New("archive: decompression failed")
)

// CompressionLevel controls the speed/ratio tradeoff for snapshots.
type CompressionLevel int

const (
	CompressionFast    CompressionLevel = iota // Fastest, lower ratio
	CompressionDefault                         // Balanced
	CompressionBest                            // Best ratio, slower
)

// compressorPool reuses LZ4 writers to reduce allocations.
var compressorPool = sync.Pool{
	New: func() interface{} {
		return lz4.NewWriter(nil)
	},
}

// decompressorPool reuses LZ4 readers.
var decompressorPool = sync.Pool{
	New: func() interface{} {
		return lz4.NewReader(nil)
	},
}

// Snapshot serializes and compresses the ledger's chain.
func Snapshot(l *ledger.Ledger, level CompressionLevel) ([]byte, error) {
	encoded, err := l.Snapshot()
	if err != nil {
		return nil, err
	}
	return compress(encoded, level)
}

// Load decompresses a snapshot and rebuilds the ledger.
func Load(snapshot []byte) (*ledger.Ledger, error) {
	encoded, err := decompress(snapshot)
	if err != nil {
		return nil, err
	}
	return ledger.Restore(encoded)
}

func compress(data []byte, level CompressionLevel) ([]byte, error) {
	var buf bytes.Buffer
	w := compressorPool.Get().(*lz4.Writer)
	defer compressorPool.Put(w)

	w.Reset(&buf)

	switch level {
	case CompressionFast:
		_ = w.Apply(lz4.CompressionLevelOption(lz4.Fast))
	case CompressionBest:
		_ = w.Apply(lz4.CompressionLevelOption(lz4.Level9))
	default:
		_ = w.Apply(lz4.CompressionLevelOption(lz4.Level4))
	}

	if _, err := w.Write(data); err != nil {
		return nil, ErrCompressionFailed
	}
	if err := w.Close(); err != nil {
		return nil, ErrCompressionFailed
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	r := decompressorPool.Get().(*lz4.Reader)
	defer decompressorPool.Put(r)

	r.Reset(bytes.NewReader(data))

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, ErrDecompressionFailed
	}
	return buf.Bytes(), nil
}
