package cipher

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNonInvertibleLattice = errors.New("cipher: lattice is not invertible")
	ErrInvalidFrame         = errors.New("cipher: malformed ciphertext frame")
	ErrLatticeMismatch      = errors.New("cipher: frame shape does not match lattice")
	ErrFrameTooLarge        = errors.New("cipher: ciphertext frame too large")
)

const (
	frameVersion = 1

	// frame header: version (1) || plaintext length (8) || rows (4) || cols (4)
	headerSize = 17

	// MaxPlaintext limits a single frame's plaintext.
	MaxPlaintext = 1 << 30
)

// Cipher applies a fixed lattice as a block-linear transform. The lattice is
// generated once at construction and immutable afterwards; a Cipher is safe
// for concurrent use.
type Cipher struct {
	lattice    *mat.Dense
	rows, cols int
}

// New creates a cipher over the given lattice. The lattice's column count is
// the chunk size.
func New(lattice *mat.Dense) (*Cipher, error) {
	if lattice == nil {
		return nil, errors.New("cipher: nil lattice")
	}
	rows, cols := lattice.Dims()
	return &Cipher{
		lattice: mat.DenseCopyOf(lattice),
		rows:    rows,
		cols:    cols,
	}, nil
}

// Rows returns the lattice vertex (row) count.
func (c *Cipher) Rows() int { return c.rows }

// ChunkSize returns the plaintext chunk size (the lattice column count).
func (c *Cipher) ChunkSize() int { return c.cols }

// Encrypt transforms plaintext into a ciphertext frame. Each chunk of
// ChunkSize bytes (the last zero-padded) is multiplied by the lattice; the
// frame carries the original length so Decrypt can strip the padding.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	if len(plaintext) > MaxPlaintext {
		return nil, ErrFrameTooLarge
	}
	chunks := (len(plaintext) + c.cols - 1) / c.cols

	out := make([]byte, headerSize, headerSize+chunks*c.rows*8)
	out[0] = frameVersion
	binary.BigEndian.PutUint64(out[1:9], uint64(len(plaintext)))
	binary.BigEndian.PutUint32(out[9:13], uint32(c.rows))
	binary.BigEndian.PutUint32(out[13:17], uint32(c.cols))

	vec := mat.NewVecDense(c.cols, nil)
	var product mat.VecDense
	var word [8]byte
	for i := 0; i < chunks; i++ {
		for j := 0; j < c.cols; j++ {
			idx := i*c.cols + j
			if idx < len(plaintext) {
				vec.SetVec(j, float64(plaintext[idx]))
			} else {
				vec.SetVec(j, 0) // zero padding for the short final chunk
			}
		}
		product.MulVec(c.lattice, vec)
		for j := 0; j < c.rows; j++ {
			binary.BigEndian.PutUint64(word[:], math.Float64bits(product.AtVec(j)))
			out = append(out, word[:]...)
		}
	}
	return out, nil
}

// Decrypt inverts a ciphertext frame produced by Encrypt. It fails with
// ErrNonInvertibleLattice when the lattice is rectangular or singular;
// approximate recovery is never attempted.
func (c *Cipher) Decrypt(frame []byte) ([]byte, error) {
	plainLen, err := c.parseHeader(frame)
	if err != nil {
		return nil, err
	}
	if c.rows != c.cols {
		return nil, fmt.Errorf("%w: lattice is %dx%d", ErrNonInvertibleLattice, c.rows, c.cols)
	}

	var lu mat.LU
	lu.Factorize(c.lattice)

	chunks := (plainLen + c.cols - 1) / c.cols
	if len(frame) != headerSize+chunks*c.rows*8 {
		return nil, ErrInvalidFrame
	}

	plaintext := make([]byte, 0, plainLen)
	rhs := mat.NewVecDense(c.rows, nil)
	sol := mat.NewVecDense(c.cols, nil)
	for i := 0; i < chunks; i++ {
		base := headerSize + i*c.rows*8
		for j := 0; j < c.rows; j++ {
			bits := binary.BigEndian.Uint64(frame[base+j*8:])
			rhs.SetVec(j, math.Float64frombits(bits))
		}
		if err := lu.SolveVecTo(sol, false, rhs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNonInvertibleLattice, err)
		}
		for j := 0; j < c.cols && len(plaintext) < plainLen; j++ {
			plaintext = append(plaintext, byte(int64(math.Round(sol.AtVec(j)))))
		}
	}
	return plaintext, nil
}

func (c *Cipher) parseHeader(frame []byte) (int, error) {
	if len(frame) < headerSize {
		return 0, ErrInvalidFrame
	}
	if frame[0] != frameVersion {
		return 0, ErrInvalidFrame
	}
	plainLen := binary.BigEndian.Uint64(frame[1:9])
	if plainLen > MaxPlaintext {
		return 0, ErrFrameTooLarge
	}
	rows := binary.BigEndian.Uint32(frame[9:13])
	cols := binary.BigEndian.Uint32(frame[13:17])
	if int(rows) != c.rows || int(cols) != c.cols {
		return 0, ErrLatticeMismatch
	}
	return int(plainLen), nil
}
