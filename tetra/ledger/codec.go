package ledger

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	codecVersion = 1

	// MaxBlockPayload limits a single block payload on the wire.
	MaxBlockPayload = 1 << 20 // 1 MiB
)

var (
	ErrInvalidFrame    = errors.New("ledger: malformed chain frame")
	ErrPayloadTooLarge = errors.New("ledger: block payload too large")
)

// WriteChain serializes blocks to w.
// Format:
//
//	1 byte: codec version
//	4 bytes: block count (big endian)
//	per block: index (8) || previousHash (64) || payload length (4) ||
//	           payload || timestamp (8) || hash (64)
func WriteChain(w io.Writer, blocks []Block) error {
	bw := bufio.NewWriter(w)
	if err := bw.WriteByte(codecVersion); err != nil {
		return err
	}
	var count [4]byte
	binary.BigEndian.PutUint32(count[:], uint32(len(blocks)))
	if _, err := bw.Write(count[:]); err != nil {
		return err
	}
	for _, b := range blocks {
		if err := writeBlock(bw, b); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeBlock(bw *bufio.Writer, b Block) error {
	if len(b.Payload) > MaxBlockPayload {
		return ErrPayloadTooLarge
	}
	if len(b.PreviousHash) != HashHexLen || len(b.Hash) != HashHexLen {
		return ErrInvalidFrame
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], b.Index)
	if _, err := bw.Write(buf[:]); err != nil {
		return err
	}
	if _, err := bw.WriteString(b.PreviousHash); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(buf[:4], uint32(len(b.Payload)))
	if _, err := bw.Write(buf[:4]); err != nil {
		return err
	}
	if _, err := bw.Write(b.Payload); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(buf[:], uint64(b.Timestamp))
	if _, err := bw.Write(buf[:]); err != nil {
		return err
	}
	_, err := bw.WriteString(b.Hash)
	return err
}

// ReadChain deserializes blocks from r.
func ReadChain(r io.Reader) ([]Block, error) {
	br := bufio.NewReader(r)
	version, err := br.ReadByte()
	if err != nil {
		return nil, err
	}
	if version != codecVersion {
		return nil, ErrInvalidFrame
	}
	var count [4]byte
	if _, err := io.ReadFull(br, count[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(count[:])
	blocks := make([]Block, 0, n)
	for i := uint32(0); i < n; i++ {
		b, err := readBlock(br)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func readBlock(br *bufio.Reader) (Block, error) {
	var buf [8]byte
	if _, err := io.ReadFull(br, buf[:]); err != nil {
		return Block{}, err
	}
	index := binary.BigEndian.Uint64(buf[:])

	prevHash := make([]byte, HashHexLen)
	if _, err := io.ReadFull(br, prevHash); err != nil {
		return Block{}, err
	}

	if _, err := io.ReadFull(br, buf[:4]); err != nil {
		return Block{}, err
	}
	payloadLen := binary.BigEndian.Uint32(buf[:4])
	if payloadLen > MaxBlockPayload {
		return Block{}, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, payloadLen)
	}
	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(br, payload); err != nil {
		return Block{}, err
	}

	if _, err := io.ReadFull(br, buf[:]); err != nil {
		return Block{}, err
	}
	timestamp := int64(binary.BigEndian.Uint64(buf[:]))

	hash := make([]byte, HashHexLen)
	if _, err := io.ReadFull(br, hash); err != nil {
		return Block{}, err
	}

	return Block{
		Index:        index,
		PreviousHash: string(prevHash),
		Payload:      payload,
		Timestamp:    timestamp,
		Hash:         string(hash),
	}, nil
}

// Snapshot serializes the ledger's chain.
func (l *Ledger) Snapshot() ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteChain(&buf, l.Blocks()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Restore rebuilds a ledger from serialized blocks. Stored hashes are kept
// as-is, so IsValid reports the same verdict before and after a round trip.
func Restore(snapshot []byte) (*Ledger, error) {
	blocks, err := ReadChain(bytes.NewReader(snapshot))
	if err != nil {
		return nil, err
	}
	return &Ledger{chain: blocks, now: time.Now}, nil
}
