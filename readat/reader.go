package readat

import (
	"encoding/binary"
	"io"
	"math"
)

// Cursor is a read position over an io.ReaderAt. Decoding advances
// exactly one cursor, so Pos() is always the absolute offset of the
// next byte to be consumed. Seek is absolute only: fbx node records
// carry absolute end offsets, relative seeks never happen.
type Cursor struct {
	source io.ReaderAt
	pos    int64
}

func NewCursor(source io.ReaderAt) *Cursor {
	return &Cursor{source: source}
}

func (c *Cursor) Pos() int64 {
	return c.pos
}

func (c *Cursor) Seek(off int64) {
	c.pos = off
}

// Read implements io.Reader at the current position.
func (c *Cursor) Read(p []byte) (n int, err error) {
	n, err = c.source.ReadAt(p, c.pos)
	c.pos += int64(n)
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

// ReadFull fills p entirely or returns io.ErrUnexpectedEOF. The
// cursor still advances by the count of bytes actually read.
func (c *Cursor) ReadFull(p []byte) error {
	n, err := c.source.ReadAt(p, c.pos)
	c.pos += int64(n)
	if n == len(p) {
		return nil
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := c.ReadFull(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (c *Cursor) ReadU8() (uint8, error) {
	var b [1]byte
	err := c.ReadFull(b[:])
	return b[0], err
}

func (c *Cursor) ReadU16LE() (uint16, error) {
	var b [2]byte
	err := c.ReadFull(b[:])
	return binary.LittleEndian.Uint16(b[:]), err
}

func (c *Cursor) ReadI16LE() (int16, error) {
	v, err := c.ReadU16LE()
	return int16(v), err
}

func (c *Cursor) ReadU32LE() (uint32, error) {
	var b [4]byte
	err := c.ReadFull(b[:])
	return binary.LittleEndian.Uint32(b[:]), err
}

func (c *Cursor) ReadI32LE() (int32, error) {
	v, err := c.ReadU32LE()
	return int32(v), err
}

func (c *Cursor) ReadU32BE() (uint32, error) {
	var b [4]byte
	err := c.ReadFull(b[:])
	return binary.BigEndian.Uint32(b[:]), err
}

func (c *Cursor) ReadU64LE() (uint64, error) {
	var b [8]byte
	err := c.ReadFull(b[:])
	return binary.LittleEndian.Uint64(b[:]), err
}

func (c *Cursor) ReadI64LE() (int64, error) {
	v, err := c.ReadU64LE()
	return int64(v), err
}

func (c *Cursor) ReadF32LE() (float32, error) {
	v, err := c.ReadU32LE()
	return math.Float32frombits(v), err
}

func (c *Cursor) ReadF64LE() (float64, error) {
	v, err := c.ReadU64LE()
	return math.Float64frombits(v), err
}
