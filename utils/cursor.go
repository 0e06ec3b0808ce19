package utils

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Cursor is a big-endian reader over an immutable byte slice. Every read is
// bounds checked and fails with io.ErrUnexpectedEOF without moving the
// position.
type Cursor struct {
	buf    []byte
	pos    int
	latin1 *encoding.Decoder
}

func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf, latin1: charmap.ISO8859_1.NewDecoder()}
}

func (c *Cursor) Len() int       { return len(c.buf) }
func (c *Cursor) Pos() int       { return c.pos }
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }
func (c *Cursor) Reset()         { c.pos = 0 }

func (c *Cursor) ensure(n int) error {
	if n < 0 || n > c.Remaining() {
		return io.ErrUnexpectedEOF
	}
	return nil
}

func (c *Cursor) ReadByte() (byte, error) {
	if err := c.ensure(1); err != nil {
		return 0, err
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

func (c *Cursor) ReadUint16BE() (uint16, error) {
	if err := c.ensure(2); err != nil {
		return 0, err
	}
	v := uint16(c.buf[c.pos])<<8 | uint16(c.buf[c.pos+1])
	c.pos += 2
	return v, nil
}

func (c *Cursor) ReadInt16BE() (int16, error) {
	v, err := c.ReadUint16BE()
	return int16(v), err
}

// ReadBytes returns the next n bytes. The slice aliases the buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.ensure(n); err != nil {
		return nil, err
	}
	b := c.buf[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadASCII reads n bytes and maps each byte to the codepoint of the same
// value. Padding is kept.
func (c *Cursor) ReadASCII(n int) (string, error) {
	b, err := c.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return latin1(c.latin1, b), nil
}

func (c *Cursor) Skip(n int) error {
	if err := c.ensure(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}
