package ilda

import (
	"bytes"
	"encoding/binary"
)

// rawPoint is a point as stored on disk.
type rawPoint struct {
	x, y, z int16
	status  byte
	index   byte
	r, g, b byte
}

type recordHeader struct {
	magic   string
	format  byte
	name    string
	company string
	count   int16
	number  int16
	total   int16
	head    byte
}

func fixed8(s string) []byte {
	out := []byte("        ")
	copy(out, s)
	return out
}

func (hdr recordHeader) bytes() []byte {
	var buf bytes.Buffer
	magic := hdr.magic
	if magic == "" {
		magic = Magic
	}
	buf.WriteString(magic)
	buf.Write([]byte{0, 0, 0, hdr.format})
	buf.Write(fixed8(hdr.name))
	buf.Write(fixed8(hdr.company))
	_ = binary.Write(&buf, binary.BigEndian, hdr.count)
	_ = binary.Write(&buf, binary.BigEndian, hdr.number)
	_ = binary.Write(&buf, binary.BigEndian, hdr.total)
	buf.Write([]byte{hdr.head, 0})
	return buf.Bytes()
}

func encodePoint(format FormatCode, p rawPoint) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, p.x)
	_ = binary.Write(&buf, binary.BigEndian, p.y)
	if format.Is3D() {
		_ = binary.Write(&buf, binary.BigEndian, p.z)
	}
	buf.WriteByte(p.status)
	if format.Indexed() {
		buf.WriteByte(p.index)
	} else {
		buf.Write([]byte{p.b, p.g, p.r})
	}
	return buf.Bytes()
}

func encodeFrame(format FormatCode, name string, number, total int16, points ...rawPoint) []byte {
	out := recordHeader{
		format:  byte(format),
		name:    name,
		company: "goilda",
		count:   int16(len(points)),
		number:  number,
		total:   total,
	}.bytes()
	for _, p := range points {
		out = append(out, encodePoint(format, p)...)
	}
	return out
}

func encodePalette(name string, colors ...[3]byte) []byte {
	out := recordHeader{
		format:  byte(FormatPalette),
		name:    name,
		company: "goilda",
		count:   int16(len(colors)),
	}.bytes()
	for _, c := range colors {
		out = append(out, c[:]...)
	}
	return out
}

func endMarker(format FormatCode) []byte {
	return recordHeader{format: byte(format)}.bytes()
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}
