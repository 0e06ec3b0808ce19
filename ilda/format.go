package ilda

import "fmt"

type FormatCode uint8

const (
	Format3DIndexed   FormatCode = 0
	Format2DIndexed   FormatCode = 1
	FormatPalette     FormatCode = 2
	Format3DTrueColor FormatCode = 4
	Format2DTrueColor FormatCode = 5
)

func (code FormatCode) Valid() bool {
	switch code {
	case Format3DIndexed, Format2DIndexed, FormatPalette, Format3DTrueColor, Format2DTrueColor:
		return true
	}
	return false
}

func (code FormatCode) IsFrame() bool { return code.Valid() && code != FormatPalette }
func (code FormatCode) Is3D() bool    { return code == Format3DIndexed || code == Format3DTrueColor }
func (code FormatCode) Indexed() bool { return code == Format3DIndexed || code == Format2DIndexed }

// RecordSize is the on-disk size of one payload record (a colour or a point).
func (code FormatCode) RecordSize() int {
	switch code {
	case FormatPalette:
		return 3
	case Format3DIndexed:
		return 8
	case Format2DIndexed:
		return 6
	case Format3DTrueColor:
		return 10
	case Format2DTrueColor:
		return 8
	}
	return 0
}

func (code FormatCode) Kind() Kind {
	switch code {
	case FormatPalette:
		return KindPalette
	case Format3DIndexed:
		return KindFrame3DIndexed
	case Format2DIndexed:
		return KindFrame2DIndexed
	case Format3DTrueColor:
		return KindFrame3DTrueColor
	case Format2DTrueColor:
		return KindFrame2DTrueColor
	}
	return KindInvalid
}

func (code FormatCode) String() string {
	if code.Valid() {
		return code.Kind().String()
	}
	return fmt.Sprintf("format(%d)", uint8(code))
}

// Kind names the closed set of record variants.
type Kind uint8

const (
	KindPalette Kind = iota
	KindFrame3DIndexed
	KindFrame2DIndexed
	KindFrame3DTrueColor
	KindFrame2DTrueColor
	KindInvalid Kind = 0xff
)

var kindNames = map[Kind]string{
	KindPalette:          "palette",
	KindFrame3DIndexed:   "3d-indexed",
	KindFrame2DIndexed:   "2d-indexed",
	KindFrame3DTrueColor: "3d-truecolor",
	KindFrame2DTrueColor: "2d-truecolor",
}

func (kind Kind) String() string {
	if name, ok := kindNames[kind]; ok {
		return name
	}
	return "invalid"
}
