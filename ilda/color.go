package ilda

import (
	"fmt"
	"image/color"
)

// Color is a packed 0xRRGGBB value. It implements color.Color as an opaque
// colour.
type Color uint32

var _ color.Color = Color(0)

func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ColorOf converts any color.Color, dropping alpha.
func ColorOf(c color.Color) Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB(nrgba.R, nrgba.G, nrgba.B)
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) String() string { return fmt.Sprintf("#%06x", uint32(c)&0xffffff) }

// distance is the squared euclidean distance in RGB space.
func (c Color) distance(other Color) int {
	dr := int(c.R()) - int(other.R())
	dg := int(c.G()) - int(other.G())
	db := int(c.B()) - int(other.B())
	return dr*dr + dg*dg + db*db
}

type integer interface {
	~int | ~int16 | ~int32 | ~int64
}

// saturate clamps v into a colour channel.
func saturate[T integer](v T) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	}
	return uint8(v)
}
