package ilda

import (
	"fmt"
	"image/color"

	"github.com/dustin/go-humanize"
)

// Palette is an ordered colour table. The slice index is the palette index.
type Palette struct {
	Name        string
	Company     string
	Number      int
	Total       int
	ScannerHead uint8
	Colors      []Color
}

func (palette *Palette) record()    {}
func (palette *Palette) Kind() Kind { return KindPalette }

func (palette *Palette) Len() int {
	if palette == nil {
		return 0
	}
	return len(palette.Colors)
}

func (palette *Palette) Add(r, g, b uint8) {
	palette.Colors = append(palette.Colors, RGB(r, g, b))
}

func (palette *Palette) At(index int) (Color, error) {
	if index < 0 || index >= palette.Len() {
		return 0, fmt.Errorf("%w: index %d, palette has %d colours", ErrPaletteIndexOutOfRange, index, palette.Len())
	}
	return palette.Colors[index], nil
}

func (palette *Palette) ColorPalette() color.Palette {
	out := make(color.Palette, palette.Len())
	for i, c := range palette.Colors {
		out[i] = c
	}
	return out
}

func (palette *Palette) String() string {
	return fmt.Sprintf("palette %q (%s) #%d: %s colours", palette.Name, palette.Company, palette.Number,
		humanize.Comma(int64(palette.Len())))
}

var defaultColors = [...]Color{
	0xff0000, 0xff1000, 0xff2000, 0xff3000, 0xff4000, 0xff5000, 0xff6000, 0xff7000,
	0xff8000, 0xff9000, 0xffa000, 0xffb000, 0xffc000, 0xffd000, 0xffe000, 0xfff000,
	0xffff00, 0xe0ff00, 0xc0ff00, 0xa0ff00, 0x80ff00, 0x60ff00, 0x40ff00, 0x20ff00,
	0x00ff00, 0x00ff24, 0x00ff49, 0x00ff6d, 0x00ff92, 0x00ffb6, 0x00ffdb, 0x00ffff,
	0x00e3ff, 0x00c6ff, 0x00aaff, 0x008eff, 0x0071ff, 0x0055ff, 0x0038ff, 0x001cff,
	0x0000ff, 0x2000ff, 0x4000ff, 0x6000ff, 0x8000ff, 0xa000ff, 0xc000ff, 0xe000ff,
	0xff00ff, 0xff20ff, 0xff40ff, 0xff60ff, 0xff80ff, 0xffa0ff, 0xffc0ff, 0xffe0ff,
	0xffffff, 0xffe0e0, 0xffc0c0, 0xffa0a0, 0xff8080, 0xff6060, 0xff4040, 0xff2020,
}

// DefaultPalette returns a new copy of the 64-colour ILDA standard palette.
func DefaultPalette() *Palette {
	colors := make([]Color, len(defaultColors))
	copy(colors, defaultColors[:])
	return &Palette{
		Name:   "default",
		Total:  1,
		Colors: colors,
	}
}
