package ilda

// coordScale maps a signed 16-bit coordinate onto [-1, 1).
const coordScale float32 = 1.0 / 32768

const blankingBit = 0x40

// Point is a single beam position. For indexed frames Color is only final
// once a palette has been applied.
type Point struct {
	X, Y, Z      float32
	Color        Color
	Blanked      bool
	PaletteIndex uint8
}

func (point *Point) SetColorFromRGB(r, g, b int) {
	point.Color = RGB(saturate(r), saturate(g), saturate(b))
}

// ResolveFromPalette replaces Color with the palette entry at PaletteIndex.
func (point *Point) ResolveFromPalette(palette *Palette) error {
	c, err := palette.At(int(point.PaletteIndex))
	if err != nil {
		return err
	}
	point.Color = c
	return nil
}

// BestFitPaletteIndex returns the index of the palette colour nearest to the
// point colour. Ties keep the lowest index. The point is not modified.
func (point *Point) BestFitPaletteIndex(palette *Palette) int {
	index, best := 0, -1
	for i, c := range palette.Colors {
		if d := point.Color.distance(c); best < 0 || d < best {
			index, best = i, d
		}
	}
	return index
}

// Scaled maps the normalized position into a width x height x depth box with
// the origin in a corner.
func (point *Point) Scaled(width, height, depth float32) (x, y, z float32) {
	return width * (point.X*0.5 + 0.5),
		height * (point.Y*0.5 + 0.5),
		depth * (point.Z*0.5 + 0.5)
}
