package ilda

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

const maxPaletteIndex = 0xff

// Frame is an ordered list of points. Point order is draw order.
type Frame struct {
	Format      FormatCode
	Name        string
	Company     string
	Number      int
	TotalFrames int
	ScannerHead uint8
	Points      []Point
}

func (frame *Frame) record()           {}
func (frame *Frame) Kind() Kind        { return frame.Format.Kind() }
func (frame *Frame) UsesPalette() bool { return frame.Format.Indexed() }
func (frame *Frame) Is3D() bool        { return frame.Format.Is3D() }

// PalettePaint recolours every point from its palette index. Indices are
// checked before any point is touched.
func (frame *Frame) PalettePaint(palette *Palette) error {
	for i := range frame.Points {
		if idx := int(frame.Points[i].PaletteIndex); idx >= palette.Len() {
			return fmt.Errorf("%w: point %d uses index %d, palette has %d colours",
				ErrPaletteIndexOutOfRange, i, idx, palette.Len())
		}
	}
	for i := range frame.Points {
		if err := frame.Points[i].ResolveFromPalette(palette); err != nil {
			return err
		}
	}
	return nil
}

// ToIndexed returns a copy of the frame in the matching palette format with
// every point mapped to its nearest colour among the first 256 palette
// entries.
func (frame *Frame) ToIndexed(palette *Palette) *Frame {
	out := *frame
	switch frame.Format {
	case Format3DTrueColor:
		out.Format = Format3DIndexed
	case Format2DTrueColor:
		out.Format = Format2DIndexed
	}
	// a point index is one byte, so only the first 256 colours are reachable
	if palette.Len() > maxPaletteIndex+1 {
		palette = &Palette{Colors: palette.Colors[:maxPaletteIndex+1]}
	}
	out.Points = make([]Point, len(frame.Points))
	for i, point := range frame.Points {
		if palette.Len() > 0 {
			idx := point.BestFitPaletteIndex(palette)
			point.PaletteIndex = uint8(idx)
			point.Color = palette.Colors[idx]
		}
		out.Points[i] = point
	}
	return &out
}

func (frame *Frame) String() string {
	return fmt.Sprintf("frame %q (%s) #%d/%d %s: %s points", frame.Name, frame.Company,
		frame.Number, frame.TotalFrames, frame.Format, humanize.Comma(int64(len(frame.Points))))
}
