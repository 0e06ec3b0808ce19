package ilda

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
)

// QuantizePalette builds a palette of at most size colours that best covers
// the point colours of frames.
func QuantizePalette(frames []*Frame, size int) *Palette {
	palette := &Palette{Name: "quantized"}
	var n int
	for _, frame := range frames {
		n += len(frame.Points)
	}
	if n == 0 || size <= 0 {
		return palette
	}

	m := image.NewRGBA(image.Rect(0, 0, n, 1))
	x := 0
	for _, frame := range frames {
		for _, point := range frame.Points {
			m.SetRGBA(x, 0, color.RGBA{R: point.Color.R(), G: point.Color.G(), B: point.Color.B(), A: 0xff})
			x++
		}
	}

	q := quantize.MedianCutQuantizer{}
	for _, c := range q.Quantize(make(color.Palette, 0, size), m) {
		palette.Colors = append(palette.Colors, ColorOf(c))
	}
	return palette
}
