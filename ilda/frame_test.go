package ilda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_PalettePaint(t *testing.T) {
	frame := &Frame{
		Format: Format2DIndexed,
		Points: []Point{{PaletteIndex: 0}, {PaletteIndex: 1}},
	}
	palette := &Palette{Colors: []Color{0x111111, 0x222222}}
	require.NoError(t, frame.PalettePaint(palette))
	assert.Equal(t, Color(0x111111), frame.Points[0].Color)
	assert.Equal(t, Color(0x222222), frame.Points[1].Color)

	// repaint with a different palette
	require.NoError(t, frame.PalettePaint(&Palette{Colors: []Color{0xaaaaaa, 0xbbbbbb}}))
	assert.Equal(t, Color(0xbbbbbb), frame.Points[1].Color)
}

func TestFrame_PalettePaint_LeavesFrameOnError(t *testing.T) {
	frame := &Frame{
		Format: Format3DIndexed,
		Points: []Point{{PaletteIndex: 0, Color: 1}, {PaletteIndex: 5, Color: 2}},
	}
	err := frame.PalettePaint(&Palette{Colors: []Color{0x333333}})
	assert.ErrorIs(t, err, ErrPaletteIndexOutOfRange)
	assert.Equal(t, Color(1), frame.Points[0].Color)
	assert.Equal(t, Color(2), frame.Points[1].Color)
}

func TestFrame_ToIndexed(t *testing.T) {
	frame := &Frame{
		Format: Format3DTrueColor,
		Name:   "tc",
		Points: []Point{
			{X: 0.5, Color: RGB(250, 10, 10)},
			{X: -0.5, Color: RGB(5, 5, 240), Blanked: true},
		},
	}
	palette := &Palette{Colors: []Color{RGB(0, 0, 255), RGB(255, 0, 0)}}

	indexed := frame.ToIndexed(palette)
	assert.Equal(t, Format3DIndexed, indexed.Format)
	assert.True(t, indexed.UsesPalette())
	assert.Equal(t, "tc", indexed.Name)
	require.Len(t, indexed.Points, 2)
	assert.Equal(t, uint8(1), indexed.Points[0].PaletteIndex)
	assert.Equal(t, RGB(255, 0, 0), indexed.Points[0].Color)
	assert.Equal(t, uint8(0), indexed.Points[1].PaletteIndex)
	assert.True(t, indexed.Points[1].Blanked)
	assert.Equal(t, float32(0.5), indexed.Points[0].X)

	// source frame untouched
	assert.Equal(t, Format3DTrueColor, frame.Format)
	assert.Equal(t, RGB(250, 10, 10), frame.Points[0].Color)

	flat := (&Frame{Format: Format2DTrueColor}).ToIndexed(palette)
	assert.Equal(t, Format2DIndexed, flat.Format)
}

func TestFrame_ToIndexed_LargePalette(t *testing.T) {
	palette := &Palette{}
	for i := 0; i < 300; i++ {
		palette.Add(uint8(i/2), 0, 0)
	}
	// exact match only exists past index 255
	palette.Colors[299] = RGB(0, 0, 250)
	palette.Colors[10] = RGB(0, 0, 200)

	frame := &Frame{Format: Format2DTrueColor, Points: []Point{{Color: RGB(0, 0, 250)}, {Color: RGB(120, 0, 0)}}}
	indexed := frame.ToIndexed(palette)
	require.Len(t, indexed.Points, 2)
	assert.Equal(t, uint8(10), indexed.Points[0].PaletteIndex)
	assert.Equal(t, RGB(0, 0, 200), indexed.Points[0].Color)
	for _, point := range indexed.Points {
		assert.Equal(t, palette.Colors[point.PaletteIndex], point.Color)
	}
	assert.Len(t, palette.Colors, 300)
}

func TestFrame_String(t *testing.T) {
	frame := &Frame{Format: Format2DTrueColor, Name: "f", Company: "c", Number: 1, TotalFrames: 2, Points: make([]Point, 1500)}
	assert.Equal(t, `frame "f" (c) #1/2 2d-truecolor: 1,500 points`, frame.String())
}

func TestFormatCode(t *testing.T) {
	for _, tc := range []struct {
		code    FormatCode
		valid   bool
		frame   bool
		is3D    bool
		indexed bool
		size    int
		kind    Kind
	}{
		{Format3DIndexed, true, true, true, true, 8, KindFrame3DIndexed},
		{Format2DIndexed, true, true, false, true, 6, KindFrame2DIndexed},
		{FormatPalette, true, false, false, false, 3, KindPalette},
		{Format3DTrueColor, true, true, true, false, 10, KindFrame3DTrueColor},
		{Format2DTrueColor, true, true, false, false, 8, KindFrame2DTrueColor},
		{FormatCode(3), false, false, false, false, 0, KindInvalid},
	} {
		assert.Equal(t, tc.valid, tc.code.Valid(), "%d", tc.code)
		assert.Equal(t, tc.frame, tc.code.IsFrame(), "%d", tc.code)
		assert.Equal(t, tc.is3D, tc.code.Is3D(), "%d", tc.code)
		assert.Equal(t, tc.indexed, tc.code.Indexed(), "%d", tc.code)
		assert.Equal(t, tc.size, tc.code.RecordSize(), "%d", tc.code)
		assert.Equal(t, tc.kind, tc.code.Kind(), "%d", tc.code)
	}
	assert.Equal(t, "format(3)", FormatCode(3).String())
	assert.Equal(t, "palette", FormatPalette.String())
	assert.Equal(t, "invalid", KindInvalid.String())
}
