package ilda

// Record is a decoded palette or frame. The set of implementations is closed.
type Record interface {
	Kind() Kind
	record()
}

var (
	_ Record = (*Palette)(nil)
	_ Record = (*Frame)(nil)
)

func Frames(records []Record) []*Frame {
	var frames []*Frame
	for _, rec := range records {
		if frame, ok := rec.(*Frame); ok {
			frames = append(frames, frame)
		}
	}
	return frames
}

func Palettes(records []Record) []*Palette {
	var palettes []*Palette
	for _, rec := range records {
		if palette, ok := rec.(*Palette); ok {
			palettes = append(palettes, palette)
		}
	}
	return palettes
}
