// Package ilda decodes ILDA laser show files into palettes and frames.
package ilda

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cam-per/goilda/utils"
)

type Option func(*options)

type options struct {
	logger  *zap.Logger
	palette *Palette
}

// WithLogger sets the logger used for per-record debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPalette sets the palette applied to indexed frames that appear before
// any palette record. The standard palette is used otherwise.
func WithPalette(palette *Palette) Option {
	return func(o *options) { o.palette = palette }
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// decodeState lives for one Decode call.
type decodeState struct {
	cur     *utils.Cursor
	palette *Palette
	sugar   *zap.SugaredLogger
}

func (state *decodeState) currentPalette() *Palette {
	if state.palette == nil {
		state.palette = DefaultPalette()
		state.sugar.Debugw("no palette in stream, using default", "offset", state.cur.Pos())
	}
	return state.palette
}

type recordDecoder func(state *decodeState, hdr Header) (Record, error)

var recordDecoders = map[FormatCode]recordDecoder{
	FormatPalette:     decodePalette,
	Format3DIndexed:   decodeFrame,
	Format2DIndexed:   decodeFrame,
	Format3DTrueColor: decodeFrame,
	Format2DTrueColor: decodeFrame,
}

// Decode decodes every record in data. Any failure aborts the whole decode
// and no records are returned.
//
// A record with a zero count is returned like any other, so an ILDA end of
// file marker shows up as an empty frame or palette.
func Decode(data []byte, opts ...Option) ([]Record, error) {
	o := newOptions(opts)
	cur := utils.NewCursor(data)
	if err := checkStart(cur); err != nil {
		return nil, err
	}

	state := &decodeState{
		cur:     cur,
		palette: o.palette,
		sugar:   o.logger.Sugar(),
	}

	var records []Record
	for state.cur.Remaining() >= HeaderSize {
		hdr, err := readHeader(state.cur)
		if err != nil {
			return nil, err
		}
		if hdr.Magic != Magic {
			state.sugar.Debugw("stream ends at non-ILDA header", "offset", hdr.Offset)
			break
		}
		if err := hdr.validate(); err != nil {
			return nil, err
		}
		if need, left := hdr.PayloadSize(), state.cur.Remaining(); need > left {
			return nil, fmt.Errorf("%w: %s at offset %d declares %d records (%d bytes), %d bytes remain",
				ErrTruncatedRecord, hdr.Format, hdr.Offset, hdr.Count, need, left)
		}

		rec, err := recordDecoders[hdr.Format](state, hdr)
		if err != nil {
			return nil, err
		}
		state.sugar.Debugw("decoded record",
			"offset", hdr.Offset,
			"kind", rec.Kind().String(),
			"count", hdr.Count,
			"name", utils.TrimPadding(hdr.Name))
		records = append(records, rec)
	}

	state.sugar.Debugw("decode finished", "records", len(records), "trailing", state.cur.Remaining())
	return records, nil
}

func decodePalette(state *decodeState, hdr Header) (Record, error) {
	palette := &Palette{
		Name:        utils.TrimPadding(hdr.Name),
		Company:     utils.TrimPadding(hdr.Company),
		Number:      int(hdr.Number),
		Total:       int(hdr.Total),
		ScannerHead: hdr.ScannerHead,
		Colors:      make([]Color, 0, hdr.Count),
	}
	for i := 0; i < int(hdr.Count); i++ {
		rgb, err := state.cur.ReadBytes(3)
		if err != nil {
			return nil, truncated(err, state.cur.Pos())
		}
		palette.Add(rgb[0], rgb[1], rgb[2])
	}
	state.palette = palette
	return palette, nil
}

func decodeFrame(state *decodeState, hdr Header) (Record, error) {
	frame := &Frame{
		Format:      hdr.Format,
		Name:        utils.TrimPadding(hdr.Name),
		Company:     utils.TrimPadding(hdr.Company),
		Number:      int(hdr.Number),
		TotalFrames: int(hdr.Total),
		ScannerHead: hdr.ScannerHead,
		Points:      make([]Point, hdr.Count),
	}
	for i := range frame.Points {
		if err := readPoint(state.cur, hdr.Format, &frame.Points[i]); err != nil {
			return nil, truncated(err, state.cur.Pos())
		}
	}
	if frame.UsesPalette() {
		if err := frame.PalettePaint(state.currentPalette()); err != nil {
			return nil, fmt.Errorf("frame at offset %d: %w", hdr.Offset, err)
		}
	}
	return frame, nil
}

func readPoint(cur *utils.Cursor, format FormatCode, point *Point) error {
	var raw [3]int16
	axes := 2
	if format.Is3D() {
		axes = 3
	}
	for i := 0; i < axes; i++ {
		v, err := cur.ReadInt16BE()
		if err != nil {
			return err
		}
		raw[i] = v
	}
	status, err := cur.ReadByte()
	if err != nil {
		return err
	}

	point.X = float32(raw[0]) * coordScale
	point.Y = float32(raw[1]) * -coordScale
	point.Z = float32(raw[2]) * coordScale
	point.Blanked = status&blankingBit != 0

	if format.Indexed() {
		point.PaletteIndex, err = cur.ReadByte()
		return err
	}
	// true colour is stored blue, green, red
	bgr, err := cur.ReadBytes(3)
	if err != nil {
		return err
	}
	point.Color = RGB(bgr[2], bgr[1], bgr[0])
	return nil
}

// Decoder holds the records decoded from a reader.
type Decoder struct {
	records []Record
}

// NewDecoder reads r to the end and decodes the result.
func NewDecoder(r io.Reader, opts ...Option) (*Decoder, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, ioError(err)
	}
	records, err := Decode(data, opts...)
	if err != nil {
		return nil, err
	}
	return &Decoder{records: records}, nil
}

func (decoder *Decoder) Records() []Record    { return decoder.records }
func (decoder *Decoder) Frames() []*Frame     { return Frames(decoder.records) }
func (decoder *Decoder) Palettes() []*Palette { return Palettes(decoder.records) }
