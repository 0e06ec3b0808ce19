package ilda

import (
	"fmt"
	"io"

	"github.com/cam-per/goilda/utils"
)

const (
	HeaderSize = 32
	Magic      = "ILDA"
)

// Header is one 32-byte record header. Name and Company keep their padding.
type Header struct {
	Offset      int
	Magic       string
	Format      FormatCode
	Name        string
	Company     string
	Count       int16
	Number      int16
	Total       int16
	ScannerHead uint8
}

// PayloadSize is the number of bytes that follow the header.
func (hdr Header) PayloadSize() int {
	if hdr.Count < 0 {
		return 0
	}
	return int(hdr.Count) * hdr.Format.RecordSize()
}

func readHeader(cur *utils.Cursor) (hdr Header, err error) {
	hdr.Offset = cur.Pos()
	if cur.Remaining() < HeaderSize {
		return hdr, truncated(io.ErrUnexpectedEOF, hdr.Offset)
	}
	// the length check above makes every read below infallible
	hdr.Magic, _ = cur.ReadASCII(4)
	_ = cur.Skip(3)
	format, _ := cur.ReadByte()
	hdr.Format = FormatCode(format)
	hdr.Name, _ = cur.ReadASCII(8)
	hdr.Company, _ = cur.ReadASCII(8)
	hdr.Count, _ = cur.ReadInt16BE()
	hdr.Number, _ = cur.ReadInt16BE()
	hdr.Total, _ = cur.ReadInt16BE()
	hdr.ScannerHead, _ = cur.ReadByte()
	_ = cur.Skip(1)
	return hdr, nil
}

// validate checks a header whose magic already matched.
func (hdr Header) validate() error {
	if !hdr.Format.Valid() {
		return fmt.Errorf("%w: code %d at offset %d", ErrUnsupportedVersion, uint8(hdr.Format), hdr.Offset)
	}
	if hdr.Count < 0 {
		return fmt.Errorf("%w: negative record count %d at offset %d", ErrFormat, hdr.Count, hdr.Offset)
	}
	return nil
}

// checkStart probes for a complete ILDA header at the start of the buffer
// and rewinds the cursor.
func checkStart(cur *utils.Cursor) error {
	if cur.Len() < HeaderSize {
		return fmt.Errorf("%w: incomplete header (%d bytes)", ErrFormat, cur.Len())
	}
	magic, err := cur.ReadASCII(len(Magic))
	if err != nil {
		return truncated(err, cur.Pos())
	}
	if magic != Magic {
		return fmt.Errorf("%w: bad magic %q", ErrFormat, magic)
	}
	cur.Reset()
	return nil
}

// ScanHeaders walks the record headers of data without decoding payloads.
// Termination and failure rules are the same as Decode.
func ScanHeaders(data []byte) ([]Header, error) {
	cur := utils.NewCursor(data)
	if err := checkStart(cur); err != nil {
		return nil, err
	}
	var headers []Header
	for cur.Remaining() >= HeaderSize {
		hdr, err := readHeader(cur)
		if err != nil {
			return nil, err
		}
		if hdr.Magic != Magic {
			break
		}
		if err := hdr.validate(); err != nil {
			return nil, err
		}
		if err := cur.Skip(hdr.PayloadSize()); err != nil {
			return nil, fmt.Errorf("%w: header at offset %d declares %d records, %d bytes remain",
				ErrTruncatedRecord, hdr.Offset, hdr.Count, cur.Remaining())
		}
		headers = append(headers, hdr)
	}
	return headers, nil
}
