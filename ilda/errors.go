package ilda

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrIO                     = errors.New("ilda: io error")
	ErrFormat                 = errors.New("ilda: format error")
	ErrUnsupportedVersion     = errors.New("ilda: unsupported format code")
	ErrTruncatedRecord        = errors.New("ilda: truncated record")
	ErrPaletteIndexOutOfRange = errors.New("ilda: palette index out of range")
)

func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}

// truncated maps a cursor failure onto ErrTruncatedRecord.
func truncated(err error, offset int) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: unexpected end of data at offset %d", ErrTruncatedRecord, offset)
	}
	return err
}
