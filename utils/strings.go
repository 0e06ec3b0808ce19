package utils

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Latin1 decodes b as ISO-8859-1, which is the identity mapping from byte
// value to codepoint.
func Latin1(b []byte) string {
	return latin1(charmap.ISO8859_1.NewDecoder(), b)
}

// every byte is valid ISO-8859-1, so the decoder cannot fail
func latin1(dec *encoding.Decoder, b []byte) string {
	out, _ := dec.Bytes(b)
	return string(out)
}

// TrimPadding drops the trailing space and NUL padding of a fixed-width field.
func TrimPadding(s string) string {
	return strings.TrimRight(s, " \x00")
}
