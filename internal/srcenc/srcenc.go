// Package srcenc decodes source files under a selectable character
// encoding (§5, §6) before their text is laid onto the grid, because
// several bundled example programs in the source language's ecosystem
// predate UTF-8 and ship as CP1252 or ISO-8859-7.
package srcenc

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Encoding names the supported source codecs.
type Encoding string

// The CLI-selectable source encodings (§6): UTF-8 needs no decoder,
// Windows-1252 and ISO-8859-7 round-trip through golang.org/x/text.
const (
	UTF8       Encoding = "utf-8"
	Windows1252 Encoding = "windows-1252"
	ISO88597   Encoding = "iso-8859-7"
)

// Decode transforms raw source bytes to a UTF-8 string under enc.
func Decode(enc Encoding, raw []byte) (string, error) {
	if enc == "" || enc == UTF8 {
		return string(raw), nil
	}
	codec, err := lookup(enc)
	if err != nil {
		return "", err
	}
	out, err := codec.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", enc, err)
	}
	return string(out), nil
}

func lookup(enc Encoding) (encoding.Encoding, error) {
	switch enc {
	case Windows1252:
		return charmap.Windows1252, nil
	case ISO88597:
		return charmap.ISO8859_7, nil
	default:
		return nil, fmt.Errorf("unsupported source encoding %q", enc)
	}
}
