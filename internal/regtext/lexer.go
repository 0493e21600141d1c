package regtext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnsupportedEncoding is returned for encoding names DecodeInput does not know.
var ErrUnsupportedEncoding = errors.New("regtext: unsupported encoding")

// DecodeInput converts raw .reg file bytes to text.
//
// A byte order mark always wins: regedit writes UTF-16LE with a BOM, and
// editors frequently add a UTF-8 BOM. Without a BOM the enc hint selects the
// decoder ("" and "UTF-8" pass the bytes through unchanged).
func DecodeInput(data []byte, enc string) (string, error) {
	switch {
	case bytes.HasPrefix(data, UTF8BOM):
		return string(data[len(UTF8BOM):]), nil
	case bytes.HasPrefix(data, UTF16LEBOM):
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), data)
	case bytes.HasPrefix(data, UTF16BEBOM):
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), data)
	}

	switch normalizeEncoding(enc) {
	case "", EncodingUTF8:
		return string(data), nil
	case EncodingUTF16LE:
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), data)
	case EncodingUTF16BE:
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), data)
	case EncodingWindows1252:
		return decodeWith(charmap.Windows1252, data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}
}

// normalizeEncoding maps the spellings users type on the command line
// (utf8, utf16le, cp1252, ...) onto the canonical encoding names.
func normalizeEncoding(enc string) string {
	e := strings.ToUpper(strings.TrimSpace(enc))
	switch e {
	case "UTF8":
		return EncodingUTF8
	case "UTF16LE", "UTF-16", "UTF16", "UNICODE":
		return EncodingUTF16LE
	case "UTF16BE":
		return EncodingUTF16BE
	case "CP1252", "WINDOWS1252", "LATIN1", "ISO-8859-1":
		return EncodingWindows1252
	}
	return e
}

func decodeWith(e encoding.Encoding, data []byte) (string, error) {
	out, _, err := transform.Bytes(e.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("regtext: decode input: %w", err)
	}
	return string(out), nil
}
