package regtext

import (
	"encoding/binary"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Value type identifiers returned by DetectValueType.
const (
	ValueTypeDWORD   = "dword"
	ValueTypeHex7    = "hex(7)"
	ValueTypeHex2    = "hex(2)"
	ValueTypeBinary  = "binary"
	ValueTypeString  = "string"
	ValueTypeUnknown = "unknown" // bare text, emitted as a string
)

// DetectValueType determines the registry value type from the value data
// string and returns the data with its type prefix removed. The typed hex
// prefixes are checked before plain "hex:" because they share its first
// three characters.
func DetectValueType(data string) (typ, rest string) {
	switch {
	case strings.HasPrefix(data, DWORDPrefix):
		return ValueTypeDWORD, data[len(DWORDPrefix):]
	case strings.HasPrefix(data, HexMultiSZPrefix):
		return ValueTypeHex7, data[len(HexMultiSZPrefix):]
	case strings.HasPrefix(data, HexExpandSZPrefix):
		return ValueTypeHex2, data[len(HexExpandSZPrefix):]
	case strings.HasPrefix(data, HexPrefix):
		return ValueTypeBinary, data[len(HexPrefix):]
	case IsQuoted(data):
		return ValueTypeString, StripQuotes(data)
	default:
		return ValueTypeUnknown, data
	}
}

// SplitAssignment splits a value line at its first '='. Anything after that,
// further '=' characters included, belongs to the value.
func SplitAssignment(line string) (name, data string, ok bool) {
	return strings.Cut(line, ValueAssignment)
}

// IsQuoted reports whether s starts and ends with a double quote. A lone
// quote character counts.
func IsQuoted(s string) bool {
	return strings.HasPrefix(s, Quote) && strings.HasSuffix(s, Quote)
}

// StripQuotes removes at most one leading and one trailing double quote.
// Escapes inside are left alone.
func StripQuotes(s string) string {
	s = strings.TrimPrefix(s, Quote)
	return strings.TrimSuffix(s, Quote)
}

// MatchRoot returns the registry root that path starts with.
func MatchRoot(path string) (Root, bool) {
	for _, r := range Roots {
		if strings.HasPrefix(path, r.Name) {
			return r, true
		}
	}
	return Root{}, false
}

// DecodeHexUTF16 decodes the comma-separated byte list of a hex(2)/hex(7)
// payload ("41,00,42,00") as little-endian UTF-16. Tokens are trimmed and a
// trailing '\' is ignored. An unparsable high byte counts as 0x00; an
// unparsable low byte turns the whole code unit into NUL. A trailing
// unpaired byte is dropped.
func DecodeHexUTF16(s string) string {
	parts := strings.Split(s, HexByteSeparator)
	data := make([]byte, len(parts))
	for i := 0; i+1 < len(parts); i += UTF16CodeUnitSize {
		lo, ok := parseHexByte(parts[i])
		if !ok {
			continue
		}
		hi, _ := parseHexByte(parts[i+1])
		data[i], data[i+1] = lo, hi
	}
	return DecodeUTF16Pairs(data)
}

// parseHexByte parses one byte token such as "4f" or " ff\".
func parseHexByte(tok string) (byte, bool) {
	tok = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(tok), Backslash))
	b, err := strconv.ParseUint(tok, 16, 8)
	if err != nil {
		return 0, false
	}
	return byte(b), true
}

// DecodeUTF16Pairs decodes little-endian UTF-16 from a byte sequence. Bytes
// are consumed two at a time as low + high*256; a trailing unpaired byte is
// dropped. Surrogate pairs combine into one rune and unpaired surrogates
// become U+FFFD.
func DecodeUTF16Pairs(data []byte) string {
	n := len(data) / UTF16CodeUnitSize
	if n == 0 {
		return ""
	}
	words := make([]uint16, n)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(data[i*UTF16CodeUnitSize:])
	}
	return string(utf16.Decode(words))
}

// EncodeUTF16LE encodes a string to UTF-16LE without a terminator.
func EncodeUTF16LE(s string) []byte {
	words := utf16.Encode([]rune(s))
	buf := make([]byte, len(words)*UTF16CodeUnitSize)
	for i, w := range words {
		binary.LittleEndian.PutUint16(buf[i*UTF16CodeUnitSize:], w)
	}
	return buf
}

// RemoveSeparators drops every byte separator from a hex payload, keeping the
// digits as one opaque run ("01,02,ff" -> "0102ff").
func RemoveSeparators(s string) string {
	return strings.ReplaceAll(s, HexByteSeparator, "")
}
