package codec

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Encode converts text into its f representation.
func Encode(text string, f Format) string {
	slog.Debug("Encoding text", "format", f.String(), "textLength", len(text))

	switch f {
	case Base64:
		return EncodeBase64(text)
	case URL:
		return EncodeURL(text)
	case HTML:
		return EncodeHTML(text)
	case Hex:
		return EncodeHex(text)
	case Binary:
		return EncodeBinary(text)
	default:
		return text
	}
}

// Decode converts an f representation back to text. It returns a
// *DecodeError when encoded is not well-formed for f.
func Decode(encoded string, f Format) (string, error) {
	slog.Debug("Decoding text", "format", f.String(), "inputLength", len(encoded))

	switch f {
	case Base64:
		return DecodeBase64(encoded)
	case URL:
		return DecodeURL(encoded)
	case HTML:
		return DecodeHTML(encoded), nil
	case Hex:
		return DecodeHex(encoded)
	case Binary:
		return DecodeBinary(encoded)
	default:
		return encoded, nil
	}
}

// stripSpace removes every whitespace code point.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// bytesToText converts decoded bytes to a string, rejecting invalid UTF-8.
func bytesToText(f Format, b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", decodeError(f, errInvalidUTF8)
	}
	return string(b), nil
}
