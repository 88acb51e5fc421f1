// Package codec provides reversible text encodings and one-way digests.
//
// Each Format pairs an encoder with a decoder. Encoders never fail; decoders
// return a *DecodeError when the input does not follow the grammar of the
// format. Every byte-oriented format (Base64, Hex, Binary, digests) works on
// the UTF-8 bytes of the text, so multi-byte characters round-trip.
//
// Usage Example:
//
//	encoded := codec.Encode("Hello, World!", codec.Base64)
//	// encoded == "SGVsbG8sIFdvcmxkIQ=="
//	decoded, err := codec.Decode(encoded, codec.Base64)
package codec

import (
	"fmt"
	"strings"
)

// Format selects an encode/decode pair.
type Format int

const (
	// Base64 is standard padded Base64 over UTF-8 bytes
	Base64 Format = iota
	// URL is RFC 3986 percent-encoding
	URL
	// HTML escapes the five HTML-significant characters as entities
	HTML
	// Hex is lowercase hexadecimal, two digits per UTF-8 byte
	Hex
	// Binary is eight binary digits per UTF-8 byte, space-separated
	Binary
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Base64:
		return "base64"
	case URL:
		return "url"
	case HTML:
		return "html"
	case Hex:
		return "hex"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// Formats returns every reversible format.
func Formats() []Format {
	return []Format{Base64, URL, HTML, Hex, Binary}
}

// ParseFormat looks up a format by name (case-insensitive).
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	// aliases
	switch name {
	case "html-entities":
		return HTML, nil
	case "percent":
		return URL, nil
	}

	for _, f := range Formats() {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown format %q", name)
}
