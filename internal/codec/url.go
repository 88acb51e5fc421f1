package codec

import (
	"net/url"
	"strings"
)

const upperHex = "0123456789ABCDEF"

// EncodeURL percent-encodes every byte outside the RFC 3986 unreserved set
// (ALPHA, DIGIT, '-', '.', '_', '~'). Unlike JavaScript's encodeURIComponent,
// the sub-delimiters ! ' ( ) * are escaped too, so "Hello, World!" becomes
// "Hello%2C%20World%21".
func EncodeURL(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

// DecodeURL reverses percent-encoding. A '%' not followed by two hex digits
// is an error; '+' stays a literal plus sign.
func DecodeURL(encoded string) (string, error) {
	decoded, err := url.PathUnescape(encoded)
	if err != nil {
		return "", decodeError(URL, err)
	}
	return bytesToText(URL, []byte(decoded))
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	default:
		return false
	}
}
