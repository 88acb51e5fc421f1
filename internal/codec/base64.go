package codec

import (
	"encoding/base64"
	"strings"
)

// EncodeBase64 returns the padded standard Base64 encoding of the UTF-8 bytes of text.
func EncodeBase64(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// DecodeBase64 decodes standard Base64, ignoring whitespace. Unpadded input
// is accepted when its length allows it. Padding bits must be zero.
func DecodeBase64(encoded string) (string, error) {
	compact := stripSpace(encoded)

	enc := base64.StdEncoding.Strict()
	if len(compact)%4 != 0 && !strings.Contains(compact, "=") {
		enc = base64.RawStdEncoding.Strict()
	}

	b, err := enc.DecodeString(compact)
	if err != nil {
		return "", decodeError(Base64, err)
	}
	return bytesToText(Base64, b)
}
