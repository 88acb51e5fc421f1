package codec

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// EncodeHex returns two lowercase hex digits per UTF-8 byte of text.
func EncodeHex(text string) string {
	return hex.EncodeToString([]byte(text))
}

// DecodeHex parses pairs of hex digits, ignoring whitespace.
func DecodeHex(encoded string) (string, error) {
	compact := stripSpace(encoded)
	if len(compact)%2 != 0 {
		return "", decodeError(Hex, errOddLength)
	}

	b, err := hex.DecodeString(compact)
	if err != nil {
		return "", decodeError(Hex, err)
	}
	return bytesToText(Hex, b)
}

// EncodeBinary returns eight binary digits per UTF-8 byte of text,
// separated by single spaces.
func EncodeBinary(text string) string {
	groups := make([]string, len(text))
	for i := 0; i < len(text); i++ {
		groups[i] = fmt.Sprintf("%08b", text[i])
	}
	return strings.Join(groups, " ")
}

// DecodeBinary parses groups of eight binary digits, ignoring whitespace.
func DecodeBinary(encoded string) (string, error) {
	compact := stripSpace(encoded)
	if len(compact)%8 != 0 {
		return "", decodeError(Binary, errNotByteAligned)
	}

	b := make([]byte, 0, len(compact)/8)
	for i := 0; i < len(compact); i += 8 {
		v, err := strconv.ParseUint(compact[i:i+8], 2, 8)
		if err != nil {
			return "", decodeError(Binary, fmt.Errorf("group %q: %w", compact[i:i+8], err))
		}
		b = append(b, byte(v))
	}
	return bytesToText(Binary, b)
}
