package codec

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"log/slog"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm selects a one-way digest.
type Algorithm int

const (
	SHA1 Algorithm = iota
	SHA256
	SHA512
	SHA3_256
	BLAKE2b256
)

// String returns the conventional name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "SHA-1"
	case SHA256:
		return "SHA-256"
	case SHA512:
		return "SHA-512"
	case SHA3_256:
		return "SHA3-256"
	case BLAKE2b256:
		return "BLAKE2b-256"
	default:
		return "unknown"
	}
}

// Algorithms returns every supported digest algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{SHA1, SHA256, SHA512, SHA3_256, BLAKE2b256}
}

// ParseAlgorithm looks up an algorithm by name, ignoring case and dashes
// ("sha256", "SHA-256" and "sha-256" are equivalent).
func ParseAlgorithm(name string) (Algorithm, error) {
	want := normalizeAlgorithmName(name)
	for _, a := range Algorithms() {
		if normalizeAlgorithmName(a.String()) == want {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown digest algorithm %q", name)
}

func normalizeAlgorithmName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA512:
		return sha512.New(), nil
	case SHA3_256:
		return sha3.New256(), nil
	case BLAKE2b256:
		return blake2b.New256(nil)
	default:
		return nil, fmt.Errorf("unsupported digest algorithm %d", int(a))
	}
}

// Digest hashes the UTF-8 bytes of text with a and returns the lowercase hex
// digest. There is no inverse.
func Digest(text string, a Algorithm) (string, error) {
	h, err := a.newHash()
	if err != nil {
		return "", err
	}
	h.Write([]byte(text))
	sum := h.Sum(nil)

	slog.Debug("Digest computed", "algorithm", a.String(), "textLength", len(text), "digestBytes", len(sum))
	return hex.EncodeToString(sum), nil
}
