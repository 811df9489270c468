package dirdupes

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"
)

// DigestKey is the lowercase hex rendering of a content digest
type DigestKey string

// HashAlgorithm represents a hash algorithm configuration
type HashAlgorithm struct {
	Name    string
	Size    int
	NewFunc func() hash.Hash
}

// GetHashAlgorithm returns the hash algorithm configuration for the given name
func GetHashAlgorithm(name string) (*HashAlgorithm, error) {
	switch strings.ToLower(name) {
	case "sha256":
		return &HashAlgorithm{
			Name:    "sha256",
			Size:    HashSizeSHA256,
			NewFunc: sha256.New,
		}, nil
	case "sha512_256", "sha512/256":
		return &HashAlgorithm{
			Name:    "sha512_256",
			Size:    HashSizeSHA512_256,
			NewFunc: sha512.New512_256,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %s (supported: sha256, sha512_256)", name)
	}
}

// DefaultHashAlgorithm returns SHA-256
func DefaultHashAlgorithm() *HashAlgorithm {
	algorithm, _ := GetHashAlgorithm("sha256")
	return algorithm
}

// Digest hashes the complete buffer
func (ha *HashAlgorithm) Digest(data []byte) DigestKey {
	hasher := ha.NewFunc()
	hasher.Write(data)
	return DigestKey(hex.EncodeToString(hasher.Sum(nil)))
}
