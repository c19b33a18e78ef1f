package store

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// CacheKey hashes a key so arbitrary nicks and names are safe on disk.
func CacheKey(key string) []byte {
	hash := sha3.Sum224([]byte(key))
	hashString := hex.EncodeToString(hash[:])

	return []byte(hashString)
}
