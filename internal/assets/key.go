package assets

import (
	"crypto/sha256"
	"encoding/hex"
)

// keyLength is the number of hex characters kept from the content hash.
const keyLength = 16

// CacheKey derives the content address for a step illustration. Identical
// (title, action, style, provider) tuples always map to the same key, so
// the key doubles as the filename stem and no separate index is needed.
func CacheKey(title, action, style, provider string) string {
	sum := sha256.Sum256([]byte(title + "|" + action + "|" + style + "|" + provider))
	return hex.EncodeToString(sum[:])[:keyLength]
}
