package normalize

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashLength is the number of hex characters kept from the SHA-256
// digest. 64 bits is plenty for deduplication within one corpus.
const HashLength = 16

// ContentHash returns the truncated SHA-256 digest of b. The same
// function serves whole-container and per-slide-part hashing; only the
// input scope differs.
func ContentHash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])[:HashLength]
}
