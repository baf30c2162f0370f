package vecstore

import (
	"crypto/sha256"
	"encoding/hex"
)

// storageKey isolates user keys by namespace.
func storageKey(ns, key string) string {
	return "vec:" + ns + ":" + key
}

// redactKey returns a short SHA-256 prefix, safe for logs.
func redactKey(k string) string {
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}
