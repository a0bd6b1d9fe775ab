package utils

import "hash/fnv"

// Hash64 returns the FNV-1a hash of s. Used as the statement-cache key for
// rendered SQL text.
func Hash64(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
