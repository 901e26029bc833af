package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string with the given prefix,
// e.g. GenerateID("bid") -> "bid-6ba7b810-...". Prefixed ids keep log lines
// and API payloads self-describing.
func GenerateID(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return prefix + "-" + uuid.NewString()
}
