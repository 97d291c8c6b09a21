package persistence

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NextID returns a new unique key: a time ordered UUIDv7 as 32 hex chars.
func NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return hex.EncodeToString(id[:])
}
