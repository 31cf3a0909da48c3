package shared

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyRecord is a memoized response for one idempotency key.
type IdempotencyRecord struct {
	Key            uuid.UUID
	UserID         *uuid.UUID
	Endpoint       string
	RequestHash    string
	ResponseStatus int
	ResponseBody   []byte
	CreatedAt      time.Time
	ExpiresAt      time.Time
}
