package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"fieldsync/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200

	cursorVersion = "c1"
)

// Cursor is the opaque keyset position returned as next_cursor.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor pins the position to the status filter it was issued for.
// Microsecond precision matches timestamptz.
func EncodeAfterCursor(status string, t time.Time, id uuid.UUID) string {
	raw := strings.Join([]string{cursorVersion, status, strconv.FormatInt(t.UnixMicro(), 10), id.String()}, ":")
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor, status string) (time.Time, uuid.UUID, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor is not base64url")
	}

	parts := strings.Split(string(decoded), ":")
	if len(parts) != 4 || parts[0] != cursorVersion {
		return time.Time{}, uuid.Nil, errs.New("unknown cursor format")
	}
	if parts[1] != status {
		return time.Time{}, uuid.Nil, errs.Newf("cursor was issued for status %s", parts[1])
	}

	micros, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor timestamp")
	}
	id, err := uuid.Parse(parts[3])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor id")
	}

	return time.UnixMicro(micros).UTC(), id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
