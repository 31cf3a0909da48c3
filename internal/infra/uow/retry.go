package uow

import (
	"math/rand/v2"
	"time"

	"fieldsync/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// RetryPolicy bounds how often a write transaction is replayed after losing
// a lock race. Waits double per attempt with up to 20% jitter.
type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, Base: 100 * time.Millisecond}

func (p RetryPolicy) next(err error, attempt int) (time.Duration, bool) {
	if attempt >= p.MaxRetries || !isRetryableError(err) {
		return 0, false
	}
	return p.backoff(attempt), true
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * p.Base
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

// isRetryableError reports lock races and connection drops that happened
// before anything reached the server.
func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if errs.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return true
		}
		return false
	}
	return errs.Is(err, errTransactionBegin) && pgconn.SafeToRetry(err)
}
