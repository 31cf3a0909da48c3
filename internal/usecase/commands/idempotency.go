package commands

import (
	"context"
	"time"

	"fieldsync/internal/infra"
	"fieldsync/internal/pkg/clock"
	"fieldsync/internal/usecase/shared"

	"github.com/google/uuid"
)

// IdempotencyStore backs the HTTP idempotency guard. Only the guard decides what gets cached.
type IdempotencyStore interface {
	// Lookup returns nil when the key is unknown or expired.
	Lookup(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error)
	// Remember keeps the first record stored for a key and reports whether this call stored it.
	Remember(ctx context.Context, rec shared.IdempotencyRecord) (bool, error)
}

type idempotencyStoreImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	ttl   time.Duration
}

func NewIdempotencyStore(uow shared.UnitOfWork, clk clock.Clock, ttl time.Duration) IdempotencyStore {
	return &idempotencyStoreImpl{uow: uow, clock: clk, ttl: ttl}
}

func (s *idempotencyStoreImpl) Lookup(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, err := s.uow.CommandReads().IdempotencyByKey(ctx, key, s.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, storeErr(err, nil)
	}
	return rec, nil
}

func (s *idempotencyStoreImpl) Remember(ctx context.Context, rec shared.IdempotencyRecord) (bool, error) {
	now := s.clock.Now()
	rec.CreatedAt = now
	rec.ExpiresAt = now.Add(s.ttl)

	direct := s.uow.Direct()
	stored, err := direct.Idempotency().Save(ctx, direct.DB(), rec)
	if err != nil {
		return false, storeErr(err, nil)
	}
	return stored, nil
}
