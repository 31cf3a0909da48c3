//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"fieldsync/internal/domain/conflict"
	reqdto "fieldsync/internal/handler/dto/request"
	sqlc "fieldsync/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ConflictBuilder struct {
	ID                 uuid.UUID
	NaturalKey         string
	SituationID        *uuid.UUID
	ClientState        json.RawMessage
	AuthoritativeState json.RawMessage
	Differences        conflict.Differences
	Kind               conflict.Kind
	Status             conflict.Status
	ReportedBy         uuid.UUID
	EditWindowOpen     bool
	CreatedAt          time.Time
}

func NewConflictBuilder() *ConflictBuilder {
	return &ConflictBuilder{
		ID:                 uuid.New(),
		NaturalKey:         "SIT-" + uuid.NewString()[:8],
		ClientState:        json.RawMessage(`{"km":12.5,"description":"edited offline"}`),
		AuthoritativeState: json.RawMessage(`{"km":12,"description":"original"}`),
		Differences: conflict.Differences{
			{Field: "km", Client: json.RawMessage(`12.5`), Authoritative: json.RawMessage(`12`)},
		},
		Kind:           conflict.KindConcurrentEdit,
		Status:         conflict.StatusPending,
		ReportedBy:     uuid.New(),
		EditWindowOpen: true,
		CreatedAt:      time.Now(),
	}
}

func (b *ConflictBuilder) With(mutate func(*ConflictBuilder)) *ConflictBuilder {
	mutate(b)
	return b
}

func (b *ConflictBuilder) BuildDomain() *conflict.Case {
	return conflict.ReconstructCase(
		b.ID, b.NaturalKey, b.SituationID,
		b.ClientState, b.AuthoritativeState, b.Differences,
		b.ReportedBy, b.Kind, b.Status, nil, nil, nil,
		b.EditWindowOpen, b.CreatedAt, b.CreatedAt, nil,
	)
}

func (b *ConflictBuilder) BuildInfra() sqlc.ConflictCases {
	diffs, _ := json.Marshal(b.Differences)
	row := sqlc.ConflictCases{
		ID:                 b.ID,
		NaturalKey:         b.NaturalKey,
		ClientState:        b.ClientState,
		AuthoritativeState: b.AuthoritativeState,
		Differences:        diffs,
		ReportedBy:         b.ReportedBy,
		Kind:               b.Kind.String(),
		Status:             b.Status.String(),
		EditWindowOpen:     b.EditWindowOpen,
		CreatedAt:          pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.SituationID != nil {
		row.SituationID = pgtype.UUID{Bytes: *b.SituationID, Valid: true}
	}
	return row
}

func (b *ConflictBuilder) BuildReportRequestDTO() reqdto.ReportConflictRequest {
	return reqdto.ReportConflictRequest{
		NaturalKey:         b.NaturalKey,
		ClientState:        b.ClientState,
		AuthoritativeState: b.AuthoritativeState,
		Differences:        b.Differences,
		Kind:               b.Kind.String(),
	}
}
