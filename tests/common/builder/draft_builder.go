//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"fieldsync/internal/domain/draft"
	"fieldsync/internal/domain/evidence"
	reqdto "fieldsync/internal/handler/dto/request"
	sqlc "fieldsync/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const trafficIncidentPayload = `{
	"km": 42.5,
	"direction": "NORTH",
	"description": "two cars collided at the toll booth",
	"incident": {
		"incidentType": "COLLISION",
		"injured": 1,
		"vehicles": [{"plate": "P123ABC", "vehicleType": "SEDAN"}]
	}
}`

type DraftBuilder struct {
	ClientID  uuid.UUID
	Kind      draft.Kind
	Payload   json.RawMessage
	OwnerID   uuid.UUID
	Status    draft.SyncStatus
	Attempts  int32
	CreatedAt time.Time
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		ClientID:  uuid.New(),
		Kind:      draft.KindTrafficIncident,
		Payload:   json.RawMessage(trafficIncidentPayload),
		OwnerID:   uuid.New(),
		Status:    draft.StatusLocal,
		CreatedAt: time.Now(),
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) WithClientID(id uuid.UUID) *DraftBuilder {
	b.ClientID = id
	return b
}

func (b *DraftBuilder) WithKind(kind draft.Kind) *DraftBuilder {
	b.Kind = kind
	return b
}

func (b *DraftBuilder) WithPayload(payload string) *DraftBuilder {
	b.Payload = json.RawMessage(payload)
	return b
}

func (b *DraftBuilder) WithOwner(id uuid.UUID) *DraftBuilder {
	b.OwnerID = id
	return b
}

func (b *DraftBuilder) WithStatus(status draft.SyncStatus) *DraftBuilder {
	b.Status = status
	return b
}

// Build methods

// Build runs the constructor so invalid fields surface as errors.
func (b *DraftBuilder) Build() (*draft.Draft, error) {
	return draft.NewDraft(b.ClientID, b.Kind, b.Payload, b.OwnerID, b.CreatedAt)
}

func (b *DraftBuilder) BuildDomain() *draft.Draft {
	var situationID, detailID *uuid.UUID
	if b.Status == draft.StatusSynchronized {
		s, d := uuid.New(), uuid.New()
		situationID, detailID = &s, &d
	}
	return draft.ReconstructDraft(
		b.ClientID, b.Kind, b.Payload, b.OwnerID, b.Status,
		nil, b.Attempts, nil, situationID, detailID, b.CreatedAt, b.CreatedAt,
	)
}

func (b *DraftBuilder) BuildInfra() sqlc.Drafts {
	return sqlc.Drafts{
		ClientID:  b.ClientID,
		Kind:      b.Kind.String(),
		Payload:   b.Payload,
		OwnerID:   b.OwnerID,
		Status:    b.Status.String(),
		Attempts:  b.Attempts,
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *DraftBuilder) BuildUpsertRequestDTO() reqdto.UpsertDraftRequest {
	return reqdto.UpsertDraftRequest{
		ClientID: b.ClientID,
		Payload:  b.Payload,
	}
}

type EvidenceBuilder struct {
	DraftClientID uuid.UUID
	Kind          evidence.Kind
	StorageRef    string
	OrdinalHint   *int32
	Width         *int32
	Height        *int32
}

func NewEvidenceBuilder() *EvidenceBuilder {
	w, h := int32(1920), int32(1080)
	return &EvidenceBuilder{
		DraftClientID: uuid.New(),
		Kind:          evidence.KindImage,
		StorageRef:    "evidence/" + uuid.NewString() + ".jpg",
		Width:         &w,
		Height:        &h,
	}
}

func (b *EvidenceBuilder) With(mutate func(*EvidenceBuilder)) *EvidenceBuilder {
	mutate(b)
	return b
}

func (b *EvidenceBuilder) BuildRequestDTO() reqdto.AttachEvidenceRequest {
	return reqdto.AttachEvidenceRequest{
		Kind:        b.Kind.String(),
		StorageRef:  b.StorageRef,
		OrdinalHint: b.OrdinalHint,
		Width:       b.Width,
		Height:      b.Height,
	}
}
