package response

import (
	"encoding/json"
	"time"

	"fieldsync/internal/domain/evidence"
	"fieldsync/internal/usecase/commands"
	"fieldsync/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UpsertDraftResponse struct {
	ClientID uuid.UUID `json:"clientId"`
	Status   string    `json:"status"`
}

func FromUpsertDraftResult(r *commands.UpsertDraftResult) *UpsertDraftResponse {
	return &UpsertDraftResponse{ClientID: r.ClientID, Status: r.Status.String()}
}

type EvidenceResponse struct {
	ID              uuid.UUID  `json:"id"`
	Kind            string     `json:"kind"`
	Ordinal         *int32     `json:"ordinal,omitempty"`
	StorageRef      string     `json:"storageRef"`
	PreviewRef      *string    `json:"previewRef,omitempty"`
	Width           *int32     `json:"width,omitempty"`
	Height          *int32     `json:"height,omitempty"`
	DurationSeconds *int32     `json:"durationSeconds,omitempty"`
	SizeBytes       *int64     `json:"sizeBytes,omitempty"`
	Status          string     `json:"status"`
	SituationID     *uuid.UUID `json:"situationId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type DraftResponse struct {
	ClientID      uuid.UUID          `json:"clientId"`
	Kind          string             `json:"kind"`
	Payload       json.RawMessage    `json:"payload"`
	OwnerID       uuid.UUID          `json:"ownerId"`
	Status        string             `json:"status"`
	ErrorDetail   *string            `json:"errorDetail,omitempty"`
	Attempts      int32              `json:"attempts"`
	LastAttemptAt *time.Time         `json:"lastAttemptAt,omitempty"`
	SituationID   *uuid.UUID         `json:"situationId,omitempty"`
	DetailID      *uuid.UUID         `json:"detailId,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	Evidence      []EvidenceResponse `json:"evidence"`
	Completeness  evidence.Tally     `json:"completeness"`
}

func FromDraftView(v *queries.DraftView) (*DraftResponse, error) {
	res := &DraftResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	if res.Evidence == nil {
		res.Evidence = []EvidenceResponse{}
	}
	return res, nil
}

type PendingDraftResponse struct {
	ClientID      uuid.UUID      `json:"clientId"`
	Kind          string         `json:"kind"`
	Status        string         `json:"status"`
	ErrorDetail   *string        `json:"errorDetail,omitempty"`
	Attempts      int32          `json:"attempts"`
	LastAttemptAt *time.Time     `json:"lastAttemptAt,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	Completeness  evidence.Tally `json:"completeness"`
}

func FromPendingDrafts(items []*queries.PendingDraftItem) ([]PendingDraftResponse, error) {
	res := make([]PendingDraftResponse, 0, len(items))
	if err := copier.Copy(&res, items); err != nil {
		return nil, err
	}
	return res, nil
}

type AttachEvidenceResponse struct {
	ID           uuid.UUID      `json:"id"`
	Ordinal      *int32         `json:"ordinal,omitempty"`
	Completeness evidence.Tally `json:"completeness"`
}

func FromAttachEvidenceResult(r *commands.AttachEvidenceResult) *AttachEvidenceResponse {
	return &AttachEvidenceResponse{ID: r.ID, Ordinal: r.Ordinal, Completeness: r.Completeness}
}

type FinalizeResponse struct {
	PrimaryID uuid.UUID `json:"primaryId"`
	DetailID  uuid.UUID `json:"detailId"`
	Replayed  bool      `json:"replayed"`
}

func FromFinalizeResult(r *commands.FinalizeResult) *FinalizeResponse {
	return &FinalizeResponse{PrimaryID: r.PrimaryID, DetailID: r.DetailID, Replayed: r.Replayed}
}
