package request

import (
	"encoding/json"

	"fieldsync/internal/usecase/commands"

	"github.com/google/uuid"
)

type UpsertDraftRequest struct {
	ClientID uuid.UUID       `json:"clientId" binding:"required"`
	Payload  json.RawMessage `json:"payload" binding:"required"`
}

func (r UpsertDraftRequest) ToInput(kind string) commands.UpsertDraftInput {
	return commands.UpsertDraftInput{
		ClientID: r.ClientID,
		Kind:     kind,
		Payload:  r.Payload,
	}
}

type AttachEvidenceRequest struct {
	Kind            string  `json:"kind" binding:"required"`
	StorageRef      string  `json:"storageRef" binding:"required,max=512"`
	PreviewRef      *string `json:"previewRef,omitempty" binding:"omitempty,max=512"`
	OrdinalHint     *int32  `json:"ordinalHint,omitempty"`
	Width           *int32  `json:"width,omitempty"`
	Height          *int32  `json:"height,omitempty"`
	DurationSeconds *int32  `json:"durationSeconds,omitempty"`
	SizeBytes       *int64  `json:"sizeBytes,omitempty"`
}

func (r AttachEvidenceRequest) ToInput(draftClientID uuid.UUID) commands.AttachEvidenceInput {
	in := commands.AttachEvidenceInput{
		DraftClientID: draftClientID,
		Kind:          r.Kind,
		StorageRef:    r.StorageRef,
		OrdinalHint:   r.OrdinalHint,
	}
	in.Metadata.PreviewRef = r.PreviewRef
	in.Metadata.Width = r.Width
	in.Metadata.Height = r.Height
	in.Metadata.DurationSeconds = r.DurationSeconds
	in.Metadata.SizeBytes = r.SizeBytes
	return in
}
