package response

import (
	"encoding/json"
	"time"

	"fieldsync/internal/domain/conflict"
	"fieldsync/internal/usecase/commands"
	"fieldsync/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReportConflictResponse struct {
	CaseID  uuid.UUID `json:"caseId"`
	Created bool      `json:"created"`
}

func FromReportConflictResult(r *commands.ReportConflictResult) *ReportConflictResponse {
	return &ReportConflictResponse{CaseID: r.CaseID, Created: r.Created}
}

type ConflictResponse struct {
	ID                 uuid.UUID             `json:"id"`
	NaturalKey         string                `json:"naturalKey"`
	SituationID        *uuid.UUID            `json:"situationId,omitempty"`
	ClientState        json.RawMessage       `json:"clientState"`
	AuthoritativeState json.RawMessage       `json:"authoritativeState,omitempty"`
	Differences        []conflict.Difference `json:"differences"`
	ReportedBy         uuid.UUID             `json:"reportedBy"`
	Kind               string                `json:"kind"`
	Status             string                `json:"status"`
	Decision           *string               `json:"decision,omitempty"`
	ResolvedBy         *uuid.UUID            `json:"resolvedBy,omitempty"`
	ResolutionNotes    *string               `json:"resolutionNotes,omitempty"`
	EditWindowOpen     bool                  `json:"editWindowOpen"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
	ResolvedAt         *time.Time            `json:"resolvedAt,omitempty"`
}

func FromConflictView(v *queries.ConflictView) *ConflictResponse {
	return &ConflictResponse{
		ID:                 v.ID,
		NaturalKey:         v.NaturalKey,
		SituationID:        v.SituationID,
		ClientState:        v.ClientState,
		AuthoritativeState: v.AuthoritativeState,
		Differences:        differencesOrEmpty(v.Differences),
		ReportedBy:         v.ReportedBy,
		Kind:               v.Kind,
		Status:             v.Status,
		Decision:           v.Decision,
		ResolvedBy:         v.ResolvedBy,
		ResolutionNotes:    v.ResolutionNotes,
		EditWindowOpen:     v.EditWindowOpen,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
		ResolvedAt:         v.ResolvedAt,
	}
}

func FromConflictList(items []*queries.ConflictView) []*ConflictResponse {
	res := make([]*ConflictResponse, len(items))
	for i, it := range items {
		res[i] = FromConflictView(it)
	}
	return res
}

func differencesOrEmpty(ds conflict.Differences) []conflict.Difference {
	if ds == nil {
		return []conflict.Difference{}
	}
	return ds
}
