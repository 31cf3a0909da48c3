package request

import (
	"encoding/json"

	"fieldsync/internal/domain/conflict"
	"fieldsync/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReportConflictRequest struct {
	NaturalKey         string                `json:"naturalKey" binding:"required,max=128"`
	ClientState        json.RawMessage       `json:"clientState" binding:"required"`
	AuthoritativeState json.RawMessage       `json:"authoritativeState,omitempty"`
	Differences        []conflict.Difference `json:"differences"`
	Kind               string                `json:"kind" binding:"required"`
}

func (r ReportConflictRequest) ToInput() commands.ReportConflictInput {
	return commands.ReportConflictInput{
		NaturalKey:         r.NaturalKey,
		ClientState:        r.ClientState,
		AuthoritativeState: r.AuthoritativeState,
		Differences:        conflict.Differences(r.Differences),
		Kind:               r.Kind,
	}
}

type ResolveConflictRequest struct {
	Decision string `json:"decision" binding:"required"`
	Notes    string `json:"notes" binding:"max=2000"`
}

func (r ResolveConflictRequest) ToInput(caseID uuid.UUID) commands.ResolveConflictInput {
	return commands.ResolveConflictInput{
		CaseID:   caseID,
		Decision: r.Decision,
		Notes:    r.Notes,
	}
}
