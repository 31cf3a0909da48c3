package request

import (
	"strings"

	"fieldsync/internal/domain/exitrequest"
	"fieldsync/internal/pkg/ptr"
	"fieldsync/internal/usecase/commands"

	"github.com/google/uuid"
)

// Odometer and Fuel are pointers so that a missing value is told apart from zero.
type CreateExitRequestRequest struct {
	AssignmentID *uuid.UUID `json:"assignmentId,omitempty"`
	Odometer     *float64   `json:"odometer" binding:"required"`
	Fuel         *float64   `json:"fuel" binding:"required"`
	FuelFraction *string    `json:"fuelFraction,omitempty" binding:"omitempty,max=16"`
	Notes        *string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

func (r CreateExitRequestRequest) ToInput() commands.CreateExitRequestInput {
	return commands.CreateExitRequestInput{
		AssignmentID: r.AssignmentID,
		Reading: exitrequest.Reading{
			Odometer:     ptr.Deref(r.Odometer),
			Fuel:         ptr.Deref(r.Fuel),
			FuelFraction: trimmed(r.FuelFraction),
			Notes:        trimmed(r.Notes),
		},
	}
}

type VoteRequest struct {
	Approve *bool  `json:"approve" binding:"required"`
	Notes   string `json:"notes" binding:"max=2000"`
}

func (r VoteRequest) ToInput(requestID uuid.UUID) commands.VoteInput {
	return commands.VoteInput{
		RequestID: requestID,
		Approve:   ptr.Deref(r.Approve),
		Notes:     strings.TrimSpace(r.Notes),
	}
}

type OverrideRequest struct {
	Reason string `json:"reason" binding:"required,max=2000"`
}

func (r OverrideRequest) ToInput(requestID uuid.UUID) commands.OverrideInput {
	return commands.OverrideInput{RequestID: requestID, Reason: r.Reason}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
