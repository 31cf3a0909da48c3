package audit

import (
	"encoding/json"
	"time"

	"fieldsync/internal/pkg/errs"

	"github.com/google/uuid"
)

type Action string

const (
	ActionRequestOpened   Action = "REQUEST_OPENED"
	ActionVoteApproved    Action = "VOTE_APPROVED"
	ActionVoteRejected    Action = "VOTE_REJECTED"
	ActionRequestRejected Action = "REQUEST_REJECTED"
	ActionRequestExpired  Action = "REQUEST_EXPIRED"
	ActionExitApproved    Action = "EXIT_APPROVED"
	ActionExitOverridden  Action = "EXIT_OVERRIDDEN"
)

// Origin identifies where the triggering call came from. It is empty for the sweeper.
type Origin struct {
	IP        string
	UserAgent string
}

// Entry is append-only. ActorID is nil for system actions.
type Entry struct {
	Action        Action
	ActorID       *uuid.UUID
	AssignmentID  uuid.UUID
	ExitRequestID *uuid.UUID
	ExitID        *uuid.UUID
	Detail        json.RawMessage
	Origin        Origin
	CreatedAt     time.Time
}

func NewEntry(action Action, actorID *uuid.UUID, assignmentID uuid.UUID, requestID, exitID *uuid.UUID, detail any, origin Origin, now time.Time) (Entry, error) {
	raw := json.RawMessage(`{}`)
	if detail != nil {
		b, err := json.Marshal(detail)
		if err != nil {
			return Entry{}, errs.Wrap(err, "failed to encode audit detail")
		}
		raw = b
	}
	return Entry{
		Action:        action,
		ActorID:       actorID,
		AssignmentID:  assignmentID,
		ExitRequestID: requestID,
		ExitID:        exitID,
		Detail:        raw,
		Origin:        origin,
		CreatedAt:     now,
	}, nil
}

type OpenedDetail struct {
	Odometer      float64     `json:"odometer"`
	Fuel          float64     `json:"fuel"`
	FuelFraction  *string     `json:"fuelFraction,omitempty"`
	Deadline      time.Time   `json:"deadline"`
	PendingVoters []uuid.UUID `json:"pendingVoters"`
}

type VoteDetail struct {
	Approve       bool        `json:"approve"`
	Notes         string      `json:"notes,omitempty"`
	PendingVoters []uuid.UUID `json:"pendingVoters"`
}

type OutcomeDetail struct {
	Status       string     `json:"status"`
	ApprovalType string     `json:"approvalType,omitempty"`
	Reason       string     `json:"reason,omitempty"`
	PriorStatus  string     `json:"priorStatus,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}
