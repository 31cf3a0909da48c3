package exitrequest

import (
	"strings"

	"fieldsync/internal/pkg/errs"
)

var (
	ErrInvalidReading       = errs.Validation("odometer and fuel must be zero or greater")
	ErrReasonRequired       = errs.Validation("override reason is required")
	ErrNotPending           = errs.Conflict("exit request is no longer pending")
	ErrAlreadyVoted         = errs.Conflict("already voted")
	ErrPendingExists        = errs.Conflict("assignment already has a pending exit request")
	ErrAssignmentNotReady   = errs.Conflict("assignment is not scheduled")
	ErrAlreadyDecided       = errs.Conflict("exit request already approved or rejected")
	ErrDeadlinePassed       = errs.Expired("exit request deadline has passed")
	ErrNotOnCrew            = errs.NotFound("assignment not found for caller")
	ErrRequestNotFound      = errs.NotFound("exit request not found")
	ErrOverrideNotPermitted = errs.Forbidden("role cannot override exit requests")
)

type Status string

const (
	StatusPendingAuth Status = "PENDING_AUTH"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
	StatusExpired     Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPendingAuth, StatusApproved, StatusRejected, StatusExpired:
		return st, nil
	default:
		return "", errs.Validation("unknown exit request status")
	}
}

var transitions = map[Status][]Status{
	StatusPendingAuth: {StatusApproved, StatusRejected, StatusExpired},
	StatusExpired:     {StatusApproved},
	StatusApproved:    {},
	StatusRejected:    {},
}

// CanTransitionTo allows EXPIRED -> APPROVED only through a supervisor override.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type ApprovalType string

const (
	ApprovalCrewConsensus      ApprovalType = "CREW_CONSENSUS"
	ApprovalSupervisorOverride ApprovalType = "SUPERVISOR_OVERRIDE"
)

type AssignmentStatus string

const (
	AssignmentScheduled    AssignmentStatus = "SCHEDULED"
	AssignmentAwaitingAuth AssignmentStatus = "AWAITING_AUTH"
	AssignmentInProgress   AssignmentStatus = "IN_PROGRESS"
	AssignmentCompleted    AssignmentStatus = "COMPLETED"
	AssignmentCancelled    AssignmentStatus = "CANCELLED"
)

type CrewRole string

const (
	CrewDriver    CrewRole = "DRIVER"
	CrewCommander CrewRole = "COMMANDER"
	CrewMember    CrewRole = "CREW"
)
