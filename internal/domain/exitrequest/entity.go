package exitrequest

import (
	"strings"
	"time"

	"fieldsync/internal/pkg/errs"

	"github.com/google/uuid"
)

// Reading is what the requester reports about the vehicle at exit time.
type Reading struct {
	Odometer     float64
	Fuel         float64
	FuelFraction *string
	Notes        *string
}

type Request struct {
	id             uuid.UUID
	assignmentID   uuid.UUID
	requestedBy    uuid.UUID
	reading        Reading
	status         Status
	deadline       time.Time
	exitID         *uuid.UUID
	manualOverride bool
	approvedBy     *uuid.UUID
	approvalType   *ApprovalType
	overrideReason *string
	resolvedAt     *time.Time
	createdAt      time.Time
}

func NewRequest(assignmentID, requestedBy uuid.UUID, reading Reading, now time.Time, authWindow time.Duration) (*Request, error) {
	if reading.Odometer < 0 || reading.Fuel < 0 {
		return nil, ErrInvalidReading
	}
	return &Request{
		id:           uuid.New(),
		assignmentID: assignmentID,
		requestedBy:  requestedBy,
		reading:      reading,
		status:       StatusPendingAuth,
		deadline:     now.Add(authWindow),
		createdAt:    now,
	}, nil
}

func ReconstructRequest(
	id, assignmentID, requestedBy uuid.UUID,
	reading Reading,
	status Status,
	deadline time.Time,
	exitID *uuid.UUID,
	manualOverride bool,
	approvedBy *uuid.UUID,
	approvalType *ApprovalType,
	overrideReason *string,
	resolvedAt *time.Time,
	createdAt time.Time,
) *Request {
	return &Request{
		id:             id,
		assignmentID:   assignmentID,
		requestedBy:    requestedBy,
		reading:        reading,
		status:         status,
		deadline:       deadline,
		exitID:         exitID,
		manualOverride: manualOverride,
		approvedBy:     approvedBy,
		approvalType:   approvalType,
		overrideReason: overrideReason,
		resolvedAt:     resolvedAt,
		createdAt:      createdAt,
	}
}

func (r *Request) ID() uuid.UUID { return r.id }
func (r *Request) AssignmentID() uuid.UUID { return r.assignmentID }
func (r *Request) RequestedBy() uuid.UUID { return r.requestedBy }
func (r *Request) Reading() Reading { return r.reading }
func (r *Request) Status() Status { return r.status }
func (r *Request) Deadline() time.Time { return r.deadline }
func (r *Request) ExitID() *uuid.UUID { return r.exitID }
func (r *Request) ManualOverride() bool { return r.manualOverride }
func (r *Request) ApprovedBy() *uuid.UUID { return r.approvedBy }
func (r *Request) ApprovalType() *ApprovalType { return r.approvalType }
func (r *Request) OverrideReason() *string { return r.overrideReason }
func (r *Request) ResolvedAt() *time.Time { return r.resolvedAt }
func (r *Request) CreatedAt() time.Time { return r.createdAt }

// DeadlinePassed is true from the deadline instant on.
func (r *Request) DeadlinePassed(now time.Time) bool {
	return !now.Before(r.deadline)
}

// IsLive reports a pending request that can still collect votes.
func (r *Request) IsLive(now time.Time) bool {
	return r.status == StatusPendingAuth && !r.DeadlinePassed(now)
}

// CheckVotable returns ErrDeadlinePassed when the caller must expire the request instead.
func (r *Request) CheckVotable(now time.Time) error {
	if r.status != StatusPendingAuth {
		return errs.WithResource(ErrNotPending, "exit_request", r.id.String())
	}
	if r.DeadlinePassed(now) {
		return ErrDeadlinePassed
	}
	return nil
}

func (r *Request) Expire(now time.Time) error {
	if err := r.transition(StatusExpired); err != nil {
		return err
	}
	r.resolvedAt = &now
	return nil
}

func (r *Request) Reject(now time.Time) error {
	if err := r.transition(StatusRejected); err != nil {
		return err
	}
	r.resolvedAt = &now
	return nil
}

// Approve records unanimous crew consent.
func (r *Request) Approve(exitID uuid.UUID, now time.Time) error {
	if r.status != StatusPendingAuth {
		return errs.WithResource(ErrNotPending, "exit_request", r.id.String())
	}
	if err := r.transition(StatusApproved); err != nil {
		return err
	}
	t := ApprovalCrewConsensus
	r.exitID = &exitID
	r.approvalType = &t
	r.resolvedAt = &now
	return nil
}

func (r *Request) CheckOverridable() error {
	if r.status.IsTerminal() {
		return errs.WithResource(ErrAlreadyDecided, "exit_request", r.id.String())
	}
	return nil
}

// Override approves a pending or expired request on a supervisor's authority.
func (r *Request) Override(exitID, supervisorID uuid.UUID, reason string, now time.Time) error {
	if err := r.CheckOverridable(); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	if err := r.transition(StatusApproved); err != nil {
		return err
	}
	t := ApprovalSupervisorOverride
	r.exitID = &exitID
	r.manualOverride = true
	r.approvedBy = &supervisorID
	r.approvalType = &t
	r.overrideReason = &reason
	r.resolvedAt = &now
	return nil
}

func (r *Request) transition(next Status) error {
	if !r.status.CanTransitionTo(next) {
		return errs.WithResource(ErrNotPending, "exit_request", r.id.String())
	}
	r.status = next
	return nil
}
