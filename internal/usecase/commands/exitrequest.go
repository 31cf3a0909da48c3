package commands

import (
	"context"
	"time"

	"fieldsync/internal/domain/audit"
	"fieldsync/internal/domain/exitrequest"
	"fieldsync/internal/infra"
	"fieldsync/internal/pkg/clock"
	"fieldsync/internal/pkg/errs"
	"fieldsync/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrAssignmentRequired = errs.Validation("assignment id is required")

type CreateExitRequestInput struct {
	AssignmentID *uuid.UUID
	Reading      exitrequest.Reading
}

type CreateExitRequestResult struct {
	RequestID     uuid.UUID
	Deadline      time.Time
	Status        exitrequest.Status
	PendingVoters []uuid.UUID
}

type VoteInput struct {
	RequestID uuid.UUID
	Approve   bool
	Notes     string
}

type VoteResult struct {
	Status        exitrequest.Status
	AllApproved   bool
	PendingVoters []uuid.UUID
}

type OverrideInput struct {
	RequestID uuid.UUID
	Reason    string
}

type ExitRequestCommands interface {
	Create(ctx context.Context, in CreateExitRequestInput, caller Caller) (*CreateExitRequestResult, error)
	// Vote returns exitrequest.ErrDeadlinePassed after committing the expiry of a late request.
	Vote(ctx context.Context, in VoteInput, caller Caller) (*VoteResult, error)
	Override(ctx context.Context, in OverrideInput, caller Caller) error
}

type exitRequestCommandsImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	authWindow time.Duration
}

func NewExitRequestCommands(uow shared.UnitOfWork, clk clock.Clock, authWindow time.Duration) ExitRequestCommands {
	return &exitRequestCommandsImpl{uow: uow, clock: clk, authWindow: authWindow}
}

func (uc *exitRequestCommandsImpl) Create(ctx context.Context, in CreateExitRequestInput, caller Caller) (*CreateExitRequestResult, error) {
	assignmentID := in.AssignmentID
	if assignmentID == nil {
		assignmentID = caller.AssignmentID
	}
	if assignmentID == nil || *assignmentID == uuid.Nil {
		return nil, ErrAssignmentRequired
	}
	now := uc.clock.Now()
	actor := caller.UserID

	var (
		result *CreateExitRequestResult
		log    auditLog
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		log = auditLog{}

		a, err := tx.Assignments().FindForUpdate(ctx, tx.DB(), *assignmentID)
		if err != nil {
			return storeErr(err, exitrequest.ErrNotOnCrew)
		}
		if !a.Crew.Contains(caller.UserID) {
			return exitrequest.ErrNotOnCrew
		}

		pending, err := tx.ExitRequests().FindPendingByAssignmentForUpdate(ctx, tx.DB(), a.ID)
		switch {
		case err == nil:
			if pending.IsLive(now) {
				return errs.WithResource(exitrequest.ErrPendingExists, "exit_request", pending.ID().String())
			}
			if err := uc.expire(ctx, tx, a, pending, nil, caller.Origin, now, &log); err != nil {
				return err
			}
		case infra.IsKind(err, infra.KindNotFound):
		default:
			return storeErr(err, nil)
		}

		if err := a.CheckSchedulable(); err != nil {
			return err
		}
		r, err := exitrequest.NewRequest(a.ID, caller.UserID, in.Reading, now, uc.authWindow)
		if err != nil {
			return err
		}
		if err := tx.ExitRequests().Create(ctx, tx.DB(), r); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.WithResource(errs.Mark(err, errs.ErrConflict), "assignment", a.ID.String())
			}
			return storeErr(err, nil)
		}

		consent := exitrequest.Vote{UserID: caller.UserID, Approve: true}
		if err := tx.ExitRequests().AddVote(ctx, tx.DB(), r.ID(), consent, now); err != nil {
			return storeErr(err, nil)
		}
		tally := exitrequest.Count(a.Crew, []exitrequest.Vote{consent})

		requestID := r.ID()
		reading := r.Reading()
		log.add(audit.ActionRequestOpened, &actor, a.ID, &requestID, nil, audit.OpenedDetail{
			Odometer:      reading.Odometer,
			Fuel:          reading.Fuel,
			FuelFraction:  reading.FuelFraction,
			Deadline:      r.Deadline(),
			PendingVoters: tally.PendingVoters,
		}, caller.Origin, now)

		if tally.AllApproved() {
			if err := uc.approve(ctx, tx, a, r, caller, now, &log); err != nil {
				return err
			}
		} else if err := tx.Assignments().UpdateStatus(ctx, tx.DB(), a.ID, exitrequest.AssignmentAwaitingAuth, nil, now); err != nil {
			return storeErr(err, nil)
		}

		result = &CreateExitRequestResult{
			RequestID:     r.ID(),
			Deadline:      r.Deadline(),
			Status:        r.Status(),
			PendingVoters: tally.PendingVoters,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.flush(ctx, uc.uow)
	return result, nil
}

func (uc *exitRequestCommandsImpl) Vote(ctx context.Context, in VoteInput, caller Caller) (*VoteResult, error) {
	now := uc.clock.Now()
	actor := caller.UserID

	var (
		result  *VoteResult
		expired bool
		log     auditLog
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		log = auditLog{}
		expired = false

		a, r, err := lockRequest(ctx, tx, in.RequestID)
		if err != nil {
			return err
		}
		if err := r.CheckVotable(now); err != nil {
			if !errs.Is(err, exitrequest.ErrDeadlinePassed) {
				return err
			}
			if err := uc.expire(ctx, tx, a, r, &actor, caller.Origin, now, &log); err != nil {
				return err
			}
			expired = true
			return nil
		}

		if !a.Crew.Contains(caller.UserID) {
			return exitrequest.ErrNotOnCrew
		}

		votes, err := tx.ExitRequests().Votes(ctx, tx.DB(), r.ID())
		if err != nil {
			return storeErr(err, nil)
		}
		if exitrequest.HasVoted(votes, caller.UserID) {
			return errs.WithResource(exitrequest.ErrAlreadyVoted, "exit_request", r.ID().String())
		}
		vote := exitrequest.Vote{UserID: caller.UserID, Approve: in.Approve, Notes: in.Notes}
		if err := tx.ExitRequests().AddVote(ctx, tx.DB(), r.ID(), vote, now); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.WithResource(exitrequest.ErrAlreadyVoted, "exit_request", r.ID().String())
			}
			return storeErr(err, nil)
		}
		tally := exitrequest.Count(a.Crew, append(votes, vote))

		requestID := r.ID()
		action := audit.ActionVoteApproved
		if !in.Approve {
			action = audit.ActionVoteRejected
		}
		log.add(action, &actor, a.ID, &requestID, nil, audit.VoteDetail{
			Approve:       in.Approve,
			Notes:         in.Notes,
			PendingVoters: tally.PendingVoters,
		}, caller.Origin, now)

		switch {
		case !in.Approve:
			if err := r.Reject(now); err != nil {
				return err
			}
			if err := tx.ExitRequests().SaveOutcome(ctx, tx.DB(), r); err != nil {
				return storeErr(err, nil)
			}
			if err := tx.Assignments().UpdateStatus(ctx, tx.DB(), a.ID, exitrequest.AssignmentScheduled, nil, now); err != nil {
				return storeErr(err, nil)
			}
			log.add(audit.ActionRequestRejected, &actor, a.ID, &requestID, nil, audit.OutcomeDetail{
				Status: r.Status().String(),
			}, caller.Origin, now)
		case tally.AllApproved():
			if err := uc.approve(ctx, tx, a, r, caller, now, &log); err != nil {
				return err
			}
		}

		result = &VoteResult{
			Status:        r.Status(),
			AllApproved:   tally.AllApproved(),
			PendingVoters: tally.PendingVoters,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.flush(ctx, uc.uow)
	if expired {
		return nil, errs.WithResource(exitrequest.ErrDeadlinePassed, "exit_request", in.RequestID.String())
	}
	return result, nil
}

// Override approves on a supervisor's authority. Expired requests qualify while no newer request is live.
func (uc *exitRequestCommandsImpl) Override(ctx context.Context, in OverrideInput, caller Caller) error {
	if !caller.Role.CanOverrideExit() {
		return exitrequest.ErrOverrideNotPermitted
	}
	now := uc.clock.Now()
	actor := caller.UserID

	var log auditLog
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		log = auditLog{}

		a, r, err := lockRequest(ctx, tx, in.RequestID)
		if err != nil {
			return err
		}
		if err := r.CheckOverridable(); err != nil {
			return err
		}
		prior := r.Status()

		if prior == exitrequest.StatusExpired {
			live, err := tx.ExitRequests().FindPendingByAssignmentForUpdate(ctx, tx.DB(), a.ID)
			switch {
			case err == nil:
				if live.ID() != r.ID() && live.IsLive(now) {
					return errs.WithResource(exitrequest.ErrPendingExists, "exit_request", live.ID().String())
				}
			case infra.IsKind(err, infra.KindNotFound):
			default:
				return storeErr(err, nil)
			}
		}
		if a.Status != exitrequest.AssignmentAwaitingAuth && a.Status != exitrequest.AssignmentScheduled {
			return errs.WithResource(exitrequest.ErrAssignmentNotReady, "assignment", a.ID.String())
		}

		exit := exitrequest.NewExit(a, r, now)
		if err := r.Override(exit.ID, caller.UserID, in.Reason, now); err != nil {
			return err
		}
		if err := uc.materialize(ctx, tx, a, r, exit, now); err != nil {
			return err
		}

		requestID := r.ID()
		log.add(audit.ActionExitOverridden, &actor, a.ID, &requestID, &exit.ID, audit.OutcomeDetail{
			Status:       r.Status().String(),
			ApprovalType: string(exitrequest.ApprovalSupervisorOverride),
			Reason:       *r.OverrideReason(),
			PriorStatus:  prior.String(),
		}, caller.Origin, now)
		return nil
	})
	if err != nil {
		return err
	}
	log.flush(ctx, uc.uow)
	return nil
}

// lockRequest locks the assignment before the request, the same order Create uses.
func lockRequest(ctx context.Context, tx shared.Tx, requestID uuid.UUID) (*exitrequest.Assignment, *exitrequest.Request, error) {
	peek, err := tx.ExitRequests().Find(ctx, tx.DB(), requestID)
	if err != nil {
		return nil, nil, storeErr(err, exitrequest.ErrRequestNotFound)
	}
	a, err := tx.Assignments().FindForUpdate(ctx, tx.DB(), peek.AssignmentID())
	if err != nil {
		return nil, nil, storeErr(err, nil)
	}
	r, err := tx.ExitRequests().FindForUpdate(ctx, tx.DB(), requestID)
	if err != nil {
		return nil, nil, storeErr(err, exitrequest.ErrRequestNotFound)
	}
	return a, r, nil
}

func (uc *exitRequestCommandsImpl) approve(ctx context.Context, tx shared.Tx, a *exitrequest.Assignment, r *exitrequest.Request, caller Caller, now time.Time, log *auditLog) error {
	exit := exitrequest.NewExit(a, r, now)
	if err := r.Approve(exit.ID, now); err != nil {
		return err
	}
	if err := uc.materialize(ctx, tx, a, r, exit, now); err != nil {
		return err
	}
	actor := caller.UserID
	requestID := r.ID()
	log.add(audit.ActionExitApproved, &actor, a.ID, &requestID, &exit.ID, audit.OutcomeDetail{
		Status:       r.Status().String(),
		ApprovalType: string(exitrequest.ApprovalCrewConsensus),
	}, caller.Origin, now)
	return nil
}

// materialize persists an approved request together with its exit and crew copy.
func (uc *exitRequestCommandsImpl) materialize(ctx context.Context, tx shared.Tx, a *exitrequest.Assignment, r *exitrequest.Request, exit *exitrequest.Exit, now time.Time) error {
	if err := tx.ExitRequests().CreateExit(ctx, tx.DB(), exit); err != nil {
		return storeErr(err, nil)
	}
	if err := tx.ExitRequests().SaveOutcome(ctx, tx.DB(), r); err != nil {
		return storeErr(err, nil)
	}
	if err := tx.Assignments().UpdateStatus(ctx, tx.DB(), a.ID, exitrequest.AssignmentInProgress, &exit.ID, now); err != nil {
		return storeErr(err, nil)
	}
	return nil
}

// expire moves a late request to EXPIRED and hands the assignment back to SCHEDULED.
func (uc *exitRequestCommandsImpl) expire(ctx context.Context, tx shared.Tx, a *exitrequest.Assignment, r *exitrequest.Request, actorID *uuid.UUID, origin audit.Origin, now time.Time, log *auditLog) error {
	if err := expireRequest(ctx, tx, a, r, now); err != nil {
		return err
	}
	requestID := r.ID()
	deadline := r.Deadline()
	log.add(audit.ActionRequestExpired, actorID, a.ID, &requestID, nil, audit.OutcomeDetail{
		Status:   r.Status().String(),
		Deadline: &deadline,
	}, origin, now)
	return nil
}

// expireRequest only reverts an assignment that is still waiting on this request.
func expireRequest(ctx context.Context, tx shared.Tx, a *exitrequest.Assignment, r *exitrequest.Request, now time.Time) error {
	if err := r.Expire(now); err != nil {
		return err
	}
	if err := tx.ExitRequests().SaveOutcome(ctx, tx.DB(), r); err != nil {
		return storeErr(err, nil)
	}
	if a.Status != exitrequest.AssignmentAwaitingAuth {
		return nil
	}
	if err := tx.Assignments().UpdateStatus(ctx, tx.DB(), a.ID, exitrequest.AssignmentScheduled, nil, now); err != nil {
		return storeErr(err, nil)
	}
	a.Status = exitrequest.AssignmentScheduled
	return nil
}
