package queries

import (
	"context"
	"time"

	"fieldsync/internal/domain/exitrequest"
	"fieldsync/internal/infra"
	"fieldsync/internal/pkg/clock"
	"fieldsync/internal/pkg/errs"

	"github.com/google/uuid"
)

const exitRequestListLimit = 100

var ErrExitRequestNotFound = errs.NotFound("exit request not found")

type ExitRequestView struct {
	ID             uuid.UUID  `json:"id"`
	AssignmentID   uuid.UUID  `json:"assignment_id"`
	RequestedBy    uuid.UUID  `json:"requested_by"`
	Odometer       float64    `json:"odometer"`
	Fuel           float64    `json:"fuel"`
	FuelFraction   *string    `json:"fuel_fraction,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	Status         string     `json:"status"`
	Deadline       time.Time  `json:"deadline"`
	ExitID         *uuid.UUID `json:"exit_id,omitempty"`
	ManualOverride bool       `json:"manual_override"`
	ApprovedBy     *uuid.UUID `json:"approved_by,omitempty"`
	ApprovalType   *string    `json:"approval_type,omitempty"`
	OverrideReason *string    `json:"override_reason,omitempty"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type VoteView struct {
	UserID    uuid.UUID `json:"user_id"`
	Approve   bool      `json:"approve"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type CrewMemberView struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}

type ExitRequestDetail struct {
	Request       *ExitRequestView  `json:"request"`
	Votes         []*VoteView       `json:"votes"`
	Roster        []*CrewMemberView `json:"roster"`
	PendingVoters []uuid.UUID       `json:"pending_voters"`
}

// MemberPendingView is the live request awaiting a crew member, with that member's vote if cast.
type MemberPendingView struct {
	Request      *ExitRequestView `json:"request"`
	MyVote       *VoteView        `json:"my_vote,omitempty"`
	MissingVotes int              `json:"missing_votes"`
}

type ExitRequestFilters struct {
	Status       string
	AssignmentID *uuid.UUID
}

type ExitRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ExitRequestView, error)
	List(ctx context.Context, status *string, assignmentID *uuid.UUID, limit int32) ([]*ExitRequestView, error)
	FindPendingForMember(ctx context.Context, userID uuid.UUID, now time.Time) (*ExitRequestView, error)
	ListVotes(ctx context.Context, requestID uuid.UUID) ([]*VoteView, error)
	ListRoster(ctx context.Context, assignmentID uuid.UUID) ([]*CrewMemberView, error)
}

type ExitRequestQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ExitRequestDetail, error)
	List(ctx context.Context, filters ExitRequestFilters) ([]*ExitRequestView, error)
	// PendingForMember returns nil when the member has no live request.
	PendingForMember(ctx context.Context, userID uuid.UUID) (*MemberPendingView, error)
}

type exitRequestQueriesImpl struct {
	store ExitRequestReadStore
	clock clock.Clock
}

func NewExitRequestQueries(store ExitRequestReadStore, clk clock.Clock) ExitRequestQueries {
	return &exitRequestQueriesImpl{store: store, clock: clk}
}

func (q *exitRequestQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ExitRequestDetail, error) {
	req, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, ErrExitRequestNotFound)
	}
	votes, err := q.store.ListVotes(ctx, id)
	if err != nil {
		return nil, errs.Transient(err)
	}
	roster, err := q.store.ListRoster(ctx, req.AssignmentID)
	if err != nil {
		return nil, errs.Transient(err)
	}

	return &ExitRequestDetail{
		Request:       req,
		Votes:         votes,
		Roster:        roster,
		PendingVoters: pendingVoters(roster, votes),
	}, nil
}

func (q *exitRequestQueriesImpl) List(ctx context.Context, filters ExitRequestFilters) ([]*ExitRequestView, error) {
	var status *string
	if filters.Status != "" {
		st, err := exitrequest.ParseStatus(filters.Status)
		if err != nil {
			return nil, err
		}
		s := st.String()
		status = &s
	}

	rows, err := q.store.List(ctx, status, filters.AssignmentID, exitRequestListLimit)
	if err != nil {
		return nil, errs.Transient(err)
	}
	return rows, nil
}

func (q *exitRequestQueriesImpl) PendingForMember(ctx context.Context, userID uuid.UUID) (*MemberPendingView, error) {
	req, err := q.store.FindPendingForMember(ctx, userID, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Transient(err)
	}

	votes, err := q.store.ListVotes(ctx, req.ID)
	if err != nil {
		return nil, errs.Transient(err)
	}
	roster, err := q.store.ListRoster(ctx, req.AssignmentID)
	if err != nil {
		return nil, errs.Transient(err)
	}

	view := &MemberPendingView{
		Request:      req,
		MissingVotes: len(pendingVoters(roster, votes)),
	}
	for _, v := range votes {
		if v.UserID == userID {
			view.MyVote = v
			break
		}
	}
	return view, nil
}

func pendingVoters(roster []*CrewMemberView, votes []*VoteView) []uuid.UUID {
	voted := make(map[uuid.UUID]struct{}, len(votes))
	for _, v := range votes {
		voted[v.UserID] = struct{}{}
	}
	pending := make([]uuid.UUID, 0, len(roster))
	for _, m := range roster {
		if _, ok := voted[m.UserID]; !ok {
			pending = append(pending, m.UserID)
		}
	}
	return pending
}
