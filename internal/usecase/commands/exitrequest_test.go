//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fieldsync/internal/domain/audit"
	"fieldsync/internal/domain/exitrequest"
	"fieldsync/internal/domain/user"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/pkg/errs"
	"fieldsync/internal/usecase/commands"
	"fieldsync/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const authWindow = 30 * time.Minute

type ExitRequestCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	h    *harness
	uc   commands.ExitRequestCommands
	ctx  context.Context
}

func (s *ExitRequestCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = newHarness(s.ctrl)
	s.uc = commands.NewExitRequestCommands(s.h.uow, s.h.clock, authWindow)
	s.ctx = context.Background()
}

func (s *ExitRequestCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestExitRequestCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ExitRequestCommandsTestSuite))
}

func (s *ExitRequestCommandsTestSuite) expectNoPending(assignmentID uuid.UUID) {
	s.h.exits.EXPECT().FindPendingByAssignmentForUpdate(gomock.Any(), gomock.Any(), assignmentID).Return(nil, errNotFound)
}

// =============================================================================
// Create
// =============================================================================

func (s *ExitRequestCommandsTestSuite) TestCreate_OpensRequestAndWaitsForCrew() {
	ab := builder.NewAssignmentBuilder()
	a := ab.Build()
	requester := ab.Member(0)

	s.h.assignments.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), a.ID).Return(a, nil)
	s.expectNoPending(a.ID)
	var created *exitrequest.Request
	s.h.exits.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, r *exitrequest.Request) error {
			created = r
			return nil
		})
	s.h.exits.EXPECT().AddVote(gomock.Any(), gomock.Any(), gomock.Any(), exitrequest.Vote{UserID: requester, Approve: true}, fixedNow).Return(nil)
	s.h.assignments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), a.ID, exitrequest.AssignmentAwaitingAuth, nil, fixedNow).Return(nil)

	res, err := s.uc.Create(s.ctx, commands.CreateExitRequestInput{
		AssignmentID: &a.ID,
		Reading:      exitrequest.Reading{Odometer: 1000, Fuel: 0.5},
	}, callerFor(requester, user.RoleCrew))

	s.Require().NoError(err)
	s.Equal(created.ID(), res.RequestID)
	s.Equal(exitrequest.StatusPendingAuth, res.Status)
	s.Equal(fixedNow.Add(authWindow), res.Deadline)
	s.Equal([]uuid.UUID{ab.Member(1)}, res.PendingVoters)
	s.Equal([]audit.Action{audit.ActionRequestOpened}, s.h.actions())
}

func (s *ExitRequestCommandsTestSuite) TestCreate_SoleMemberIsApprovedAtOnce() {
	requester := uuid.New()
	a := builder.NewAssignmentBuilder().WithCrew(requester).Build()

	s.h.assignments.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), a.ID).Return(a, nil)
	s.expectNoPending(a.ID)
	s.h.exits.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.h.exits.EXPECT().AddVote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), fixedNow).Return(nil)
	s.h.exits.EXPECT().CreateExit(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, e *exitrequest.Exit) error {
			s.Equal(a.ID, e.AssignmentID)
			s.Len(e.Crew, 1)
			return nil
		})
	s.h.exits.EXPECT().SaveOutcome(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, r *exitrequest.Request) error {
			s.Equal(exitrequest.StatusApproved, r.Status())
			s.Require().NotNil(r.ApprovalType())
			s.Equal(exitrequest.ApprovalCrewConsensus, *r.ApprovalType())
			return nil
		})
	s.h.assignments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), a.ID, exitrequest.AssignmentInProgress, gomock.Not(gomock.Nil()), fixedNow).Return(nil)

	res, err := s.uc.Create(s.ctx, commands.CreateExitRequestInput{
		AssignmentID: &a.ID,
		Reading:      exitrequest.Reading{Odometer: 1000, Fuel: 0.5},
	}, callerFor(requester, user.RoleCrew))

	s.Require().NoError(err)
	s.Equal(exitrequest.StatusApproved, res.Status)
	s.Empty(res.PendingVoters)
	s.Equal([]audit.Action{audit.ActionRequestOpened, audit.ActionExitApproved}, s.h.actions())
}

func (s *ExitRequestCommandsTestSuite) TestCreate_FallsBackToTokenAssignment() {
	ab := builder.NewAssignmentBuilder()
	a := ab.Build()
	caller := callerFor(ab.Member(0), user.RoleCrew)
	caller.AssignmentID = &a.ID

	s.h.assignments.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), a.ID).Return(a, nil)
	s.expectNoPending(a.ID)
	s.h.exits.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.h.exits.EXPECT().AddVote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.h.assignments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), a.ID, exitrequest.AssignmentAwaitingAuth, nil, fixedNow).Return(nil)

	_, err := s.uc.Create(s.ctx, commands.CreateExitRequestInput{
		Reading: exitrequest.Reading{Odometer: 10, Fuel: 1},
	}, caller)
	s.NoError(err)
}

func (s *ExitRequestCommandsTestSuite) TestCreate_RequiresAssignment() {
	_, err := s.uc.Create(s.ctx, commands.CreateExitRequestInput{}, callerFor(uuid.New(), user.RoleCrew))
	s.ErrorIs(err, commands.ErrAssignmentRequired)
	s.True(errs.Is(err, errs.ErrValidation))
}

func (s *ExitRequestCommandsTestSuite) TestCreate_CallerOutsideCrew() {
	a := builder.NewAssignmentBuilder().Build()
	s.h.assignments.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), a.ID).Return(a, nil)

	_, err := s.uc.Create(s.ctx, commands.CreateExitRequestInput{AssignmentID: &a.ID}, callerFor(uuid.New(), user.RoleCrew))
	s.ErrorIs(err, exitrequest.ErrNotOnCrew)
	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *ExitRequestCommandsTestSuite) TestCreate_UnknownAssignment() {
	id := uuid.New()
	s.h.assignments.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, errNotFound)

	_, err := s.uc.Create(s.ctx, commands.CreateExitRequestInput{AssignmentID: &id}, callerFor(uuid.New(), user.RoleCrew))
	s.ErrorIs(err, exitrequest.ErrNotOnCrew)
}

func (s *ExitRequestCommandsTestSuite) TestCreate_LivePendingRequestBlocks() {
	ab := builder.NewAssignmentBuilder().WithStatus(exitrequest.AssignmentAwaitingAuth)
	a := ab.Build()
	pending := builder.NewExitRequestBuilder().For(ab).WithDeadline(fixedNow.Add(10 * time.Minute)).BuildDomain()

	s.h.assignments.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), a.ID).Return(a, nil)
	s.h.exits.EXPECT().FindPendingByAssignmentForUpdate(gomock.Any(), gomock.Any(), a.ID).Return(pending, nil)

	_, err := s.uc.Create(s.ctx, commands.CreateExitRequestInput{AssignmentID: &a.ID}, callerFor(ab.Member(1), user.RoleCrew))

	s.ErrorIs(err, exitrequest.ErrPendingExists)
	ref, ok := errs.ResourceOf(err)
	s.Require().True(ok)
	s.Equal(errs.ResourceRef{Kind: "exit_request", ID: pending.ID().String()}, ref)
}

func (s *ExitRequestCommandsTestSuite) TestCreate_StalePendingRequestIsExpiredFirst() {
	ab := builder.NewAssignmentBuilder().WithStatus(exitrequest.AssignmentAwaitingAuth)
	a := ab.Build()
	stale := builder.NewExitRequestBuilder().For(ab).WithDeadline(fixedNow.Add(-time.Minute)).BuildDomain()

	s.h.assignments.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), a.ID).Return(a, nil)
	s.h.exits.EXPECT().FindPendingByAssignmentForUpdate(gomock.Any(), gomock.Any(), a.ID).Return(stale, nil)
	gomock.InOrder(
		s.h.exits.EXPECT().SaveOutcome(gomock.Any(), gomock.Any(), stale).Return(nil),
		s.h.assignments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), a.ID, exitrequest.AssignmentScheduled, nil, fixedNow).Return(nil),
		s.h.exits.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)
	s.h.exits.EXPECT().AddVote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.h.assignments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), a.ID, exitrequest.AssignmentAwaitingAuth, nil, fixedNow).Return(nil)

	res, err := s.uc.Create(s.ctx, commands.CreateExitRequestInput{AssignmentID: &a.ID}, callerFor(ab.Member(1), user.RoleCrew))

	s.Require().NoError(err)
	s.Equal(exitrequest.StatusExpired, stale.Status())
	s.NotEqual(stale.ID(), res.RequestID)
	s.Equal([]audit.Action{audit.ActionRequestExpired, audit.ActionRequestOpened}, s.h.actions())
}

func (s *ExitRequestCommandsTestSuite) TestCreate_AssignmentAlreadyUnderway() {
	ab := builder.NewAssignmentBuilder().WithStatus(exitrequest.AssignmentInProgress)
	a := ab.Build()
	s.h.assignments.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), a.ID).Return(a, nil)
	s.expectNoPending(a.ID)

	_, err := s.uc.Create(s.ctx, commands.CreateExitRequestInput{AssignmentID: &a.ID}, callerFor(ab.Member(0), user.RoleCrew))

	s.ErrorIs(err, exitrequest.ErrAssignmentNotReady)
	s.True(errs.Is(err, errs.ErrConflict))
}

func (s *ExitRequestCommandsTestSuite) TestCreate_StoreFailureIsTransient() {
	id := uuid.New()
	s.h.assignments.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, errDBDown)

	_, err := s.uc.Create(s.ctx, commands.CreateExitRequestInput{AssignmentID: &id}, callerFor(uuid.New(), user.RoleCrew))
	s.True(errs.Is(err, errs.ErrTransientStore))
	s.Empty(s.h.actions())
}

// =============================================================================
// Vote
// =============================================================================

func (s *ExitRequestCommandsTestSuite) voteFixture() (*builder.AssignmentBuilder, *exitrequest.Assignment, *exitrequest.Request) {
	ab := builder.NewAssignmentBuilder().WithStatus(exitrequest.AssignmentAwaitingAuth)
	a := ab.Build()
	r := builder.NewExitRequestBuilder().For(ab).WithDeadline(fixedNow.Add(15 * time.Minute)).BuildDomain()
	s.expectLocks(a, r)
	return ab, a, r
}

// expectLocks expects the unlocked read, then the assignment lock, then the request lock.
func (s *ExitRequestCommandsTestSuite) expectLocks(a *exitrequest.Assignment, r *exitrequest.Request) {
	gomock.InOrder(
		s.h.exits.EXPECT().Find(gomock.Any(), gomock.Any(), r.ID()).Return(r, nil),
		s.h.assignments.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), a.ID).Return(a, nil),
		s.h.exits.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.ID()).Return(r, nil),
	)
}

func (s *ExitRequestCommandsTestSuite) TestVote_LockedRequestIsReloaded() {
	ab := builder.NewAssignmentBuilder().WithStatus(exitrequest.AssignmentAwaitingAuth)
	a := ab.Build()
	stale := builder.NewExitRequestBuilder().For(ab).WithDeadline(fixedNow.Add(time.Minute)).BuildDomain()
	decided := builder.NewExitRequestBuilder().For(ab).WithStatus(exitrequest.StatusRejected).BuildDomain()

	var order []string
	s.h.exits.EXPECT().Find(gomock.Any(), gomock.Any(), stale.ID()).DoAndReturn(
		func(context.Context, sqlc.DBTX, uuid.UUID) (*exitrequest.Request, error) {
			order = append(order, "read request")
			return stale, nil
		})
	s.h.assignments.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), a.ID).DoAndReturn(
		func(context.Context, sqlc.DBTX, uuid.UUID) (*exitrequest.Assignment, error) {
			order = append(order, "lock assignment")
			return a, nil
		})
	s.h.exits.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), stale.ID()).DoAndReturn(
		func(context.Context, sqlc.DBTX, uuid.UUID) (*exitrequest.Request, error) {
			order = append(order, "lock request")
			return decided, nil
		})

	_, err := s.uc.Vote(s.ctx, commands.VoteInput{RequestID: stale.ID(), Approve: true}, callerFor(ab.Member(1), user.RoleCrew))

	s.ErrorIs(err, exitrequest.ErrNotPending)
	s.Equal([]string{"read request", "lock assignment", "lock request"}, order)
}

func (s *ExitRequestCommandsTestSuite) TestVote_LastApprovalApprovesRequest() {
	ab, a, r := s.voteFixture()
	voter := ab.Member(1)
	consent := []exitrequest.Vote{{UserID: ab.Member(0), Approve: true}}

	s.h.exits.EXPECT().Votes(gomock.Any(), gomock.Any(), r.ID()).Return(consent, nil)
	s.h.exits.EXPECT().AddVote(gomock.Any(), gomock.Any(), r.ID(), exitrequest.Vote{UserID: voter, Approve: true, Notes: "ok"}, fixedNow).Return(nil)
	s.h.exits.EXPECT().CreateExit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.h.exits.EXPECT().SaveOutcome(gomock.Any(), gomock.Any(), r).Return(nil)
	s.h.assignments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), a.ID, exitrequest.AssignmentInProgress, gomock.Not(gomock.Nil()), fixedNow).Return(nil)

	res, err := s.uc.Vote(s.ctx, commands.VoteInput{RequestID: r.ID(), Approve: true, Notes: "ok"}, callerFor(voter, user.RoleCrew))

	s.Require().NoError(err)
	s.True(res.AllApproved)
	s.Equal(exitrequest.StatusApproved, res.Status)
	s.Empty(res.PendingVoters)
	s.NotNil(r.ExitID())
	s.Equal([]audit.Action{audit.ActionVoteApproved, audit.ActionExitApproved}, s.h.actions())
}

func (s *ExitRequestCommandsTestSuite) TestVote_ApprovalWithVotersOutstanding() {
	requester, second, third := uuid.New(), uuid.New(), uuid.New()
	ab := builder.NewAssignmentBuilder().WithStatus(exitrequest.AssignmentAwaitingAuth).WithCrew(requester, second, third)
	a := ab.Build()
	r := builder.NewExitRequestBuilder().For(ab).WithDeadline(fixedNow.Add(time.Minute)).BuildDomain()

	s.expectLocks(a, r)
	s.h.exits.EXPECT().Votes(gomock.Any(), gomock.Any(), r.ID()).Return([]exitrequest.Vote{{UserID: requester, Approve: true}}, nil)
	s.h.exits.EXPECT().AddVote(gomock.Any(), gomock.Any(), r.ID(), gomock.Any(), fixedNow).Return(nil)

	res, err := s.uc.Vote(s.ctx, commands.VoteInput{RequestID: r.ID(), Approve: true}, callerFor(second, user.RoleCrew))

	s.Require().NoError(err)
	s.False(res.AllApproved)
	s.Equal(exitrequest.StatusPendingAuth, res.Status)
	s.Equal([]uuid.UUID{third}, res.PendingVoters)
	s.Equal([]audit.Action{audit.ActionVoteApproved}, s.h.actions())
}

func (s *ExitRequestCommandsTestSuite) TestVote_RejectionClosesRequest() {
	ab, a, r := s.voteFixture()
	s.h.exits.EXPECT().Votes(gomock.Any(), gomock.Any(), r.ID()).Return(nil, nil)
	s.h.exits.EXPECT().AddVote(gomock.Any(), gomock.Any(), r.ID(), gomock.Any(), fixedNow).Return(nil)
	s.h.exits.EXPECT().SaveOutcome(gomock.Any(), gomock.Any(), r).Return(nil)
	s.h.assignments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), a.ID, exitrequest.AssignmentScheduled, nil, fixedNow).Return(nil)

	res, err := s.uc.Vote(s.ctx, commands.VoteInput{RequestID: r.ID(), Approve: false, Notes: "tyre pressure"}, callerFor(ab.Member(1), user.RoleCrew))

	s.Require().NoError(err)
	s.Equal(exitrequest.StatusRejected, res.Status)
	s.False(res.AllApproved)
	s.Equal([]audit.Action{audit.ActionVoteRejected, audit.ActionRequestRejected}, s.h.actions())
}

func (s *ExitRequestCommandsTestSuite) TestVote_SecondVoteFromSameMember() {
	ab, _, r := s.voteFixture()
	voter := ab.Member(1)
	s.h.exits.EXPECT().Votes(gomock.Any(), gomock.Any(), r.ID()).Return([]exitrequest.Vote{{UserID: voter, Approve: true}}, nil)

	_, err := s.uc.Vote(s.ctx, commands.VoteInput{RequestID: r.ID(), Approve: false}, callerFor(voter, user.RoleCrew))

	s.ErrorIs(err, exitrequest.ErrAlreadyVoted)
	s.True(errs.Is(err, errs.ErrConflict))
	s.Empty(s.h.actions())
}

func (s *ExitRequestCommandsTestSuite) TestVote_ConcurrentDuplicateVote() {
	ab, _, r := s.voteFixture()
	s.h.exits.EXPECT().Votes(gomock.Any(), gomock.Any(), r.ID()).Return(nil, nil)
	s.h.exits.EXPECT().AddVote(gomock.Any(), gomock.Any(), r.ID(), gomock.Any(), fixedNow).Return(errDuplicate)

	_, err := s.uc.Vote(s.ctx, commands.VoteInput{RequestID: r.ID(), Approve: true}, callerFor(ab.Member(1), user.RoleCrew))
	s.ErrorIs(err, exitrequest.ErrAlreadyVoted)
}

func (s *ExitRequestCommandsTestSuite) TestVote_NonMember() {
	_, _, r := s.voteFixture()

	_, err := s.uc.Vote(s.ctx, commands.VoteInput{RequestID: r.ID(), Approve: true}, callerFor(uuid.New(), user.RoleCrew))
	s.ErrorIs(err, exitrequest.ErrNotOnCrew)
}

func (s *ExitRequestCommandsTestSuite) TestVote_AfterDeadlineExpiresAndFails() {
	ab := builder.NewAssignmentBuilder().WithStatus(exitrequest.AssignmentAwaitingAuth)
	a := ab.Build()
	r := builder.NewExitRequestBuilder().For(ab).WithDeadline(fixedNow).BuildDomain()

	s.expectLocks(a, r)
	s.h.exits.EXPECT().SaveOutcome(gomock.Any(), gomock.Any(), r).Return(nil)
	s.h.assignments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), a.ID, exitrequest.AssignmentScheduled, nil, fixedNow).Return(nil)

	res, err := s.uc.Vote(s.ctx, commands.VoteInput{RequestID: r.ID(), Approve: true}, callerFor(ab.Member(1), user.RoleCrew))

	s.Nil(res)
	s.ErrorIs(err, exitrequest.ErrDeadlinePassed)
	s.True(errs.Is(err, errs.ErrExpired))
	s.Equal(exitrequest.StatusExpired, r.Status())
	s.Equal([]audit.Action{audit.ActionRequestExpired}, s.h.actions())
}

func (s *ExitRequestCommandsTestSuite) TestVote_ClosedRequest() {
	ab := builder.NewAssignmentBuilder()
	r := builder.NewExitRequestBuilder().For(ab).WithStatus(exitrequest.StatusRejected).BuildDomain()
	s.expectLocks(ab.Build(), r)

	_, err := s.uc.Vote(s.ctx, commands.VoteInput{RequestID: r.ID(), Approve: true}, callerFor(uuid.New(), user.RoleCrew))
	s.ErrorIs(err, exitrequest.ErrNotPending)
}

func (s *ExitRequestCommandsTestSuite) TestVote_UnknownRequest() {
	id := uuid.New()
	s.h.exits.EXPECT().Find(gomock.Any(), gomock.Any(), id).Return(nil, errNotFound)

	_, err := s.uc.Vote(s.ctx, commands.VoteInput{RequestID: id, Approve: true}, callerFor(uuid.New(), user.RoleCrew))
	s.ErrorIs(err, exitrequest.ErrRequestNotFound)
}

// =============================================================================
// Override
// =============================================================================

func (s *ExitRequestCommandsTestSuite) TestOverride_CrewRoleIsForbidden() {
	err := s.uc.Override(s.ctx, commands.OverrideInput{RequestID: uuid.New(), Reason: "urgent"}, callerFor(uuid.New(), user.RoleCrew))
	s.ErrorIs(err, exitrequest.ErrOverrideNotPermitted)
	s.True(errs.Is(err, errs.ErrForbidden))
}

func (s *ExitRequestCommandsTestSuite) TestOverride_PendingRequest() {
	ab := builder.NewAssignmentBuilder().WithStatus(exitrequest.AssignmentAwaitingAuth)
	a := ab.Build()
	r := builder.NewExitRequestBuilder().For(ab).BuildDomain()
	supervisor := uuid.New()

	s.expectLocks(a, r)
	s.h.exits.EXPECT().CreateExit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.h.exits.EXPECT().SaveOutcome(gomock.Any(), gomock.Any(), r).Return(nil)
	s.h.assignments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), a.ID, exitrequest.AssignmentInProgress, gomock.Not(gomock.Nil()), fixedNow).Return(nil)

	err := s.uc.Override(s.ctx, commands.OverrideInput{RequestID: r.ID(), Reason: " commander unreachable "}, callerFor(supervisor, user.RoleDispatcher))

	s.Require().NoError(err)
	s.Equal(exitrequest.StatusApproved, r.Status())
	s.True(r.ManualOverride())
	s.Equal(&supervisor, r.ApprovedBy())
	s.Equal("commander unreachable", *r.OverrideReason())
	s.Equal([]audit.Action{audit.ActionExitOverridden}, s.h.actions())
}

func (s *ExitRequestCommandsTestSuite) TestOverride_ExpiredRequestWhileNewerIsLive() {
	ab := builder.NewAssignmentBuilder().WithStatus(exitrequest.AssignmentAwaitingAuth)
	a := ab.Build()
	expired := builder.NewExitRequestBuilder().For(ab).WithStatus(exitrequest.StatusExpired).WithDeadline(fixedNow.Add(-time.Hour)).BuildDomain()
	newer := builder.NewExitRequestBuilder().For(ab).WithDeadline(fixedNow.Add(time.Minute)).BuildDomain()

	s.expectLocks(a, expired)
	s.h.exits.EXPECT().FindPendingByAssignmentForUpdate(gomock.Any(), gomock.Any(), a.ID).Return(newer, nil)

	err := s.uc.Override(s.ctx, commands.OverrideInput{RequestID: expired.ID(), Reason: "late"}, callerFor(uuid.New(), user.RoleOperations))

	s.ErrorIs(err, exitrequest.ErrPendingExists)
	s.Equal(exitrequest.StatusExpired, expired.Status())
}

func (s *ExitRequestCommandsTestSuite) TestOverride_ExpiredRequestOnScheduledAssignment() {
	ab := builder.NewAssignmentBuilder()
	a := ab.Build()
	expired := builder.NewExitRequestBuilder().For(ab).WithStatus(exitrequest.StatusExpired).WithDeadline(fixedNow.Add(-time.Hour)).BuildDomain()

	s.expectLocks(a, expired)
	s.h.exits.EXPECT().FindPendingByAssignmentForUpdate(gomock.Any(), gomock.Any(), a.ID).Return(nil, errNotFound)
	s.h.exits.EXPECT().CreateExit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.h.exits.EXPECT().SaveOutcome(gomock.Any(), gomock.Any(), expired).Return(nil)
	s.h.assignments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), a.ID, exitrequest.AssignmentInProgress, gomock.Any(), fixedNow).Return(nil)

	err := s.uc.Override(s.ctx, commands.OverrideInput{RequestID: expired.ID(), Reason: "radio check passed"}, callerFor(uuid.New(), user.RoleAdmin))

	s.Require().NoError(err)
	s.Equal(exitrequest.StatusApproved, expired.Status())

	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	s.Require().Len(s.h.entries, 1)
	s.Contains(string(s.h.entries[0].Detail), `"priorStatus":"EXPIRED"`)
}

func (s *ExitRequestCommandsTestSuite) TestOverride_DecidedRequest() {
	ab := builder.NewAssignmentBuilder().WithStatus(exitrequest.AssignmentInProgress)
	r := builder.NewExitRequestBuilder().For(ab).WithStatus(exitrequest.StatusApproved).BuildDomain()
	s.expectLocks(ab.Build(), r)

	err := s.uc.Override(s.ctx, commands.OverrideInput{RequestID: r.ID(), Reason: "again"}, callerFor(uuid.New(), user.RoleDispatcher))
	s.ErrorIs(err, exitrequest.ErrAlreadyDecided)
}
