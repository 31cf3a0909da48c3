//go:build e2e

package exitrequest_test

import (
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"fieldsync/internal/domain/user"
	"fieldsync/internal/handler/dto/request"
	"fieldsync/internal/handler/dto/response"
	"fieldsync/internal/pkg/ptr"
	"fieldsync/tests/common/dbtest"
	"fieldsync/tests/common/httptest"
	"fieldsync/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	exitRequestsURL = "/api/exit-requests"
	pendingURL      = "/api/exit-requests/pending"
)

type ExitRequestSuite struct {
	e2e.SharedSuite
}

func TestExitRequestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ExitRequestSuite))
}

type crew struct {
	assignmentID uuid.UUID
	driver       uuid.UUID
	commander    uuid.UUID
	driverTok    string
	commanderTok string
}

func (s *ExitRequestSuite) newCrew(t *testing.T, prefix string) crew {
	t.Helper()
	driver := dbtest.CreateTestUser(t, s.DB, prefix+"driver", string(user.RoleCrew))
	commander := dbtest.CreateTestUser(t, s.DB, prefix+"commander", string(user.RoleCrew))
	assignmentID := dbtest.CreateTestAssignment(t, s.DB,
		dbtest.CrewMember{UserID: driver, Role: "DRIVER"},
		dbtest.CrewMember{UserID: commander, Role: "COMMANDER"},
	)
	return crew{
		assignmentID: assignmentID,
		driver:       driver,
		commander:    commander,
		driverTok:    s.Tokens.GenerateCrewToken(t, driver, user.RoleCrew, &assignmentID),
		commanderTok: s.Tokens.GenerateCrewToken(t, commander, user.RoleCrew, &assignmentID),
	}
}

func (s *ExitRequestSuite) open(t *testing.T, token string) response.CreateExitRequestResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, exitRequestsURL, request.CreateExitRequestRequest{
		Odometer:     ptr.To(120345.5),
		Fuel:         ptr.To(0.75),
		FuelFraction: ptr.To("3/4"),
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var res response.CreateExitRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func (s *ExitRequestSuite) vote(t *testing.T, token string, id uuid.UUID, approve bool) *nethttptest.ResponseRecorder {
	t.Helper()
	return httptest.PerformRequest(t, s.Router, http.MethodPost, exitRequestsURL+"/"+id.String()+"/vote",
		request.VoteRequest{Approve: &approve}, token)
}

// =============================================================================
// TestConsensus - crew votes drive the request
// =============================================================================

func (s *ExitRequestSuite) TestConsensus() {
	s.Run("Normal case: unanimous approval opens the exit", func() {
		t := s.T()
		c := s.newCrew(t, "a")

		created := s.open(t, c.driverTok)
		require.Equal(t, "PENDING_AUTH", created.Status)
		require.Equal(t, []uuid.UUID{c.commander}, created.PendingVoters)
		require.Equal(t, "AWAITING_AUTH", dbtest.AssignmentStatus(t, s.DB, c.assignmentID))

		// the commander sees the request waiting on them
		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, c.commanderTok)
		require.Equal(t, http.StatusOK, pw.Code, pw.Body.String())
		var pending response.MemberPendingResponse
		require.NoError(t, json.Unmarshal(pw.Body.Bytes(), &pending))
		require.Equal(t, created.RequestID, pending.Request.ID)
		require.Nil(t, pending.MyVote)
		require.Equal(t, 1, pending.MissingVotes)

		res := s.vote(t, c.commanderTok, created.RequestID, true)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())
		var voted response.VoteResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &voted))
		require.Equal(t, "APPROVED", voted.Status)
		require.True(t, voted.AllApproved)

		require.Equal(t, "IN_PROGRESS", dbtest.AssignmentStatus(t, s.DB, c.assignmentID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "exits", "assignment_id = $1", c.assignmentID))
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "exit_crew", ""))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "audit_entries", "assignment_id = $1 AND action = 'EXIT_APPROVED'", c.assignmentID))

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, exitRequestsURL+"/"+created.RequestID.String(), nil, c.driverTok)
		require.Equal(t, http.StatusOK, gw.Code)
		var detail response.ExitRequestDetailResponse
		require.NoError(t, json.Unmarshal(gw.Body.Bytes(), &detail))
		want := response.ExitRequestResponse{
			AssignmentID:   c.assignmentID,
			RequestedBy:    c.driver,
			Odometer:       120345.5,
			Fuel:           0.75,
			FuelFraction:   ptr.To("3/4"),
			Status:         "APPROVED",
			ManualOverride: false,
			ApprovalType:   ptr.To("CREW_CONSENSUS"),
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ExitRequestResponse{}, "ID", "Deadline", "ExitID", "ApprovedBy", "ResolvedAt", "CreatedAt"),
		}
		if diff := cmp.Diff(want, detail.Request, opts...); diff != "" {
			t.Errorf("exit request mismatch (-want +got):\n%s", diff)
		}
		require.NotNil(t, detail.Request.ExitID)
		require.Len(t, detail.Votes, 2)
		require.Empty(t, detail.PendingVoters)
	})

	s.Run("Normal case: a single rejection rejects the request", func() {
		t := s.T()
		c := s.newCrew(t, "b")
		created := s.open(t, c.driverTok)

		res := s.vote(t, c.commanderTok, created.RequestID, false)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())
		var voted response.VoteResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &voted))
		require.Equal(t, "REJECTED", voted.Status)

		require.Equal(t, "SCHEDULED", dbtest.AssignmentStatus(t, s.DB, c.assignmentID))
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "exits", "assignment_id = $1", c.assignmentID))
	})

	s.Run("Error case: second vote by the same member conflicts", func() {
		t := s.T()
		c := s.newCrew(t, "c")
		created := s.open(t, c.driverTok)

		res := s.vote(t, c.driverTok, created.RequestID, true)
		require.Equal(t, http.StatusConflict, res.Code, res.Body.String())
	})

	s.Run("Error case: a live request blocks a second one", func() {
		t := s.T()
		c := s.newCrew(t, "d")
		s.open(t, c.driverTok)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, exitRequestsURL, request.CreateExitRequestRequest{
			Odometer: ptr.To(1.0),
			Fuel:     ptr.To(1.0),
		}, c.commanderTok)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: outsider sees the assignment as missing", func() {
		t := s.T()
		c := s.newCrew(t, "e")
		outsider := dbtest.CreateTestUser(t, s.DB, "eoutsider", string(user.RoleCrew))
		token := s.Tokens.GenerateCrewToken(t, outsider, user.RoleCrew, &c.assignmentID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, exitRequestsURL, request.CreateExitRequestRequest{
			Odometer: ptr.To(1.0),
			Fuel:     ptr.To(1.0),
		}, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestOverride - supervisor authority
// =============================================================================

func (s *ExitRequestSuite) TestOverride() {
	s.Run("Normal case: dispatcher approves without consensus", func() {
		t := s.T()
		c := s.newCrew(t, "o")
		created := s.open(t, c.driverTok)
		token := s.Tokens.GenerateToken(t, dbtest.DispatcherID, user.RoleDispatcher)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, exitRequestsURL+"/"+created.RequestID.String()+"/override",
			request.OverrideRequest{Reason: "commander confirmed by radio"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var detail response.ExitRequestDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		require.Equal(t, "APPROVED", detail.Request.Status)
		require.True(t, detail.Request.ManualOverride)
		require.Equal(t, ptr.To("SUPERVISOR_OVERRIDE"), detail.Request.ApprovalType)
		require.Equal(t, "IN_PROGRESS", dbtest.AssignmentStatus(t, s.DB, c.assignmentID))
	})

	s.Run("Error case: crew may not override", func() {
		t := s.T()
		c := s.newCrew(t, "p")
		created := s.open(t, c.driverTok)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, exitRequestsURL+"/"+created.RequestID.String()+"/override",
			request.OverrideRequest{Reason: "we agree"}, c.driverTok)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: a decided request cannot be overridden", func() {
		t := s.T()
		c := s.newCrew(t, "q")
		created := s.open(t, c.driverTok)
		res := s.vote(t, c.commanderTok, created.RequestID, false)
		require.Equal(t, http.StatusOK, res.Code)

		token := s.Tokens.GenerateToken(t, dbtest.DispatcherID, user.RoleDispatcher)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, exitRequestsURL+"/"+created.RequestID.String()+"/override",
			request.OverrideRequest{Reason: "late"}, token)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}
