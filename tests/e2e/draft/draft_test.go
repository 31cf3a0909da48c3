//go:build e2e

package draft_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"fieldsync/internal/domain/evidence"
	"fieldsync/internal/domain/user"
	"fieldsync/internal/handler/dto/request"
	"fieldsync/internal/handler/dto/response"
	"fieldsync/tests/common/dbtest"
	"fieldsync/tests/common/httptest"
	"fieldsync/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	draftURL    = "/api/drafts/%s"
	evidenceURL = "/api/drafts/%s/evidence"
	finalizeURL = "/api/drafts/%s/finalize"
	pendingURL  = "/api/drafts/pending"
)

type DraftSuite struct {
	e2e.SharedSuite
}

func TestDraftSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DraftSuite))
}

func patrolPayload(code string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"code":%q,"km":42.5,"direction":"NORTH","description":"routine patrol"}`, code))
}

func (s *DraftSuite) upsert(t *testing.T, token string, clientID uuid.UUID, kind string, payload json.RawMessage) {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(draftURL, kind),
		request.UpsertDraftRequest{ClientID: clientID, Payload: payload}, token)
	require.Contains(t, []int{http.StatusCreated, http.StatusOK}, w.Code, w.Body.String())
}

func (s *DraftSuite) attach(t *testing.T, token string, clientID uuid.UUID, kind, ref string) int {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(evidenceURL, clientID),
		request.AttachEvidenceRequest{Kind: kind, StorageRef: ref}, token)
	return w.Code
}

// =============================================================================
// TestFinalize - draft to situation record
// =============================================================================

func (s *DraftSuite) TestFinalize() {
	s.Run("Normal case: finalize materializes once and replays by key", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "patrol01", string(user.RoleCrew))
		token := s.Tokens.GenerateToken(t, ownerID, user.RoleCrew)
		clientID := uuid.New()
		s.upsert(t, token, clientID, "PATROL", patrolPayload("PAT-0001"))

		key := uuid.NewString()
		w1 := httptest.PerformRetry(t, s.Router, http.MethodPost, fmt.Sprintf(finalizeURL, clientID), nil, token, key)
		require.Equal(t, http.StatusOK, w1.Code, w1.Body.String())
		httptest.AssertReplayed(t, w1, false)
		var first response.FinalizeResponse
		require.NoError(t, json.Unmarshal(w1.Body.Bytes(), &first))
		require.False(t, first.Replayed)

		w2 := httptest.PerformRetry(t, s.Router, http.MethodPost, fmt.Sprintf(finalizeURL, clientID), nil, token, key)
		require.Equal(t, http.StatusOK, w2.Code)
		httptest.AssertReplayed(t, w2, true)
		require.JSONEq(t, w1.Body.String(), w2.Body.String())

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "situations", "client_id = $1", clientID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "situation_details", "situation_id = $1", first.PrimaryID))
	})

	s.Run("Normal case: a fresh key on a synchronized draft returns the same record", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "patrol02", string(user.RoleCrew))
		token := s.Tokens.GenerateToken(t, ownerID, user.RoleCrew)
		clientID := uuid.New()
		s.upsert(t, token, clientID, "PATROL", patrolPayload("PAT-0002"))

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(finalizeURL, clientID), nil, token)
		require.Equal(t, http.StatusOK, w1.Code, w1.Body.String())
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(finalizeURL, clientID), nil, token)
		require.Equal(t, http.StatusOK, w2.Code)

		var first, second response.FinalizeResponse
		require.NoError(t, json.Unmarshal(w1.Body.Bytes(), &first))
		require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &second))
		require.True(t, second.Replayed)
		require.Equal(t, first.PrimaryID, second.PrimaryID)
		require.Equal(t, first.DetailID, second.DetailID)
	})

	s.Run("Error case: invalid payload leaves the draft in ERROR", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "patrol03", string(user.RoleCrew))
		token := s.Tokens.GenerateToken(t, ownerID, user.RoleCrew)
		clientID := uuid.New()
		s.upsert(t, token, clientID, "TRAFFIC_INCIDENT", json.RawMessage(`{"km":3}`))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(finalizeURL, clientID), nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(draftURL, clientID), nil, token)
		require.Equal(t, http.StatusOK, gw.Code)
		var d response.DraftResponse
		require.NoError(t, json.Unmarshal(gw.Body.Bytes(), &d))
		require.Equal(t, "ERROR", d.Status)
		require.NotNil(t, d.ErrorDetail)
		require.Equal(t, int32(1), d.Attempts)
	})

	s.Run("Error case: another user's draft is not found", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "patrol04", string(user.RoleCrew))
		otherID := dbtest.CreateTestUser(t, s.DB, "patrol05", string(user.RoleCrew))
		clientID := uuid.New()
		s.upsert(t, s.Tokens.GenerateToken(t, ownerID, user.RoleCrew), clientID, "PATROL", patrolPayload("PAT-0004"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(finalizeURL, clientID), nil,
			s.Tokens.GenerateToken(t, otherID, user.RoleCrew))
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Auth test - Unauthorized without a token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(finalizeURL, uuid.New()), nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestEvidence - capacity and completeness
// =============================================================================

func (s *DraftSuite) TestEvidence() {
	s.Run("Normal case: three images and one video complete the draft", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "patrol10", string(user.RoleCrew))
		token := s.Tokens.GenerateToken(t, ownerID, user.RoleCrew)
		clientID := uuid.New()
		s.upsert(t, token, clientID, "PATROL", patrolPayload("PAT-0010"))

		for i := 1; i <= evidence.MaxImages; i++ {
			require.Equal(t, http.StatusCreated, s.attach(t, token, clientID, "IMAGE", fmt.Sprintf("s3://bucket/%s/%d.jpg", clientID, i)))
		}
		require.Equal(t, http.StatusCreated, s.attach(t, token, clientID, "VIDEO", fmt.Sprintf("s3://bucket/%s/clip.mp4", clientID)))

		require.Equal(t, http.StatusConflict, s.attach(t, token, clientID, "IMAGE", fmt.Sprintf("s3://bucket/%s/4.jpg", clientID)))
		require.Equal(t, http.StatusConflict, s.attach(t, token, clientID, "VIDEO", fmt.Sprintf("s3://bucket/%s/clip2.mp4", clientID)))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Drafts []response.PendingDraftResponse `json:"drafts"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Drafts, 1)
		want := evidence.Tally{Fotos: 3, Videos: 1, Completa: true}
		if diff := cmp.Diff(want, body.Drafts[0].Completeness); diff != "" {
			t.Errorf("completeness mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: the same storage reference refreshes the item", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "patrol11", string(user.RoleCrew))
		token := s.Tokens.GenerateToken(t, ownerID, user.RoleCrew)
		clientID := uuid.New()
		s.upsert(t, token, clientID, "PATROL", patrolPayload("PAT-0011"))

		ref := fmt.Sprintf("s3://bucket/%s/1.jpg", clientID)
		require.Equal(t, http.StatusCreated, s.attach(t, token, clientID, "IMAGE", ref))
		require.Equal(t, http.StatusOK, s.attach(t, token, clientID, "IMAGE", ref))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "evidence_items", "draft_client_id = $1", clientID))
	})
}
