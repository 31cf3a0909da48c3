//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"fieldsync/internal/domain/draft"
	"fieldsync/internal/domain/evidence"
	"fieldsync/internal/domain/situation"
	"fieldsync/internal/domain/user"
	"fieldsync/internal/handler/api"
	"fieldsync/internal/pkg/errs"
	"fieldsync/internal/usecase/commands"
	"fieldsync/internal/usecase/queries"
	"fieldsync/tests/common/builder"
	"fieldsync/tests/common/httptest"
	"fieldsync/tests/common/testutil"
	commandsmock "fieldsync/tests/mock/commands"
	queriesmock "fieldsync/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DraftHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockDrafts   *commandsmock.MockDraftCommands
	mockEvidence *commandsmock.MockEvidenceCommands
	mockFinalize *commandsmock.MockFinalizeCommands
	mockQueries  *queriesmock.MockDraftQueries
	handler      *api.DraftHandler
	userID       uuid.UUID
}

func (s *DraftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDrafts = commandsmock.NewMockDraftCommands(s.mockCtrl)
	s.mockEvidence = commandsmock.NewMockEvidenceCommands(s.mockCtrl)
	s.mockFinalize = commandsmock.NewMockFinalizeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDraftQueries(s.mockCtrl)
	s.handler = api.NewDraftHandler(s.mockDrafts, s.mockEvidence, s.mockFinalize, s.mockQueries)
	s.userID = uuid.New()

	s.router.POST("/drafts/:id", fakeAuth(s.userID, user.RoleCrew, nil), s.handler.Upsert)
	s.router.GET("/drafts/pending", fakeAuth(s.userID, user.RoleCrew, nil), s.handler.ListPending)
	s.router.GET("/drafts/:id", fakeAuth(s.userID, user.RoleCrew, nil), s.handler.Get)
	s.router.POST("/drafts/:id/evidence", fakeAuth(s.userID, user.RoleCrew, nil), s.handler.AttachEvidence)
	s.router.POST("/drafts/:id/finalize", fakeAuth(s.userID, user.RoleCrew, nil), s.handler.Finalize)
}

func (s *DraftHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDraftHandlerSuite(t *testing.T) {
	suite.Run(t, new(DraftHandlerTestSuite))
}

// fakeAuth stands in for the JWT middleware. Requests without an Authorization header are rejected.
func fakeAuth(userID uuid.UUID, role user.Role, assignmentID *uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		if assignmentID != nil {
			c.Set("assignment_id", *assignmentID)
		}
		c.Next()
	}
}

type invalidBodyCase struct {
	name         string
	mutate       testutil.Mutation
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestUpsert
// ================================================================================

func (s *DraftHandlerTestSuite) TestUpsert() {
	url := "/drafts/traffic-incident"
	reqBody := builder.NewDraftBuilder().BuildUpsertRequestDTO()

	s.Run("success: 201 Created on first sight", func() {
		s.mockDrafts.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.UpsertDraftInput, caller commands.Caller) (*commands.UpsertDraftResult, error) {
				s.Equal("traffic-incident", in.Kind)
				s.Equal(reqBody.ClientID, in.ClientID)
				s.Equal(s.userID, caller.UserID)
				return &commands.UpsertDraftResult{ClientID: in.ClientID, Status: draft.StatusLocal, Created: true}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(reqBody.ClientID.String(), body["clientId"])
		s.Equal(string(draft.StatusLocal), body["status"])
	})

	s.Run("success: 200 OK when the payload is replaced", func() {
		s.mockDrafts.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.UpsertDraftResult{ClientID: reqBody.ClientID, Status: draft.StatusError}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []invalidBodyCase{
			{name: "missing field: clientId (required)", mutate: testutil.Field("clientId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: payload (required)", mutate: testutil.Field("payload", nil), expectCode: http.StatusBadRequest},
			{name: "malformed clientId", mutate: testutil.Field("clientId", "not-a-uuid"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.BodyMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: domain failures map onto status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "unknown kind", err: draft.ErrInvalidKind, expectCode: http.StatusBadRequest, expectMsg: "invalid draft kind"},
			{name: "synchronized draft", err: draft.ErrAlreadySynchronized, expectCode: http.StatusConflict, expectMsg: "already synchronized"},
			{name: "store outage", err: errs.Transient(errs.New("connection refused")), expectCode: http.StatusServiceUnavailable},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockDrafts.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *DraftHandlerTestSuite) TestGet() {
	clientID := uuid.New()
	url := "/drafts/" + clientID.String()

	s.Run("success: 200 OK with evidence and completeness", func() {
		ordinal := int32(1)
		view := &queries.DraftView{
			ClientID:  clientID,
			Kind:      string(draft.KindTrafficIncident),
			Payload:   []byte(`{"km":42.5}`),
			OwnerID:   s.userID,
			Status:    string(draft.StatusLocal),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Evidence: []*queries.EvidenceView{
				{ID: uuid.New(), Kind: string(evidence.KindImage), Ordinal: &ordinal, StorageRef: "s3://bucket/a.jpg", Status: "LOCAL", CreatedAt: time.Now()},
			},
			Completeness: evidence.Tally{Fotos: 1},
		}
		s.mockQueries.EXPECT().Get(gomock.Any(), clientID, s.userID, user.RoleCrew).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			ClientID     string `json:"clientId"`
			Evidence     []map[string]any
			Completeness evidence.Tally `json:"completeness"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(clientID.String(), body.ClientID)
		s.Len(body.Evidence, 1)
		s.Equal(1, body.Completeness.Fotos)
		s.False(body.Completeness.Completa)
	})

	s.Run("error: 404 Not Found for unknown or foreign draft", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), clientID, s.userID, user.RoleCrew).Return(nil, queries.ErrDraftNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "draft not found")
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestListPending
// ================================================================================

func (s *DraftHandlerTestSuite) TestListPending() {
	s.Run("success: 200 OK with the caller's pending drafts", func() {
		items := []*queries.PendingDraftItem{
			{ClientID: uuid.New(), Kind: string(draft.KindTrafficIncident), Status: string(draft.StatusError), Attempts: 2},
			{ClientID: uuid.New(), Kind: string(draft.KindTrafficIncident), Status: string(draft.StatusLocal)},
		}
		s.mockQueries.EXPECT().ListPending(gomock.Any(), s.userID).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/pending", nil, "bearer-token")

		var body struct {
			Drafts []map[string]any `json:"drafts"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Drafts, 2)
		s.Equal(string(draft.StatusError), body.Drafts[0]["status"])
	})
}

// ================================================================================
// TestAttachEvidence
// ================================================================================

func (s *DraftHandlerTestSuite) TestAttachEvidence() {
	clientID := uuid.New()
	url := "/drafts/" + clientID.String() + "/evidence"
	reqBody := builder.NewEvidenceBuilder().BuildRequestDTO()
	ordinal := int32(2)

	s.Run("success: 201 Created for a new attachment", func() {
		s.mockEvidence.EXPECT().Attach(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.AttachEvidenceInput, _ commands.Caller) (*commands.AttachEvidenceResult, error) {
				s.Equal(clientID, in.DraftClientID)
				s.Equal(reqBody.StorageRef, in.StorageRef)
				return &commands.AttachEvidenceResult{ID: uuid.New(), Ordinal: &ordinal, Completeness: evidence.Tally{Fotos: 2}}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			Ordinal      *int32         `json:"ordinal"`
			Completeness evidence.Tally `json:"completeness"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.Ordinal)
		s.Equal(int32(2), *body.Ordinal)
		s.Equal(2, body.Completeness.Fotos)
	})

	s.Run("success: 200 OK when the storage reference is refreshed", func() {
		s.mockEvidence.EXPECT().Attach(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.AttachEvidenceResult{ID: uuid.New(), Ordinal: &ordinal, Refreshed: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []invalidBodyCase{
			{name: "missing field: kind (required)", mutate: testutil.Field("kind", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: storageRef (required)", mutate: testutil.Field("storageRef", nil), expectCode: http.StatusBadRequest},
			{name: "storageRef too long (513 chars)", mutate: testutil.Field("storageRef", strings.Repeat("a", 513)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.BodyMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: capacity and ownership failures", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "fourth image", err: evidence.ErrImageCapacity, expectCode: http.StatusConflict, expectMsg: "maximum number of images"},
			{name: "second video", err: evidence.ErrVideoCapacity, expectCode: http.StatusConflict, expectMsg: "already has a video"},
			{name: "ordinal hint out of range", err: evidence.ErrInvalidOrdinalHint, expectCode: http.StatusBadRequest, expectMsg: "ordinal hint"},
			{name: "unknown draft", err: queries.ErrDraftNotFound, expectCode: http.StatusNotFound, expectMsg: "draft not found"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockEvidence.EXPECT().Attach(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestFinalize
// ================================================================================

func (s *DraftHandlerTestSuite) TestFinalize() {
	clientID := uuid.New()
	url := "/drafts/" + clientID.String() + "/finalize"

	s.Run("success: 200 OK with the created records", func() {
		result := &commands.FinalizeResult{PrimaryID: uuid.New(), DetailID: uuid.New()}
		s.mockFinalize.EXPECT().Finalize(gomock.Any(), clientID, gomock.Any()).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(result.PrimaryID.String(), body["primaryId"])
		s.Equal(result.DetailID.String(), body["detailId"])
		s.Equal(false, body["replayed"])
	})

	s.Run("success: replayed result for a synchronized draft", func() {
		result := &commands.FinalizeResult{PrimaryID: uuid.New(), DetailID: uuid.New(), Replayed: true}
		s.mockFinalize.EXPECT().Finalize(gomock.Any(), clientID, gomock.Any()).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["replayed"])
	})

	s.Run("error: failures map onto status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "invalid payload", err: draft.ErrInvalidPayload, expectCode: http.StatusBadRequest},
			{name: "unknown draft", err: queries.ErrDraftNotFound, expectCode: http.StatusNotFound},
			{name: "code already taken", err: situation.ErrCodeTaken, expectCode: http.StatusConflict},
			{name: "store outage", err: errs.Transient(errs.New("deadlock")), expectCode: http.StatusServiceUnavailable},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockFinalize.EXPECT().Finalize(gomock.Any(), clientID, gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

