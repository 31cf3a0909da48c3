package api

import (
	"net/http"

	reqdto "fieldsync/internal/handler/dto/request"
	resdto "fieldsync/internal/handler/dto/response"
	"fieldsync/internal/handler/httperr"
	"fieldsync/internal/usecase/commands"
	"fieldsync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DraftHandler struct {
	drafts   commands.DraftCommands
	evidence commands.EvidenceCommands
	finalize commands.FinalizeCommands
	q        queries.DraftQueries
}

func NewDraftHandler(drafts commands.DraftCommands, evidence commands.EvidenceCommands, finalize commands.FinalizeCommands, q queries.DraftQueries) *DraftHandler {
	return &DraftHandler{drafts: drafts, evidence: evidence, finalize: finalize, q: q}
}

// @Summary Upsert draft
// @Description Create a draft or replace the payload of a pending one
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Draft kind, e.g. traffic-incident"
// @Param Idempotency-Key header string false "Client token (UUID)"
// @Param request body reqdto.UpsertDraftRequest true "Draft"
// @Success 201 {object} resdto.UpsertDraftResponse
// @Success 200 {object} resdto.UpsertDraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /drafts/{kind} [post]
func (h *DraftHandler) Upsert(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req reqdto.UpsertDraftRequest
	if !bindJSON(c, &req) {
		return
	}
	// the router shares one wildcard name per segment; here it carries the kind
	result, err := h.drafts.Upsert(c.Request.Context(), req.ToInput(c.Param("id")), caller)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromUpsertDraftResult(result))
}

// @Summary Get draft
// @Description Get a draft with its evidence
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft client id"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id, caller.UserID, caller.Role)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromDraftView(view)
	if err != nil {
		renderFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List pending drafts
// @Description Drafts of the caller that are not synchronized yet, newest first
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]resdto.PendingDraftResponse
// @Router /drafts/pending [get]
func (h *DraftHandler) ListPending(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	items, err := h.q.ListPending(c.Request.Context(), caller.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPendingDrafts(items)
	if err != nil {
		renderFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drafts": res})
}

// @Summary Attach evidence
// @Description Register an uploaded image or video against a draft
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft client id"
// @Param Idempotency-Key header string false "Client token (UUID)"
// @Param request body reqdto.AttachEvidenceRequest true "Evidence"
// @Success 201 {object} resdto.AttachEvidenceResponse
// @Success 200 {object} resdto.AttachEvidenceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /drafts/{id}/evidence [post]
func (h *DraftHandler) AttachEvidence(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AttachEvidenceRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.evidence.Attach(c.Request.Context(), req.ToInput(id), caller)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusCreated
	if result.Refreshed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromAttachEvidenceResult(result))
}

// @Summary Finalize draft
// @Description Turn a draft into its situation records. Finalizing a synchronized draft replays the result.
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft client id"
// @Param Idempotency-Key header string false "Client token (UUID)"
// @Success 200 {object} resdto.FinalizeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /drafts/{id}/finalize [post]
func (h *DraftHandler) Finalize(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.finalize.Finalize(c.Request.Context(), id, caller)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFinalizeResult(result))
}
