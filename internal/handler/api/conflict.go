package api

import (
	"net/http"
	"strconv"

	reqdto "fieldsync/internal/handler/dto/request"
	resdto "fieldsync/internal/handler/dto/response"
	"fieldsync/internal/handler/httperr"
	"fieldsync/internal/usecase/commands"
	"fieldsync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConflictHandler struct {
	cmds commands.ConflictCommands
	q    queries.ConflictQueries
}

func NewConflictHandler(cmds commands.ConflictCommands, q queries.ConflictQueries) *ConflictHandler {
	return &ConflictHandler{cmds: cmds, q: q}
}

// @Summary Report conflict
// @Description Report a disagreement between client and server state. Re-reporting a pending case refreshes it.
// @Tags conflicts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Client token (UUID)"
// @Param request body reqdto.ReportConflictRequest true "Conflict"
// @Success 201 {object} resdto.ReportConflictResponse
// @Success 200 {object} resdto.ReportConflictResponse
// @Failure 400 {object} httperr.Response
// @Router /conflicts [post]
func (h *ConflictHandler) Report(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req reqdto.ReportConflictRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Report(c.Request.Context(), req.ToInput(), caller)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromReportConflictResult(result))
}

// @Summary List conflicts
// @Description List conflict cases with keyset pagination
// @Tags conflicts
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING (default) or RESOLVED"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /conflicts [get]
func (h *ConflictHandler) List(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.List(c.Request.Context(), c.Query("status"), cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp := gin.H{"conflicts": resdto.FromConflictList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List my conflicts
// @Description Most recent cases reported by the caller
// @Tags conflicts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]resdto.ConflictResponse
// @Router /conflicts/mine [get]
func (h *ConflictHandler) ListMine(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	items, err := h.q.ListMine(c.Request.Context(), caller.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflicts": resdto.FromConflictList(items)})
}

// @Summary Get conflict
// @Tags conflicts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Case id"
// @Success 200 {object} resdto.ConflictResponse
// @Failure 404 {object} httperr.Response
// @Router /conflicts/{id} [get]
func (h *ConflictHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictView(view))
}

// @Summary Resolve conflict
// @Description Resolve a pending case. USE_CLIENT applies the client values to the linked situation.
// @Tags conflicts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Case id"
// @Param Idempotency-Key header string false "Client token (UUID)"
// @Param request body reqdto.ResolveConflictRequest true "Decision"
// @Success 200 {object} resdto.ConflictResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /conflicts/{id}/resolve [patch]
func (h *ConflictHandler) Resolve(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ResolveConflictRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Resolve(c.Request.Context(), req.ToInput(id), caller); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictView(view))
}
