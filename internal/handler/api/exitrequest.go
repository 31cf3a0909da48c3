package api

import (
	"net/http"

	reqdto "fieldsync/internal/handler/dto/request"
	resdto "fieldsync/internal/handler/dto/response"
	"fieldsync/internal/handler/httperr"
	"fieldsync/internal/usecase/commands"
	"fieldsync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExitRequestHandler struct {
	cmds commands.ExitRequestCommands
	q    queries.ExitRequestQueries
}

func NewExitRequestHandler(cmds commands.ExitRequestCommands, q queries.ExitRequestQueries) *ExitRequestHandler {
	return &ExitRequestHandler{cmds: cmds, q: q}
}

// @Summary Open exit request
// @Description Ask the crew to authorize the vehicle exit. The requester's consent is recorded.
// @Tags exit-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Client token (UUID)"
// @Param request body reqdto.CreateExitRequestRequest true "Reading"
// @Success 201 {object} resdto.CreateExitRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /exit-requests [post]
func (h *ExitRequestHandler) Create(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req reqdto.CreateExitRequestRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToInput(), caller)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateExitRequestResult(result))
}

// @Summary List exit requests
// @Tags exit-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param assignmentId query string false "Assignment filter"
// @Success 200 {object} map[string][]resdto.ExitRequestResponse
// @Failure 400 {object} httperr.Response
// @Router /exit-requests [get]
func (h *ExitRequestHandler) List(c *gin.Context) {
	filters := queries.ExitRequestFilters{Status: c.Query("status")}
	if v := c.Query("assignmentId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.Abort(c, errInvalidID)
			return
		}
		filters.AssignmentID = &id
	}
	items, err := h.q.List(c.Request.Context(), filters)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromExitRequestList(items)
	if err != nil {
		renderFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": res})
}

// @Summary My pending exit request
// @Description The live request awaiting the caller, with the caller's own vote
// @Tags exit-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MemberPendingResponse
// @Success 204 "No pending request"
// @Router /exit-requests/pending [get]
func (h *ExitRequestHandler) Pending(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	view, err := h.q.PendingForMember(c.Request.Context(), caller.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if view == nil {
		c.Status(http.StatusNoContent)
		return
	}
	res, err := resdto.FromMemberPending(view)
	if err != nil {
		renderFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get exit request
// @Tags exit-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request id"
// @Success 200 {object} resdto.ExitRequestDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /exit-requests/{id} [get]
func (h *ExitRequestHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromExitRequestDetail(detail)
	if err != nil {
		renderFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Vote on exit request
// @Description Cast the caller's vote. A late vote expires the request and returns 410.
// @Tags exit-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request id"
// @Param Idempotency-Key header string false "Client token (UUID)"
// @Param request body reqdto.VoteRequest true "Vote"
// @Success 200 {object} resdto.VoteResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /exit-requests/{id}/vote [post]
func (h *ExitRequestHandler) Vote(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.VoteRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Vote(c.Request.Context(), req.ToInput(id), caller)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoteResult(result))
}

// @Summary Override exit request
// @Description Approve a pending or expired request on a supervisor's authority
// @Tags exit-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request id"
// @Param Idempotency-Key header string false "Client token (UUID)"
// @Param request body reqdto.OverrideRequest true "Reason"
// @Success 200 {object} resdto.ExitRequestDetailResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /exit-requests/{id}/override [post]
func (h *ExitRequestHandler) Override(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.OverrideRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Override(c.Request.Context(), req.ToInput(id), caller); err != nil {
		httperr.Abort(c, err)
		return
	}
	detail, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromExitRequestDetail(detail)
	if err != nil {
		renderFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
