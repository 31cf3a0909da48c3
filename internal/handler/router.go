package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fieldsync/internal/domain/user"
	"fieldsync/internal/handler/api"
	"fieldsync/internal/handler/middleware"
	"fieldsync/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Drafts       *api.DraftHandler
	Conflicts    *api.ConflictHandler
	ExitRequests *api.ExitRequestHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, guard *middleware.IdempotencyGuard) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, guard)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// the request logger runs outside recovery so a panic still gets its completion line
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.CORS(cfg.CORS, logger))
	engine.Use(middleware.ErrorResponder())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, guard *middleware.IdempotencyGuard) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	idem := []gin.HandlerFunc{guard.Handle()}
	supervisor := authMiddleware.RequireRoleAtLeast(user.RoleDispatcher)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		drafts := apiGroup.Group("/drafts")
		addRoutes(drafts, []route{
			{Method: http.MethodGet, Path: "/pending", Handler: h.Drafts.ListPending},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Drafts.Get},
			{Method: http.MethodPost, Path: "/:id", Handler: h.Drafts.Upsert, Mw: idem},
			{Method: http.MethodPost, Path: "/:id/evidence", Handler: h.Drafts.AttachEvidence, Mw: idem},
			{Method: http.MethodPost, Path: "/:id/finalize", Handler: h.Drafts.Finalize, Mw: idem},
		})

		conflicts := apiGroup.Group("/conflicts")
		addRoutes(conflicts, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Conflicts.Report, Mw: idem},
			{Method: http.MethodGet, Path: "", Handler: h.Conflicts.List, Mw: []gin.HandlerFunc{supervisor}},
			{Method: http.MethodGet, Path: "/mine", Handler: h.Conflicts.ListMine},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Conflicts.Get},
			{Method: http.MethodPatch, Path: "/:id/resolve", Handler: h.Conflicts.Resolve, Mw: []gin.HandlerFunc{supervisor, guard.Handle()}},
		})

		exits := apiGroup.Group("/exit-requests")
		addRoutes(exits, []route{
			{Method: http.MethodPost, Path: "", Handler: h.ExitRequests.Create, Mw: idem},
			{Method: http.MethodGet, Path: "", Handler: h.ExitRequests.List},
			{Method: http.MethodGet, Path: "/pending", Handler: h.ExitRequests.Pending},
			{Method: http.MethodGet, Path: "/:id", Handler: h.ExitRequests.Get},
			{Method: http.MethodPost, Path: "/:id/vote", Handler: h.ExitRequests.Vote, Mw: idem},
			{Method: http.MethodPost, Path: "/:id/override", Handler: h.ExitRequests.Override, Mw: []gin.HandlerFunc{supervisor, guard.Handle()}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// addRoutes registers route middleware as gin handlers so that c.Next() inside them wraps the handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		hs = append(hs, r.Mw...)
		hs = append(hs, r.Handler)
		g.Handle(r.Method, r.Path, hs...)
	}
}
