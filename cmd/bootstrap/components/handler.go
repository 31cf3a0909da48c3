package components

import (
	"fieldsync/internal/handler"
	"fieldsync/internal/handler/api"
	"fieldsync/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDraftHandler,
		api.NewConflictHandler,
		api.NewExitRequestHandler,
		middleware.NewAuthMiddleware,
		middleware.NewIdempotencyGuard,
		func(d *api.DraftHandler, c *api.ConflictHandler, e *api.ExitRequestHandler) handler.Handlers {
			return handler.Handlers{Drafts: d, Conflicts: c, ExitRequests: e}
		},
	),
	fx.Invoke(handler.NewRouter),
)
