package components

import (
	"fieldsync/internal/infra/readstore"
	sqlc "fieldsync/internal/infra/sqlc/generated"
	"fieldsync/internal/infra/uow"
	"fieldsync/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Draft
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DraftReadQueries)),
		),
		fx.Annotate(
			readstore.NewDraftReadStore,
			fx.As(new(queries.DraftReadStore)),
		),
		// Conflict
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ConflictReadQueries)),
		),
		fx.Annotate(
			readstore.NewConflictReadStore,
			fx.As(new(queries.ConflictReadStore)),
		),
		// ExitRequest
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ExitRequestReadQueries)),
		),
		fx.Annotate(
			readstore.NewExitRequestReadStore,
			fx.As(new(queries.ExitRequestReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
