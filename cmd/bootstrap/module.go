package bootstrap

import (
	"fieldsync/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule wires storage and use cases without the HTTP surface.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	JWTModule,
	components.HandlerModule,
	ServerModule,
	SweeperModule,
)
