package http

import (
	"go.uber.org/fx"

	"esignatures-go/internal/delivery/http/handler"
	"esignatures-go/internal/delivery/http/router"
)

var Module = fx.Module("http",
	fx.Provide(
		handler.NewEsignHandler,
		handler.NewHealthHandler,
		handler.NewLogHandler,
		router.NewRouter,
	),
)
