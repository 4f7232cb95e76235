package components

import (
	"gavel/internal/handler"
	"gavel/internal/handler/api"
	"gavel/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuctionHandler,
		api.NewBidHandler,
		api.NewStreamHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		middleware.NewPermissionMiddleware,
		middleware.NewVerifiedMiddleware,
		middleware.NewIdempotencyMiddleware,
		func(
			auth *middleware.AuthMiddleware,
			permission *middleware.PermissionMiddleware,
			verified *middleware.VerifiedMiddleware,
			idempotency *middleware.IdempotencyMiddleware,
		) handler.Middlewares {
			return handler.Middlewares{
				Auth:        auth,
				Permission:  permission,
				Verified:    verified,
				Idempotency: idempotency,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
