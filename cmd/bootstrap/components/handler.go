package components

import (
	"nomaddesk/internal/handler"
	"nomaddesk/internal/handler/api"
	"nomaddesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewGroupBookingHandler,
		api.NewInvitationHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
