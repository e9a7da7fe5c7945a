package components

import (
	"nomaddesk/internal/infra/db"
	"nomaddesk/internal/infra/readstore"
	"nomaddesk/internal/infra/uow"
	"nomaddesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.GroupBookingReadStore)),
		),
		fx.Annotate(
			readstore.NewInviteReadStore,
			fx.As(new(queries.InviteReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
