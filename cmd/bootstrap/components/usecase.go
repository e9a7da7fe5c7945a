package components

import (
	"nomaddesk/internal/infra/notify"
	"nomaddesk/internal/pkg/clock"
	"nomaddesk/internal/pkg/config"
	"nomaddesk/internal/usecase/commands"
	"nomaddesk/internal/usecase/queries"
	"nomaddesk/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewTokenValidator,
	fx.Annotate(
		notify.NewNotifier,
		fx.As(new(commands.Notifier)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewGroupBookingQueries,
		queries.NewInviteQueries,
		queries.NewNotificationQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewGroupBookingCommands,
		commands.NewNotificationCommands,
		NewInvitationCommands,
	),
)

func NewInvitationCommands(
	uow shared.UnitOfWork,
	bookingQueries queries.GroupBookingQueries,
	notifier commands.Notifier,
	statsCache queries.StatsCache,
	cfg config.Config,
	clk clock.Clock,
) commands.InvitationCommands {
	return commands.NewInvitationCommands(uow, bookingQueries, notifier, statsCache, cfg.Invite.TTL, clk)
}
