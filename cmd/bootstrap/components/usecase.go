package components

import (
	"staybooking/internal/domain/booking"
	"staybooking/internal/domain/pricing"
	"staybooking/internal/pkg/clock"
	"staybooking/internal/pkg/config"
	"staybooking/internal/usecase"
	"staybooking/internal/usecase/commands"
	"staybooking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewStandardCalculator,
		fx.As(new(pricing.Calculator)),
	),
	func(clk clock.Clock, calc pricing.Calculator, cfg config.Config) *booking.Factory {
		return booking.NewFactory(clk, calc, cfg.Pricing.TaxPercent)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewLodgingCommands,
		commands.NewBookingCommands,
		commands.NewReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewLodgingQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		func(rooms queries.RoomPricingReadStore, calc pricing.Calculator, cfg config.Config) queries.QuoteQueries {
			return queries.NewQuoteQueries(rooms, calc, cfg.Pricing.TaxPercent)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
