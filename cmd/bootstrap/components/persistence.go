package components

import (
	"gavel/internal/handler/api"
	"gavel/internal/handler/middleware"
	"gavel/internal/infra/cache"
	"gavel/internal/infra/db"
	"gavel/internal/infra/events"
	"gavel/internal/infra/readstore"
	"gavel/internal/infra/repository"
	"gavel/internal/infra/uow"
	"gavel/internal/usecase"
	"gavel/internal/usecase/commands"
	"gavel/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
	readstoreModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	uow.NewPostgresUoW,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewAuctionRepository,
			fx.As(new(commands.AuctionRepository)),
		),
		fx.Annotate(
			repository.NewBidRepository,
			fx.As(new(commands.BidRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewRoleRepository,
			fx.As(new(usecase.PermissionReader)),
		),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewAuctionReadStore,
			fx.As(new(queries.AuctionReadStore)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			cache.NewPriceCache,
			fx.As(new(commands.PriceCache)),
		),
		fx.Annotate(
			cache.NewPermissionStore,
			fx.As(new(usecase.PermissionCacheStore)),
		),
		fx.Annotate(
			cache.NewIdempotencyStore,
			fx.As(new(middleware.IdempotencyRecorder)),
		),
		fx.Annotate(
			events.NewChannel,
			fx.As(new(commands.EventPublisher)),
			fx.As(new(api.BidEventSource)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
