package components

import (
	"log/slog"

	"homeservice-booking/internal/infra/catalog"
	"homeservice-booking/internal/infra/codestore"
	"homeservice-booking/internal/infra/draftstore"
	"homeservice-booking/internal/infra/verification"
	"homeservice-booking/internal/pkg/config"
	"homeservice-booking/internal/usecase/commands"
	"homeservice-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RepositoryModule wires the non-relational stores: drafts and codes in
// Redis, and the provider catalog.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDraftStore,
		fx.Annotate(
			codestore.NewRedisCodeStore,
			fx.As(new(commands.CodeStore)),
		),
		fx.Annotate(
			verification.NewRandomCodeGenerator,
			fx.As(new(commands.CodeGenerator)),
		),
		fx.Annotate(
			NewCodeSender,
			fx.As(new(commands.CodeSender)),
		),
		fx.Annotate(
			catalog.NewDefault,
			fx.As(new(commands.ProviderCatalog)),
			fx.As(new(queries.ProviderReadStore)),
		),
	),
)

func NewDraftStore(client *redis.Client, cfg config.RedisConfig) commands.DraftStore {
	return draftstore.NewRedisDraftStore(client, cfg.DraftTTL)
}

func NewCodeSender(logger *slog.Logger) *verification.LogCodeSender {
	return verification.NewLogCodeSender(logger)
}
