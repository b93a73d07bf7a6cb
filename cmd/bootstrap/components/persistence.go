package components

import (
	"rovera-leads/internal/infra/readstore"
	"rovera-leads/internal/infra/repository"
	"rovera-leads/internal/usecase/commands"
	"rovera-leads/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewLeadCollectionReader,
			fx.As(new(readstore.LeadViewCollection)),
		),
		fx.Annotate(
			readstore.NewLeadReadStore,
			fx.As(new(queries.LeadReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			NewLeadCollectionWriter,
			fx.As(new(repository.LeadWriteCollection)),
		),
		fx.Annotate(
			repository.NewLeadRepository,
			fx.As(new(commands.LeadRepository)),
		),
	),
)

func NewLeadCollectionReader(coll *mongo.Collection) *mongo.Collection {
	return coll
}

func NewLeadCollectionWriter(coll *mongo.Collection) *mongo.Collection {
	return coll
}
