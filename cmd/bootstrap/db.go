package bootstrap

import (
	"context"
	"log/slog"

	"rovera-leads/internal/infra/db"
	"rovera-leads/internal/pkg/config"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewMongoClient,
		NewLeadCollection,
		db.NewPinger,
	),
)

func NewMongoClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*mongo.Client, error) {
	client, cleanup, err := db.Connect(context.Background(), cfg.Mongo)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing mongo connection")
			return cleanup(ctx)
		},
	})

	return client, nil
}

// NewLeadCollection also makes sure the lead indexes exist before serving.
func NewLeadCollection(lc fx.Lifecycle, client *mongo.Client, cfg config.Config) *mongo.Collection {
	coll := db.LeadCollection(client, cfg.Mongo)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return db.EnsureLeadIndexes(ctx, coll)
		},
	})
	return coll
}
