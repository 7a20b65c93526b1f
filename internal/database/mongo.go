package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/stemsi/school-api/internal/config"
)

// ErrNotConfigured is returned when DATABASE_URL or DATABASE_NAME is missing.
var ErrNotConfigured = errors.New("database url or name not configured")

// NewMongoDatabase connects to MongoDB, verifies the deployment answers a
// ping and returns the client together with the configured database handle.
// The client is meant to live for the whole process.
func NewMongoDatabase(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	if !cfg.DatabaseURLSet() || !cfg.DatabaseNameSet() {
		return nil, nil, ErrNotConfigured
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.MongoConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.DatabaseURL).
		SetAppName("school-api")

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Info().
		Str("database", cfg.DatabaseName).
		Msg("MongoDB connected")

	return client, client.Database(cfg.DatabaseName), nil
}
