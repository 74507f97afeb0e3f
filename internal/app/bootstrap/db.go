// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/kajbondu/kajbondu-server/internal/app/system/indexes"
	"github.com/kajbondu/kajbondu-server/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB opens the one MongoDB client the process uses and verifies it
// with a ping against the primary.
//
// WAFFLE calls ConnectDB before Startup, so timeout overrides from the
// environment are applied here, ahead of the first ping.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("applied timeout overrides from environment", zap.Int("overridden", n))
	}

	client, err := mongo.Connect(ctx, clientOptions(appCfg))
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", appCfg.MongoMaxPoolSize))

	return DBDeps{
		KajBonduMongoClient:   client,
		KajBonduMongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// clientOptions builds the driver options: Stable API v1 in strict mode with
// deprecation errors, pool sizing, and explicit credentials when configured.
func clientOptions(appCfg AppConfig) *options.ClientOptions {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetServerAPIOptions(serverAPI).
		SetAppName("kajbondu")
	if appCfg.MongoMaxPoolSize > 0 {
		opts.SetMaxPoolSize(appCfg.MongoMaxPoolSize)
	}
	if appCfg.MongoMinPoolSize > 0 {
		opts.SetMinPoolSize(appCfg.MongoMinPoolSize)
	}
	if appCfg.MongoUser != "" {
		opts.SetAuth(options.Credential{
			Username: appCfg.MongoUser,
			Password: appCfg.MongoPassword,
		})
	}
	return opts
}

// EnsureSchema creates the lookup indexes the routes rely on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.KajBonduMongoDatabase, indexes.Collections{
		Services: appCfg.ServicesCollection,
		Bookings: appCfg.BookingsCollection,
	}, logger)
}
