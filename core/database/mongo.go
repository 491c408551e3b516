package database

import (
	"context"
	"fmt"
	"time"

	"wedding-api/core/config"
	"wedding-api/core/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Database wraps the Mongo client and the application database handle.
// Collection handles are created once at startup and shared by all requests
// for the process lifetime.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

var instance *Database

func GetDB() *Database {
	return instance
}

func InitDB(cfg config.MongoConfig) (*Database, error) {
	logger.Info("Initializing database...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Error("Failed to ping database", "error", err)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &Database{
		client: client,
		db:     client.Database(cfg.Database),
	}

	logger.Info("Database initialized successfully",
		"uri", cfg.URI,
		"database", cfg.Database,
	)

	instance = db
	return db, nil
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *Database) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
