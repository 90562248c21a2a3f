package db

import (
	"context"
	"time"

	"github.com/songwish/apiserver/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultPingTimeout    = 5 * time.Second
	defaultMaxPoolSize    = 25
)

// Open connects to MongoDB and verifies the connection with a bounded ping.
// A failure here is fatal for the process: the service must not serve
// traffic without its record store.
func Open(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetConnectTimeout(defaultConnectTimeout).
		SetMaxPoolSize(defaultMaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// Database returns the configured application database handle.
func Database(client *mongo.Client, cfg config.Config) *mongo.Database {
	return client.Database(cfg.Database.DBName)
}
