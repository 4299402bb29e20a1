package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultConnectTimeout = 10 * time.Second

// Config holds the connection settings for the database backing the user,
// inventory and reservation stores.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func (c Config) connectTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultConnectTimeout
}

// Connect opens the client shared by all repositories and pings the server
// before handing it out, so a bad URI fails at startup rather than on the
// first request. The timeout bounds both the dial and the ping.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.connectTimeout())
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
