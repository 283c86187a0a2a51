// Package document connects to the MongoDB deployment holding status checks.
package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"portfolio-backend/internal/shared/telemetry"
)

const defaultTimeout = 5 * time.Second

// Options controls client construction.
type Options struct {
	URL      string
	Database string
	Timeout  time.Duration
}

// Connect builds a client for opts.URL and pings the primary before returning.
func Connect(ctx context.Context, opts Options) (*mongo.Client, error) {
	if strings.TrimSpace(opts.URL) == "" {
		return nil, fmt.Errorf("MONGO_URL is empty")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	clientOpts := options.Client().
		ApplyURI(opts.URL).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetAppName("portfolio-backend")
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := Ping(ctx, client, timeout); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	telemetry.Info("mongo.connected", map[string]any{"database": opts.Database})
	return client, nil
}

// Ping checks the primary is reachable within timeout.
func Ping(ctx context.Context, client *mongo.Client, timeout time.Duration) error {
	if client == nil {
		return fmt.Errorf("mongo client not configured")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	return nil
}

// Disconnect closes the client, bounded by timeout.
func Disconnect(client *mongo.Client, timeout time.Duration) error {
	if client == nil {
		return nil
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return client.Disconnect(ctx)
}
