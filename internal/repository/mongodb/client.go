package mongodb

import (
	"context"
	"fmt"

	"github.com/swiftsites/swiftsites-api/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the document store.
const (
	usersCollection       = "users"
	adminsCollection      = "admins"
	preferencesCollection = "preferences"
)

// Client wraps the MongoDB client and the application database
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect creates a client and verifies the connection
func Connect(ctx context.Context, cfg config.MongoConfig) (*Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Close disconnects the client
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// Ping verifies connectivity, for readiness checks
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

// Database returns the application database
func (c *Client) Database() *mongo.Database {
	return c.db
}
