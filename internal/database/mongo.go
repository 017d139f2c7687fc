package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongo connects to MongoDB and verifies the connection with a ping.
// The returned context/cancel pair lets the caller cleanly shut the client
// down:
//
//	client, ctx, cancel, err := database.NewMongo(cfg.MongoURI)
//	if err != nil { … }
//	defer cancel()
//	defer client.Disconnect(ctx)
func NewMongo(uri string) (*mongo.Client, context.Context, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, ctx, cancel, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		// Avoid leaking sockets when the ping fails.
		_ = client.Disconnect(ctx)
		return nil, ctx, cancel, err
	}

	return client, ctx, cancel, nil
}
