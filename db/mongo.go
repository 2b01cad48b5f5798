package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"naya-blog/config"
)

const PostsCollection = "posts"

// Mongo owns the client for the lifetime of the process.
// Open it once in main and pass Database() to the repositories.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects, pings the primary and ensures indexes.
func Open(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := cl.Ping(ctx, readpref.Primary()); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	m := &Mongo{client: cl, db: cl.Database(cfg.Database)}
	if err := EnsureIndexes(ctx, m.db); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ensure indexes: %w", err)
	}
	config.Logger.Infof("MongoDB connected (db=%s) and indexes ensured", cfg.Database)
	return m, nil
}

func (m *Mongo) Database() *mongo.Database { return m.db }

// Ping is used by the health check.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (m *Mongo) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

// PostIndexes lists the indexes of the posts collection.
// uniq_slug is the authoritative slug uniqueness guard.
func PostIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("uniq_slug").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "excerpt", Value: "text"},
				{Key: "content", Value: "text"},
				{Key: "tags", Value: "text"},
			},
			Options: options.Index().SetName("BlogPostTextIndex"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "published_at", Value: -1}},
			Options: options.Index().SetName("idx_status_published_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("idx_category"),
		},
		{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index().SetName("idx_tags"),
		},
		{
			Keys:    bson.D{{Key: "featured", Value: 1}},
			Options: options.Index().SetName("idx_featured"),
		},
		{
			Keys:    bson.D{{Key: "pinned", Value: 1}},
			Options: options.Index().SetName("idx_pinned"),
		},
	}
}

func EnsureIndexes(ctx context.Context, d *mongo.Database) error {
	if _, err := d.Collection(PostsCollection).Indexes().CreateMany(ctx, PostIndexes()); err != nil {
		return err
	}
	return nil
}
