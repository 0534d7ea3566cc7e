// Package mongo implements the plan, progress and XP stores on MongoDB using
// one collection per entity.
package mongo

import (
	"context"
	"fmt"
	"time"

	"fitcoach/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	plansCollection    = "plans"
	progressCollection = "progress"
	dailyCollection    = "daily_plans"
	xpCollection       = "xp"
)

// DB wraps a mongo client and implements domain repository interfaces.
type DB struct {
	client   *mongo.Client
	plans    *mongo.Collection
	progress *mongo.Collection
	daily    *mongo.Collection
	xp       *mongo.Collection
}

var _ domain.Store = (*DB)(nil)

// Open connects to uri, pings the primary and ensures indexes on database.
func Open(uri, database string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetMaxPoolSize(10))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(database)
	d := &DB{
		client:   client,
		plans:    db.Collection(plansCollection),
		progress: db.Collection(progressCollection),
		daily:    db.Collection(dailyCollection),
		xp:       db.Collection(xpCollection),
	}
	if err := d.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return d, nil
}

// Ping checks the connection to the primary.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (d *DB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}

func (d *DB) ensureIndexes(ctx context.Context) error {
	byUserTime := mongo.IndexModel{Keys: bson.D{{Key: "user", Value: 1}, {Key: "timestamp", Value: -1}}}
	indexes := map[*mongo.Collection][]mongo.IndexModel{
		d.plans:    {byUserTime},
		d.progress: {byUserTime},
		d.daily:    {byUserTime, {Keys: bson.D{{Key: "user", Value: 1}, {Key: "date", Value: 1}}}},
		d.xp:       {{Keys: bson.D{{Key: "user", Value: 1}}, Options: options.Index().SetUnique(true)}},
	}
	for coll, models := range indexes {
		if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll.Name(), err)
		}
	}
	return nil
}
