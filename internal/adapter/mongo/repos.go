package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitcoach/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	newestFirst = bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}
	oldestFirst = bson.D{{Key: "_id", Value: 1}}
)

// SaveProfilePlan inserts a plan document.
func (d *DB) SaveProfilePlan(ctx context.Context, user string, inputs domain.UserProfile, planText string, createdAt time.Time) (*domain.Plan, error) {
	doc := planDoc{User: user, Inputs: profileToDoc(inputs), Plan: planText, Timestamp: createdAt.UTC()}
	res, err := d.plans.InsertOne(ctx, doc)
	if err != nil {
		return nil, domain.WrapStore("save plan", err)
	}
	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	p := doc.toDomain()
	return &p, nil
}

// LatestProfilePlan returns the newest plan for user.
func (d *DB) LatestProfilePlan(ctx context.Context, user string) (*domain.Plan, error) {
	var doc planDoc
	err := d.plans.FindOne(ctx, bson.M{"user": user}, options.FindOne().SetSort(newestFirst)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.WrapStore("latest plan", err)
	}
	p := doc.toDomain()
	return &p, nil
}

// ListProfilePlans returns every plan for user, newest first.
func (d *DB) ListProfilePlans(ctx context.Context, user string) ([]domain.Plan, error) {
	var docs []planDoc
	if err := d.findAll(ctx, d.plans, bson.M{"user": user}, options.Find().SetSort(newestFirst), &docs); err != nil {
		return nil, domain.WrapStore("list plans", err)
	}
	out := make([]domain.Plan, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

// SaveProgress inserts a progress document and returns its timestamp.
func (d *DB) SaveProgress(ctx context.Context, user string, weight float64, note string, createdAt time.Time) (time.Time, error) {
	ts := createdAt.UTC()
	if _, err := d.progress.InsertOne(ctx, progressDoc{User: user, Weight: weight, Note: note, Timestamp: ts}); err != nil {
		return time.Time{}, domain.WrapStore("save progress", err)
	}
	return ts, nil
}

// RecentProgress returns the newest progress entries up to limit.
func (d *DB) RecentProgress(ctx context.Context, user string, limit int) ([]domain.ProgressEntry, error) {
	opts := options.Find().SetSort(newestFirst).SetLimit(int64(limit))
	return d.findProgress(ctx, "recent progress", user, opts)
}

// AllProgress returns every progress entry for user in insertion order.
func (d *DB) AllProgress(ctx context.Context, user string) ([]domain.ProgressEntry, error) {
	return d.findProgress(ctx, "all progress", user, options.Find().SetSort(oldestFirst))
}

func (d *DB) findProgress(ctx context.Context, op, user string, opts *options.FindOptions) ([]domain.ProgressEntry, error) {
	var docs []progressDoc
	if err := d.findAll(ctx, d.progress, bson.M{"user": user}, opts, &docs); err != nil {
		return nil, domain.WrapStore(op, err)
	}
	out := make([]domain.ProgressEntry, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

// FindDailyPlan returns the earliest plan stored for (user, day).
func (d *DB) FindDailyPlan(ctx context.Context, user, day string) (*domain.DailyPlan, error) {
	var doc dailyDoc
	err := d.daily.FindOne(ctx, bson.M{"user": user, "date": day}, options.FindOne().SetSort(oldestFirst)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.WrapStore("find daily plan", err)
	}
	p := doc.toDomain()
	return &p, nil
}

// SaveDailyPlan inserts a daily plan document.
func (d *DB) SaveDailyPlan(ctx context.Context, user, day, planText string, createdAt time.Time) (*domain.DailyPlan, error) {
	doc := dailyDoc{User: user, Date: day, Plan: planText, Timestamp: createdAt.UTC()}
	res, err := d.daily.InsertOne(ctx, doc)
	if err != nil {
		return nil, domain.WrapStore("save daily plan", err)
	}
	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	p := doc.toDomain()
	return &p, nil
}

// RecentDailyPlans returns the newest daily plans up to limit.
func (d *DB) RecentDailyPlans(ctx context.Context, user string, limit int) ([]domain.DailyPlan, error) {
	var docs []dailyDoc
	opts := options.Find().SetSort(newestFirst).SetLimit(int64(limit))
	if err := d.findAll(ctx, d.daily, bson.M{"user": user}, opts, &docs); err != nil {
		return nil, domain.WrapStore("recent daily plans", err)
	}
	out := make([]domain.DailyPlan, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

// GetXP returns the XP document for user, or nil.
func (d *DB) GetXP(ctx context.Context, user string) (*domain.XPRecord, error) {
	var doc xpDoc
	if err := d.xp.FindOne(ctx, bson.M{"user": user}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.WrapStore("get xp", err)
	}
	rec := doc.toDomain()
	return &rec, nil
}

// UpsertXP sets xp, badges and one timestamp field on the user's document,
// creating it if needed.
func (d *DB) UpsertXP(ctx context.Context, user string, xp int, badges []string, field domain.XPField, at time.Time) error {
	update, err := xpUpdate(xp, badges, field, at)
	if err != nil {
		return domain.WrapStore("upsert xp", err)
	}
	_, err = d.xp.UpdateOne(ctx, bson.M{"user": user}, update, options.Update().SetUpsert(true))
	return domain.WrapStore("upsert xp", err)
}

func xpUpdate(xp int, badges []string, field domain.XPField, at time.Time) (bson.M, error) {
	switch field {
	case domain.LastLogField, domain.LastDailyField:
	default:
		return nil, fmt.Errorf("unknown xp field %q", field)
	}
	if badges == nil {
		badges = []string{}
	}
	return bson.M{"$set": bson.M{
		"xp":          xp,
		"badges":      badges,
		string(field): at.UTC(),
	}}, nil
}

func (d *DB) findAll(ctx context.Context, coll *mongo.Collection, filter any, opts *options.FindOptions, out any) error {
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}
