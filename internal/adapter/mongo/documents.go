package mongo

import (
	"fmt"
	"time"

	"fitcoach/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Older plan documents carry the profile inputs as submitted, so numbers
// may be stored as strings, int64 or decimal128.
type profileDoc struct {
	Goal           string    `bson:"goal"`
	Age            flexInt   `bson:"age"`
	Height         flexFloat `bson:"height"`
	Weight         flexFloat `bson:"weight"`
	ActivityLevel  string    `bson:"activityLevel"`
	DietPreference string    `bson:"dietPreference"`
}

type flexInt int

func (n flexInt) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(int32(n))
}

func (n *flexInt) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v, err := decodeNumber(t, data)
	if err != nil {
		return err
	}
	*n = flexInt(int(v))
	return nil
}

type flexFloat float64

func (n flexFloat) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(float64(n))
}

func (n *flexFloat) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v, err := decodeNumber(t, data)
	if err != nil {
		return err
	}
	*n = flexFloat(v)
	return nil
}

func decodeNumber(t bsontype.Type, data []byte) (float64, error) {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		return raw.Double(), nil
	case bsontype.Int32:
		return float64(raw.Int32()), nil
	case bsontype.Int64:
		return float64(raw.Int64()), nil
	case bsontype.String:
		return parseStored(raw.StringValue())
	case bsontype.Decimal128:
		return parseStored(raw.Decimal128().String())
	case bsontype.Null, bsontype.Undefined:
		return 0, nil
	default:
		return 0, fmt.Errorf("cannot decode %s as a number", t)
	}
}

func parseStored(s string) (float64, error) {
	v, err := domain.ParseNumber(s)
	if err != nil {
		return 0, fmt.Errorf("stored number %q: %w", s, err)
	}
	return v, nil
}

type planDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      string             `bson:"user"`
	Inputs    profileDoc         `bson:"inputs"`
	Plan      string             `bson:"plan"`
	Timestamp time.Time          `bson:"timestamp"`
}

type progressDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      string             `bson:"user"`
	Weight    float64            `bson:"weight"`
	Note      string             `bson:"note"`
	Timestamp time.Time          `bson:"timestamp"`
}

type dailyDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      string             `bson:"user"`
	Date      string             `bson:"date"`
	Plan      string             `bson:"plan"`
	Timestamp time.Time          `bson:"timestamp"`
}

type xpDoc struct {
	User      string     `bson:"user"`
	XP        int        `bson:"xp"`
	Badges    []string   `bson:"badges"`
	LastLog   *time.Time `bson:"last_log,omitempty"`
	LastDaily *time.Time `bson:"last_daily,omitempty"`
}

func profileToDoc(p domain.UserProfile) profileDoc {
	return profileDoc{
		Goal:           p.Goal,
		Age:            flexInt(p.Age),
		Height:         flexFloat(p.Height),
		Weight:         flexFloat(p.Weight),
		ActivityLevel:  p.ActivityLevel,
		DietPreference: p.DietPreference,
	}
}

func (d profileDoc) toDomain() domain.UserProfile {
	return domain.UserProfile{
		Goal:           d.Goal,
		Age:            int(d.Age),
		Height:         float64(d.Height),
		Weight:         float64(d.Weight),
		ActivityLevel:  d.ActivityLevel,
		DietPreference: d.DietPreference,
	}
}

func (d planDoc) toDomain() domain.Plan {
	return domain.Plan{
		ID:        d.ID.Hex(),
		User:      d.User,
		Inputs:    d.Inputs.toDomain(),
		Plan:      d.Plan,
		Timestamp: d.Timestamp.UTC(),
	}
}

func (d progressDoc) toDomain() domain.ProgressEntry {
	return domain.ProgressEntry{
		ID:        d.ID.Hex(),
		User:      d.User,
		Weight:    d.Weight,
		Note:      d.Note,
		Timestamp: d.Timestamp.UTC(),
	}
}

func (d dailyDoc) toDomain() domain.DailyPlan {
	return domain.DailyPlan{
		ID:        d.ID.Hex(),
		User:      d.User,
		Date:      d.Date,
		Plan:      d.Plan,
		Timestamp: d.Timestamp.UTC(),
	}
}

func (d xpDoc) toDomain() domain.XPRecord {
	rec := domain.XPRecord{User: d.User, XP: d.XP, Badges: d.Badges}
	if rec.Badges == nil {
		rec.Badges = []string{}
	}
	if d.LastLog != nil {
		t := d.LastLog.UTC()
		rec.LastLog = &t
	}
	if d.LastDaily != nil {
		t := d.LastDaily.UTC()
		rec.LastDaily = &t
	}
	return rec
}
