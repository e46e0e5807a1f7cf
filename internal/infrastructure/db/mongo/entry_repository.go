package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kingkebab/timetrack/internal/core/domain"
)

const entriesCollection = "time_entries"

// EntryRepository persists time entries in the time_entries collection.
type EntryRepository struct {
	coll *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{coll: db.Collection(entriesCollection)}
}

type mongoEntry struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	UserID            string             `bson:"user_id"`
	Username          string             `bson:"username"`
	Position          string             `bson:"position"`
	Date              time.Time          `bson:"date"`
	StartTime         time.Time          `bson:"start_time"`
	EndTime           time.Time          `bson:"end_time"`
	Hours             float64            `bson:"hours"`
	OvertimeReason    *string            `bson:"overtime_reason,omitempty"`
	ResponsiblePerson string             `bson:"responsible_person,omitempty"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

func (r *EntryRepository) Insert(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, entryToDoc(entry))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// (user_id, date, start_time) unique index: a concurrent insert
			// of the same interval start lost the race.
			return nil, domain.ErrOverlap
		}
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	created := *entry
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *EntryRepository) Update(ctx context.Context, entry *domain.TimeEntry) error {
	oid, err := primitive.ObjectIDFromHex(entry.ID)
	if err != nil {
		return domain.ErrEntryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"date":               entry.Date,
		"start_time":         entry.StartTime,
		"end_time":           entry.EndTime,
		"hours":              entry.Hours,
		"overtime_reason":    entry.OvertimeReason,
		"responsible_person": entry.ResponsiblePerson,
		"updated_at":         entry.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEntryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *EntryRepository) FindByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEntryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var me mongoEntry
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find entry: %w", err)
	}
	return me.toDomain(), nil
}

func (r *EntryRepository) FindByUser(ctx context.Context, userID string) ([]*domain.TimeEntry, error) {
	return r.find(ctx, bson.M{"user_id": userID}, -1)
}

func (r *EntryRepository) FindByUserAndDate(ctx context.Context, userID string, date time.Time) ([]*domain.TimeEntry, error) {
	from, to := dayRange(date)
	return r.find(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lt": to},
	}, 1)
}

func (r *EntryRepository) FindByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.TimeEntry, error) {
	return r.find(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lt": to},
	}, 1)
}

func (r *EntryRepository) FindByUserInPeriod(ctx context.Context, userID string, month time.Month, year int) ([]*domain.TimeEntry, error) {
	from, to := monthRange(month, year)
	return r.find(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lt": to},
	}, 1)
}

func (r *EntryRepository) FindAllInPeriod(ctx context.Context, month time.Month, year int) ([]*domain.TimeEntry, error) {
	from, to := monthRange(month, year)
	return r.find(ctx, bson.M{"date": bson.M{"$gte": from, "$lt": to}}, 1)
}

func (r *EntryRepository) FindAll(ctx context.Context) ([]*domain.TimeEntry, error) {
	return r.find(ctx, bson.M{}, -1)
}

func (r *EntryRepository) find(ctx context.Context, filter bson.M, dateSort int) ([]*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: dateSort}, {Key: "start_time", Value: dateSort}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.TimeEntry
	for cur.Next(ctx) {
		var me mongoEntry
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode entry: %w", err)
		}
		entries = append(entries, me.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// EnsureIndexes creates query indexes plus the overlap-race guard:
// two entries for the same owner, day, and exact start instant cannot both
// be inserted. Distinct-start overlaps are still caught only by the
// read-then-write validation.
func (r *EntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}, {Key: "start_time", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// dayRange returns the [midnight, midnight+24h) window containing t, in UTC.
func dayRange(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	from := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 0, 1)
}

// monthRange returns the [first, next-first) window of a calendar month, UTC.
func monthRange(month time.Month, year int) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func entryToDoc(e *domain.TimeEntry) mongoEntry {
	return mongoEntry{
		UserID:            e.UserID,
		Username:          e.Username,
		Position:          e.Position,
		Date:              e.Date.UTC(),
		StartTime:         e.StartTime.UTC(),
		EndTime:           e.EndTime.UTC(),
		Hours:             e.Hours,
		OvertimeReason:    e.OvertimeReason,
		ResponsiblePerson: e.ResponsiblePerson,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func (me *mongoEntry) toDomain() *domain.TimeEntry {
	return &domain.TimeEntry{
		ID:                me.ID.Hex(),
		UserID:            me.UserID,
		Username:          me.Username,
		Position:          me.Position,
		Date:              me.Date.UTC(),
		StartTime:         me.StartTime.UTC(),
		EndTime:           me.EndTime.UTC(),
		Hours:             me.Hours,
		OvertimeReason:    me.OvertimeReason,
		ResponsiblePerson: me.ResponsiblePerson,
		CreatedAt:         me.CreatedAt.UTC(),
		UpdatedAt:         me.UpdatedAt.UTC(),
	}
}
