package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sanabel-org/adahi-api/internal/core/domain"
)

const (
	submissionsCollection     = "submissions"
	slaughterEventsCollection = "slaughter_events"
)

type SubmissionRepository struct {
	col *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{col: db.Collection(submissionsCollection)}
}

// Create inserts a new submission document. The identifier is assigned here
// so the caller gets the complete record back without a second read.
func (r *SubmissionRepository) Create(ctx context.Context, s *domain.AdahiSubmission) (*domain.AdahiSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	s.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (*domain.AdahiSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.AdahiSubmission
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByOwner returns the given user's submissions, newest first.
func (r *SubmissionRepository) ListByOwner(ctx context.Context, userID string) ([]domain.AdahiSubmission, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

// ListAll returns every submission, newest first.
func (r *SubmissionRepository) ListAll(ctx context.Context) ([]domain.AdahiSubmission, error) {
	return r.list(ctx, bson.M{})
}

func (r *SubmissionRepository) list(ctx context.Context, filter bson.M) ([]domain.AdahiSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submission_date", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]domain.AdahiSubmission, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Replace overwrites an existing document with the merged record. Last write
// wins; no version check.
func (r *SubmissionRepository) Replace(ctx context.Context, s *domain.AdahiSubmission) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

func (r *SubmissionRepository) SetEntryStatus(ctx context.Context, id string, status domain.EntryStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": string(status)},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

func (r *SubmissionRepository) SetSlaughterStatus(ctx context.Context, id string, status domain.SlaughterStatus, date *time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"slaughter_status": string(status)}}
	if date != nil {
		update["$set"].(bson.M)["slaughter_date"] = date.UTC()
	} else {
		update["$unset"] = bson.M{"slaughter_date": ""}
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

func (r *SubmissionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the per-owner and newest-first
// queries.
func (r *SubmissionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "submission_date", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// SlaughterEventRepository appends workflow transitions to the audit trail.
type SlaughterEventRepository struct {
	col *mongo.Collection
}

func NewSlaughterEventRepository(db *mongo.Database) *SlaughterEventRepository {
	return &SlaughterEventRepository{col: db.Collection(slaughterEventsCollection)}
}

func (r *SlaughterEventRepository) Insert(ctx context.Context, event *domain.SlaughterEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"submission_id": event.SubmissionID,
		"from":          string(event.From),
		"to":            string(event.To),
		"actor_id":      event.ActorID,
		"timestamp":     event.Timestamp.UTC(),
		"recorded_at":   time.Now().UTC(),
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
