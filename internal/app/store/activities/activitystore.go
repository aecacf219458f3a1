// internal/app/store/activities/activitystore.go
package activitystore

import (
	"context"
	"time"

	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "activities"

// Store manages logged activities.
type Store struct {
	c *mongo.Collection
}

// New creates a new activity Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create records a new activity. A zero Date is filled with the current time.
func (s *Store) Create(ctx context.Context, a models.Activity) (models.Activity, error) {
	a.ID = primitive.NewObjectID()
	if a.Date.IsZero() {
		a.Date = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Activity{}, err
	}
	return a, nil
}

// CreateMany inserts a batch of activities, assigning IDs to each.
func (s *Store) CreateMany(ctx context.Context, acts []models.Activity) ([]models.Activity, error) {
	if len(acts) == 0 {
		return acts, nil
	}
	docs := make([]any, len(acts))
	for i := range acts {
		acts[i].ID = primitive.NewObjectID()
		docs[i] = acts[i]
	}
	if _, err := s.c.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return acts, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Activity, error) {
	var a models.Activity
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return models.Activity{}, err
	}
	return a, nil
}

// Update overwrites every field except _id. Returns mongo.ErrNoDocuments when nothing matched.
func (s *Store) Update(ctx context.Context, a models.Activity) (models.Activity, error) {
	set := bson.M{
		"user_id":       a.UserID,
		"activity_type": a.ActivityType,
		"duration":      a.Duration,
		"calories":      a.Calories,
		"distance":      a.Distance,
		"date":          a.Date,
		"notes":         a.Notes,
	}
	var out models.Activity
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": a.ID}, bson.M{"$set": set}, opts).Decode(&out); err != nil {
		return models.Activity{}, err
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// List returns every activity in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Activity, error) {
	return s.find(ctx, bson.M{}, bson.D{{Key: "_id", Value: 1}})
}

// ListByUser returns a user's activities, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.Activity, error) {
	return s.find(ctx, bson.M{"user_id": userID}, newestFirst)
}

// ListByType returns activities of the given type, newest first.
func (s *Store) ListByType(ctx context.Context, activityType string) ([]models.Activity, error) {
	return s.find(ctx, bson.M{"activity_type": activityType}, newestFirst)
}

func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// _id breaks ties between activities logged at the same instant.
var newestFirst = bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}

func (s *Store) find(ctx context.Context, filter bson.M, sort bson.D) ([]models.Activity, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	acts := make([]models.Activity, 0)
	if err := cur.All(ctx, &acts); err != nil {
		return nil, err
	}
	return acts, nil
}
