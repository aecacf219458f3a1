// internal/app/store/workouts/workoutstore.go
package workoutstore

import (
	"context"

	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "workouts"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

func (s *Store) Create(ctx context.Context, w models.Workout) (models.Workout, error) {
	w.ID = primitive.NewObjectID()
	if w.Exercises == nil {
		w.Exercises = []models.Exercise{}
	}
	if _, err := s.c.InsertOne(ctx, w); err != nil {
		return models.Workout{}, err
	}
	return w, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Workout, error) {
	var w models.Workout
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&w); err != nil {
		return models.Workout{}, err
	}
	return w, nil
}

// Update overwrites every field except _id. Returns mongo.ErrNoDocuments when nothing matched.
func (s *Store) Update(ctx context.Context, w models.Workout) (models.Workout, error) {
	if w.Exercises == nil {
		w.Exercises = []models.Exercise{}
	}
	set := bson.M{
		"name":        w.Name,
		"description": w.Description,
		"difficulty":  w.Difficulty,
		"duration":    w.Duration,
		"category":    w.Category,
		"exercises":   w.Exercises,
	}
	var out models.Workout
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": w.ID}, bson.M{"$set": set}, opts).Decode(&out); err != nil {
		return models.Workout{}, err
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

// List returns every workout in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Workout, error) {
	return s.find(ctx, bson.M{})
}

func (s *Store) ListByDifficulty(ctx context.Context, difficulty string) ([]models.Workout, error) {
	return s.find(ctx, bson.M{"difficulty": difficulty})
}

func (s *Store) ListByCategory(ctx context.Context, category string) ([]models.Workout, error) {
	return s.find(ctx, bson.M{"category": category})
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

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Workout, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	workouts := make([]models.Workout, 0)
	if err := cur.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}
