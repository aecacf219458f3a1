// internal/app/store/leaderboard/leaderboardstore.go
package leaderboardstore

import (
	"context"
	"time"

	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "leaderboard"

// Store holds the materialized leaderboard. Every read is ordered by rank.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create inserts a single entry. UpdatedAt is always refreshed.
func (s *Store) Create(ctx context.Context, e models.LeaderboardEntry) (models.LeaderboardEntry, error) {
	e.ID = primitive.NewObjectID()
	e.UpdatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.LeaderboardEntry{}, err
	}
	return e, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.LeaderboardEntry, error) {
	var e models.LeaderboardEntry
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		return models.LeaderboardEntry{}, err
	}
	return e, nil
}

// Update overwrites every field except _id and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, e models.LeaderboardEntry) (models.LeaderboardEntry, error) {
	set := bson.M{
		"user_id":          e.UserID,
		"user_name":        e.UserName,
		"team_id":          e.TeamID,
		"team_name":        e.TeamName,
		"total_calories":   e.TotalCalories,
		"total_activities": e.TotalActivities,
		"rank":             e.Rank,
		"updated_at":       time.Now().UTC(),
	}
	var out models.LeaderboardEntry
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": e.ID}, bson.M{"$set": set}, opts).Decode(&out); err != nil {
		return models.LeaderboardEntry{}, err
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

// List returns all entries, rank ascending.
func (s *Store) List(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return s.find(ctx, bson.M{}, 0)
}

// Top returns the first limit entries by rank. A limit of 0 yields an empty list.
func (s *Store) Top(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		return []models.LeaderboardEntry{}, nil
	}
	return s.find(ctx, bson.M{}, limit)
}

// ListByTeam returns a team's entries, rank ascending.
func (s *Store) ListByTeam(ctx context.Context, teamID string) ([]models.LeaderboardEntry, error) {
	return s.find(ctx, bson.M{"team_id": teamID}, 0)
}

// ReplaceAll deletes every entry and inserts entries in their place.
// The two steps are not atomic on their own; callers that need isolation
// run this inside a transaction (see system/txn).
func (s *Store) ReplaceAll(ctx context.Context, entries []models.LeaderboardEntry) error {
	if _, err := s.c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	docs := make([]any, len(entries))
	for i := range entries {
		if entries[i].ID.IsZero() {
			entries[i].ID = primitive.NewObjectID()
		}
		docs[i] = entries[i]
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
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

func (s *Store) find(ctx context.Context, filter bson.M, limit int64) ([]models.LeaderboardEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rank", Value: 1}, {Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := make([]models.LeaderboardEntry, 0)
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
