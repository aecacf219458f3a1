// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Collections lists every collection the tracker stores documents in.
var Collections = []string{"users", "teams", "activities", "leaderboard", "workouts"}

// EnsureAll creates the collections (if missing) and attaches JSON-Schema
// validators. Deployments that reject collMod/validators are logged and skipped.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	schemas := map[string]bson.M{
		"users":       usersSchema(),
		"teams":       teamsSchema(),
		"activities":  activitiesSchema(),
		"leaderboard": leaderboardSchema(),
		"workouts":    workoutsSchema(),
	}

	existing := map[string]bool{}
	if names, err := db.ListCollectionNames(ctx, bson.M{}); err == nil {
		for _, n := range names {
			existing[n] = true
		}
	}

	var problems []string
	for _, coll := range Collections {
		if !existing[coll] {
			if err := createCollection(ctx, db, coll); err != nil {
				problems = append(problems, coll+": "+err.Error())
				continue
			}
		}
		if err := setValidator(ctx, db, coll, schemas[coll]); err != nil {
			if isUnsupported(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				continue
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func createCollection(ctx context.Context, db *mongo.Database, name string) error {
	if err := db.CreateCollection(ctx, name); err != nil {
		// Another instance may have created it between list and create.
		if isNamespaceExistsErr(err) {
			return nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	if err := db.RunCommand(ctx, cmd).Err(); err != nil {
		return err
	}
	zap.L().Debug("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 48 {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

// isUnsupported matches "no such command" (59) and "not implemented" (115)
// as reported by DocumentDB and similar servers.
func isUnsupported(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || ce.Code == 115) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "no such command") ||
		strings.Contains(s, "not implemented") ||
		strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

var nonBlank = bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}

func usersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "email"},
			"properties": bson.M{
				"name":       nonBlank,
				"email":      nonBlank,
				"team_id":    bson.M{"bsonType": bson.A{"string", "null"}},
				"created_at": bson.M{"bsonType": "date"},
			},
		},
	}
}

func teamsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name"},
			"properties": bson.M{
				"name":        nonBlank,
				"description": bson.M{"bsonType": bson.A{"string", "null"}},
				"created_at":  bson.M{"bsonType": "date"},
			},
		},
	}
}

func activitiesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"user_id", "activity_type", "duration", "calories", "date"},
			"properties": bson.M{
				"user_id":       nonBlank,
				"activity_type": nonBlank,
				"duration":      bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"calories":      bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"distance":      bson.M{"bsonType": bson.A{"double", "null"}},
				"date":          bson.M{"bsonType": "date"},
				"notes":         bson.M{"bsonType": bson.A{"string", "null"}},
			},
		},
	}
}

func leaderboardSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"user_id", "user_name", "total_calories", "total_activities", "rank"},
			"properties": bson.M{
				"user_id":          bson.M{"bsonType": "string"},
				"user_name":        bson.M{"bsonType": "string"},
				"team_id":          bson.M{"bsonType": bson.A{"string", "null"}},
				"team_name":        bson.M{"bsonType": bson.A{"string", "null"}},
				"total_calories":   bson.M{"bsonType": bson.A{"int", "long"}},
				"total_activities": bson.M{"bsonType": bson.A{"int", "long"}},
				"rank":             bson.M{"bsonType": bson.A{"int", "long"}},
				"updated_at":       bson.M{"bsonType": "date"},
			},
		},
	}
}

func workoutsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "difficulty", "duration", "category"},
			"properties": bson.M{
				"name":        nonBlank,
				"description": bson.M{"bsonType": "string"},
				"difficulty":  bson.M{"bsonType": "string"},
				"duration":    bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 0},
				"category":    bson.M{"bsonType": "string"},
				"exercises": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"required": bson.A{"name"},
						"properties": bson.M{
							"name": bson.M{"bsonType": "string"},
							"sets": bson.M{"bsonType": bson.A{"int", "long"}},
						},
					},
				},
			},
		},
	}
}
