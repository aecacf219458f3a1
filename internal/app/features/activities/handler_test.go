package activities_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/octofit/internal/app/features/activities"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/octofit/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*activities.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return activities.NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestFilters_MissingParam(t *testing.T) {
	h := activities.NewHandler(nil, zap.NewNop())

	tests := []struct {
		name   string
		target string
		call   func(http.ResponseWriter, *http.Request)
		want   string
	}{
		{"by_user", "/api/activities/by_user", h.ServeByUser, "user_id parameter is required"},
		{"by_type", "/api/activities/by_type", h.ServeByType, "activity_type parameter is required"},
		{"by_type_wrong_param", "/api/activities/by_type?type=Running", h.ServeByType, "activity_type parameter is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			tt.call(rec, testutil.NewRequest("GET", tt.target))
			rec.AssertStatus(t, http.StatusBadRequest)
			rec.AssertContains(t, tt.want)
		})
	}
}

func TestServeByUser_NewestFirst(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tony := fx.CreateUser(ctx, "Tony Stark", "tony@stark.com", nil)
	bruce := fx.CreateUser(ctx, "Bruce Banner", "bruce@avengers.com", nil)
	now := time.Now().UTC().Truncate(time.Millisecond)

	fx.CreateActivity(ctx, tony.ID, "Running", 300, now.Add(-48*time.Hour))
	fx.CreateActivity(ctx, tony.ID, "Cycling", 200, now)
	fx.CreateActivity(ctx, tony.ID, "Yoga", 100, now.Add(-24*time.Hour))
	fx.CreateActivity(ctx, bruce.ID, "Boxing", 900, now)

	rec := testutil.NewRecorder()
	h.ServeByUser(rec, testutil.NewRequest("GET", "/api/activities/by_user?user_id="+tony.ID.Hex()))
	rec.AssertStatus(t, http.StatusOK)

	var got []models.Activity
	rec.DecodeJSON(t, &got)
	want := []string{"Cycling", "Yoga", "Running"}
	if len(got) != len(want) {
		t.Fatalf("got %d activities, want %d", len(got), len(want))
	}
	for i, a := range got {
		if a.ActivityType != want[i] {
			t.Errorf("activity[%d]: got %q, want %q", i, a.ActivityType, want[i])
		}
	}
}

func TestServeByType(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "Diana Prince", "diana@themyscira.com", nil)
	now := time.Now()
	fx.CreateActivity(ctx, u.ID, "Running", 300, now)
	fx.CreateActivity(ctx, u.ID, "running", 300, now)
	fx.CreateActivity(ctx, u.ID, "Swimming", 300, now)

	rec := testutil.NewRecorder()
	h.ServeByType(rec, testutil.NewRequest("GET", "/api/activities/by_type?activity_type=Running"))
	rec.AssertStatus(t, http.StatusOK)

	var got []models.Activity
	rec.DecodeJSON(t, &got)
	if len(got) != 1 {
		t.Fatalf("got %d activities, want 1 (match is case-sensitive)", len(got))
	}
}

func TestHandleCreate(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := testutil.NewRecorder()
	h.HandleCreate(rec, testutil.NewJSONRequest("POST", "/api/activities", map[string]any{
		"user_id":       "u-1",
		"activity_type": "Running",
		"duration":      45,
		"calories":      450,
		"distance":      7.5,
		"date":          "2025-03-01T07:30:00Z",
		"notes":         "<i>Morning</i> run",
	}))
	rec.AssertStatus(t, http.StatusCreated)

	var got models.Activity
	rec.DecodeJSON(t, &got)
	if got.ID.IsZero() {
		t.Error("expected generated _id")
	}
	if got.Distance == nil || *got.Distance != 7.5 {
		t.Errorf("Distance: got %v, want 7.5", got.Distance)
	}
	if got.Notes == nil || *got.Notes != "Morning run" {
		t.Errorf("Notes: got %v, want %q", got.Notes, "Morning run")
	}
	if want := time.Date(2025, 3, 1, 7, 30, 0, 0, time.UTC); !got.Date.Equal(want) {
		t.Errorf("Date: got %v, want %v", got.Date, want)
	}
}

func TestHandleCreate_Validation(t *testing.T) {
	h := activities.NewHandler(nil, zap.NewNop())

	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"missing_date", map[string]any{"user_id": "u", "activity_type": "Yoga", "duration": 30, "calories": 100}, `"date"`},
		{"negative_calories", map[string]any{"user_id": "u", "activity_type": "Yoga", "duration": 30, "calories": -1, "date": "2025-01-01T00:00:00Z"}, `"calories"`},
		{"missing_type", map[string]any{"user_id": "u", "duration": 30, "calories": 1, "date": "2025-01-01T00:00:00Z"}, `"activity_type"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			h.HandleCreate(rec, testutil.NewJSONRequest("POST", "/api/activities", tt.body))
			rec.AssertStatus(t, http.StatusBadRequest)
			rec.AssertContains(t, tt.field)
		})
	}
}

func TestHandlePatch(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "Arthur Curry", "arthur@atlantis.com", nil)
	a := fx.CreateActivity(ctx, u.ID, "Swimming", 500, time.Now())
	id := a.ID.Hex()

	rec := testutil.NewRecorder()
	req := testutil.NewJSONRequest("PATCH", "/api/activities/"+id, map[string]any{"calories": 650})
	h.HandlePatch(rec, testutil.WithChiURLParam(req, "id", id))
	rec.AssertStatus(t, http.StatusOK)

	var got models.Activity
	rec.DecodeJSON(t, &got)
	if got.Calories != 650 {
		t.Errorf("Calories: got %d, want 650", got.Calories)
	}
	if got.ActivityType != "Swimming" || got.UserID != u.ID.Hex() {
		t.Errorf("unchanged fields modified: %+v", got)
	}
}

func TestHandleDelete_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	id := primitive.NewObjectID().Hex()

	rec := testutil.NewRecorder()
	h.HandleDelete(rec, testutil.WithChiURLParam(testutil.NewRequest("DELETE", "/api/activities/"+id), "id", id))

	rec.AssertStatus(t, http.StatusNotFound)
}
