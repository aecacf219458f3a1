package workouts_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/octofit/internal/app/features/workouts"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/octofit/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*workouts.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return workouts.NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func validBody() map[string]any {
	return map[string]any{
		"name":        "Core Crusher",
		"description": "Abs and obliques",
		"difficulty":  "Intermediate",
		"duration":    25,
		"category":    "Core",
		"exercises": []map[string]any{
			{"name": "Plank", "sets": 3, "duration": "60s"},
			{"name": "Crunches", "sets": 3, "reps": 20},
		},
	}
}

func TestFilters_MissingParam(t *testing.T) {
	h := workouts.NewHandler(nil, zap.NewNop())

	rec := testutil.NewRecorder()
	h.ServeByDifficulty(rec, testutil.NewRequest("GET", "/api/workouts/by_difficulty"))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "difficulty parameter is required")

	rec = testutil.NewRecorder()
	h.ServeByCategory(rec, testutil.NewRequest("GET", "/api/workouts/by_category?category="))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "category parameter is required")
}

func TestFilters(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateWorkout(ctx, "Beginner Cardio", "Beginner", "Cardio")
	fx.CreateWorkout(ctx, "HIIT Blast", "Advanced", "Cardio")
	fx.CreateWorkout(ctx, "Yoga Flow", "Beginner", "Flexibility")

	rec := testutil.NewRecorder()
	h.ServeByDifficulty(rec, testutil.NewRequest("GET", "/api/workouts/by_difficulty?difficulty=Beginner"))
	rec.AssertStatus(t, http.StatusOK)
	var got []models.Workout
	rec.DecodeJSON(t, &got)
	if len(got) != 2 {
		t.Errorf("by_difficulty: got %d workouts, want 2", len(got))
	}

	rec = testutil.NewRecorder()
	h.ServeByCategory(rec, testutil.NewRequest("GET", "/api/workouts/by_category?category=Cardio"))
	rec.AssertStatus(t, http.StatusOK)
	got = nil
	rec.DecodeJSON(t, &got)
	if len(got) != 2 {
		t.Errorf("by_category: got %d workouts, want 2", len(got))
	}
}

func TestHandleCreate(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := testutil.NewRecorder()
	h.HandleCreate(rec, testutil.NewJSONRequest("POST", "/api/workouts", validBody()))
	rec.AssertStatus(t, http.StatusCreated)

	var got models.Workout
	rec.DecodeJSON(t, &got)
	if len(got.Exercises) != 2 {
		t.Fatalf("got %d exercises, want 2", len(got.Exercises))
	}
	if got.Exercises[0].Duration != "60s" || got.Exercises[0].Reps != nil {
		t.Errorf("exercise[0]: got %+v", got.Exercises[0])
	}
	if got.Exercises[1].Reps == nil || *got.Exercises[1].Reps != 20 {
		t.Errorf("exercise[1]: got %+v", got.Exercises[1])
	}
}

func TestHandleCreate_ExerciseValidation(t *testing.T) {
	h := workouts.NewHandler(nil, zap.NewNop())

	body := validBody()
	body["exercises"] = []map[string]any{
		{"name": "Plank", "sets": 3},
		{"sets": 3, "reps": 10},
	}

	rec := testutil.NewRecorder()
	h.HandleCreate(rec, testutil.NewJSONRequest("POST", "/api/workouts", body))

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, `"exercises[1].name"`)
}

func TestHandlePatch_ReplacesExercises(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	wk := fx.CreateWorkout(ctx, "Strength Builder", "Intermediate", "Strength")
	id := wk.ID.Hex()

	rec := testutil.NewRecorder()
	req := testutil.NewJSONRequest("PATCH", "/api/workouts/"+id, map[string]any{
		"exercises": []map[string]any{{"name": "Burpees", "sets": 4, "duration": "30s"}},
	})
	h.HandlePatch(rec, testutil.WithChiURLParam(req, "id", id))
	rec.AssertStatus(t, http.StatusOK)

	var got models.Workout
	rec.DecodeJSON(t, &got)
	if len(got.Exercises) != 1 {
		t.Fatalf("got %d exercises, want 1", len(got.Exercises))
	}
	ex := got.Exercises[0]
	if ex.Name != "Burpees" || ex.Reps != nil || ex.Duration != "30s" {
		t.Errorf("exercise: got %+v, want Burpees with no reps", ex)
	}
	if got.Name != "Strength Builder" {
		t.Errorf("Name changed: got %q", got.Name)
	}
}

func TestHandlePatch_KeepsExercises(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	wk := fx.CreateWorkout(ctx, "Strength Builder", "Intermediate", "Strength")
	id := wk.ID.Hex()

	rec := testutil.NewRecorder()
	req := testutil.NewJSONRequest("PATCH", "/api/workouts/"+id, map[string]any{"difficulty": "Advanced"})
	h.HandlePatch(rec, testutil.WithChiURLParam(req, "id", id))
	rec.AssertStatus(t, http.StatusOK)

	var got models.Workout
	rec.DecodeJSON(t, &got)
	if got.Difficulty != "Advanced" {
		t.Errorf("Difficulty: got %q, want Advanced", got.Difficulty)
	}
	if len(got.Exercises) != 1 || got.Exercises[0].Name != "Push-ups" {
		t.Errorf("Exercises: got %+v, want the stored Push-ups", got.Exercises)
	}
}
