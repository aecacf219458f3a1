// internal/app/features/workouts/handler.go
package workouts

import (
	"strings"

	"github.com/dalemusser/octofit/internal/app/system/htmlsanitize"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves /api/workouts.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

type exerciseInput struct {
	Name     *string `json:"name" validate:"required,max=100"`
	Sets     *int    `json:"sets" validate:"required,min=0"`
	Reps     *int    `json:"reps" validate:"min=0"`
	Duration *string `json:"duration" validate:"max=20"`
}

type workoutInput struct {
	Name        *string         `json:"name" validate:"required,max=100"`
	Description *string         `json:"description" validate:"required"`
	Difficulty  *string         `json:"difficulty" validate:"required,max=20"`
	Duration    *int            `json:"duration" validate:"required,min=0"`
	Category    *string         `json:"category" validate:"required,max=50"`
	Exercises   []exerciseInput `json:"exercises" validate:"required,dive"`
}

func inputFrom(wk models.Workout) workoutInput {
	in := workoutInput{
		Name:        &wk.Name,
		Description: &wk.Description,
		Difficulty:  &wk.Difficulty,
		Duration:    &wk.Duration,
		Category:    &wk.Category,
		Exercises:   make([]exerciseInput, len(wk.Exercises)),
	}
	for i := range wk.Exercises {
		ex := wk.Exercises[i]
		in.Exercises[i] = exerciseInput{Name: &ex.Name, Sets: &ex.Sets, Reps: ex.Reps}
		if ex.Duration != "" {
			in.Exercises[i].Duration = &ex.Duration
		}
	}
	return in
}

func (in workoutInput) apply(wk *models.Workout) {
	wk.Name = strings.TrimSpace(*in.Name)
	wk.Description = htmlsanitize.StripTags(*in.Description)
	wk.Difficulty = strings.TrimSpace(*in.Difficulty)
	wk.Duration = *in.Duration
	wk.Category = strings.TrimSpace(*in.Category)
	wk.Exercises = make([]models.Exercise, 0, len(in.Exercises))
	for _, ex := range in.Exercises {
		out := models.Exercise{Name: strings.TrimSpace(*ex.Name), Sets: *ex.Sets, Reps: ex.Reps}
		if ex.Duration != nil {
			out.Duration = strings.TrimSpace(*ex.Duration)
		}
		wk.Exercises = append(wk.Exercises, out)
	}
}
