package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/EXROSE/VaricoCare/apperrors"
	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/models"
)

// memProgressStore is an in-memory ProgressStore for service tests.
type memProgressStore struct {
	completions map[string][]string
	streaks     map[string]int
}

func newMemProgressStore() *memProgressStore {
	return &memProgressStore{
		completions: make(map[string][]string),
		streaks:     make(map[string]int),
	}
}

func (m *memProgressStore) Get(_ context.Context, userID string) (*models.Progress, error) {
	completions := m.completions[userID]
	if completions == nil {
		completions = []string{}
	}
	return &models.Progress{Completions: completions, Streak: m.streaks[userID]}, nil
}

func (m *memProgressStore) AddCompletion(ctx context.Context, userID, exerciseID string) (*models.Progress, error) {
	m.completions[userID] = append(m.completions[userID], exerciseID)
	m.streaks[userID]++
	return m.Get(ctx, userID)
}

func newExerciseService() *ExerciseService {
	col := database.NewCollection(database.NewMemoryKV(), database.KeyExercises,
		func(e models.Exercise) string { return e.ID }, database.DefaultExercises)
	return NewExerciseService(col, newMemProgressStore(), zap.NewNop())
}

func TestExerciseList_CategoryFilter(t *testing.T) {
	svc := newExerciseService()
	ctx := context.Background()

	all, aerr := svc.List(ctx, "")
	assert.Nil(t, aerr)
	assert.Len(t, all, 3)

	yoga, aerr := svc.List(ctx, "Yoga")
	assert.Nil(t, aerr)
	assert.Len(t, yoga, 1)
	assert.Equal(t, "Varico-Yoga: Cat Cow", yoga[0].Title)
}

func TestExerciseComplete_TracksHistoryAndStreak(t *testing.T) {
	svc := newExerciseService()
	ctx := context.Background()

	progress, aerr := svc.Complete(ctx, "u1", "1")
	assert.Nil(t, aerr)
	assert.Equal(t, []string{"1"}, progress.Completions)
	assert.Equal(t, 1, progress.Streak)

	// Repeat completions append; the history is a log.
	progress, aerr = svc.Complete(ctx, "u1", "1")
	assert.Nil(t, aerr)
	assert.Equal(t, []string{"1", "1"}, progress.Completions)
	assert.Equal(t, 2, progress.Streak)
}

func TestExerciseComplete_UnknownExercise(t *testing.T) {
	svc := newExerciseService()

	_, aerr := svc.Complete(context.Background(), "u1", "missing")
	assert.Equal(t, apperrors.ErrNotFound, aerr)
}

func TestExerciseProgress_EmptyForNewUser(t *testing.T) {
	svc := newExerciseService()

	progress, aerr := svc.Progress(context.Background(), "fresh")
	assert.Nil(t, aerr)
	assert.Empty(t, progress.Completions)
	assert.Zero(t, progress.Streak)
}

func TestExerciseCRUD(t *testing.T) {
	svc := newExerciseService()
	ctx := context.Background()

	created, aerr := svc.Create(ctx, models.Exercise{
		Title:     "Legs Up The Wall",
		Category:  models.CategoryCirculation,
		Duration:  "12 min",
		Intensity: models.IntensityLow,
	})
	assert.Nil(t, aerr)
	assert.NotEmpty(t, created.ID)

	updated, aerr := svc.Update(ctx, created.ID, models.Exercise{
		Title: "Legs Up The Wall (Supported)", Duration: "15 min",
	})
	assert.Nil(t, aerr)
	assert.Equal(t, created.ID, updated.ID)

	aerr = svc.Delete(ctx, created.ID)
	assert.Nil(t, aerr)

	_, aerr = svc.Get(ctx, created.ID)
	assert.Equal(t, apperrors.ErrNotFound, aerr)
}

func TestSessionSeconds(t *testing.T) {
	assert.Equal(t, 300, SessionSeconds("5 min"))
	assert.Equal(t, 600, SessionSeconds("10 min"))
	assert.Equal(t, 480, SessionSeconds("8 min"))
	// Unparsable durations fall back to five minutes.
	assert.Equal(t, 300, SessionSeconds("a while"))
	assert.Equal(t, 300, SessionSeconds(""))
}
