package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EXROSE/VaricoCare/apperrors"
	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/models"
)

// ExerciseService serves the workout library and per-user progress tracking.
type ExerciseService struct {
	exercises *database.Collection[models.Exercise]
	progress  database.ProgressStore
	logger    *zap.Logger
}

func NewExerciseService(exercises *database.Collection[models.Exercise], progress database.ProgressStore, logger *zap.Logger) *ExerciseService {
	return &ExerciseService{exercises: exercises, progress: progress, logger: logger}
}

// List returns the library, optionally narrowed to a category.
func (s *ExerciseService) List(ctx context.Context, category string) ([]models.Exercise, *apperrors.Error) {
	exercises, err := s.exercises.All(ctx)
	if err != nil {
		s.logger.Error("Failed to load exercises", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if category == "" {
		return exercises, nil
	}

	filtered := make([]models.Exercise, 0, len(exercises))
	for _, e := range exercises {
		if string(e.Category) == category {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Get returns a single exercise by id.
func (s *ExerciseService) Get(ctx context.Context, id string) (*models.Exercise, *apperrors.Error) {
	exercise, err := s.exercises.Get(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return exercise, nil
}

// Complete records a finished guided session and returns the updated
// progress. Completing the same exercise again appends another entry; the
// history is a log, not a set.
func (s *ExerciseService) Complete(ctx context.Context, userID, exerciseID string) (*models.Progress, *apperrors.Error) {
	if _, err := s.exercises.Get(ctx, exerciseID); errors.Is(err, database.ErrNotFound) {
		return nil, apperrors.ErrNotFound
	} else if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	progress, err := s.progress.AddCompletion(ctx, userID, exerciseID)
	if err != nil {
		s.logger.Error("Failed to record completion",
			zap.String("user_id", userID),
			zap.String("exercise_id", exerciseID),
			zap.Error(err),
		)
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return progress, nil
}

// Progress returns the user's completion history and streak.
func (s *ExerciseService) Progress(ctx context.Context, userID string) (*models.Progress, *apperrors.Error) {
	progress, err := s.progress.Get(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return progress, nil
}

// Create adds an exercise with a generated id.
func (s *ExerciseService) Create(ctx context.Context, exercise models.Exercise) (*models.Exercise, *apperrors.Error) {
	if aerr := validateExercise(exercise); aerr != nil {
		return nil, aerr
	}

	exercise.ID = uuid.NewString()
	if err := s.exercises.Put(ctx, exercise); err != nil {
		s.logger.Error("Failed to create exercise", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &exercise, nil
}

// Update replaces the exercise with the given id.
func (s *ExerciseService) Update(ctx context.Context, id string, exercise models.Exercise) (*models.Exercise, *apperrors.Error) {
	if aerr := validateExercise(exercise); aerr != nil {
		return nil, aerr
	}

	if _, err := s.exercises.Get(ctx, id); errors.Is(err, database.ErrNotFound) {
		return nil, apperrors.ErrNotFound
	} else if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	exercise.ID = id
	if err := s.exercises.Put(ctx, exercise); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &exercise, nil
}

// Delete removes the exercise with the given id.
func (s *ExerciseService) Delete(ctx context.Context, id string) *apperrors.Error {
	if _, err := s.exercises.Get(ctx, id); errors.Is(err, database.ErrNotFound) {
		return apperrors.ErrNotFound
	} else if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}

	if err := s.exercises.Delete(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

func validateExercise(e models.Exercise) *apperrors.Error {
	fields := map[string]string{}
	if strings.TrimSpace(e.Title) == "" {
		fields["title"] = "This field is required"
	}
	if strings.TrimSpace(e.Duration) == "" {
		fields["duration"] = "This field is required"
	}
	if len(fields) > 0 {
		return apperrors.Validation(fields)
	}
	return nil
}

// SessionSeconds reads the leading integer of the duration display string as
// minutes. Unparsable durations fall back to five minutes.
func SessionSeconds(duration string) int {
	fields := strings.Fields(duration)
	if len(fields) > 0 {
		if minutes, err := strconv.Atoi(fields[0]); err == nil && minutes > 0 {
			return minutes * 60
		}
	}
	return 5 * 60
}
