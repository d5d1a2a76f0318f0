package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/EXROSE/VaricoCare/models"
)

// ProgressStore tracks completed exercises and the streak counter per user.
type ProgressStore interface {
	Get(ctx context.Context, userID string) (*models.Progress, error)
	AddCompletion(ctx context.Context, userID, exerciseID string) (*models.Progress, error)
}

type ProgressRepository struct {
	client *redis.Client
}

func NewProgressRepository(client *redis.Client) *ProgressRepository {
	return &ProgressRepository{client: client}
}

func (r *ProgressRepository) completionsKey(userID string) string {
	return fmt.Sprintf("completions:user:%s", userID)
}

func (r *ProgressRepository) streakKey(userID string) string {
	return fmt.Sprintf("streak:user:%s", userID)
}

func (r *ProgressRepository) Get(ctx context.Context, userID string) (*models.Progress, error) {
	completions, err := r.client.LRange(ctx, r.completionsKey(userID), 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	if completions == nil {
		completions = []string{}
	}

	streak, err := r.client.Get(ctx, r.streakKey(userID)).Int()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	return &models.Progress{Completions: completions, Streak: streak}, nil
}

func (r *ProgressRepository) AddCompletion(ctx context.Context, userID, exerciseID string) (*models.Progress, error) {
	if err := r.client.RPush(ctx, r.completionsKey(userID), exerciseID).Err(); err != nil {
		return nil, err
	}
	if err := r.client.Incr(ctx, r.streakKey(userID)).Err(); err != nil {
		return nil, err
	}
	return r.Get(ctx, userID)
}
