package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/EXROSE/VaricoCare/models"
)

// CheckoutStore persists the per-user checkout session for the duration of
// the flow. Get returns (nil, nil) when no flow is in progress.
type CheckoutStore interface {
	Get(ctx context.Context, userID string) (*models.CheckoutSession, error)
	Save(ctx context.Context, session *models.CheckoutSession) error
	Delete(ctx context.Context, userID string) error
}

type CheckoutRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCheckoutRepository(client *redis.Client, ttl time.Duration) *CheckoutRepository {
	return &CheckoutRepository{client: client, ttl: ttl}
}

func (r *CheckoutRepository) getKey(userID string) string {
	return fmt.Sprintf("checkout:user:%s", userID)
}

func (r *CheckoutRepository) Get(ctx context.Context, userID string) (*models.CheckoutSession, error) {
	data, err := r.client.Get(ctx, r.getKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.CheckoutSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *CheckoutRepository) Save(ctx context.Context, session *models.CheckoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.getKey(session.UserID), data, r.ttl).Err()
}

func (r *CheckoutRepository) Delete(ctx context.Context, userID string) error {
	return r.client.Del(ctx, r.getKey(userID)).Err()
}
