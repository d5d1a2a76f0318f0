package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/EXROSE/VaricoCare/models"
)

// SessionStore manages server-side login sessions. Sessions are created at
// login and destroyed at logout; lookups refresh the TTL.
type SessionStore interface {
	Create(ctx context.Context, userID, name string, role models.UserRole) (*models.Session, error)
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func (r *SessionRepository) getKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (r *SessionRepository) Create(ctx context.Context, userID, name string, role models.UserRole) (*models.Session, error) {
	session := &models.Session{
		Token:  uuid.NewString(),
		UserID: userID,
		Name:   name,
		Role:   role,
	}
	data, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err := r.client.Set(ctx, r.getKey(session.Token), data, r.ttl).Err(); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *SessionRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	data, err := r.client.Get(ctx, r.getKey(token)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}

	// Sliding expiry: active sessions stay alive.
	r.client.Expire(ctx, r.getKey(token), r.ttl)
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.getKey(token)).Err()
}
