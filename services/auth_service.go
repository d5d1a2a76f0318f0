package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/EXROSE/VaricoCare/apperrors"
	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/models"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthService manages accounts and server-side sessions. A session token is
// issued at login and revoked at logout; nothing about it is stateless.
type AuthService struct {
	users    database.UserRepository
	sessions database.SessionStore
	logger   *zap.Logger
}

func NewAuthService(users database.UserRepository, sessions database.SessionStore, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

// Signup registers a new account and logs it in.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*models.Session, *apperrors.Error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, database.ErrNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         req.Name,
		Role:         models.RoleUser,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.String("email", email), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	session, err := s.sessions.Create(ctx, user.ID.String(), user.Name, user.Role)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	return session, nil
}

// Login verifies credentials and issues a session. Unknown emails and wrong
// passwords both answer with the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*models.Session, *apperrors.Error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	session, err := s.sessions.Create(ctx, user.ID.String(), user.Name, user.Role)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	return session, nil
}

// Logout revokes the session. Revoking an already-dead token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) *apperrors.Error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}
