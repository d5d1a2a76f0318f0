package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/EXROSE/VaricoCare/apperrors"
	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/models"
)

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (m *memUserRepo) Create(_ context.Context, user *models.User) error {
	m.users[user.Email] = user
	return nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, database.ErrNotFound
	}
	return user, nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, database.ErrNotFound
}

type memSessionStore struct {
	sessions map[string]*models.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*models.Session)}
}

func (m *memSessionStore) Create(_ context.Context, userID, name string, role models.UserRole) (*models.Session, error) {
	session := &models.Session{Token: uuid.NewString(), UserID: userID, Name: name, Role: role}
	m.sessions[session.Token] = session
	return session, nil
}

func (m *memSessionStore) Get(_ context.Context, token string) (*models.Session, error) {
	return m.sessions[token], nil
}

func (m *memSessionStore) Delete(_ context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func newAuthFixture() (*AuthService, *memUserRepo, *memSessionStore) {
	users := newMemUserRepo()
	sessions := newMemSessionStore()
	return NewAuthService(users, sessions, zap.NewNop()), users, sessions
}

func TestSignup_CreatesUserAndSession(t *testing.T) {
	svc, users, sessions := newAuthFixture()

	session, aerr := svc.Signup(context.Background(), SignupRequest{
		Email: "Pat@Example.com", Name: "Pat", Password: "correct-horse",
	})
	assert.Nil(t, aerr)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, models.RoleUser, session.Role)

	// Email is normalized and the password is never stored in the clear.
	user, err := users.FindByEmail(context.Background(), "pat@example.com")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.NotEmpty(t, sessions.sessions[session.Token])
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, aerr := svc.Signup(ctx, SignupRequest{Email: "pat@example.com", Name: "Pat", Password: "correct-horse"})
	assert.Nil(t, aerr)

	_, aerr = svc.Signup(ctx, SignupRequest{Email: "PAT@example.com", Name: "Pat Again", Password: "other-pass"})
	assert.Equal(t, apperrors.ErrEmailTaken, aerr)
}

func TestLogin_RightAndWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, aerr := svc.Signup(ctx, SignupRequest{Email: "pat@example.com", Name: "Pat", Password: "correct-horse"})
	assert.Nil(t, aerr)

	session, aerr := svc.Login(ctx, LoginRequest{Email: "pat@example.com", Password: "correct-horse"})
	assert.Nil(t, aerr)
	assert.Equal(t, "Pat", session.Name)

	_, aerr = svc.Login(ctx, LoginRequest{Email: "pat@example.com", Password: "wrong"})
	assert.Equal(t, apperrors.ErrInvalidCredentials, aerr)

	// Unknown email answers identically to a wrong password.
	_, aerr = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.Equal(t, apperrors.ErrInvalidCredentials, aerr)
}

func TestLogout_RevokesSession(t *testing.T) {
	svc, _, sessions := newAuthFixture()
	ctx := context.Background()

	session, aerr := svc.Signup(ctx, SignupRequest{Email: "pat@example.com", Name: "Pat", Password: "correct-horse"})
	assert.Nil(t, aerr)

	aerr = svc.Logout(ctx, session.Token)
	assert.Nil(t, aerr)
	assert.Nil(t, sessions.sessions[session.Token])

	// Logging out twice is a no-op.
	aerr = svc.Logout(ctx, session.Token)
	assert.Nil(t, aerr)
}
