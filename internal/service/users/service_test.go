package users

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleetops/FMS-CarBookingService/internal/api/middleware"
	"github.com/fleetops/FMS-CarBookingService/internal/domain"
	userRepo "github.com/fleetops/FMS-CarBookingService/internal/infra/storage/user"
	"github.com/fleetops/FMS-CarBookingService/internal/service/users/models"
)

type fakeUserRepo struct {
	byEmail    *domain.User
	byEmailErr error
	created    *domain.User
	createErr  error
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *user
	out.ID = uuid.New()
	f.created = &out
	return &out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.User, error) {
	if f.created != nil {
		return f.created, nil
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return f.byEmail, f.byEmailErr
}

func (f *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, _ *domain.User) error {
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testSecret = "test-secret"

func storedUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "somchai@example.co.th",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Department:   "ฝ่ายขาย",
	}
}

func TestLogin_Success(t *testing.T) {
	user := storedUser(t, "password123")
	svc := NewService(&fakeUserRepo{byEmail: user}, testSecret, time.Hour, nopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "  Somchai@Example.co.th ",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.User.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, 5*time.Second)

	// The token round-trips through the auth middleware's claims
	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		svc := NewService(&fakeUserRepo{byEmailErr: userRepo.ErrUserNotFound}, testSecret, time.Hour, nopLogger{})

		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "nobody@example.co.th",
			Password: "password123",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := NewService(&fakeUserRepo{byEmail: storedUser(t, "password123")}, testSecret, time.Hour, nopLogger{})

		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "somchai@example.co.th",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCreate(t *testing.T) {
	t.Run("defaults role and normalizes email", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := NewService(repo, testSecret, time.Hour, nopLogger{})

		resp, err := svc.Create(context.Background(), &models.CreateUserRequest{
			Email:    " NewUser@Example.co.th ",
			Password: "password123",
		})
		require.NoError(t, err)

		assert.Equal(t, "newuser@example.co.th", resp.Email)
		assert.Equal(t, domain.RoleUser, resp.Role)
		assert.NotEqual(t, "password123", repo.created.PasswordHash)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewService(&fakeUserRepo{}, testSecret, time.Hour, nopLogger{})

		tests := []struct {
			name string
			req  models.CreateUserRequest
		}{
			{"no at sign", models.CreateUserRequest{Email: "not-an-email", Password: "password123"}},
			{"empty email", models.CreateUserRequest{Password: "password123"}},
			{"short password", models.CreateUserRequest{Email: "a@b.co", Password: strings.Repeat("x", minPasswordLength-1)}},
			{"unknown role", models.CreateUserRequest{Email: "a@b.co", Password: "password123", Role: "root"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Create(context.Background(), &tt.req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewService(&fakeUserRepo{createErr: userRepo.ErrEmailTaken}, testSecret, time.Hour, nopLogger{})

		_, err := svc.Create(context.Background(), &models.CreateUserRequest{
			Email:    "taken@example.co.th",
			Password: "password123",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}
