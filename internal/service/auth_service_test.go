package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/adit/movie-catalog-api/internal/domain"
	"github.com/adit/movie-catalog-api/internal/repository/postgres"
	"github.com/adit/movie-catalog-api/internal/service"
	"github.com/adit/movie-catalog-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewServices(repos, testutil.TestConfig()).Auth
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterInput
		setup   func()
		wantErr error
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Name:     "New User",
				Email:    "newuser@example.com",
				Password: "password123",
			},
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Name:     "Other User",
				Email:    "existing@example.com",
				Password: "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("existing@example.com").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, result.Token)
			assert.WithinDuration(t, time.Now().Add(time.Hour), result.ExpiresAt, 5*time.Second)

			// Password is stored hashed only
			assert.NotEqual(t, tt.input.Password, result.User.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword(
				[]byte(result.User.PasswordHash), []byte(tt.input.Password)))
		})
	}
}

func TestAuthService_RegisterDatabaseError(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewServices(repos, testutil.TestConfig()).Auth

	testDB.Truncate(t)

	// A failed email lookup must surface, not read as "email is free"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := authService.Register(ctx, service.RegisterInput{
		Name:     "New User",
		Email:    "newuser@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEmailTaken)

	var users int64
	require.NoError(t, testDB.DB.Model(&domain.User{}).Count(&users).Error)
	assert.Zero(t, users)
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@example.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "successful login",
			email:    user.Email,
			password: rawPassword,
		},
		{
			name:     "wrong password",
			email:    user.Email,
			password: "wrongpassword",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: rawPassword,
			wantErr:  domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := services.Auth.Login(ctx, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, result.User.ID)
			assert.NotEmpty(t, result.Token)

			// The issued token round-trips through verification
			claims, err := services.Token.Verify(result.Token)
			require.NoError(t, err)
			userID, err := claims.UserID()
			require.NoError(t, err)
			assert.Equal(t, user.ID, userID)
		})
	}
}
