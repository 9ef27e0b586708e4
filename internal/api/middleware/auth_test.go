package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adit/movie-catalog-api/internal/api/middleware"
	"github.com/adit/movie-catalog-api/internal/domain"
	"github.com/adit/movie-catalog-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret-key-for-testing-only"

func gatedHandler(tokens *service.TokenService) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "no user in context", http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, "user:%d", userID)
	})
	return middleware.Auth(tokens)(next)
}

func TestAuth_Gate(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	expiredTokens := service.NewTokenService(testSecret, -time.Minute)
	user := &domain.User{ID: 7, Name: "Gate User"}

	validToken, err := tokens.Issue(user)
	require.NoError(t, err)
	expiredToken, err := expiredTokens.Issue(user)
	require.NoError(t, err)

	tests := []struct {
		name       string
		target     string
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no token",
			target:     "/movies",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authorization token required",
		},
		{
			name:       "valid token via query string",
			target:     "/movies?token=" + validToken,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token must be sent as a Bearer Authorization header",
		},
		{
			name:       "non-bearer scheme",
			target:     "/movies",
			authHeader: "Basic " + validToken,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token must be sent as a Bearer Authorization header",
		},
		{
			name:       "malformed bearer token",
			target:     "/movies",
			authHeader: "Bearer not-a-token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token",
		},
		{
			name:       "expired bearer token",
			target:     "/movies",
			authHeader: "Bearer " + expiredToken,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token has expired",
		},
		{
			name:       "valid bearer token",
			target:     "/movies",
			authHeader: "Bearer " + validToken,
			wantStatus: http.StatusOK,
			wantBody:   "user:7",
		},
	}

	handler := gatedHandler(tokens)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAuth_ExpiredNeverReportedAsInvalid(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	expiredTokens := service.NewTokenService(testSecret, -time.Minute)

	expiredToken, err := expiredTokens.Issue(&domain.User{ID: 1})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Authorization", "Bearer "+expiredToken)

	rec := httptest.NewRecorder()
	gatedHandler(tokens).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Invalid token")
}
