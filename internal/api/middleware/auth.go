package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/adit/movie-catalog-api/internal/domain"
	"github.com/adit/movie-catalog-api/internal/service"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// Auth is the access gate for catalog routes. Channel correctness is checked
// before the token itself: a token offered anywhere but a Bearer
// Authorization header is refused without being verified.
func Auth(tokens *service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				if r.URL.Query().Get("token") != "" {
					log.Warn().Str("path", r.URL.Path).Msg("token supplied via query string")
					unauthorized(w, "Token must be sent as a Bearer Authorization header")
					return
				}
				unauthorized(w, "Authorization token required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "Token must be sent as a Bearer Authorization header")
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("token verification failed")
				if errors.Is(err, domain.ErrTokenExpired) {
					unauthorized(w, "Token has expired")
					return
				}
				unauthorized(w, "Invalid token")
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				unauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the authenticated user id set by Auth.
func GetUserID(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	errorJSON(w, http.StatusUnauthorized, message)
}

func errorJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
