package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/adit/movie-catalog-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// displayZone is the fixed zone expiry timestamps are rendered in for API
// responses (UTC+7).
var displayZone = time.FixedZone("WIB", 7*60*60)

type TokenClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim as a user id.
func (c *TokenClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, domain.ErrTokenInvalid
	}
	return uint(id), nil
}

// TokenService issues and verifies the API's bearer tokens. It is stateless;
// tokens are self-contained and die at expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the user with a fixed TTL from now.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		Name: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token. Expired and malformed/forged tokens
// fail with distinct errors so the access gate can answer differently.
func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// ExpiryOf re-reads the expiry instant from a freshly issued token. A token
// whose exp claim cannot be recovered maps to the API's 500 response.
func (s *TokenService) ExpiryOf(tokenString string) (time.Time, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return time.Time{}, domain.ErrTokenExpiry
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, domain.ErrTokenExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// FormatExpiry renders an expiry instant for response payloads in the fixed
// UTC+7 display zone, annotated with the validity window in whole hours.
func (s *TokenService) FormatExpiry(t time.Time) string {
	hours := int(s.ttl.Hours())
	if hours < 1 {
		hours = 1
	}
	return t.In(displayZone).Format("2006-01-02 15:04:05") + fmt.Sprintf(" ( +%d Jam )", hours)
}
