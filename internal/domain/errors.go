package domain

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already taken")
)

// Token errors
var (
	ErrTokenMissing      = errors.New("authorization token required")
	ErrTokenExpired      = errors.New("token has expired")
	ErrTokenInvalid      = errors.New("invalid token")
	ErrTokenWrongChannel = errors.New("token must be sent as a bearer authorization header")
	ErrTokenExpiry       = errors.New("invalid expiration timestamp")
)

// Catalog errors
var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrUnknownGenre  = errors.New("unknown genre id")
)
