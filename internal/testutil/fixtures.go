package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/adit/movie-catalog-api/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// RegisterResponse matches the API registration response
type RegisterResponse struct {
	Message string `json:"message"`
	User    struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// BuildAndAuthenticate registers a user via the API and returns the email and
// bearer token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (string, string) {
	t.Helper()

	reqBody := map[string]string{
		"name":     b.name,
		"email":    b.email,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("registration failed with status %d: %s", resp.StatusCode, raw)
	}

	var result RegisterResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode registration response: %v", err)
	}

	return b.email, result.Token
}

// MovieBuilder creates test movies, optionally with attached genres
type MovieBuilder struct {
	title       string
	description *string
	releaseYear int
	genreIDs    []uint
}

func NewMovieBuilder() *MovieBuilder {
	return &MovieBuilder{
		title:       fmt.Sprintf("testmovie_%s", uuid.New().String()[:8]),
		releaseYear: 2020,
	}
}

func (b *MovieBuilder) WithTitle(title string) *MovieBuilder {
	b.title = title
	return b
}

func (b *MovieBuilder) WithDescription(description string) *MovieBuilder {
	b.description = &description
	return b
}

func (b *MovieBuilder) WithReleaseYear(year int) *MovieBuilder {
	b.releaseYear = year
	return b
}

func (b *MovieBuilder) WithGenres(genreIDs ...uint) *MovieBuilder {
	b.genreIDs = genreIDs
	return b
}

// Build creates the movie and its join rows directly in the database
func (b *MovieBuilder) Build(t *testing.T, db *gorm.DB) *domain.Movie {
	t.Helper()

	movie := &domain.Movie{
		Title:       b.title,
		Description: b.description,
		ReleaseYear: b.releaseYear,
	}
	if err := db.Create(movie).Error; err != nil {
		t.Fatalf("failed to create movie: %v", err)
	}

	for _, genreID := range b.genreIDs {
		row := &domain.MovieGenre{MovieID: movie.ID, GenreID: genreID}
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("failed to attach genre %d: %v", genreID, err)
		}
	}

	return movie
}

// SeededGenreIDs returns the ids of the seeded genres in insertion order
func SeededGenreIDs(t *testing.T, db *gorm.DB) []uint {
	t.Helper()

	var genres []domain.Genre
	if err := db.Order("id ASC").Find(&genres).Error; err != nil {
		t.Fatalf("failed to load genres: %v", err)
	}
	if len(genres) == 0 {
		t.Fatal("no seeded genres found")
	}

	ids := make([]uint, len(genres))
	for i, g := range genres {
		ids[i] = g.ID
	}
	return ids
}
