package repository

import (
	"context"

	"github.com/adit/movie-catalog-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	GetByID(ctx context.Context, id uint) (*domain.Movie, error)
	GetAll(ctx context.Context) ([]*domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id uint) error
}

type GenreRepository interface {
	GetAll(ctx context.Context) ([]*domain.Genre, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*domain.Genre, error)
}

// MovieGenreRepository manages the movie-genre join records. Attach is
// additive, Sync replaces the whole set for a movie inside a single
// transaction.
type MovieGenreRepository interface {
	Attach(ctx context.Context, movieID uint, genreIDs []uint) error
	Sync(ctx context.Context, movieID uint, genreIDs []uint) error
	DetachAll(ctx context.Context, movieID uint) error
	GenresForMovie(ctx context.Context, movieID uint) ([]domain.Genre, error)
	GenresForMovies(ctx context.Context, movieIDs []uint) (map[uint][]domain.Genre, error)
}

type Repositories struct {
	User       UserRepository
	Movie      MovieRepository
	Genre      GenreRepository
	MovieGenre MovieGenreRepository
}
