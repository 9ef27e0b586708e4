package service

import (
	"context"
	"errors"

	"github.com/adit/movie-catalog-api/internal/domain"
	"github.com/adit/movie-catalog-api/internal/repository"
	"gorm.io/gorm"
)

type MovieService struct {
	movieRepo repository.MovieRepository
	genreRepo repository.GenreRepository
	assocRepo repository.MovieGenreRepository
}

func NewMovieService(movieRepo repository.MovieRepository, genreRepo repository.GenreRepository, assocRepo repository.MovieGenreRepository) *MovieService {
	return &MovieService{
		movieRepo: movieRepo,
		genreRepo: genreRepo,
		assocRepo: assocRepo,
	}
}

type CreateMovieInput struct {
	Title       string
	Description *string
	ReleaseYear int
	GenreIDs    []uint
}

type UpdateMovieInput struct {
	Title       *string
	Description *string
	ReleaseYear *int
	GenreIDs    *[]uint
}

// List returns every movie with its genre set embedded, loaded in one batch
// query over the join table.
func (s *MovieService) List(ctx context.Context) ([]*domain.Movie, error) {
	movies, err := s.movieRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}

	genresByMovie, err := s.assocRepo.GenresForMovies(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, m := range movies {
		m.Genres = genresByMovie[m.ID]
		if m.Genres == nil {
			m.Genres = []domain.Genre{}
		}
	}
	return movies, nil
}

func (s *MovieService) Get(ctx context.Context, id uint) (*domain.Movie, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return s.withGenres(ctx, movie)
}

// Create stores a movie and attaches the supplied genre ids. Every id must
// reference an existing genre.
func (s *MovieService) Create(ctx context.Context, input CreateMovieInput) (*domain.Movie, error) {
	if err := s.checkGenreIDs(ctx, input.GenreIDs); err != nil {
		return nil, err
	}

	movie := &domain.Movie{
		Title:       input.Title,
		Description: input.Description,
		ReleaseYear: input.ReleaseYear,
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}

	if len(input.GenreIDs) > 0 {
		if err := s.assocRepo.Attach(ctx, movie.ID, input.GenreIDs); err != nil {
			return nil, err
		}
	}

	return s.withGenres(ctx, movie)
}

// Update applies partial field changes. When GenreIDs is present the genre
// set is replaced wholesale; when absent it is left untouched.
func (s *MovieService) Update(ctx context.Context, id uint, input UpdateMovieInput) (*domain.Movie, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}

	// Validate before mutating anything so a rejected update leaves no
	// partial state behind.
	if input.GenreIDs != nil {
		if err := s.checkGenreIDs(ctx, *input.GenreIDs); err != nil {
			return nil, err
		}
	}

	if input.Title != nil {
		movie.Title = *input.Title
	}
	if input.Description != nil {
		movie.Description = input.Description
	}
	if input.ReleaseYear != nil {
		movie.ReleaseYear = *input.ReleaseYear
	}

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}

	if input.GenreIDs != nil {
		if err := s.assocRepo.Sync(ctx, movie.ID, *input.GenreIDs); err != nil {
			return nil, err
		}
	}

	return s.withGenres(ctx, movie)
}

// Delete removes the movie and its association rows. Genres themselves are
// never deleted.
func (s *MovieService) Delete(ctx context.Context, id uint) error {
	if _, err := s.movieRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMovieNotFound
		}
		return err
	}

	if err := s.assocRepo.DetachAll(ctx, id); err != nil {
		return err
	}
	return s.movieRepo.Delete(ctx, id)
}

func (s *MovieService) withGenres(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	genres, err := s.assocRepo.GenresForMovie(ctx, movie.ID)
	if err != nil {
		return nil, err
	}
	if genres == nil {
		genres = []domain.Genre{}
	}
	movie.Genres = genres
	return movie, nil
}

// checkGenreIDs verifies every supplied id references an existing genre.
func (s *MovieService) checkGenreIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	unique := make(map[uint]bool, len(ids))
	for _, id := range ids {
		unique[id] = true
	}
	deduped := make([]uint, 0, len(unique))
	for id := range unique {
		deduped = append(deduped, id)
	}

	genres, err := s.genreRepo.GetByIDs(ctx, deduped)
	if err != nil {
		return err
	}
	if len(genres) != len(deduped) {
		return domain.ErrUnknownGenre
	}
	return nil
}
