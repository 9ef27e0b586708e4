package postgres

import (
	"context"

	"github.com/adit/movie-catalog-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type movieGenreRepository struct {
	db *gorm.DB
}

func NewMovieGenreRepository(db *gorm.DB) *movieGenreRepository {
	return &movieGenreRepository{db: db}
}

// Attach adds join records for the given genre ids. Already-attached pairs
// are skipped via the composite unique index.
func (r *movieGenreRepository) Attach(ctx context.Context, movieID uint, genreIDs []uint) error {
	rows := joinRows(movieID, genreIDs)
	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "movie_id"}, {Name: "genre_id"}},
		DoNothing: true,
	}).Create(&rows).Error
}

// Sync replaces the movie's genre set wholesale. Delete and re-insert run in
// one transaction so readers never observe an empty set mid-replace.
func (r *movieGenreRepository) Sync(ctx context.Context, movieID uint, genreIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.MovieGenre{}, "movie_id = ?", movieID).Error; err != nil {
			return err
		}

		rows := joinRows(movieID, genreIDs)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *movieGenreRepository) DetachAll(ctx context.Context, movieID uint) error {
	return r.db.WithContext(ctx).Delete(&domain.MovieGenre{}, "movie_id = ?", movieID).Error
}

func (r *movieGenreRepository) GenresForMovie(ctx context.Context, movieID uint) ([]domain.Genre, error) {
	var genres []domain.Genre
	err := r.db.WithContext(ctx).
		Select("genres.*").
		Joins("JOIN movie_genres ON movie_genres.genre_id = genres.id").
		Where("movie_genres.movie_id = ?", movieID).
		Order("genres.id ASC").
		Find(&genres).Error
	if err != nil {
		return nil, err
	}
	return genres, nil
}

// GenresForMovies loads the genre sets for many movies in two queries, keyed
// by movie id. Movies without genres are absent from the map.
func (r *movieGenreRepository) GenresForMovies(ctx context.Context, movieIDs []uint) (map[uint][]domain.Genre, error) {
	result := make(map[uint][]domain.Genre)
	if len(movieIDs) == 0 {
		return result, nil
	}

	var joins []domain.MovieGenre
	err := r.db.WithContext(ctx).
		Where("movie_id IN ?", movieIDs).
		Order("genre_id ASC").
		Find(&joins).Error
	if err != nil {
		return nil, err
	}
	if len(joins) == 0 {
		return result, nil
	}

	genreIDs := make([]uint, 0, len(joins))
	for _, j := range joins {
		genreIDs = append(genreIDs, j.GenreID)
	}

	var genres []domain.Genre
	if err := r.db.WithContext(ctx).Where("id IN ?", genreIDs).Find(&genres).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]domain.Genre, len(genres))
	for _, g := range genres {
		byID[g.ID] = g
	}

	for _, j := range joins {
		if genre, ok := byID[j.GenreID]; ok {
			result[j.MovieID] = append(result[j.MovieID], genre)
		}
	}
	return result, nil
}

func joinRows(movieID uint, genreIDs []uint) []domain.MovieGenre {
	seen := make(map[uint]bool, len(genreIDs))
	rows := make([]domain.MovieGenre, 0, len(genreIDs))
	for _, genreID := range genreIDs {
		if seen[genreID] {
			continue
		}
		seen[genreID] = true
		rows = append(rows, domain.MovieGenre{MovieID: movieID, GenreID: genreID})
	}
	return rows
}
