package postgres

import (
	"context"

	"github.com/adit/movie-catalog-api/internal/domain"
	"gorm.io/gorm"
)

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *movieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) GetByID(ctx context.Context, id uint) (*domain.Movie, error) {
	var movie domain.Movie
	err := r.db.WithContext(ctx).First(&movie, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	var movies []*domain.Movie
	err := r.db.WithContext(ctx).Order("id ASC").Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	return r.db.WithContext(ctx).Save(movie).Error
}

func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Movie{}, "id = ?", id).Error
}
