package postgres

import (
	"context"

	"github.com/adit/movie-catalog-api/internal/domain"
	"gorm.io/gorm"
)

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *genreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) GetAll(ctx context.Context) ([]*domain.Genre, error) {
	var genres []*domain.Genre
	err := r.db.WithContext(ctx).Order("id ASC").Find(&genres).Error
	if err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *genreRepository) GetByIDs(ctx context.Context, ids []uint) ([]*domain.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var genres []*domain.Genre
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&genres).Error
	if err != nil {
		return nil, err
	}
	return genres, nil
}
