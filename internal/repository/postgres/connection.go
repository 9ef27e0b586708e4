package postgres

import (
	"github.com/adit/movie-catalog-api/internal/domain"
	"github.com/adit/movie-catalog-api/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// seedGenreNames are the catalog's fixed genre set. Genres have no create
// endpoint; they only ever enter the database through this seed.
var seedGenreNames = []string{
	"Action", "Comedy", "Drama", "Horror", "Sci-Fi",
	"Romance", "Thriller", "Adventure", "Fantasy", "Mystery",
}

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := SeedGenres(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Movie{},
		&domain.Genre{},
		&domain.MovieGenre{},
	)
}

// SeedGenres inserts the fixed genre set, skipping names that already exist.
func SeedGenres(db *gorm.DB) error {
	genres := make([]domain.Genre, len(seedGenreNames))
	for i, name := range seedGenreNames {
		genres[i] = domain.Genre{Name: name}
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&genres).Error
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:       NewUserRepository(db),
		Movie:      NewMovieRepository(db),
		Genre:      NewGenreRepository(db),
		MovieGenre: NewMovieGenreRepository(db),
	}
}
