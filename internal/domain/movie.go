package domain

import "time"

type Movie struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description *string   `json:"description" gorm:"type:text"`
	ReleaseYear int       `json:"release_year" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Populated explicitly by the association repository, never by
	// implicit relation loading.
	Genres []Genre `json:"genres" gorm:"-"`
}

type Genre struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MovieGenre is the explicit join record between movies and genres.
// The composite unique index keeps repeated attaches from producing
// duplicate pairs.
type MovieGenre struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	MovieID   uint      `json:"movie_id" gorm:"not null;uniqueIndex:idx_movie_genre"`
	GenreID   uint      `json:"genre_id" gorm:"not null;uniqueIndex:idx_movie_genre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Movie Movie `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Genre Genre `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
