package service

import (
	"github.com/adit/movie-catalog-api/internal/config"
	"github.com/adit/movie-catalog-api/internal/repository"
)

type Services struct {
	Token *TokenService
	Auth  *AuthService
	Movie *MovieService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	tokens := NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	return &Services{
		Token: tokens,
		Auth:  NewAuthService(repos.User, tokens),
		Movie: NewMovieService(repos.Movie, repos.Genre, repos.MovieGenre),
	}
}
