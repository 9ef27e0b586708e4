package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/adit/movie-catalog-api/internal/domain"
	"github.com/adit/movie-catalog-api/internal/service"
	"github.com/adit/movie-catalog-api/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type MovieHandler struct {
	movieService *service.MovieService
}

func NewMovieHandler(movieService *service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

type CreateMovieRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`
	ReleaseYear int     `json:"release_year" validate:"required,gte=1888,lte=2155"`
	Genres      []uint  `json:"genres" validate:"omitempty,dive,gt=0"`
}

type UpdateMovieRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	ReleaseYear *int    `json:"release_year" validate:"omitempty,gte=1888,lte=2155"`
	Genres      *[]uint `json:"genres" validate:"omitempty,dive,gt=0"`
}

func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.movieService.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list movies")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if movies == nil {
		movies = []*domain.Movie{}
	}
	writeJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}

	movie, err := h.movieService.Get(r.Context(), id)
	if err != nil {
		h.movieError(w, err, "failed to get movie")
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validation.Check(req); errs != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errs)
		return
	}

	movie, err := h.movieService.Create(r.Context(), service.CreateMovieInput{
		Title:       req.Title,
		Description: req.Description,
		ReleaseYear: req.ReleaseYear,
		GenreIDs:    req.Genres,
	})
	if err != nil {
		h.movieError(w, err, "failed to create movie")
		return
	}

	writeJSON(w, http.StatusCreated, movie)
}

func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}

	var req UpdateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validation.Check(req); errs != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errs)
		return
	}

	movie, err := h.movieService.Update(r.Context(), id, service.UpdateMovieInput{
		Title:       req.Title,
		Description: req.Description,
		ReleaseYear: req.ReleaseYear,
		GenreIDs:    req.Genres,
	})
	if err != nil {
		h.movieError(w, err, "failed to update movie")
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := movieID(w, r)
	if !ok {
		return
	}

	if err := h.movieService.Delete(r.Context(), id); err != nil {
		h.movieError(w, err, "failed to delete movie")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// movieID parses the {id} route parameter. A non-numeric id behaves like a
// missing movie.
func movieID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Movie not found")
		return 0, false
	}
	return uint(id), true
}

func (h *MovieHandler) movieError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, domain.ErrMovieNotFound):
		writeError(w, http.StatusNotFound, "Movie not found")
	case errors.Is(err, domain.ErrUnknownGenre):
		writeJSON(w, http.StatusUnprocessableEntity, validation.Errors{
			"genres": {"The selected genres is invalid."},
		})
	default:
		log.Error().Err(err).Msg(msg)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
