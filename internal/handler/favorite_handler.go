package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wheelix/internal/model"
	"wheelix/internal/repository"
	"wheelix/internal/security"
)

type FavoriteHandler struct {
	FavoriteRepository *repository.FavoriteRepository
}

// ToggleFavoriteResponse — результат переключения избранного.
type ToggleFavoriteResponse struct {
	Message  string          `json:"message"`
	Favorite *model.Favorite `json:"favorite,omitempty"`
}

func NewFavoriteHandler(favoriteRepository *repository.FavoriteRepository) *FavoriteHandler {
	return &FavoriteHandler{favoriteRepository}
}

// Toggle добавляет объявление в избранное, а если оно уже там — убирает.
func (handler *FavoriteHandler) Toggle(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	claims, ok := security.ClaimsFromContext(request.Context())
	if !ok {
		writeJSON(writer, http.StatusUnauthorized, &ErrorResponse{Message: "Unauthorized"})
		return
	}

	added, favorite, err := handler.FavoriteRepository.Toggle(ctx, claims.UserID, chi.URLParam(request, "id"))
	if err != nil {
		writeError(writer, err)
		return
	}

	if added {
		writeJSON(writer, http.StatusCreated, &ToggleFavoriteResponse{Message: "Added to favorites", Favorite: favorite})
		return
	}
	writeJSON(writer, http.StatusOK, &ToggleFavoriteResponse{Message: "Removed from favorites"})
}

func (handler *FavoriteHandler) ListMine(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	claims, ok := security.ClaimsFromContext(request.Context())
	if !ok {
		writeJSON(writer, http.StatusUnauthorized, &ErrorResponse{Message: "Unauthorized"})
		return
	}

	favorites, err := handler.FavoriteRepository.FindByUser(ctx, claims.UserID)
	if err != nil {
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, favorites)
}
