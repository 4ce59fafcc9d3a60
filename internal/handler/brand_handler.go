package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wheelix/internal/apperr"
	"wheelix/internal/repository"
)

type BrandHandler struct {
	CatalogRepository *repository.CatalogRepository
}

func NewBrandHandler(catalogRepository *repository.CatalogRepository) *BrandHandler {
	return &BrandHandler{catalogRepository}
}

func (handler *BrandHandler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	brands, err := handler.CatalogRepository.FindAllBrands(ctx)
	if err != nil {
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, brands)
}

// One возвращает марку с вложенными сериями и поколениями.
func (handler *BrandHandler) One(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	tree, err := handler.CatalogRepository.FindBrandTree(ctx, chi.URLParam(request, "id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(writer, http.StatusNotFound, &ErrorResponse{Message: "Brand not found"})
			return
		}
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, tree)
}

// Reset очищает весь справочник марок/серий/поколений одной транзакцией.
func (handler *BrandHandler) Reset(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	if err := handler.CatalogRepository.Reset(ctx); err != nil {
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, map[string]string{"message": "Cleared brand/series/generation collections"})
}
