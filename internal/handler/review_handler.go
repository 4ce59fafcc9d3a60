package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wheelix/internal/apperr"
	"wheelix/internal/model"
	"wheelix/internal/repository"
	"wheelix/internal/security"
)

type ReviewHandler struct {
	ReviewRepository *repository.ReviewRepository
}

func NewReviewHandler(reviewRepository *repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviewRepository}
}

// Create добавляет отзыв к объявлению; второй отзыв того же
// пользователя отклоняется с 409.
func (handler *ReviewHandler) Create(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	claims, ok := security.ClaimsFromContext(request.Context())
	if !ok {
		writeJSON(writer, http.StatusUnauthorized, &ErrorResponse{Message: "Unauthorized"})
		return
	}

	var createReview model.CreateReview
	if !decodeAndValidate(writer, request, &createReview) {
		return
	}

	review := &model.Review{
		UserID:  claims.UserID,
		CarID:   chi.URLParam(request, "id"),
		Rating:  createReview.Rating,
		Comment: createReview.Comment,
	}

	if err := handler.ReviewRepository.Create(ctx, review); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			writeJSON(writer, http.StatusConflict, &ErrorResponse{Message: "Review already exists"})
			return
		}
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusCreated, review)
}

func (handler *ReviewHandler) ListByCar(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	reviews, err := handler.ReviewRepository.FindByCar(ctx, chi.URLParam(request, "id"))
	if err != nil {
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, reviews)
}

func (handler *ReviewHandler) Update(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	claims, ok := security.ClaimsFromContext(request.Context())
	if !ok {
		writeJSON(writer, http.StatusUnauthorized, &ErrorResponse{Message: "Unauthorized"})
		return
	}

	var updateReview model.UpdateReview
	if !decodeAndValidate(writer, request, &updateReview) {
		return
	}

	review, err := handler.ReviewRepository.Update(ctx, chi.URLParam(request, "id"), claims.UserID, &updateReview)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(writer, http.StatusNotFound, &ErrorResponse{Message: "Not found"})
			return
		}
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, review)
}

func (handler *ReviewHandler) Delete(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	claims, ok := security.ClaimsFromContext(request.Context())
	if !ok {
		writeJSON(writer, http.StatusUnauthorized, &ErrorResponse{Message: "Unauthorized"})
		return
	}

	err := handler.ReviewRepository.Delete(ctx, chi.URLParam(request, "id"), claims.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(writer, http.StatusNotFound, &ErrorResponse{Message: "Not found"})
			return
		}
		writeError(writer, err)
		return
	}

	writer.WriteHeader(http.StatusNoContent)
}
