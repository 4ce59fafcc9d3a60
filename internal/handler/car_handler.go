package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wheelix/internal/apperr"
	"wheelix/internal/model"
	"wheelix/internal/ports"
	"wheelix/internal/security"
)

type CarHandler struct {
	CarService ports.CarServiceInterface
}

func NewCarHandler(carService ports.CarServiceInterface) *CarHandler {
	return &CarHandler{carService}
}

// Create создает объявление от имени аутентифицированного продавца.
// Дубликат VIN отклоняется с 409 без создания строки.
func (handler *CarHandler) Create(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	claims, ok := security.ClaimsFromContext(request.Context())
	if !ok {
		writeJSON(writer, http.StatusUnauthorized, &ErrorResponse{Message: "Unauthorized"})
		return
	}

	var createCar model.CreateCar
	if !decodeAndValidate(writer, request, &createCar) {
		return
	}

	car, err := handler.CarService.Create(ctx, claims.UserID, &createCar)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			writeJSON(writer, http.StatusConflict, &ErrorResponse{Message: "VIN already exists"})
			return
		}
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusCreated, car)
}

// List возвращает страницу объявлений: бустованные первыми, среди них —
// по более позднему истечению буста, затем по свежести обновления.
func (handler *CarHandler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	query := request.URL.Query()
	params := model.CarListParams{
		Brand:   query.Get("brand"),
		City:    query.Get("city"),
		Boosted: query.Get("boosted") == "true",
	}
	params.Page, _ = strconv.Atoi(query.Get("page"))
	params.Limit, _ = strconv.Atoi(query.Get("limit"))

	carList, err := handler.CarService.List(ctx, params)
	if err != nil {
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, carList)
}

func (handler *CarHandler) One(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	car, err := handler.CarService.One(ctx, chi.URLParam(request, "id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(writer, http.StatusNotFound, &ErrorResponse{Message: "Car not found"})
			return
		}
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, car)
}

// Update меняет объявление; чужое или несуществующее объявление дает
// одинаковый 404, чтобы не раскрывать его существование.
func (handler *CarHandler) Update(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	claims, ok := security.ClaimsFromContext(request.Context())
	if !ok {
		writeJSON(writer, http.StatusUnauthorized, &ErrorResponse{Message: "Unauthorized"})
		return
	}

	var updateCar model.UpdateCar
	if !decodeAndValidate(writer, request, &updateCar) {
		return
	}

	car, err := handler.CarService.Update(ctx, chi.URLParam(request, "id"), claims.UserID, &updateCar)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(writer, http.StatusNotFound, &ErrorResponse{Message: "Car not found or not owner"})
			return
		}
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, car)
}

func (handler *CarHandler) Delete(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	claims, ok := security.ClaimsFromContext(request.Context())
	if !ok {
		writeJSON(writer, http.StatusUnauthorized, &ErrorResponse{Message: "Unauthorized"})
		return
	}

	err := handler.CarService.Delete(ctx, chi.URLParam(request, "id"), claims.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(writer, http.StatusNotFound, &ErrorResponse{Message: "Car not found or not owner"})
			return
		}
		writeError(writer, err)
		return
	}

	writer.WriteHeader(http.StatusNoContent)
}
