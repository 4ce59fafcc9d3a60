package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wheelix/internal/apperr"
	"wheelix/internal/model"
	"wheelix/internal/repository"
)

type TariffHandler struct {
	TariffRepository *repository.TariffRepository
}

func NewTariffHandler(tariffRepository *repository.TariffRepository) *TariffHandler {
	return &TariffHandler{tariffRepository}
}

func (handler *TariffHandler) Create(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	var createTariff model.CreateTariff
	if !decodeAndValidate(writer, request, &createTariff) {
		return
	}

	tariff := &model.Tariff{
		Code:         createTariff.Code,
		Label:        createTariff.Label,
		DurationDays: createTariff.DurationDays,
		PriceKZT:     createTariff.PriceKZT,
		Active:       true,
	}
	if createTariff.Active != nil {
		tariff.Active = *createTariff.Active
	}

	if err := handler.TariffRepository.Create(ctx, tariff); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			writeJSON(writer, http.StatusConflict, &ErrorResponse{Message: "Tariff code already exists"})
			return
		}
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusCreated, tariff)
}

func (handler *TariffHandler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	page, _ := strconv.Atoi(request.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(request.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	tariffs, total, err := handler.TariffRepository.FindAll(ctx, page, limit)
	if err != nil {
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, &model.TariffList{Total: total, Page: page, Docs: tariffs})
}

func (handler *TariffHandler) One(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	tariff, err := handler.TariffRepository.FindByID(ctx, chi.URLParam(request, "id"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(writer, http.StatusNotFound, &ErrorResponse{Message: "Tariff not found"})
			return
		}
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, tariff)
}

func (handler *TariffHandler) Update(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	var updateTariff model.UpdateTariff
	if !decodeAndValidate(writer, request, &updateTariff) {
		return
	}

	tariff, err := handler.TariffRepository.Update(ctx, chi.URLParam(request, "id"), &updateTariff)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(writer, http.StatusNotFound, &ErrorResponse{Message: "Tariff not found"})
			return
		}
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, tariff)
}

func (handler *TariffHandler) Delete(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	if err := handler.TariffRepository.Delete(ctx, chi.URLParam(request, "id")); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(writer, http.StatusNotFound, &ErrorResponse{Message: "Tariff not found"})
			return
		}
		writeError(writer, err)
		return
	}

	writer.WriteHeader(http.StatusNoContent)
}
