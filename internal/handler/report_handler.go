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

type ReportHandler struct {
	ReportRepository *repository.ReportRepository
}

func NewReportHandler(reportRepository *repository.ReportRepository) *ReportHandler {
	return &ReportHandler{reportRepository}
}

// Create регистрирует жалобу на объявление.
func (handler *ReportHandler) Create(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	claims, ok := security.ClaimsFromContext(request.Context())
	if !ok {
		writeJSON(writer, http.StatusUnauthorized, &ErrorResponse{Message: "Unauthorized"})
		return
	}

	var createReport model.CreateReport
	if !decodeAndValidate(writer, request, &createReport) {
		return
	}

	report := &model.Report{
		UserID:  claims.UserID,
		CarID:   chi.URLParam(request, "id"),
		Reason:  createReport.Reason,
		Message: createReport.Message,
	}

	if err := handler.ReportRepository.Create(ctx, report); err != nil {
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusCreated, report)
}

func (handler *ReportHandler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	reports, err := handler.ReportRepository.FindAll(ctx)
	if err != nil {
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, reports)
}

// Resolve помечает жалобу обработанной.
func (handler *ReportHandler) Resolve(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	var updateReport model.UpdateReport
	if !decodeAndValidate(writer, request, &updateReport) {
		return
	}

	report, err := handler.ReportRepository.Update(ctx, chi.URLParam(request, "id"), &updateReport)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(writer, http.StatusNotFound, &ErrorResponse{Message: "Not found"})
			return
		}
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, report)
}
