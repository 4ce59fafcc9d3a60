package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wheelix/internal/apperr"
	"wheelix/internal/model"
	"wheelix/internal/ports"
	"wheelix/internal/security"
)

type BoostHandler struct {
	BoostService ports.BoostServiceInterface
}

// SweepResponse — число физически удаленных просроченных бустов.
type SweepResponse struct {
	Removed int64 `json:"removed"`
}

func NewBoostHandler(boostService ports.BoostServiceInterface) *BoostHandler {
	return &BoostHandler{boostService}
}

// Buy покупает продвижение объявления по коду тарифа.
func (handler *BoostHandler) Buy(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	claims, ok := security.ClaimsFromContext(request.Context())
	if !ok {
		writeJSON(writer, http.StatusUnauthorized, &ErrorResponse{Message: "Unauthorized"})
		return
	}

	var buyRequest model.BuyBoostRequest
	if !decodeAndValidate(writer, request, &buyRequest) {
		return
	}

	boost, err := handler.BoostService.Buy(ctx, chi.URLParam(request, "id"), claims.UserID, buyRequest.TariffCode)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(writer, http.StatusNotFound, &ErrorResponse{Message: "Tariff not found"})
			return
		}
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusCreated, boost)
}

// SweepExpired удаляет все истекшие бусты и сообщает их число.
// Тот же код выполняется по расписанию cron.
func (handler *BoostHandler) SweepExpired(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	removed, err := handler.BoostService.SweepExpired(ctx)
	if err != nil {
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, &SweepResponse{Removed: removed})
}
