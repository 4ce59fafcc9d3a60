package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"wheelix/internal/apperr"
	"wheelix/internal/logger"
)

var validate = validator.New()

// ErrorResponse — тело любого ошибочного ответа API.
type ErrorResponse struct {
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(writer http.ResponseWriter, status int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(writer).Encode(payload)
	}
}

// writeError переводит ошибку в HTTP статус. Детали внутренних сбоев
// в ответ не попадают, только в лог.
func writeError(writer http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(writer, http.StatusNotFound, &ErrorResponse{Message: "Not found"})
	case errors.Is(err, apperr.ErrConflict):
		writeJSON(writer, http.StatusConflict, &ErrorResponse{Message: "Already exists"})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		writeJSON(writer, http.StatusUnauthorized, &ErrorResponse{Message: "Invalid credentials"})
	case errors.Is(err, apperr.ErrInvalidToken):
		writeJSON(writer, http.StatusUnauthorized, &ErrorResponse{Message: "Invalid or expired refresh token"})
	default:
		logger.Error("внутренняя ошибка", zap.Error(err))
		writeJSON(writer, http.StatusInternalServerError, &ErrorResponse{Message: "Internal server error"})
	}
}

// decodeAndValidate разбирает JSON тело и прогоняет его через validator.
// Возвращает false, если ответ клиенту уже записан.
func decodeAndValidate(writer http.ResponseWriter, request *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(request.Body).Decode(dst); err != nil {
		writeJSON(writer, http.StatusBadRequest, &ErrorResponse{Message: "Invalid json"})
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			details := make([]FieldError, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				details = append(details, FieldError{
					Field:   fieldErr.Field(),
					Message: fmt.Sprintf("failed on '%s'", fieldErr.Tag()),
				})
			}
			writeJSON(writer, http.StatusBadRequest, &ErrorResponse{Message: "Validation failed", Details: details})
			return false
		}
		writeJSON(writer, http.StatusBadRequest, &ErrorResponse{Message: "Validation failed"})
		return false
	}

	return true
}
