package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"wheelix/internal/apperr"
	"wheelix/internal/model"
	"wheelix/internal/ports"
	"wheelix/internal/security"
)

const requestTimeout = 3 * time.Second

type AuthenticationHandler struct {
	AuthenticationService ports.AuthenticationServiceInterface
}

// LoginResponse — пользователь без пароля плюс свежая пара токенов.
type LoginResponse struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// CurrentUserResponse содержит данные пользователя из access токена.
type CurrentUserResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationServiceInterface) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService}
}

// Register регистрирует пользователя по телефону и паролю.
// Повторный телефон отклоняется с 409.
func (handler *AuthenticationHandler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	var createUser model.CreateUser
	if !decodeAndValidate(writer, request, &createUser) {
		return
	}

	user, err := handler.AuthenticationService.Register(ctx, &createUser)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			writeJSON(writer, http.StatusConflict, &ErrorResponse{Message: "Phone already registered"})
			return
		}
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusCreated, user)
}

// Login аутентифицирует по телефону или email и выдает пару токенов.
func (handler *AuthenticationHandler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	var loginRequest model.LoginRequest
	if !decodeAndValidate(writer, request, &loginRequest) {
		return
	}

	user, tokensPair, err := handler.AuthenticationService.Login(ctx, loginRequest.Identifier, loginRequest.Password)
	if err != nil {
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, &LoginResponse{
		User:         user,
		AccessToken:  tokensPair.AccessToken,
		RefreshToken: tokensPair.RefreshToken,
	})
}

// RefreshToken обменивает refresh токен на новую пару.
// Однажды обмененный токен больше не принимается.
func (handler *AuthenticationHandler) RefreshToken(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	var refreshRequest model.RefreshRequest
	if !decodeAndValidate(writer, request, &refreshRequest) {
		return
	}

	tokensPair, err := handler.AuthenticationService.Refresh(ctx, refreshRequest.Token)
	if err != nil {
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, tokensPair)
}

// GetCurrentUser возвращает данные пользователя из access токена.
func (handler *AuthenticationHandler) GetCurrentUser(writer http.ResponseWriter, request *http.Request) {
	claims, ok := security.ClaimsFromContext(request.Context())
	if !ok {
		writeJSON(writer, http.StatusUnauthorized, &ErrorResponse{Message: "Unauthorized"})
		return
	}

	writeJSON(writer, http.StatusOK, &CurrentUserResponse{UserID: claims.UserID, Email: claims.Email})
}

func (handler *AuthenticationHandler) ListUsers(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	users, err := handler.AuthenticationService.ListUsers(ctx)
	if err != nil {
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, users)
}
