package security

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"wheelix/internal/logger"
	"wheelix/internal/model"
)

// Claims — полезная нагрузка обоих токенов: id пользователя и email.
// Access и refresh токены подписываются разными ключами, но несут одинаковые поля.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type contextKey string

// UserContextKey — ключ, под которым middleware кладет *Claims в контекст запроса.
const UserContextKey contextKey = "user"

type JWTService struct {
	issuer        string
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewJWTService(issuer string, accessSecret, refreshSecret []byte, accessTTL, refreshTTL time.Duration) *JWTService {
	return &JWTService{
		issuer:        issuer,
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// GenerateTokensPair выпускает пару access/refresh токенов для пользователя.
func (service *JWTService) GenerateTokensPair(user *model.User) (*model.TokensPair, error) {
	accessToken, err := service.sign(user, service.accessSecret, service.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("ошибка подписи access токена: %w", err)
	}

	refreshToken, err := service.sign(user, service.refreshSecret, service.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("ошибка подписи refresh токена: %w", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (service *JWTService) sign(user *model.User, secretKey []byte, ttl time.Duration) (string, error) {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}

	claims := Claims{
		UserID: user.ID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    service.issuer,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return jwtToken.SignedString(secretKey)
}

// ValidateAccessToken проверяет подпись и срок access токена.
func (service *JWTService) ValidateAccessToken(tokenStr string) (*Claims, error) {
	return ValidateJWT(tokenStr, service.accessSecret)
}

// ValidateRefreshToken проверяет подпись и срок refresh токена.
func (service *JWTService) ValidateRefreshToken(tokenStr string) (*Claims, error) {
	return ValidateJWT(tokenStr, service.refreshSecret)
}

func ValidateJWT(jwtTokenStr string, secretKey []byte) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return secretKey, nil
	})

	if err != nil || jwtToken.Valid == false {
		return nil, fmt.Errorf("невалидный токен: %w", err)
	}

	return claims, nil
}

func JWTMiddleware(secretKey []byte) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(secretKey, next))
	}
}

func handleAuthentication(secretKey []byte, next http.Handler) func(writer http.ResponseWriter, request *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		authorizationHeader := request.Header.Get("Authorization")
		if strings.HasPrefix(authorizationHeader, "Bearer ") == false {
			http.Error(writer, "unauthorized", http.StatusUnauthorized)
			return
		}

		jwtTokenStr := strings.TrimPrefix(authorizationHeader, "Bearer ")

		claims, err := ValidateJWT(jwtTokenStr, secretKey)
		if err != nil {
			logger.Info("невалидный токен в запросе", zap.Error(err))
			http.Error(writer, "unauthorized", http.StatusUnauthorized)
			return
		}

		request = request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
		next.ServeHTTP(writer, request)
	}
}

// ClaimsFromContext возвращает claims, положенные JWTMiddleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	return claims, ok && claims != nil
}
