package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"wheelix/internal/apperr"
	"wheelix/internal/model"
	"wheelix/internal/security"
)

type MockUserRepository struct {
	mock.Mock
}

type MockJWTRepository struct {
	mock.Mock
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	args := m.Called(ctx, identifier)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *MockJWTRepository) SaveRefreshToken(ctx context.Context, token *model.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockJWTRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJWTService) GenerateTokensPair(user *model.User) (*model.TokensPair, error) {
	args := m.Called(user)
	pair, _ := args.Get(0).(*model.TokensPair)
	return pair, args.Error(1)
}

func (m *MockJWTService) ValidateAccessToken(tokenStr string) (*security.Claims, error) {
	args := m.Called(tokenStr)
	claims, _ := args.Get(0).(*security.Claims)
	return claims, args.Error(1)
}

func (m *MockJWTService) ValidateRefreshToken(tokenStr string) (*security.Claims, error) {
	args := m.Called(tokenStr)
	claims, _ := args.Get(0).(*security.Claims)
	return claims, args.Error(1)
}

func storedUser(password string) *model.User {
	hashedBytes, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return &model.User{
		ID:           "user-id",
		Phone:        "+77010000001",
		PasswordHash: string(hashedBytes),
	}
}

// 1
func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockTokens := new(MockJWTRepository)
	mockJWTService := new(MockJWTService)

	authService := NewAuthenticationService(mockUsers, mockTokens, mockJWTService)

	user := storedUser("secret-password")

	mockUsers.On("FindByIdentifier", ctx, "+77010000001").Return(user, nil)
	mockJWTService.On("GenerateTokensPair", user).
		Return(&model.TokensPair{AccessToken: "access", RefreshToken: "refresh"}, nil)
	mockTokens.On("SaveRefreshToken", ctx, mock.MatchedBy(func(token *model.RefreshToken) bool {
		return token.Token == "refresh" && token.UserID == "user-id"
	})).Return(nil)

	loggedIn, pair, err := authService.Login(ctx, "+77010000001", "secret-password")

	assert.NoError(t, err)
	assert.Equal(t, "user-id", loggedIn.ID)
	assert.Equal(t, "access", pair.AccessToken)
	mockTokens.AssertNumberOfCalls(t, "SaveRefreshToken", 1)
}

// 2
func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockTokens := new(MockJWTRepository)
	mockJWTService := new(MockJWTService)

	authService := NewAuthenticationService(mockUsers, mockTokens, mockJWTService)

	mockUsers.On("FindByIdentifier", ctx, "+77010000001").Return(storedUser("secret-password"), nil)

	_, _, err := authService.Login(ctx, "+77010000001", "wrong-password")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	mockTokens.AssertNotCalled(t, "SaveRefreshToken")
}

// 3
func TestLogin_UnknownIdentifier(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockTokens := new(MockJWTRepository)
	mockJWTService := new(MockJWTService)

	authService := NewAuthenticationService(mockUsers, mockTokens, mockJWTService)

	mockUsers.On("FindByIdentifier", ctx, "nobody@example.com").Return(nil, apperr.ErrNotFound)

	_, _, err := authService.Login(ctx, "nobody@example.com", "secret-password")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

// 4
func TestRegister_PhoneConflict(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)

	authService := NewAuthenticationService(mockUsers, new(MockJWTRepository), new(MockJWTService))

	mockUsers.On("Create", ctx, mock.Anything).Return(apperr.ErrConflict)

	_, err := authService.Register(ctx, &model.CreateUser{Phone: "+77010000001", Password: "secret-password"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

// 5
func TestRefresh_InvalidToken(t *testing.T) {
	ctx := context.Background()
	mockTokens := new(MockJWTRepository)
	mockJWTService := new(MockJWTService)

	authService := NewAuthenticationService(new(MockUserRepository), mockTokens, mockJWTService)

	mockJWTService.On("ValidateRefreshToken", "bad-token").
		Return(nil, fmt.Errorf("невалидный токен"))

	_, err := authService.Refresh(ctx, "bad-token")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	mockTokens.AssertNotCalled(t, "DeleteByToken")
}

// 6
func TestRefresh_UserDeleted(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockTokens := new(MockJWTRepository)
	mockJWTService := new(MockJWTService)

	authService := NewAuthenticationService(mockUsers, mockTokens, mockJWTService)

	mockJWTService.On("ValidateRefreshToken", "refresh-token").
		Return(&security.Claims{UserID: "user-id"}, nil)
	mockUsers.On("FindByID", ctx, "user-id").Return(nil, apperr.ErrNotFound)

	_, err := authService.Refresh(ctx, "refresh-token")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	mockTokens.AssertNotCalled(t, "DeleteByToken")
}

// 7
func TestRefresh_Success(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockTokens := new(MockJWTRepository)
	mockJWTService := new(MockJWTService)

	authService := NewAuthenticationService(mockUsers, mockTokens, mockJWTService)

	user := storedUser("secret-password")

	mockJWTService.On("ValidateRefreshToken", "old-refresh").
		Return(&security.Claims{UserID: "user-id"}, nil)
	mockUsers.On("FindByID", ctx, "user-id").Return(user, nil)
	mockTokens.On("DeleteByToken", ctx, "old-refresh").Return(int64(1), nil)
	mockJWTService.On("GenerateTokensPair", user).
		Return(&model.TokensPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)
	mockTokens.On("SaveRefreshToken", ctx, mock.MatchedBy(func(token *model.RefreshToken) bool {
		return token.Token == "new-refresh"
	})).Return(nil)

	pair, err := authService.Refresh(ctx, "old-refresh")

	assert.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
}

// 8
// Повторная ротация того же токена: условное удаление вернуло 0 строк,
// новая пара не выпускается.
func TestRefresh_TokenAlreadyRotated(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockTokens := new(MockJWTRepository)
	mockJWTService := new(MockJWTService)

	authService := NewAuthenticationService(mockUsers, mockTokens, mockJWTService)

	mockJWTService.On("ValidateRefreshToken", "old-refresh").
		Return(&security.Claims{UserID: "user-id"}, nil)
	mockUsers.On("FindByID", ctx, "user-id").Return(storedUser("secret-password"), nil)
	mockTokens.On("DeleteByToken", ctx, "old-refresh").Return(int64(0), nil)

	_, err := authService.Refresh(ctx, "old-refresh")

	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	mockJWTService.AssertNotCalled(t, "GenerateTokensPair", mock.Anything)
	mockTokens.AssertNotCalled(t, "SaveRefreshToken", mock.Anything, mock.Anything)
}

// 9
func TestRefresh_SaveRefreshTokenFails(t *testing.T) {
	ctx := context.Background()
	mockUsers := new(MockUserRepository)
	mockTokens := new(MockJWTRepository)
	mockJWTService := new(MockJWTService)

	authService := NewAuthenticationService(mockUsers, mockTokens, mockJWTService)

	user := storedUser("secret-password")

	mockJWTService.On("ValidateRefreshToken", "old-refresh").
		Return(&security.Claims{UserID: "user-id"}, nil)
	mockUsers.On("FindByID", ctx, "user-id").Return(user, nil)
	mockTokens.On("DeleteByToken", ctx, "old-refresh").Return(int64(1), nil)
	mockJWTService.On("GenerateTokensPair", user).
		Return(&model.TokensPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)
	mockTokens.On("SaveRefreshToken", ctx, mock.Anything).Return(fmt.Errorf("database error"))

	_, err := authService.Refresh(ctx, "old-refresh")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "не удалось сохранить рефреш токен")
}
