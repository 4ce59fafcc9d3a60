package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"wheelix/internal"
	"wheelix/internal/apperr"
	"wheelix/internal/model"
)

type UserRepository struct {
	*internal.Database
}

func NewUserRepository(database *internal.Database) *UserRepository {
	return &UserRepository{database}
}

const userColumns = `id, phone, email, username, password_hash, city, avatar, created_at, updated_at`

func (repository *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, phone, email, username, password_hash, city)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING created_at, updated_at`

	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	err := repository.DB.QueryRowxContext(ctx, query,
		user.ID, user.Phone, user.Email, user.Username, user.PasswordHash, user.City,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("ошибка вставки пользователя: %w", err)
	}

	return nil
}

// FindByIdentifier ищет пользователя по телефону или email.
func (repository *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	var user model.User

	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1 OR email = $1`
	err := repository.DB.GetContext(ctx, &user, query, identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return &user, nil
}

func (repository *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := repository.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return &user, nil
}

func (repository *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	users := []model.User{}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	if err := repository.DB.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("ошибка выборки пользователей: %w", err)
	}

	return users, nil
}
