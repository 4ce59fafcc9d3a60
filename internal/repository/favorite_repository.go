package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"wheelix/internal"
	"wheelix/internal/model"
)

type FavoriteRepository struct {
	*internal.Database
}

func NewFavoriteRepository(database *internal.Database) *FavoriteRepository {
	return &FavoriteRepository{database}
}

// Toggle добавляет объявление в избранное либо убирает, если оно уже там.
// Возвращает true, если запись была добавлена.
func (repository *FavoriteRepository) Toggle(ctx context.Context, userID string, carID string) (bool, *model.Favorite, error) {
	result, err := repository.DB.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND car_id = $2`, userID, carID)
	if err != nil {
		return false, nil, fmt.Errorf("ошибка удаления из избранного: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, nil, fmt.Errorf("не удалось проверить удаление из избранного: %w", err)
	}
	if rowsAffected > 0 {
		return false, nil, nil
	}

	favorite := &model.Favorite{ID: uuid.New().String(), UserID: userID, CarID: carID}
	err = repository.DB.QueryRowxContext(ctx,
		`INSERT INTO favorites (id, user_id, car_id) VALUES ($1, $2, $3) RETURNING created_at`,
		favorite.ID, favorite.UserID, favorite.CarID,
	).Scan(&favorite.CreatedAt)
	if err != nil {
		return false, nil, fmt.Errorf("ошибка добавления в избранное: %w", err)
	}

	return true, favorite, nil
}

// FindByUser возвращает избранное пользователя вместе с объявлениями.
func (repository *FavoriteRepository) FindByUser(ctx context.Context, userID string) ([]model.FavoriteWithCar, error) {
	favorites := []model.Favorite{}

	query := `SELECT id, user_id, car_id, created_at FROM favorites WHERE user_id = $1 ORDER BY created_at DESC`
	if err := repository.DB.SelectContext(ctx, &favorites, query, userID); err != nil {
		return nil, fmt.Errorf("ошибка выборки избранного: %w", err)
	}

	result := []model.FavoriteWithCar{}
	if len(favorites) == 0 {
		return result, nil
	}

	carIDs := make([]string, 0, len(favorites))
	for _, favorite := range favorites {
		carIDs = append(carIDs, favorite.CarID)
	}

	carQuery, args, err := sqlx.In(`SELECT `+carColumns+` FROM cars c WHERE c.id IN (?)`, carIDs)
	if err != nil {
		return nil, fmt.Errorf("ошибка построения запроса объявлений: %w", err)
	}

	cars := []model.Car{}
	if err := repository.DB.SelectContext(ctx, &cars, repository.DB.Rebind(carQuery), args...); err != nil {
		return nil, fmt.Errorf("ошибка выборки объявлений избранного: %w", err)
	}

	carsByID := map[string]model.Car{}
	for _, car := range cars {
		carsByID[car.ID] = car
	}

	for _, favorite := range favorites {
		car, ok := carsByID[favorite.CarID]
		if !ok {
			continue
		}
		result = append(result, model.FavoriteWithCar{Favorite: favorite, Car: car})
	}

	return result, nil
}
