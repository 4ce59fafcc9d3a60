package model

import "time"

// Favorite — объявление в избранном пользователя. Пара (user, car) уникальна.
type Favorite struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user"`
	CarID     string    `db:"car_id" json:"car"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// FavoriteWithCar — запись избранного вместе с самим объявлением.
type FavoriteWithCar struct {
	Favorite
	Car Car `json:"car"`
}
