package model

import "time"

// RefreshToken — refresh токен, сохраненный за пользователем.
// Запись удаляется ровно один раз в момент ротации и никогда не обновляется.
type RefreshToken struct {
	ID        string    `db:"id" json:"id"`
	Token     string    `db:"token" json:"-"`
	UserID    string    `db:"user_id" json:"userId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// TokensPair содержит пару access и refresh токенов
type TokensPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
