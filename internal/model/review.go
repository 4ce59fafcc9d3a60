package model

import "time"

// Review — отзыв пользователя об объявлении, один отзыв на пару (user, car).
type Review struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user"`
	CarID     string    `db:"car_id" json:"car"`
	Rating    int       `db:"rating" json:"rating"` // 1..5
	Comment   *string   `db:"comment" json:"comment,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
