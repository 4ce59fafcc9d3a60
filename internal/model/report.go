package model

import "time"

// Report — жалоба пользователя на объявление.
type Report struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user"`
	CarID     string    `db:"car_id" json:"car"`
	Reason    string    `db:"reason" json:"reason"` // fake | sold | fraud | other
	Message   *string   `db:"message" json:"message,omitempty"`
	Resolved  bool      `db:"resolved" json:"resolved"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
