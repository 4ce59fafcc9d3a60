package model

import "time"

// Boost — оплаченное продвижение объявления на ограниченный срок.
// Запись не изменяется после создания: по истечении expires_at буст просто
// перестает учитываться при ранжировании, а физически удаляется фоновой очисткой.
type Boost struct {
	ID          string    `db:"id" json:"id"`
	CarID       string    `db:"car_id" json:"car"`
	UserID      string    `db:"user_id" json:"user"`
	TariffID    string    `db:"tariff_id" json:"tariff"`
	PurchasedAt time.Time `db:"purchased_at" json:"purchasedAt"`
	ExpiresAt   time.Time `db:"expires_at" json:"boostExpiresAt"`
	PaymentID   *string   `db:"payment_id" json:"paymentId,omitempty"`
}
