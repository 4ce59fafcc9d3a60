package model

import (
	"time"

	"github.com/lib/pq"
)

// Engine — характеристики двигателя объявления.
type Engine struct {
	Volume float64 `db:"volume" json:"volume"`
	Type   string  `db:"type" json:"type"` // petrol | diesel | hybrid | ev
}

// Car представляет объявление о продаже автомобиля.
// VIN уникален во всей системе; менять и удалять объявление может только продавец.
type Car struct {
	ID             string         `db:"id" json:"id"`
	SellerID       string         `db:"seller_id" json:"seller"`
	BrandID        string         `db:"brand_id" json:"brand"`
	SeriesID       string         `db:"series_id" json:"series"`
	GenerationID   string         `db:"generation_id" json:"generation"`
	VIN            string         `db:"vin" json:"vin"`
	Year           int            `db:"year" json:"year"`
	Mileage        int            `db:"mileage" json:"mileage"`
	Price          int64          `db:"price" json:"price"`
	Currency       string         `db:"currency" json:"currency"` // KZT | USD
	Engine         Engine         `db:"engine" json:"engine"`
	Gearbox        string         `db:"gearbox" json:"gearbox"`            // manual | automatic | cvt | robot
	Drive          string         `db:"drive" json:"drive"`                // fwd | rwd | awd
	SteeringSide   string         `db:"steering_side" json:"steeringSide"` // left | right
	CustomsCleared bool           `db:"customs_cleared" json:"customsCleared"`
	City           string         `db:"city" json:"city"`
	Title          string         `db:"title" json:"title"`
	Description    *string        `db:"description" json:"description,omitempty"`
	Features       pq.StringArray `db:"features" json:"features"`
	Photos         pq.StringArray `db:"photos" json:"photos"`
	Views          int            `db:"views" json:"views"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updatedAt"`

	// Производные поля буста: вычисляются при выборке, в таблице cars не хранятся.
	IsBoosted      bool       `db:"is_boosted" json:"isBoosted"`
	BoostExpiresAt *time.Time `db:"boost_expires_at" json:"boostExpiresAt,omitempty"`
}

// CarList — ответ на запрос списка объявлений.
type CarList struct {
	Total int   `json:"total"`
	Page  int   `json:"page"`
	Docs  []Car `json:"docs"`
}
