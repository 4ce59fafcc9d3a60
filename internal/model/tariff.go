package model

// Tariff — покупаемый план продвижения: срок в днях и цена.
// Справочные данные, управляются администратором.
type Tariff struct {
	ID           string `db:"id" json:"id"`
	Code         string `db:"code" json:"code"` // TOP3, TOP7 …
	Label        string `db:"label" json:"label"`
	DurationDays int    `db:"duration_days" json:"durationDays"`
	PriceKZT     int64  `db:"price_kzt" json:"priceKZT"`
	Active       bool   `db:"active" json:"active"`
}

// TariffList — постраничный список тарифов.
type TariffList struct {
	Total int      `json:"total"`
	Page  int      `json:"page"`
	Docs  []Tariff `json:"docs"`
}
