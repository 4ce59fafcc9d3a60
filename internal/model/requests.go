package model

// Тела запросов API. Проверяются validator-ом на границе HTTP,
// до какой-либо записи в хранилище.

type CreateUser struct {
	Phone    string  `json:"phone" validate:"required,min=5"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Username *string `json:"username"`
	Password string  `json:"password" validate:"required,min=6"`
	City     *string `json:"city"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	Token string `json:"token" validate:"required"`
}

type CreateCar struct {
	BrandID        string   `json:"brand" validate:"required,uuid"`
	SeriesID       string   `json:"series" validate:"required,uuid"`
	GenerationID   string   `json:"generation" validate:"required,uuid"`
	VIN            string   `json:"vin" validate:"required,len=17"`
	Year           int      `json:"year" validate:"required,gte=1900"`
	Mileage        int      `json:"mileage" validate:"gte=0"`
	Price          int64    `json:"price" validate:"required,gte=1"`
	Currency       string   `json:"currency" validate:"omitempty,oneof=KZT USD"`
	Engine         Engine   `json:"engine"`
	Gearbox        string   `json:"gearbox" validate:"required,oneof=manual automatic cvt robot"`
	Drive          string   `json:"drive" validate:"required,oneof=fwd rwd awd"`
	SteeringSide   string   `json:"steeringSide" validate:"omitempty,oneof=left right"`
	CustomsCleared *bool    `json:"customsCleared"`
	City           string   `json:"city" validate:"required"`
	Title          string   `json:"title" validate:"required,max=120"`
	Description    *string  `json:"description"`
	Features       []string `json:"features"`
	Photos         []string `json:"photos"`
}

type UpdateCar struct {
	Price          *int64    `json:"price" validate:"omitempty,gte=1"`
	Currency       *string   `json:"currency" validate:"omitempty,oneof=KZT USD"`
	Mileage        *int      `json:"mileage" validate:"omitempty,gte=0"`
	City           *string   `json:"city"`
	Title          *string   `json:"title" validate:"omitempty,max=120"`
	Description    *string   `json:"description"`
	CustomsCleared *bool     `json:"customsCleared"`
	Features       *[]string `json:"features"`
	Photos         *[]string `json:"photos"`
}

// CarListParams — параметры выборки списка объявлений.
type CarListParams struct {
	Page    int
	Limit   int
	Brand   string
	City    string
	Boosted bool
}

type BuyBoostRequest struct {
	TariffCode string `json:"tariffCode" validate:"required"`
}

type CreateTariff struct {
	Code         string `json:"code" validate:"required"`
	Label        string `json:"label" validate:"required"`
	DurationDays int    `json:"durationDays" validate:"required,gte=1"`
	PriceKZT     int64  `json:"priceKZT" validate:"gte=0"`
	Active       *bool  `json:"active"`
}

type UpdateTariff struct {
	Label        *string `json:"label"`
	DurationDays *int    `json:"durationDays" validate:"omitempty,gte=1"`
	PriceKZT     *int64  `json:"priceKZT" validate:"omitempty,gte=0"`
	Active       *bool   `json:"active"`
}

type CreateReview struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

type UpdateReview struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

type CreateReport struct {
	Reason  string  `json:"reason" validate:"required,oneof=fake sold fraud other"`
	Message *string `json:"message"`
}

type UpdateReport struct {
	Resolved *bool `json:"resolved"`
}
