package model

// Brand — марка автомобиля (BMW, Toyota …).
type Brand struct {
	ID      string  `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	Country *string `db:"country" json:"country,omitempty"`
	Logo    *string `db:"logo" json:"logo,omitempty"`
}

// Series — модельный ряд внутри марки.
type Series struct {
	ID      string `db:"id" json:"id"`
	BrandID string `db:"brand_id" json:"brand"`
	Name    string `db:"name" json:"name"`
}

// Generation — поколение внутри модельного ряда (G30, XV70 …).
type Generation struct {
	ID        string `db:"id" json:"id"`
	SeriesID  string `db:"series_id" json:"series"`
	Code      string `db:"code" json:"code"`
	YearStart int    `db:"year_start" json:"yearStart"`
	YearEnd   *int   `db:"year_end" json:"yearEnd,omitempty"`
}

// SeriesWithGenerations — серия вместе с ее поколениями для дерева марки.
type SeriesWithGenerations struct {
	Series
	Generations []Generation `json:"generations"`
}

// BrandTree — марка с вложенными сериями и поколениями.
type BrandTree struct {
	Brand
	Series []SeriesWithGenerations `json:"series"`
}
