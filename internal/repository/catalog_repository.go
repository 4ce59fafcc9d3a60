package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"wheelix/internal"
	"wheelix/internal/apperr"
	"wheelix/internal/model"
)

// CatalogRepository обслуживает справочник марок, серий и поколений.
type CatalogRepository struct {
	*internal.Database
}

func NewCatalogRepository(database *internal.Database) *CatalogRepository {
	return &CatalogRepository{database}
}

func (repository *CatalogRepository) FindAllBrands(ctx context.Context) ([]model.Brand, error) {
	brands := []model.Brand{}

	query := `SELECT id, name, country, logo FROM brands ORDER BY name`
	if err := repository.DB.SelectContext(ctx, &brands, query); err != nil {
		return nil, fmt.Errorf("ошибка выборки марок: %w", err)
	}

	return brands, nil
}

// FindBrandTree возвращает марку с вложенными сериями и их поколениями.
func (repository *CatalogRepository) FindBrandTree(ctx context.Context, brandID string) (*model.BrandTree, error) {
	var brand model.Brand

	err := repository.DB.GetContext(ctx, &brand, `SELECT id, name, country, logo FROM brands WHERE id = $1`, brandID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка выборки марки: %w", err)
	}

	series := []model.Series{}
	err = repository.DB.SelectContext(ctx, &series,
		`SELECT id, brand_id, name FROM series WHERE brand_id = $1 ORDER BY name`, brandID)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки серий: %w", err)
	}

	tree := &model.BrandTree{Brand: brand, Series: []model.SeriesWithGenerations{}}
	if len(series) == 0 {
		return tree, nil
	}

	seriesIDs := make([]string, 0, len(series))
	for _, s := range series {
		seriesIDs = append(seriesIDs, s.ID)
	}

	query, args, err := sqlx.In(
		`SELECT id, series_id, code, year_start, year_end FROM generations WHERE series_id IN (?) ORDER BY year_start`,
		seriesIDs)
	if err != nil {
		return nil, fmt.Errorf("ошибка построения запроса поколений: %w", err)
	}

	generations := []model.Generation{}
	if err := repository.DB.SelectContext(ctx, &generations, repository.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("ошибка выборки поколений: %w", err)
	}

	generationsBySeries := map[string][]model.Generation{}
	for _, g := range generations {
		generationsBySeries[g.SeriesID] = append(generationsBySeries[g.SeriesID], g)
	}

	for _, s := range series {
		gens := generationsBySeries[s.ID]
		if gens == nil {
			gens = []model.Generation{}
		}
		tree.Series = append(tree.Series, model.SeriesWithGenerations{Series: s, Generations: gens})
	}

	return tree, nil
}

// Reset очищает марки, серии и поколения одной транзакцией,
// чтобы частичный сбой не оставлял справочник наполовину удаленным.
func (repository *CatalogRepository) Reset(ctx context.Context) error {
	tx, err := repository.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"generations", "series", "brands"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("ошибка очистки таблицы %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return nil
}

// UpsertBrand вставляет или обновляет марку по имени и возвращает ее id.
func (repository *CatalogRepository) UpsertBrand(ctx context.Context, brand *model.Brand) (string, error) {
	query := `INSERT INTO brands (id, name, country, logo)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (name) DO UPDATE SET country = EXCLUDED.country, logo = EXCLUDED.logo
			  RETURNING id`

	if brand.ID == "" {
		brand.ID = uuid.New().String()
	}

	var id string
	err := repository.DB.QueryRowxContext(ctx, query, brand.ID, brand.Name, brand.Country, brand.Logo).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("ошибка upsert марки: %w", err)
	}

	return id, nil
}

// UpsertSeries вставляет или возвращает существующую серию (brand, name).
func (repository *CatalogRepository) UpsertSeries(ctx context.Context, brandID string, name string) (string, error) {
	query := `INSERT INTO series (id, brand_id, name)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (brand_id, name) DO UPDATE SET name = EXCLUDED.name
			  RETURNING id`

	var id string
	err := repository.DB.QueryRowxContext(ctx, query, uuid.New().String(), brandID, name).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("ошибка upsert серии: %w", err)
	}

	return id, nil
}

// UpsertGeneration вставляет или обновляет поколение (series, code).
func (repository *CatalogRepository) UpsertGeneration(ctx context.Context, generation *model.Generation) error {
	query := `INSERT INTO generations (id, series_id, code, year_start, year_end)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (series_id, code) DO UPDATE SET year_start = EXCLUDED.year_start, year_end = EXCLUDED.year_end`

	if generation.ID == "" {
		generation.ID = uuid.New().String()
	}

	_, err := repository.DB.ExecContext(ctx, query,
		generation.ID, generation.SeriesID, generation.Code, generation.YearStart, generation.YearEnd)
	if err != nil {
		return fmt.Errorf("ошибка upsert поколения: %w", err)
	}

	return nil
}
