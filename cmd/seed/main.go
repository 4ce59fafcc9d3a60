package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"go.uber.org/zap"

	"wheelix/config/server"
	"wheelix/internal/logger"
	"wheelix/internal/migrate"
	"wheelix/internal/model"
	"wheelix/internal/repository"
)

// seedBrand описывает одну марку в JSON-файле каталога.
type seedBrand struct {
	Name    string       `json:"name"`
	Country *string      `json:"country"`
	Logo    *string      `json:"logo"`
	Series  []seedSeries `json:"series"`
}

type seedSeries struct {
	Name        string           `json:"name"`
	Generations []seedGeneration `json:"generations"`
}

type seedGeneration struct {
	Code      string `json:"code"`
	YearStart int    `json:"yearStart"`
	YearEnd   *int   `json:"yearEnd"`
}

func main() {
	defer logger.Sync()

	filePath := flag.String("file", "seed/catalog.json", "путь к JSON-файлу каталога")
	reset := flag.Bool("reset", false, "очистить справочник перед загрузкой")
	flag.Parse()

	data, err := os.ReadFile(*filePath)
	if err != nil {
		logger.Fatal("не удалось прочитать файл каталога", zap.Error(err))
	}

	var brands []seedBrand
	if err := json.Unmarshal(data, &brands); err != nil {
		logger.Fatal("не удалось разобрать файл каталога", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := migrate.Up(ctx, server.DbConnectionString); err != nil {
		logger.Fatal("не удалось применить миграции", zap.Error(err))
	}

	database, err := server.SetupDatabase("postgres")
	if err != nil {
		logger.Fatal("не удалось подключиться к БД", zap.Error(err))
	}
	defer database.Close()

	catalogRepository := repository.NewCatalogRepository(database)

	if *reset {
		if err := catalogRepository.Reset(ctx); err != nil {
			logger.Fatal("не удалось очистить справочник", zap.Error(err))
		}
	}

	var seriesCount, generationsCount int
	for _, brand := range brands {
		brandID, err := catalogRepository.UpsertBrand(ctx, &model.Brand{
			Name:    brand.Name,
			Country: brand.Country,
			Logo:    brand.Logo,
		})
		if err != nil {
			logger.Fatal("не удалось сохранить марку", zap.String("brand", brand.Name), zap.Error(err))
		}

		for _, series := range brand.Series {
			seriesID, err := catalogRepository.UpsertSeries(ctx, brandID, series.Name)
			if err != nil {
				logger.Fatal("не удалось сохранить серию",
					zap.String("brand", brand.Name), zap.String("series", series.Name), zap.Error(err))
			}
			seriesCount++

			for _, generation := range series.Generations {
				err := catalogRepository.UpsertGeneration(ctx, &model.Generation{
					SeriesID:  seriesID,
					Code:      generation.Code,
					YearStart: generation.YearStart,
					YearEnd:   generation.YearEnd,
				})
				if err != nil {
					logger.Fatal("не удалось сохранить поколение",
						zap.String("series", series.Name), zap.String("code", generation.Code), zap.Error(err))
				}
				generationsCount++
			}
		}
	}

	logger.Info("справочник загружен",
		zap.Int("brands", len(brands)),
		zap.Int("series", seriesCount),
		zap.Int("generations", generationsCount))
}
