package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"wheelix/config"
	"wheelix/config/server"
	"wheelix/internal/handler"
	"wheelix/internal/logger"
	"wheelix/internal/middleware"
	"wheelix/internal/migrate"
	"wheelix/internal/repository"
	"wheelix/internal/security"
	"wheelix/internal/service"
)

func main() {
	defer logger.Sync()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal("не удалось загрузить конфигурацию", zap.Error(err))
	}

	accessTTL, err := cfg.JWT.AccessTTL()
	if err != nil {
		logger.Fatal("неверная конфигурация JWT", zap.Error(err))
	}
	refreshTTL, err := cfg.JWT.RefreshTTL()
	if err != nil {
		logger.Fatal("неверная конфигурация JWT", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := migrate.Up(ctx, server.DbConnectionString); err != nil {
		logger.Fatal("не удалось применить миграции", zap.Error(err))
	}

	database, err := server.SetupDatabase(cfg.Database.Driver)
	if err != nil {
		logger.Fatal("не удалось подключиться к БД", zap.Error(err))
	}
	defer database.Close()

	httpServer, router := server.SetupServer(cfg.Server.Host, cfg.Server.Port)
	router.Use(middleware.RequestLogger)

	jwtService := security.NewJWTService(cfg.JWT.Issuer,
		[]byte(server.JWTSecret), []byte(server.JWTRefreshSecret), accessTTL, refreshTTL)

	userRepository := repository.NewUserRepository(database)
	jwtRepository := repository.NewJWTRepository(database)
	carRepository := repository.NewCarRepository(database)
	boostRepository := repository.NewBoostRepository(database)
	tariffRepository := repository.NewTariffRepository(database)
	catalogRepository := repository.NewCatalogRepository(database)
	favoriteRepository := repository.NewFavoriteRepository(database)
	reviewRepository := repository.NewReviewRepository(database)
	reportRepository := repository.NewReportRepository(database)

	authenticationService := service.NewAuthenticationService(userRepository, jwtRepository, jwtService)
	carService := service.NewCarService(carRepository)
	boostService := service.NewBoostService(boostRepository, tariffRepository)

	authenticationHandler := handler.NewAuthenticationHandler(authenticationService)
	carHandler := handler.NewCarHandler(carService)
	boostHandler := handler.NewBoostHandler(boostService)
	brandHandler := handler.NewBrandHandler(catalogRepository)
	tariffHandler := handler.NewTariffHandler(tariffRepository)
	favoriteHandler := handler.NewFavoriteHandler(favoriteRepository)
	reviewHandler := handler.NewReviewHandler(reviewRepository)
	reportHandler := handler.NewReportHandler(reportRepository)

	authMiddleware := security.JWTMiddleware([]byte(server.JWTSecret))

	router.Route(cfg.Server.BasePath, func(api chi.Router) {
		api.Route("/auth", func(r chi.Router) {
			r.Post("/register", authenticationHandler.Register)
			r.Post("/login", authenticationHandler.Login)
			r.Post("/refresh", authenticationHandler.RefreshToken)
			r.Get("/users", authenticationHandler.ListUsers)
			r.With(authMiddleware).Get("/me", authenticationHandler.GetCurrentUser)
		})

		api.Route("/cars", func(r chi.Router) {
			r.Get("/", carHandler.List)
			r.Get("/{id}", carHandler.One)
			r.Get("/{id}/reviews", reviewHandler.ListByCar)
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Post("/", carHandler.Create)
				r.Patch("/{id}", carHandler.Update)
				r.Delete("/{id}", carHandler.Delete)
				r.Post("/{id}/favorite", favoriteHandler.Toggle)
				r.Post("/{id}/review", reviewHandler.Create)
				r.Post("/{id}/report", reportHandler.Create)
			})
		})

		api.Route("/boost", func(r chi.Router) {
			r.With(authMiddleware).Post("/{id}/boost", boostHandler.Buy)
			r.With(authMiddleware).Delete("/expired", boostHandler.SweepExpired)
		})

		api.Route("/brands", func(r chi.Router) {
			r.Get("/", brandHandler.List)
			r.Get("/{id}", brandHandler.One)
			r.With(authMiddleware).Delete("/admin/reset", brandHandler.Reset)
		})

		api.Route("/tariffs", func(r chi.Router) {
			r.Get("/", tariffHandler.List)
			r.Get("/{id}", tariffHandler.One)
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Post("/", tariffHandler.Create)
				r.Patch("/{id}", tariffHandler.Update)
				r.Delete("/{id}", tariffHandler.Delete)
			})
		})

		api.Get("/reports", reportHandler.List)
		api.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/me/favorites", favoriteHandler.ListMine)
			r.Patch("/reviews/{id}", reviewHandler.Update)
			r.Delete("/reviews/{id}", reviewHandler.Delete)
			r.Patch("/reports/{id}", reportHandler.Resolve)
		})
	})

	cronRunner := cron.New()
	_, err = cronRunner.AddFunc(cfg.Boost.SweepSchedule, func() {
		sweepCtx, sweepCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer sweepCancel()
		if _, err := boostService.SweepExpired(sweepCtx); err != nil {
			logger.Error("ошибка фоновой очистки бустов", zap.Error(err))
		}
	})
	if err != nil {
		logger.Fatal("неверное расписание очистки бустов", zap.Error(err))
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	runServer(ctx, httpServer)
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("сервер запущен", zap.String("addr", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			logger.Fatal("ошибка работы сервера", zap.Error(err))
		}
	case sig := <-signalChannel:
		logger.Info("получен сигнал остановки работы сервера", zap.String("signal", sig.String()))
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		logger.Error("не удалось корректно остановить сервер", zap.Error(err))
	}
}
