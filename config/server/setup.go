package server

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"wheelix/internal"
	"wheelix/internal/logger"
)

var (
	DbConnectionString string
	JWTSecret          string
	JWTRefreshSecret   string
)

func init() {
	if err := godotenv.Load(); err != nil {
		logger.Info(".env не найден, используются переменные окружения")
	}

	DbConnectionString = os.Getenv("DATABASE_URL")
	JWTSecret = os.Getenv("JWT_SECRET")
	JWTRefreshSecret = os.Getenv("JWT_REFRESH_SECRET")
}

func SetupDatabase(dbDriver string) (*internal.Database, error) {
	database, err := internal.NewDatabaseConnection(dbDriver, DbConnectionString)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения: %w", err)
	}
	return database, nil
}

func SetupServer(host string, port string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	server := &http.Server{
		Addr:    host + ":" + port,
		Handler: router,
	}

	return server, router
}
