package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"wheelix/internal"
)

// newTestDatabase оборачивает sqlmock в *internal.Database для тестов репозиториев.
func newTestDatabase(t *testing.T) (*internal.Database, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("не удалось создать sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &internal.Database{DB: sqlx.NewDb(db, "sqlmock")}, mock
}
