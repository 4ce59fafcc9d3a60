package repository

import (
	"errors"

	"github.com/lib/pq"
)

// isUniqueViolation распознает нарушение уникального ограничения Postgres.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
