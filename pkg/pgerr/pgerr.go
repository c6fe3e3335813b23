package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые сервис различает
const (
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
)

// Code возвращает SQLSTATE код ошибки PostgreSQL
// Поддерживает оба драйвера: lib/pq и pgx (stdlib)
// Для остальных ошибок возвращает пустую строку
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}

	return ""
}

// IsForeignKeyViolation проверяет нарушение внешнего ключа
func IsForeignKeyViolation(err error) bool {
	return Code(err) == ForeignKeyViolation
}

// IsUniqueViolation проверяет нарушение уникальности
func IsUniqueViolation(err error) bool {
	return Code(err) == UniqueViolation
}
