package repository

import (
	"errors"

	"github.com/lib/pq"
)

// коды ошибок PostgreSQL, см. https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pqUniqueViolation = "23505"
	pqCheckViolation  = "23514"
)

// isPQError проверяет, что ошибка пришла от констрейнта с нужным кодом.
// Уникальные и check-констрейнты - единственный арбитр для гонок
// параллельных вставок, поэтому репозитории не делают read-then-write проверок.
func isPQError(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}

// pqConstraint возвращает имя нарушенного констрейнта, пустая строка если ошибка не от pq
func pqConstraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
