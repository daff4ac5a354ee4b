package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNumericOutOfRange   = "22003"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503): la fila sigue referenciada.
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}

// isCheckViolation verifica si un error es una violación de CHECK (23514), ej. cantidad negativa.
func isCheckViolation(err error) bool {
	return pgCode(err) == codeCheckViolation
}

// isInvalidValue CHECK violado o número fuera de la precisión de la columna (22003).
func isInvalidValue(err error) bool {
	return isCheckViolation(err) || pgCode(err) == codeNumericOutOfRange
}
