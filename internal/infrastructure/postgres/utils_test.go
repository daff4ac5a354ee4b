package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorCodes(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("insert ingrediente: %w", &pgconn.PgError{Code: code})
	}

	assert.True(t, isForeignKeyViolation(wrap(codeForeignKeyViolation)))
	assert.False(t, isForeignKeyViolation(wrap(codeCheckViolation)))

	assert.True(t, isInvalidValue(wrap(codeCheckViolation)))
	assert.True(t, isInvalidValue(wrap(codeNumericOutOfRange)))
	assert.False(t, isInvalidValue(wrap(codeForeignKeyViolation)))
	assert.False(t, isInvalidValue(errors.New("connection reset")))
}
