package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	lock := fmt.Errorf("lock order: %w", &pgconn.PgError{Code: "55P03"})
	unique := &pgconn.PgError{Code: "23505"}
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, IsLockNotAvailable(lock))
	assert.False(t, IsLockNotAvailable(unique))
	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsCheckViolation(check))
	assert.False(t, IsCheckViolation(errors.New("plain")))
	assert.True(t, IsDeadlock(fmt.Errorf("settle: %w", &pgconn.PgError{Code: "40P01"})))
	assert.False(t, IsDeadlock(lock))
}
