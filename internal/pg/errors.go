package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeLockNotAvailable = "55P03"
	codeUniqueViolation  = "23505"
	codeCheckViolation   = "23514"
	codeDeadlockDetected = "40P01"
)

// IsLockNotAvailable reports a NOWAIT or lock_timeout failure.
func IsLockNotAvailable(err error) bool {
	return hasCode(err, codeLockNotAvailable)
}

func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// IsCheckViolation reports a violated CHECK constraint, e.g. a balance going negative.
func IsCheckViolation(err error) bool {
	return hasCode(err, codeCheckViolation)
}

// IsDeadlock reports a transaction Postgres aborted to break a lock cycle.
func IsDeadlock(err error) bool {
	return hasCode(err, codeDeadlockDetected)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
