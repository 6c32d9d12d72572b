package storage

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	ErrNotFound  = errors.New("storage: not found")
	ErrDuplicate = errors.New("storage: duplicate")
	// ErrConflict means the row changed or is still referenced.
	ErrConflict = errors.New("storage: conflict")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// translate maps driver errors onto the package sentinels. Anything else is
// returned untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return ErrDuplicate
		case pqForeignKeyViolation:
			return ErrConflict
		}
	}
	return err
}
