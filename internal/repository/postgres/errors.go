package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"rentable-backend/internal/domain"

	"github.com/lib/pq"
)

const (
	pqForeignKeyViolation  = "23503"
	pqUniqueViolation      = "23505"
	pqCheckViolation       = "23514"
	pqInvalidTextRepresent = "22P02"
)

// mapError translates driver errors into domain sentinels.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrConflict, pqErr.Detail)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: referenced row missing: %w", op, domain.ErrNotFound)
		case pqCheckViolation:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrInvalidInput, pqErr.Constraint)
		case pqInvalidTextRepresent:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrInvalidInput, pqErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// requireAffected turns a zero-row mutation into domain.ErrNotFound.
func requireAffected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}
