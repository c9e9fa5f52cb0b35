package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"feedhub/internal/domain"
)

const (
	foreignKeyViolation pq.ErrorCode = "23503"
	uniqueViolation     pq.ErrorCode = "23505"
)

func errorCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

// translate maps driver errors onto domain sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrNotFound
	case errorCode(err) == foreignKeyViolation:
		return domain.ErrNotFound
	case errorCode(err) == uniqueViolation:
		return domain.ErrConstraintConflict
	}
	return err
}
