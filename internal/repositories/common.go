package repositories

import (
	"errors"

	"github.com/lib/pq"
)

const pqUniqueViolation = pq.ErrorCode("23505")

// sqlStateError is implemented by the errors of both lib/pq and pgx.
type sqlStateError interface {
	SQLState() string
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	var stateErr sqlStateError
	return errors.As(err, &stateErr) && stateErr.SQLState() == string(pqUniqueViolation)
}
