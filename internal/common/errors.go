package common

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrorKind groups sentinel errors so the delivery layer can translate them
// without knowing every sentinel.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvariant:
		return "invariant_violation"
	default:
		return "unknown"
	}
}

var (
	ErrNoRows         = sql.ErrNoRows
	ErrUnableToCreate = errors.New("unable to create data")

	// validation
	ErrValidation               = errors.New("validation failed")
	ErrInvalidUUID              = errors.New("invalid uuid")
	ErrEmptyTransactionList     = errors.New("transaction list is empty")
	ErrInsufficientTransactions = errors.New("a match needs at least two transactions")
	ErrDuplicateTransaction     = errors.New("duplicate transaction id")
	ErrInvalidUnmatchSelector   = errors.New("exactly one of matchId, all or transactionId is required")
	ErrMissingActor             = errors.New("missing actor id")

	// not found
	ErrDataNotFound        = errors.New("data not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrRuleNotFound        = errors.New("matching rule not found")

	// conflict
	ErrDataExist              = errors.New("data exist")
	ErrSumNotZero             = errors.New("transactions do not net to zero within tolerance")
	ErrAlreadyMatched         = errors.New("transaction already matched")
	ErrNotMatched             = errors.New("transaction is not matched")
	ErrConcurrentModification = errors.New("transactions modified by another process")
	ErrRunInProgress          = errors.New("matching run already in progress for client")

	// invariant
	ErrInvariantViolation = errors.New("match invariant violated")
)

var errorKinds = map[error]ErrorKind{
	ErrValidation:               KindValidation,
	ErrInvalidUUID:              KindValidation,
	ErrEmptyTransactionList:     KindValidation,
	ErrInsufficientTransactions: KindValidation,
	ErrDuplicateTransaction:     KindValidation,
	ErrInvalidUnmatchSelector:   KindValidation,
	ErrMissingActor:             KindValidation,

	ErrDataNotFound:        KindNotFound,
	ErrTransactionNotFound: KindNotFound,
	ErrMatchNotFound:       KindNotFound,
	ErrClientNotFound:      KindNotFound,
	ErrRuleNotFound:        KindNotFound,

	ErrDataExist:              KindConflict,
	ErrSumNotZero:             KindConflict,
	ErrAlreadyMatched:         KindConflict,
	ErrNotMatched:             KindConflict,
	ErrConcurrentModification: KindConflict,
	ErrRunInProgress:          KindConflict,

	ErrInvariantViolation: KindInvariant,
}

// KindOf returns the kind of the first sentinel found in err's chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	for sentinel, kind := range errorKinds {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindUnknown
}

// IsRetryable reports whether the caller may retry the whole operation.
// Only concurrency conflicts qualify.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrentModification) || errors.Is(err, ErrRunInProgress)
}

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}

func (e WrapError) Unwrap() error {
	return e.Err
}
