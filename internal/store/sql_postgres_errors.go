package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification tells a repository whether a failed statement could
// succeed on a second attempt. Repositories only log it; nothing is retried.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// ErrorClassificator classifies errors of one database driver.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier classifies pgx errors by SQLSTATE class.
//
// A failed call insert or lookup lands in one of three groups:
//   - the row itself is refused (class 23). The owner is gone or the call id
//     is taken; classifyConstraint turns these into ErrUserNotFound and
//     ErrCallAlreadyExists before classification is consulted.
//   - the connection or the transaction broke underneath a correct statement
//     (class 08, class 40, 57P03 while the server starts). Retryable.
//   - anything else: bad data, bad SQL, unknown codes. NonRetryable.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	return ClassifyPgError(postgresError(err))
}

// ClassifyPgError classifies a SQLSTATE code; an empty code (not a Postgres
// error) is NonRetryable.
func ClassifyPgError(code string) ErrorClassification {
	switch {
	case code == "":
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

// postgresConstraint maps the integrity violations a call insert can hit.
func postgresConstraint(code string) constraintViolation {
	switch code {
	case pgerrcode.ForeignKeyViolation:
		return foreignKeyViolation
	case pgerrcode.UniqueViolation:
		return uniqueViolation
	default:
		return noViolation
	}
}
