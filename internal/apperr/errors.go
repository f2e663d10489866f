// Package apperr defines the two failure kinds the ledger can produce and the
// literal messages clients rely on.
package apperr

import "errors"

// Kind tells the HTTP layer which status family a failure belongs to.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is an expected, non-fatal ledger outcome. Message is rendered to
// clients verbatim.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Validation builds a rejection caused by a violated numeric rule.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound builds a rejection caused by an unknown identifier.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

var (
	ErrUserNotFound    = NotFound("User is not found")
	ErrAccountNotFound = NotFound("Account is not found")

	ErrBalanceBelowMinimum = Validation("An account cannot have less than $100")
	ErrDepositTooLarge     = Validation("Deposit amount cannot be bigger than $10000")
	ErrWithdrawalTooLarge  = Validation("A user cannot withdraw more than 90% of their total balance from an account in a single transaction")
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound returns true if err refers to a missing user or account.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidation returns true if err is a rule rejection.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}
