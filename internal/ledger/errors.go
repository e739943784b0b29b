package ledger

import (
	"errors"
	"fmt"
)

// Sentinel causes behind the five domain-error families spec.md §4/§7
// enumerates. Executors never render these directly — the exact
// Spanish-language wire text is built by wrapDomainError — but callers can
// still errors.Is against them, the pattern this codebase's banking-domain
// reference (a Postgres account repository) uses for ErrAccountNotFound/
// ErrInsufficientFunds.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrLoanNotFound      = errors.New("loan not found or not owned by account")
	ErrLoanOverdue       = errors.New("loan past its deadline")
	ErrCrossPartition    = errors.New("operation spans more than one partition")
)

// DomainError is a user-visible, expected rejection: account or loan not
// found, insufficient funds, an overdue loan, a cross-partition transfer
// request, or a malformed parameter list. Executors return it instead of a
// plain error so the caller can render it directly as ERROR|{message}
// without logging it as a failure (spec: domain errors are user-visible,
// not logged as failures).
type DomainError struct {
	msg   string
	cause error
}

func (e *DomainError) Error() string { return e.msg }

// Unwrap exposes the sentinel cause, if any, so callers can errors.Is
// against ErrAccountNotFound and friends without parsing wire text.
func (e *DomainError) Unwrap() error { return e.cause }

// domainErrorf builds a *DomainError with a formatted message and no
// sentinel cause — used for rejections that do not correspond to one of
// the named sentinels above (bad parameters, same-account transfer, etc).
func domainErrorf(format string, args ...any) error {
	return &DomainError{msg: fmt.Sprintf(format, args...)}
}

// wrapDomainError builds a *DomainError carrying both the exact wire
// message and a sentinel cause identifying its family.
func wrapDomainError(cause error, format string, args ...any) error {
	return &DomainError{msg: fmt.Sprintf(format, args...), cause: cause}
}

// IsDomainError reports whether err is a *DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
