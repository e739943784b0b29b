// Package ledger implements the transaction engine: the eight query
// executors that read and mutate a node's partitioned flat-file tables
// under a single node-wide lock.
//
// # Overview
//
// An Engine owns one node's data directory and the lock that serializes
// every access to it. Each exported executor — ConsultarCuenta,
// TransferirCuenta, Debit, Credit, PagarDeuda, ConsultarHistorial,
// EstadoPagoPrestamo, ArqueoCuentas — acquires that lock once, performs its
// read-modify-write sequence against the store and record packages, and
// releases it before returning, regardless of outcome.
//
// # Thread safety
//
// Go's sync.Mutex is not reentrant, unlike the RLock the worker this engine
// is modeled on used. Rather than hand-roll a reentrant mutex, every
// exported executor locks exactly once at its own entry point; the
// unexported helpers it calls (loadAccount, findAccountInLines, writeAccount,
// appendHistory, ...) all assume the lock is already held and never lock themselves. This
// preserves the original single-critical-section-per-request guarantee
// without the subtle bookkeeping a hand-rolled reentrant lock would need.
//
// # Error handling
//
// A wrong parameter count, account-not-found, insufficient funds,
// cross-partition transfer, overdue loan, and so on are all domain errors,
// reported as *DomainError and rendered by Engine.Execute into the matching
// ERROR|... wire message. Any other error propagates as a plain error, which
// Engine.Execute logs and turns into "ERROR|Error interno del worker: ...".
// That covers a filesystem failure that is not "missing file" and a decimal
// that fails to parse from stored data, and also a client-supplied id or
// amount that is not a number: the record.ParseID / money.Parse error is
// returned as is, so such a request gets the internal-error response, not
// "Parámetros incorrectos".
package ledger
