package ledger

import (
	"errors"
	"time"

	"github.com/JECT-02/torua-ledger/internal/money"
	"github.com/JECT-02/torua-ledger/internal/record"
	"github.com/JECT-02/torua-ledger/internal/store"
)

// now is overridden in tests so loan-deadline comparisons are deterministic.
var now = time.Now

const dateLayout = "2006-01-02"
const timestampLayout = "2006-01-02 15:04:05"

// readLines loads a partition file's lines, assuming the engine lock is
// already held. A missing file becomes a domain error with the exact
// "Archivo no encontrado: {path}" text the original worker returns.
func readLines(path string) ([]string, error) {
	lines, err := store.ReadAll(path)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainErrorf("Archivo no encontrado: %s", path)
		}
		return nil, err
	}
	return lines, nil
}

// loadAccount reads accountID's partition file and locates its record.
// notFoundMsg is the fully-formatted domain error message raised when the
// account is absent, e.g. "Cuenta de origen 7 no encontrada".
func loadAccount(path, accountID, notFoundMsg string) ([]string, int, record.Account, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, 0, record.Account{}, err
	}
	idx, acct, err := findAccountInLines(lines, accountID, notFoundMsg)
	if err != nil {
		return nil, 0, record.Account{}, err
	}
	return lines, idx, acct, nil
}

// findAccountInLines locates accountID inside an already-loaded partition
// file's lines. notFoundMsg is used verbatim as the domain error message.
func findAccountInLines(lines []string, accountID, notFoundMsg string) (int, record.Account, error) {
	idx, line, err := record.Find(lines, accountID)
	if err != nil {
		return 0, record.Account{}, wrapDomainError(ErrAccountNotFound, "%s", notFoundMsg)
	}
	acct, err := record.ParseAccount(line)
	if err != nil {
		return 0, record.Account{}, err
	}
	return idx, acct, nil
}

// writeAccount rewrites idx in lines with acct's encoded form and persists
// the whole partition file atomically.
func writeAccount(path string, lines []string, idx int, acct record.Account) error {
	lines[idx] = acct.Encode()
	return store.WriteAll(path, lines)
}

func timestamp() string {
	return now().Format(timestampLayout)
}

func today() time.Time {
	t := now()
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDeadline(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// appendHistory writes a history entry for accountID, assuming the lock is
// already held. A write failure is logged and swallowed: history is
// advisory and must never turn a committed mutation into a reported
// failure (spec §7, propagation policy).
func (e *Engine) appendHistory(accountID, operation, details string, balance money.Amount) {
	entry := record.NewHistoryEntry(timestamp(), accountID, operation, details, balance)
	if err := store.AppendLine(e.historyPathForAccountID(accountID), entry.Encode()); err != nil {
		e.Logger.Warn().Err(err).Str("account_id", accountID).Str("operation", operation).
			Msg("failed to append history entry")
	}
}

// appendHistoryUnknownBalance writes a history entry when no balance could
// be observed (the original worker records "N/A" in that case).
func (e *Engine) appendHistoryUnknownBalance(accountID, operation, details string) {
	entry := record.NewHistoryEntryNoBalance(timestamp(), accountID, operation, details)
	if err := store.AppendLine(e.historyPathForAccountID(accountID), entry.Encode()); err != nil {
		e.Logger.Warn().Err(err).Str("account_id", accountID).Str("operation", operation).
			Msg("failed to append history entry")
	}
}

// historyPathForAccountID parses the numeric account id to resolve its
// partition; numeric parse failures are treated as partition 1, since a
// malformed account id would already have been rejected earlier in the
// executor before a history entry is ever attempted.
func (e *Engine) historyPathForAccountID(accountID string) string {
	id, err := record.ParseID(accountID)
	if err != nil {
		id = 1
	}
	return e.historyPath(id)
}
