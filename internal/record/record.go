package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/JECT-02/torua-ledger/internal/money"
)

// ErrMalformed is returned when a line does not have the expected field
// count for the record type being parsed.
var ErrMalformed = errors.New("línea mal formada")

// ErrNotFound is returned by Find when no line's key field matches id.
var ErrNotFound = errors.New("ID no encontrado")

// Account is one row of a cuentas_part{p}.txt file.
type Account struct {
	ID       string
	ClientID string
	Balance  money.Amount
	OpenedOn string
}

// ParseAccount decodes a comma-separated id,client_id,balance,opened_on line.
func ParseAccount(line string) (Account, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return Account{}, fmt.Errorf("%w: cuenta %q", ErrMalformed, line)
	}
	balance, err := money.Parse(fields[2])
	if err != nil {
		return Account{}, fmt.Errorf("cuenta %q: %w", line, err)
	}
	return Account{
		ID:       fields[0],
		ClientID: fields[1],
		Balance:  balance,
		OpenedOn: fields[3],
	}, nil
}

// Encode renders the account back into its on-disk line form.
func (a Account) Encode() string {
	return strings.Join([]string{a.ID, a.ClientID, a.Balance.String(), a.OpenedOn}, ",")
}

// Loan is one row of a prestamos_part{p}.txt file. ClientID is the full
// "cliente_{account_id}" owner key, not a bare account id.
type Loan struct {
	ID       string
	ClientID string
	Total    money.Amount
	Paid     money.Amount
	Status   string
	Deadline string
}

// ParseLoan decodes a comma-separated id,client_id,total,paid,status,deadline
// line.
func ParseLoan(line string) (Loan, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 6 {
		return Loan{}, fmt.Errorf("%w: préstamo %q", ErrMalformed, line)
	}
	total, err := money.Parse(fields[2])
	if err != nil {
		return Loan{}, fmt.Errorf("préstamo %q: %w", line, err)
	}
	paid, err := money.Parse(fields[3])
	if err != nil {
		return Loan{}, fmt.Errorf("préstamo %q: %w", line, err)
	}
	return Loan{
		ID:       fields[0],
		ClientID: fields[1],
		Total:    total,
		Paid:     paid,
		Status:   fields[4],
		Deadline: fields[5],
	}, nil
}

// Encode renders the loan back into its on-disk line form.
func (l Loan) Encode() string {
	return strings.Join([]string{l.ID, l.ClientID, l.Total.String(), l.Paid.String(), l.Status, l.Deadline}, ",")
}

// Remaining returns total - paid, quantized.
func (l Loan) Remaining() money.Amount {
	return l.Total.Sub(l.Paid)
}

// Transaction is one row of a transacciones_part{p}.txt seed file. The
// worker never mutates this table; the type exists so fixtures and audit
// tooling can decode it without hand-rolled CSV splitting.
type Transaction struct {
	ID        string
	AccountID string
	Kind      string
	Amount    money.Amount
	Timestamp string
}

// ParseTransaction decodes a comma-separated id,account_id,kind,amount,
// timestamp line.
func ParseTransaction(line string) (Transaction, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 5 {
		return Transaction{}, fmt.Errorf("%w: transacción %q", ErrMalformed, line)
	}
	amount, err := money.Parse(fields[3])
	if err != nil {
		return Transaction{}, fmt.Errorf("transacción %q: %w", line, err)
	}
	return Transaction{
		ID:        fields[0],
		AccountID: fields[1],
		Kind:      fields[2],
		Amount:    amount,
		Timestamp: fields[4],
	}, nil
}

// Encode renders the transaction back into its on-disk line form.
func (t Transaction) Encode() string {
	return strings.Join([]string{t.ID, t.AccountID, t.Kind, t.Amount.String(), t.Timestamp}, ",")
}

// HistoryEntry is one row of a historial_part{p}.txt file.
type HistoryEntry struct {
	Timestamp    string
	AccountID    string
	Operation    string
	Details      string
	BalanceAfter string
}

// NewHistoryEntry builds a history entry with a known post-operation
// balance. Details is cleaned of '\n' and '|' before it is stored, matching
// the original worker's log_history behavior.
func NewHistoryEntry(timestamp, accountID, operation, details string, balance money.Amount) HistoryEntry {
	return HistoryEntry{
		Timestamp:    timestamp,
		AccountID:    accountID,
		Operation:    operation,
		Details:      CleanDetail(details),
		BalanceAfter: balance.String(),
	}
}

// NewHistoryEntryNoBalance builds a history entry for the rare case the
// original worker records ("N/A") when no balance could be observed.
func NewHistoryEntryNoBalance(timestamp, accountID, operation, details string) HistoryEntry {
	return HistoryEntry{
		Timestamp:    timestamp,
		AccountID:    accountID,
		Operation:    operation,
		Details:      CleanDetail(details),
		BalanceAfter: "N/A",
	}
}

// CleanDetail strips newlines and pipes from a free-text detail string so it
// cannot corrupt the pipe-delimited history line it is embedded in.
func CleanDetail(details string) string {
	r := strings.NewReplacer("\n", " ", "|", " ")
	return r.Replace(details)
}

// Encode renders the history entry into its pipe-delimited on-disk line.
func (h HistoryEntry) Encode() string {
	return strings.Join([]string{h.Timestamp, h.AccountID, h.Operation, h.Details, h.BalanceAfter}, "|")
}

// ParseHistoryEntry decodes a pipe-delimited timestamp|account_id|operation|
// details|balance_after line.
func ParseHistoryEntry(line string) (HistoryEntry, error) {
	fields := strings.Split(line, "|")
	if len(fields) != 5 {
		return HistoryEntry{}, fmt.Errorf("%w: historial %q", ErrMalformed, line)
	}
	return HistoryEntry{
		Timestamp:    fields[0],
		AccountID:    fields[1],
		Operation:    fields[2],
		Details:      fields[3],
		BalanceAfter: fields[4],
	}, nil
}

// Find performs a linear scan over lines, matching each line's first
// comma-separated field against id. Used for the comma-delimited accounts
// and loans tables; history is pipe-delimited and never looked up by key.
// Returns the line's index, its content, and ErrNotFound if no line
// matches.
func Find(lines []string, id string) (int, string, error) {
	for i, line := range lines {
		fields := strings.SplitN(line, ",", 2)
		if len(fields) > 0 && fields[0] == id {
			return i, line, nil
		}
	}
	return -1, "", ErrNotFound
}

// ParseID parses a decimal account/loan/client identifier used for
// partition placement. IDs are otherwise treated as opaque strings
// throughout this package.
func ParseID(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("id inválido %q: %w", s, err)
	}
	return n, nil
}
