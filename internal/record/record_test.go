package record

import (
	"errors"
	"testing"

	"github.com/JECT-02/torua-ledger/internal/money"
)

func TestParseAccountRoundTrip(t *testing.T) {
	line := "7,cliente_7,100.00,2024-01-01"
	a, err := ParseAccount(line)
	if err != nil {
		t.Fatalf("ParseAccount: %v", err)
	}
	if a.ID != "7" || a.ClientID != "cliente_7" || a.OpenedOn != "2024-01-01" {
		t.Fatalf("unexpected account: %+v", a)
	}
	if a.Balance.String() != "100.00" {
		t.Fatalf("balance = %s, want 100.00", a.Balance)
	}
	if got := a.Encode(); got != line {
		t.Fatalf("Encode() = %q, want %q", got, line)
	}
}

func TestParseAccountMalformed(t *testing.T) {
	if _, err := ParseAccount("7,cliente_7,100.00"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestParseLoanRoundTrip(t *testing.T) {
	line := "42,cliente_5,150.00,100.00,Activo,2030-01-01"
	l, err := ParseLoan(line)
	if err != nil {
		t.Fatalf("ParseLoan: %v", err)
	}
	if l.Remaining().String() != "50.00" {
		t.Fatalf("Remaining() = %s, want 50.00", l.Remaining())
	}
	if got := l.Encode(); got != line {
		t.Fatalf("Encode() = %q, want %q", got, line)
	}
}

func TestParseTransactionRoundTrip(t *testing.T) {
	line := "1,7,DEPOSITO,500.00,2024-01-01T00:00:00"
	tx, err := ParseTransaction(line)
	if err != nil {
		t.Fatalf("ParseTransaction: %v", err)
	}
	if tx.Amount.String() != "500.00" {
		t.Fatalf("Amount = %s, want 500.00", tx.Amount)
	}
	if got := tx.Encode(); got != line {
		t.Fatalf("Encode() = %q, want %q", got, line)
	}
}

func TestHistoryEntryCleansDetails(t *testing.T) {
	h := NewHistoryEntry("2024-01-01 10:00:00", "7", "DEBIT", "M:10.00|note\nwith break", money.MustParse("90.00"))
	want := "2024-01-01 10:00:00|7|DEBIT|M:10.00 note with break|90.00"
	if got := h.Encode(); got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}
}

func TestHistoryEntryNoBalance(t *testing.T) {
	h := NewHistoryEntryNoBalance("2024-01-01 10:00:00", "7", "CONSULTAR_CUENTA", "")
	if h.BalanceAfter != "N/A" {
		t.Fatalf("BalanceAfter = %q, want N/A", h.BalanceAfter)
	}
}

func TestParseHistoryEntry(t *testing.T) {
	line := "2024-01-01 10:00:00|7|DEBIT|M:10.00|90.00"
	h, err := ParseHistoryEntry(line)
	if err != nil {
		t.Fatalf("ParseHistoryEntry: %v", err)
	}
	if h.Timestamp != "2024-01-01 10:00:00" || h.AccountID != "7" || h.Operation != "DEBIT" ||
		h.Details != "M:10.00" || h.BalanceAfter != "90.00" {
		t.Fatalf("ParseHistoryEntry = %+v, unexpected fields", h)
	}
}

func TestFind(t *testing.T) {
	lines := []string{
		"7,cliente_7,100.00,2024-01-01",
		"10,cliente_10,50.00,2024-01-02",
	}
	idx, line, err := Find(lines, "10")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if idx != 1 || line != lines[1] {
		t.Fatalf("Find = (%d, %q), want (1, %q)", idx, line, lines[1])
	}

	if _, _, err := Find(lines, "999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParseID(t *testing.T) {
	n, err := ParseID(" 7 ")
	if err != nil {
		t.Fatalf("ParseID: %v", err)
	}
	if n != 7 {
		t.Fatalf("ParseID = %d, want 7", n)
	}
	if _, err := ParseID("abc"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
}
