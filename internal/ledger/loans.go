package ledger

import (
	"fmt"

	"github.com/JECT-02/torua-ledger/internal/money"
	"github.com/JECT-02/torua-ledger/internal/record"
	"github.com/JECT-02/torua-ledger/internal/store"
)

// foundLoan bundles a loan record located by a partition scan with enough
// context to rewrite it in place afterwards.
type foundLoan struct {
	path  string
	lines []string
	idx   int
	loan  record.Loan
}

// findLoan scans every loans partition 1..P for a loan owned by owner
// (the "cliente_{account_id}" key), returning the first match.
func (e *Engine) findLoan(loanID, owner string) (foundLoan, bool) {
	for p := 1; p <= e.partitions; p++ {
		path := e.loansPath(p)
		if !store.Exists(path) {
			continue
		}
		lines, err := store.ReadAll(path)
		if err != nil || len(lines) == 0 {
			continue
		}
		for i, line := range lines {
			loan, err := record.ParseLoan(line)
			if err != nil {
				continue
			}
			if loan.ID == loanID && loan.ClientID == owner {
				return foundLoan{path: path, lines: lines, idx: i, loan: loan}, true
			}
		}
	}
	return foundLoan{}, false
}

// bestEffortBalance loads accountID's current balance, swallowing any
// error. Used only to annotate history entries for outcomes that do not
// themselves depend on the account record (overdue / status-query logging),
// mirroring the original worker's get_current_balance, which returns None
// on any failure rather than propagating it.
func (e *Engine) bestEffortBalance(accountID string) (money.Amount, bool) {
	id, err := record.ParseID(accountID)
	if err != nil {
		return money.Zero, false
	}
	_, _, acct, err := loadAccount(e.accountsPath(id), accountID, "")
	if err != nil {
		return money.Zero, false
	}
	return acct.Balance, true
}

func (e *Engine) logWithBestEffortBalance(accountID, operation, details string) {
	if balance, ok := e.bestEffortBalance(accountID); ok {
		e.appendHistory(accountID, operation, details, balance)
	} else {
		e.appendHistoryUnknownBalance(accountID, operation, details)
	}
}

// PagarDeuda applies a payment to a loan the account owns, across the
// accounts and loans partition files (which may differ), refunding any
// overpayment once the loan is fully settled.
func (e *Engine) PagarDeuda(params []string) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recordQuery(&e.stats.PagarDeuda)

	if len(params) != 3 {
		e.recordRejection()
		return Result{}, domainErrorf("Parámetros incorrectos para PAGAR_DEUDA")
	}
	accountID, loanID, montoStr := params[0], params[1], params[2]

	montoPago, err := money.Parse(montoStr)
	if err != nil {
		e.recordError()
		return Result{}, err
	}
	if !montoPago.IsPositive() {
		e.recordRejection()
		return Result{}, domainErrorf("El monto a pagar debe ser positivo.")
	}

	owner := LoanOwner(accountID)
	found, ok := e.findLoan(loanID, owner)
	if !ok {
		e.recordRejection()
		return Result{}, wrapDomainError(ErrLoanNotFound, "El préstamo no existe o no le pertenece.")
	}
	loan := found.loan

	remaining := loan.Remaining()
	if !remaining.IsPositive() {
		return scalar("Esta deuda ya ha sido cancelada."), nil
	}

	deadline, err := parseDeadline(loan.Deadline)
	if err != nil {
		e.recordError()
		return Result{}, err
	}
	if deadline.Before(today()) {
		e.recordRejection()
		e.logWithBestEffortBalance(accountID, "PAGAR_DEUDA", fmt.Sprintf("P:%s M:%s", loanID, montoPago))
		return Result{}, wrapDomainError(ErrLoanOverdue, "Su deuda está vencida. Por favor, contacte al banco para recibir ayuda.")
	}

	id, err := record.ParseID(accountID)
	if err != nil {
		e.recordError()
		return Result{}, err
	}
	accountPath := e.accountsPath(id)
	accountLines, idxAcct, acct, err := loadAccount(accountPath, accountID, "No se pudo obtener el saldo de la cuenta.")
	if err != nil {
		e.classify(err)
		return Result{}, err
	}

	if acct.Balance.LessThan(montoPago) {
		e.recordRejection()
		e.appendHistory(accountID, "PAGAR_DEUDA", fmt.Sprintf("P:%s M:%s", loanID, montoPago), acct.Balance)
		return Result{}, wrapDomainError(ErrInsufficientFunds, "Fondos insuficientes. Necesita %s pero solo tiene %s", montoPago, acct.Balance)
	}

	newAccountBalance := acct.Balance.Sub(montoPago)
	var response string
	if montoPago.Cmp(remaining) >= 0 {
		vuelto := montoPago.Sub(remaining)
		newAccountBalance = newAccountBalance.Add(vuelto)
		loan.Paid = loan.Total
		loan.Status = "Cancelado"
		response = fmt.Sprintf("Deuda del préstamo %s saldada. Se devolvió %s a su cuenta.", loanID, vuelto)
	} else {
		loan.Paid = loan.Paid.Add(montoPago)
		nuevaDeuda := remaining.Sub(montoPago)
		response = fmt.Sprintf("Pago de %s recibido. Su nueva deuda para el préstamo %s es %s", montoPago, loanID, nuevaDeuda)
	}
	acct.Balance = newAccountBalance

	if err := writeAccount(accountPath, accountLines, idxAcct, acct); err != nil {
		e.recordError()
		return Result{}, err
	}
	found.lines[found.idx] = loan.Encode()
	if err := store.WriteAll(found.path, found.lines); err != nil {
		e.recordError()
		return Result{}, err
	}

	e.appendHistory(accountID, "PAGAR_DEUDA", fmt.Sprintf("P:%s M:%s", loanID, montoPago), newAccountBalance)

	return Result{Message: response}, nil
}

// EstadoPagoPrestamo reports every loan account_id owns, with status
// recomputed from today's date rather than trusting the stored status
// field.
func (e *Engine) EstadoPagoPrestamo(params []string) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recordQuery(&e.stats.EstadoPagoPrestamo)

	if len(params) != 1 {
		e.recordRejection()
		return Result{}, domainErrorf("Parámetros incorrectos")
	}
	accountID := params[0]
	owner := LoanOwner(accountID)

	var rows [][]string
	for p := 1; p <= e.partitions; p++ {
		path := e.loansPath(p)
		if !store.Exists(path) {
			continue
		}
		lines, err := store.ReadAll(path)
		if err != nil || len(lines) == 0 {
			continue
		}
		for _, line := range lines {
			loan, err := record.ParseLoan(line)
			if err != nil || loan.ClientID != owner {
				continue
			}
			pendiente := loan.Remaining()
			var status string
			switch {
			case !pendiente.IsPositive():
				status = "Cancelado"
			default:
				deadline, err := parseDeadline(loan.Deadline)
				if err == nil && deadline.Before(today()) {
					status = "Vencido"
				} else {
					status = "Activo"
				}
			}
			rows = append(rows, []string{
				loan.ID, loan.Total.String(), loan.Paid.String(), pendiente.String(), status, loan.Deadline,
			})
		}
	}

	e.logWithBestEffortBalance(accountID, "ESTADO_PAGO_PRESTAMO", "")

	if len(rows) == 0 {
		return scalar("Usted no tiene préstamos."), nil
	}
	return Result{Table: &Table{
		Headers: []string{"ID Préstamo", "Monto Total", "Monto Pagado", "Monto Pendiente", "Estado Actual", "Fecha Límite"},
		Rows:    rows,
	}}, nil
}
