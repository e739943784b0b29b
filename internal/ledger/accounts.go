package ledger

import (
	"fmt"

	"github.com/JECT-02/torua-ledger/internal/money"
	"github.com/JECT-02/torua-ledger/internal/record"
	"github.com/JECT-02/torua-ledger/internal/store"
)

// ConsultarCuenta returns an account's current record. Always logs a
// history entry with the observed balance, even though the query itself
// mutates nothing.
func (e *Engine) ConsultarCuenta(params []string) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recordQuery(&e.stats.ConsultarCuenta)

	if len(params) != 1 {
		e.recordRejection()
		return Result{}, domainErrorf("Parámetros incorrectos")
	}
	accountID := params[0]
	id, err := record.ParseID(accountID)
	if err != nil {
		e.recordError()
		return Result{}, err
	}

	path := e.accountsPath(id)
	_, _, acct, err := loadAccount(path, accountID, fmt.Sprintf("Cuenta %s no encontrada", accountID))
	if err != nil {
		e.classify(err)
		return Result{}, err
	}

	e.appendHistory(accountID, "CONSULTAR_CUENTA", "", acct.Balance)

	return Result{Table: &Table{
		Headers: []string{"ID Cuenta", "ID Cliente", "Saldo", "Fecha Apertura"},
		Rows:    [][]string{{acct.ID, acct.ClientID, acct.Balance.String(), acct.OpenedOn}},
	}}, nil
}

// TransferirCuenta moves amount from src to dst within a single partition
// file, atomically, and records two history entries.
func (e *Engine) TransferirCuenta(params []string) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recordQuery(&e.stats.TransferirCuenta)

	if len(params) != 3 {
		e.recordRejection()
		return Result{}, domainErrorf("Parámetros incorrectos")
	}
	src, dst, montoStr := params[0], params[1], params[2]
	if src == dst {
		e.recordRejection()
		return Result{}, domainErrorf("Cuentas de origen y destino no pueden ser la misma.")
	}

	srcID, err := record.ParseID(src)
	if err != nil {
		e.recordError()
		return Result{}, err
	}
	dstID, err := record.ParseID(dst)
	if err != nil {
		e.recordError()
		return Result{}, err
	}
	monto, err := money.Parse(montoStr)
	if err != nil {
		e.recordError()
		return Result{}, err
	}

	partSrc := e.partitionOf(srcID)
	partDst := e.partitionOf(dstID)
	if partSrc != partDst {
		e.recordRejection()
		return Result{}, wrapDomainError(ErrCrossPartition, "TRANSFERIR_CUENTA solo soporta transferencias en la misma partición")
	}

	path := e.accountsPath(srcID)
	lines, err := readLines(path)
	if err != nil {
		e.classify(err)
		return Result{}, err
	}

	idxSrc, acctSrc, err := findAccountInLines(lines, src, fmt.Sprintf("Cuenta de origen %s no encontrada", src))
	if err != nil {
		e.classify(err)
		return Result{}, err
	}
	idxDst, acctDst, err := findAccountInLines(lines, dst, fmt.Sprintf("Cuenta de destino %s no encontrada", dst))
	if err != nil {
		e.classify(err)
		return Result{}, err
	}

	if acctSrc.Balance.LessThan(monto) {
		e.recordRejection()
		e.appendHistory(src, "TRANSFERIR_CUENTA", fmt.Sprintf("A:%s M:%s", dst, monto), acctSrc.Balance)
		return Result{}, wrapDomainError(ErrInsufficientFunds, "Fondos insuficientes")
	}

	newSrcBalance := acctSrc.Balance.Sub(monto)
	newDstBalance := acctDst.Balance.Add(monto)
	acctSrc.Balance = newSrcBalance
	acctDst.Balance = newDstBalance
	lines[idxSrc] = acctSrc.Encode()
	lines[idxDst] = acctDst.Encode()

	if err := store.WriteAll(path, lines); err != nil {
		e.recordError()
		return Result{}, err
	}

	e.appendHistory(src, "TRANSFERENCIA_ENVIADA", fmt.Sprintf("A:%s M:%s", dst, monto), newSrcBalance)
	e.appendHistory(dst, "TRANSFERENCIA_RECIBIDA", fmt.Sprintf("DE:%s M:%s", src, monto), newDstBalance)

	return scalar("Transferencia completada"), nil
}

// Debit decrements accountID's balance by amount, requiring sufficient
// funds. description defaults to "DEBIT" and is recorded as the history
// entry's operation label.
func (e *Engine) Debit(params []string) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recordQuery(&e.stats.Debit)

	if len(params) < 2 {
		e.recordRejection()
		return Result{}, domainErrorf("Parámetros incorrectos para DEBIT")
	}
	accountID, montoStr := params[0], params[1]
	description := "DEBIT"
	if len(params) > 2 {
		description = params[2]
	}

	monto, err := money.Parse(montoStr)
	if err != nil {
		e.recordError()
		return Result{}, err
	}
	id, err := record.ParseID(accountID)
	if err != nil {
		e.recordError()
		return Result{}, err
	}

	path := e.accountsPath(id)
	lines, idx, acct, err := loadAccount(path, accountID, fmt.Sprintf("Cuenta %s no encontrada", accountID))
	if err != nil {
		e.classify(err)
		return Result{}, err
	}

	if acct.Balance.LessThan(monto) {
		e.recordRejection()
		e.appendHistory(accountID, description, fmt.Sprintf("M:%s", monto), acct.Balance)
		return Result{}, wrapDomainError(ErrInsufficientFunds, "Fondos insuficientes")
	}

	newBalance := acct.Balance.Sub(monto)
	acct.Balance = newBalance
	if err := writeAccount(path, lines, idx, acct); err != nil {
		e.recordError()
		return Result{}, err
	}
	e.appendHistory(accountID, description, fmt.Sprintf("M:%s", monto), newBalance)

	return scalar("Débito de %s completado", monto), nil
}

// Credit increments accountID's balance by amount. No precondition beyond
// the account existing.
func (e *Engine) Credit(params []string) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recordQuery(&e.stats.Credit)

	if len(params) < 2 {
		e.recordRejection()
		return Result{}, domainErrorf("Parámetros incorrectos para CREDIT")
	}
	accountID, montoStr := params[0], params[1]
	description := "CREDIT"
	if len(params) > 2 {
		description = params[2]
	}

	monto, err := money.Parse(montoStr)
	if err != nil {
		e.recordError()
		return Result{}, err
	}
	id, err := record.ParseID(accountID)
	if err != nil {
		e.recordError()
		return Result{}, err
	}

	path := e.accountsPath(id)
	lines, idx, acct, err := loadAccount(path, accountID, fmt.Sprintf("Cuenta %s no encontrada", accountID))
	if err != nil {
		e.classify(err)
		return Result{}, err
	}

	newBalance := acct.Balance.Add(monto)
	acct.Balance = newBalance
	if err := writeAccount(path, lines, idx, acct); err != nil {
		e.recordError()
		return Result{}, err
	}
	e.appendHistory(accountID, description, fmt.Sprintf("M:%s", monto), newBalance)

	return scalar("Crédito de %s completado", monto), nil
}

// classify records the rejection/error counter appropriate for err's kind.
func (e *Engine) classify(err error) {
	if IsDomainError(err) {
		e.recordRejection()
	} else {
		e.recordError()
	}
}
