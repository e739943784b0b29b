package ledger

import (
	"sort"

	"github.com/JECT-02/torua-ledger/internal/record"
	"github.com/JECT-02/torua-ledger/internal/store"
)

// ConsultarHistorial returns every history entry recorded for accountID,
// across every local history partition file, newest first. Entries whose
// operation is the legacy "DEVOLUCION" marker are filtered out.
func (e *Engine) ConsultarHistorial(params []string) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recordQuery(&e.stats.ConsultarHistorial)

	if len(params) != 1 {
		e.recordRejection()
		return Result{}, domainErrorf("Parámetros incorrectos")
	}
	accountID := params[0]

	var entries []record.HistoryEntry
	for p := 1; p <= e.partitions; p++ {
		path := store.PartitionPath(e.dataDir, store.History, p)
		if !store.Exists(path) {
			continue
		}
		lines, err := store.ReadAll(path)
		if err != nil || len(lines) == 0 {
			continue
		}
		for _, line := range lines {
			entry, err := record.ParseHistoryEntry(line)
			if err != nil {
				continue
			}
			if entry.AccountID != accountID || entry.Operation == "DEVOLUCION" {
				continue
			}
			entries = append(entries, entry)
		}
	}

	if len(entries) == 0 {
		return scalar("No hay historial para esta cuenta."), nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})

	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{entry.Timestamp, entry.AccountID, entry.Operation, entry.Details, entry.BalanceAfter}
	}

	return Result{Table: &Table{
		Headers: []string{"Fecha", "ID Cuenta", "Operación", "Detalles", "Saldo en ese Instante"},
		Rows:    rows,
	}}, nil
}
