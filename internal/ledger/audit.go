package ledger

import (
	"github.com/JECT-02/torua-ledger/internal/money"
	"github.com/JECT-02/torua-ledger/internal/record"
	"github.com/JECT-02/torua-ledger/internal/store"
)

// ArqueoCuentas sums the balance field of every account across every
// accounts partition file present on this node — primary and replicas
// alike (spec §4.8: the current revision's behavior; fleet-level
// deduplication across replicas is the orchestrator's responsibility, not
// this node's). e.HostedPartitions reports the same primary-plus-replica
// set (via internal/cluster.ReplicaSet) a fleet orchestrator would consult
// to know it must also poll this node's peers before trusting a node-local
// sum as the fleet-wide total.
func (e *Engine) ArqueoCuentas(params []string) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recordQuery(&e.stats.ArqueoCuentas)

	e.Logger.Debug().Ints("hosted_partitions", e.HostedPartitions()).Msg("arqueo_cuentas scanning local partitions")

	total := money.Zero
	for p := 1; p <= e.partitions; p++ {
		path := store.PartitionPath(e.dataDir, store.Accounts, p)
		if !store.Exists(path) {
			continue
		}
		lines, err := store.ReadAll(path)
		if err != nil || len(lines) == 0 {
			continue
		}
		for _, line := range lines {
			acct, err := record.ParseAccount(line)
			if err != nil {
				continue
			}
			total = total.Add(acct.Balance)
		}
	}

	return scalar("%s", total), nil
}
