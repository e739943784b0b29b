package ledger

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/JECT-02/torua-ledger/internal/cluster"
	"github.com/JECT-02/torua-ledger/internal/store"
)

// Table is a tabular result: one query's rows rendered under a fixed set of
// headers, matching the wire protocol's TABLE_DATA framing.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Result is the successful outcome of an executor. Table is non-nil only
// for queries that return tabular data (CONSULTAR_CUENTA,
// CONSULTAR_HISTORIAL, ESTADO_PAGO_PRESTAMO); everything else sets only
// Message.
type Result struct {
	Message string
	Table   *Table
}

// scalar builds a Result carrying only a message.
func scalar(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

// Stats accumulates per-query-type request counts, mirroring the atomic
// counter pattern a shard in this codebase's lineage uses: plain uint64
// fields updated with atomic.AddUint64, read back with atomic.LoadUint64.
type Stats struct {
	ConsultarCuenta    uint64
	TransferirCuenta   uint64
	Debit              uint64
	Credit             uint64
	PagarDeuda         uint64
	ConsultarHistorial uint64
	EstadoPagoPrestamo uint64
	ArqueoCuentas      uint64
	Rejections         uint64
	Errors             uint64
}

// Snapshot returns a copy of the current counters, safe to read without
// holding the engine's lock.
func (s *Stats) Snapshot() Stats {
	return Stats{
		ConsultarCuenta:    atomic.LoadUint64(&s.ConsultarCuenta),
		TransferirCuenta:   atomic.LoadUint64(&s.TransferirCuenta),
		Debit:              atomic.LoadUint64(&s.Debit),
		Credit:             atomic.LoadUint64(&s.Credit),
		PagarDeuda:         atomic.LoadUint64(&s.PagarDeuda),
		ConsultarHistorial: atomic.LoadUint64(&s.ConsultarHistorial),
		EstadoPagoPrestamo: atomic.LoadUint64(&s.EstadoPagoPrestamo),
		ArqueoCuentas:      atomic.LoadUint64(&s.ArqueoCuentas),
		Rejections:         atomic.LoadUint64(&s.Rejections),
		Errors:             atomic.LoadUint64(&s.Errors),
	}
}

// Engine is one worker node's transaction engine: the node-wide lock plus
// the directory it guards. The zero value is not usable; construct with
// NewEngine.
type Engine struct {
	mu          sync.Mutex
	dataDir     string
	nodeID      int
	partitions  int
	replication int
	stats       Stats

	// Logger receives a warning whenever a history append fails after a
	// mutation already committed. History is advisory (spec §9): a failed
	// append never fails the request that produced it. Defaults to a no-op
	// logger; callers wire in the real one after construction.
	Logger zerolog.Logger
}

// NewEngine constructs an Engine for nodeID, rooted at dataRoot/node{ID},
// partitioning tables P ways under the given replication factor (the
// circular placement rule internal/cluster implements). It returns an error
// if the node's data directory does not already exist — the generator is
// responsible for creating it and seeding the partition files.
func NewEngine(dataRoot string, nodeID, partitions, replication int) (*Engine, error) {
	if partitions <= 0 {
		return nil, fmt.Errorf("invalid partition count %d", partitions)
	}
	if replication <= 0 {
		return nil, fmt.Errorf("invalid replication factor %d", replication)
	}
	dir := store.Dir(dataRoot, nodeID)
	if !store.DirExists(dir) {
		return nil, fmt.Errorf("el directorio de datos %s no existe", dir)
	}
	return &Engine{
		dataDir:     dir,
		nodeID:      nodeID,
		partitions:  partitions,
		replication: replication,
		Logger:      zerolog.Nop(),
	}, nil
}

// Stats returns a point-in-time snapshot of request counters.
func (e *Engine) Stats() Stats {
	return e.stats.Snapshot()
}

// NodeID returns the node identifier this engine was constructed with.
func (e *Engine) NodeID() int { return e.nodeID }

// Partitions returns the configured partition count P.
func (e *Engine) Partitions() int { return e.partitions }

// partitionOf computes the 1-based partition an id belongs to under this
// engine's configured partition count, delegating to the fleet-wide
// placement rule so a standalone node and a multi-node deployment agree on
// where a given id lives.
func (e *Engine) partitionOf(id int) int {
	return cluster.Partition(id, e.partitions)
}

// HostedPartitions returns the partitions this node is responsible for —
// its primary (cluster.Partition(nodeID, P)) plus its replicas under the
// configured replication factor — the same set a fleet orchestrator
// consults to know which nodes to poll for ARQUEO_CUENTAS.
func (e *Engine) HostedPartitions() []int {
	return cluster.ReplicaSet(e.nodeID, e.partitions, e.replication)
}

// accountsPath returns the accounts partition file hosting accountID.
func (e *Engine) accountsPath(accountID int) string {
	return store.PartitionPath(e.dataDir, store.Accounts, e.partitionOf(accountID))
}

// loansPath returns the loans partition file path for partition p.
func (e *Engine) loansPath(p int) string {
	return store.PartitionPath(e.dataDir, store.Loans, p)
}

// historyPath returns the history partition file path for accountID.
func (e *Engine) historyPath(accountID int) string {
	return store.PartitionPath(e.dataDir, store.History, e.partitionOf(accountID))
}

// LoanOwner returns the loans.client_id value an account's own loans are
// filed under: "cliente_{account_id}" in the original worker's format.
func LoanOwner(accountID string) string {
	return "cliente_" + accountID
}

func (e *Engine) recordQuery(counter *uint64) {
	atomic.AddUint64(counter, 1)
}

func (e *Engine) recordRejection() {
	atomic.AddUint64(&e.stats.Rejections, 1)
}

func (e *Engine) recordError() {
	atomic.AddUint64(&e.stats.Errors, 1)
}
