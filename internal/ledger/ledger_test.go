package ledger

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JECT-02/torua-ledger/internal/store"
)

const testPartitions = 3
const testReplication = 1

// newTestEngine builds an Engine rooted at a fresh temp directory with an
// already-created node1 data directory, ready for partition files to be
// seeded directly.
func newTestEngine(t *testing.T) (*Engine, string) {
	t.Helper()
	root := t.TempDir()
	nodeDir := store.Dir(root, 1)
	require.NoError(t, os.MkdirAll(nodeDir, 0o755))
	e, err := NewEngine(root, 1, testPartitions, testReplication)
	require.NoError(t, err)
	return e, nodeDir
}

func seedPartition(t *testing.T, nodeDir string, table store.Table, partition int, lines []string) {
	t.Helper()
	path := store.PartitionPath(nodeDir, table, partition)
	require.NoError(t, store.WriteAll(path, lines))
}

func readPartition(t *testing.T, nodeDir string, table store.Table, partition int) []string {
	t.Helper()
	lines, err := store.ReadAll(store.PartitionPath(nodeDir, table, partition))
	require.NoError(t, err)
	return lines
}

// freezeTime pins now() for the duration of a test, so loan deadline
// comparisons are deterministic.
func freezeTime(t *testing.T, at time.Time) {
	t.Helper()
	original := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = original })
}

