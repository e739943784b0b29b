// Package obslog builds the zerolog.Logger a worker uses for structured,
// leveled logging, tagged with its node id and optionally teed to a
// per-node log file (spec §6: logs/worker_{N}.log).
//
// The teacher's own services log with the standard library's log.Printf;
// this package is the ambient-stack upgrade spec.md's expansion calls
// for, grounded on the zerolog usage already wired into ledger.Engine.
package obslog
