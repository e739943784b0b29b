// Package store provides the on-disk primitives the ledger is built on: whole-
// file reads, atomic whole-file rewrites, and append-only history writes,
// scoped to a single node's data directory.
//
// # Overview
//
// Every table the worker owns — accounts, loans, the generator's seed
// transactions, and history — lives as one flat file per partition under the
// node's data directory:
//
//	data/node{N}/
//	  cuentas_part{p}.txt
//	  prestamos_part{p}.txt
//	  transacciones_part{p}.txt
//	  historial_part{p}.txt
//
// This package never interprets a line's fields; that is the record
// package's job. It only knows how to find the right file for a partition,
// read it whole, and rewrite it whole (or append a line) without ever
// leaving an observer with a half-written file.
//
// # Durability
//
// WriteAll writes to a temporary file in the same directory and renames it
// over the destination, so a crash mid-write leaves either the old content
// or the new content on disk, never a truncated mix of both. Callers are
// still responsible for holding the node lock around the read-modify-write
// sequence; this package only guarantees the write step itself is atomic.
package store
