// Package record defines the comma- and pipe-delimited line formats the four
// partitioned tables use on disk, and the linear scan every table lookup is
// built on.
//
// # Overview
//
// Accounts, loans, and seed transactions are comma-separated; history is
// pipe-separated to keep comma-bearing free-text details safe. None of the
// four formats carries a header row — every line is one record, and a
// record's first field is always its lookup key.
//
//	cuentas:        id,client_id,balance,opened_on
//	prestamos:      id,client_id,total,paid,status,deadline
//	transacciones:  id,account_id,kind,amount,timestamp   (seed data, read-only)
//	historial:      timestamp|account_id|operation|details|balance_after
//
// This package only knows how to parse a line into a struct, render a struct
// back into a line, and find a record's line and index inside an in-memory
// slice of lines. It never touches a file directly — that is the store
// package's job — and never locks anything — that is the ledger's job.
package record
