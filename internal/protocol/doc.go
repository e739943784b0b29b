// Package protocol implements the line-oriented, pipe-delimited wire format
// a worker node speaks: one request per connection, one response, no
// persistent session.
//
// # Overview
//
// Request: EXECUTE|{tx_id}|{QUERY_TYPE}|{arg}*
// Response (scalar):  RESULT|{tx_id}|SUCCESS|{message}
// Response (tabular): RESULT|{tx_id}|SUCCESS|TABLE_DATA|{headers}|{row}...
// Response (error):   RESULT|{tx_id}|ERROR|{reason}
// Malformed request (no usable tx_id): ERROR|Formato inválido, without the
// RESULT|{tx_id}| framing — the client sent something the worker could not
// even parse far enough to echo a correlation id.
//
// This package owns request parsing and response framing only. It never
// inspects QUERY_TYPE or parameter semantics — that is the ledger package's
// job, reached through ledger.Engine.Execute, which already renders the
// SUCCESS/ERROR body this package wraps with the RESULT|{tx_id}| envelope.
package protocol
