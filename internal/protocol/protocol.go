package protocol

import "strings"

// Request is a parsed EXECUTE request: a correlation id, a query type, and
// its positional parameters.
type Request struct {
	TxID      string
	QueryType string
	Params    []string
}

// ErrMalformed is the parse failure behind the bare "ERROR|Formato inválido"
// response — too few pipe fields, or a verb other than EXECUTE.
var ErrMalformed = malformedError{}

type malformedError struct{}

func (malformedError) Error() string { return "Formato inválido" }

// Parse splits a raw request line on '|'. A well-formed line has at least
// three fields (EXECUTE, tx_id, query_type) and literal EXECUTE as its
// first field; anything else is ErrMalformed, matching the original
// worker's "len(parts) < 3 or parts[0] != 'EXECUTE'" check.
func Parse(line string) (Request, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.Split(line, "|")
	if len(parts) < 3 || parts[0] != "EXECUTE" {
		return Request{}, ErrMalformed
	}
	return Request{
		TxID:      parts[1],
		QueryType: parts[2],
		Params:    parts[3:],
	}, nil
}

// RenderMalformed is the fixed response body for a request Parse rejected.
// It carries no tx_id framing: the worker never got far enough to read one.
func RenderMalformed() string {
	return "ERROR|" + ErrMalformed.Error()
}

// RenderResult wraps a query body (as produced by ledger.Engine.Execute,
// already one of "SUCCESS|..." or "ERROR|...") in the RESULT|{tx_id}|
// envelope.
func RenderResult(txID, body string) string {
	return "RESULT|" + txID + "|" + body
}
