package ledger

import (
	"fmt"
	"strings"
)

// Query type literals, matching the wire protocol's QUERY_TYPE vocabulary
// exactly.
const (
	QueryConsultarCuenta    = "CONSULTAR_CUENTA"
	QueryTransferirCuenta   = "TRANSFERIR_CUENTA"
	QueryDebit              = "DEBIT"
	QueryCredit             = "CREDIT"
	QueryPagarDeuda         = "PAGAR_DEUDA"
	QueryConsultarHistorial = "CONSULTAR_HISTORIAL"
	QueryEstadoPagoPrestamo = "ESTADO_PAGO_PRESTAMO"
	QueryArqueoCuentas      = "ARQUEO_CUENTAS"
)

// Dispatch routes a parsed query type and parameter list to the matching
// executor. An unsupported query type is itself a domain error (spec §4.5:
// "Unknown types yield ERROR|Query '…' no soportada"), not a parameter
// error, so it carries its own message shape.
func (e *Engine) Dispatch(queryType string, params []string) (Result, error) {
	switch queryType {
	case QueryConsultarCuenta:
		return e.ConsultarCuenta(params)
	case QueryTransferirCuenta:
		return e.TransferirCuenta(params)
	case QueryDebit:
		return e.Debit(params)
	case QueryCredit:
		return e.Credit(params)
	case QueryPagarDeuda:
		return e.PagarDeuda(params)
	case QueryConsultarHistorial:
		return e.ConsultarHistorial(params)
	case QueryEstadoPagoPrestamo:
		return e.EstadoPagoPrestamo(params)
	case QueryArqueoCuentas:
		return e.ArqueoCuentas(params)
	default:
		return Result{}, domainErrorf("Query '%s' no soportada", queryType)
	}
}

// Execute runs queryType end to end and renders the RESULT body a protocol
// response carries after "RESULT|{tx_id}|" — everything from SUCCESS/ERROR
// onward. A non-domain error is logged here and turned into the generic
// internal-error message; it never reaches the caller as a Go error, since
// nothing past the dispatcher boundary is meant to see one (spec §7: caught
// at the dispatcher boundary, logged, returned as a wire message). Every
// call is logged once with tx id, query type, node id, and outcome,
// regardless of whether it succeeded, was rejected, or errored.
func (e *Engine) Execute(txID, queryType string, params []string) string {
	result, err := e.Dispatch(queryType, params)

	log := e.Logger.Info().Str("tx_id", txID).Str("query_type", queryType).Int("node_id", e.nodeID)

	if err != nil {
		if IsDomainError(err) {
			log.Str("outcome", "rejected").Msg("query executed")
			return "ERROR|" + err.Error()
		}
		e.Logger.Error().Err(err).Str("tx_id", txID).Str("query_type", queryType).Strs("params", params).
			Msg("unexpected error executing query")
		log.Str("outcome", "error").Msg("query executed")
		return fmt.Sprintf("ERROR|Error interno del worker: %s", err.Error())
	}

	log.Str("outcome", "success").Msg("query executed")
	if result.Table != nil {
		return renderTable(*result.Table)
	}
	return "SUCCESS|" + result.Message
}

func renderTable(t Table) string {
	parts := make([]string, 0, len(t.Rows)+1)
	parts = append(parts, strings.Join(t.Headers, ","))
	for _, row := range t.Rows {
		parts = append(parts, strings.Join(row, ","))
	}
	return "SUCCESS|TABLE_DATA|" + strings.Join(parts, "|")
}
