package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWellFormed(t *testing.T) {
	req, err := Parse("EXECUTE|t1|TRANSFERIR_CUENTA|7|10|30.00\n")
	require.NoError(t, err)
	assert.Equal(t, "t1", req.TxID)
	assert.Equal(t, "TRANSFERIR_CUENTA", req.QueryType)
	assert.Equal(t, []string{"7", "10", "30.00"}, req.Params)
}

func TestParseNoParams(t *testing.T) {
	req, err := Parse("EXECUTE|t2|ARQUEO_CUENTAS")
	require.NoError(t, err)
	assert.Empty(t, req.Params)
}

func TestParseTooFewFields(t *testing.T) {
	_, err := Parse("EXECUTE|t1")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseWrongVerb(t *testing.T) {
	_, err := Parse("QUERY|c1|GET_BALANCE")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestRenderMalformed(t *testing.T) {
	assert.Equal(t, "ERROR|Formato inválido", RenderMalformed())
}

func TestRenderResult(t *testing.T) {
	got := RenderResult("t1", "SUCCESS|Transferencia completada")
	assert.Equal(t, "RESULT|t1|SUCCESS|Transferencia completada", got)
}
