package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Los totales del día se cuentan por pedido, no por pago: un pedido abierto
// sin pagos sigue siendo un pedido del día con ingreso cero.
func TestTotalesCajaCuentaPedidosSinPagos(t *testing.T) {
	assert.Contains(t, totalesCajaSQL, "FROM pedidos p")
	assert.Contains(t, totalesCajaSQL, "LEFT JOIN pagos pg")
	assert.Contains(t, totalesCajaSQL, "COUNT(DISTINCT p.id)")
	assert.False(t, strings.Contains(totalesCajaSQL, "FROM pagos"),
		"los totales no pueden partir del ledger: perderían los pedidos sin pagos")
}
