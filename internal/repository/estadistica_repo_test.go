package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Las cifras por pedido (conteos, usuarios activos, series diarias) parten
// de pedidos con LEFT JOIN al ledger: una semana de pedidos abiertos sin
// cobrar reporta sus pedidos y usuarios, con ingreso cero.
func TestConsultasPorPedidoPartenDePedidos(t *testing.T) {
	consultas := map[string]string{
		"totalesPorPeriodo":  totalesPorPeriodoSQL,
		"ingresosDiarios":    ingresosDiariosSQL,
		"ingresosHistoricos": ingresosHistoricosSQL,
		"ventasPorHora":      ventasPorHoraSQL,
	}
	for nombre, sql := range consultas {
		assert.Contains(t, sql, "FROM pedidos p", nombre)
		assert.Contains(t, sql, "LEFT JOIN pagos pg", nombre)
		assert.Contains(t, sql, "COUNT(DISTINCT p.id)", nombre)
		assert.False(t, strings.Contains(sql, "FROM pagos"), nombre)
	}
}

// La distribución horaria agrupa por la hora de APERTURA del pedido; la hora
// del cobro solo interesa en horarios pico.
func TestVentasPorHoraAgrupaPorAperturaDelPedido(t *testing.T) {
	assert.Contains(t, ventasPorHoraSQL, "EXTRACT(HOUR FROM p.fecha")
	assert.False(t, strings.Contains(ventasPorHoraSQL, "pg.hora"),
		"la hora del pago no define el bucket horario")
}
