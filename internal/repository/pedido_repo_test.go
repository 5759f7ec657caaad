package repository

import (
	"testing"
	"time"

	"github.com/krilinxito/taqueando2.0/internal/dto"
	"github.com/krilinxito/taqueando2.0/internal/fechas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lapaz = time.FixedZone("America/La_Paz", -4*3600)

func TestCondicionesSinFiltros(t *testing.T) {
	where, args, err := condicionesDePedidos(dto.FiltroPedidos{}, lapaz)
	require.NoError(t, err)
	assert.Equal(t, "1=1", where)
	assert.Empty(t, args)
}

func TestCondicionesRangoDeFechas(t *testing.T) {
	where, args, err := condicionesDePedidos(dto.FiltroPedidos{
		FechaInicio: "2026-03-10",
		FechaFin:    "2026-03-12",
	}, lapaz)
	require.NoError(t, err)
	assert.Equal(t, "1=1 AND p.fecha >= ? AND p.fecha < ?", where)
	require.Len(t, args, 2)

	// 2026-03-10 00:00 en La Paz = 04:00 UTC; el fin es exclusivo al día
	// siguiente del 12.
	inicio := args[0].(time.Time)
	fin := args[1].(time.Time)
	assert.Equal(t, time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC), inicio.UTC())
	assert.Equal(t, time.Date(2026, 3, 13, 4, 0, 0, 0, time.UTC), fin.UTC())
}

func TestCondicionesFechaInvalida(t *testing.T) {
	_, _, err := condicionesDePedidos(dto.FiltroPedidos{FechaInicio: "2026-02-30"}, lapaz)
	assert.ErrorIs(t, err, fechas.ErrFechaInvalida)

	_, _, err = condicionesDePedidos(dto.FiltroPedidos{FechaFin: "10-03-2026"}, lapaz)
	assert.ErrorIs(t, err, fechas.ErrFechaInvalida)
}

func TestCondicionesEstadoConAliasLegado(t *testing.T) {
	where, args, err := condicionesDePedidos(dto.FiltroPedidos{Estado: "pendiente"}, lapaz)
	require.NoError(t, err)
	assert.Equal(t, "1=1 AND p.estado = ?", where)
	assert.Equal(t, []interface{}{"pendiente"}, args)

	// "cancelado" era el literal del esquema original para pedidos cobrados.
	_, args, err = condicionesDePedidos(dto.FiltroPedidos{Estado: "cancelado"}, lapaz)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"pagado"}, args)
}

func TestCondicionesUsuarioParcial(t *testing.T) {
	where, args, err := condicionesDePedidos(dto.FiltroPedidos{Usuario: "mar"}, lapaz)
	require.NoError(t, err)
	assert.Equal(t, "1=1 AND u.nombre ILIKE ?", where)
	assert.Equal(t, []interface{}{"%mar%"}, args)
}

func TestCondicionesCombinadas(t *testing.T) {
	where, args, err := condicionesDePedidos(dto.FiltroPedidos{
		FechaInicio: "2026-03-10",
		Estado:      "pagado",
		Usuario:     "ana",
	}, lapaz)
	require.NoError(t, err)
	assert.Equal(t, "1=1 AND p.fecha >= ? AND p.estado = ? AND u.nombre ILIKE ?", where)
	require.Len(t, args, 3)
	assert.Equal(t, "pagado", args[1])
	assert.Equal(t, "%ana%", args[2])
}
