package service

import (
	"context"
	"testing"
	"time"

	"github.com/krilinxito/taqueando2.0/internal/fechas"
	"github.com/krilinxito/taqueando2.0/internal/model"
	"github.com/krilinxito/taqueando2.0/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lapaz = time.FixedZone("America/La_Paz", -4*3600)

type stubCajaRepo struct {
	totales   repository.TotalesCaja
	porMetodo []repository.MetodoCaja
	pagos     []repository.PagoCaja
}

func (r *stubCajaRepo) Totales(_ context.Context, _ fechas.Rango) (repository.TotalesCaja, error) {
	return r.totales, nil
}

func (r *stubCajaRepo) PorMetodo(_ context.Context, _ fechas.Rango) ([]repository.MetodoCaja, error) {
	return r.porMetodo, nil
}

func (r *stubCajaRepo) Pagos(_ context.Context, _ fechas.Rango) ([]repository.PagoCaja, error) {
	return r.pagos, nil
}

var _ repository.CajaRepository = (*stubCajaRepo)(nil)

func TestResumenDiaConMovimiento(t *testing.T) {
	repo := &stubCajaRepo{
		totales: repository.TotalesCaja{
			TotalDia:     decimal.RequireFromString("200.00"),
			TotalPedidos: 4,
		},
		porMetodo: []repository.MetodoCaja{
			{Metodo: model.MetodoEfectivo, Total: decimal.RequireFromString("120.00"), Cantidad: 5},
			{Metodo: model.MetodoTarjeta, Total: decimal.RequireFromString("50.00"), Cantidad: 2},
			{Metodo: model.MetodoQR, Total: decimal.RequireFromString("30.00"), Cantidad: 2},
		},
	}
	svc := NewCajaService(repo, lapaz)

	resumen, err := svc.ResumenPorFecha(context.Background(), "2024-01-15")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", resumen.Fecha)
	assert.True(t, resumen.TotalDia.Equal(decimal.RequireFromString("200.00")))
	assert.Equal(t, int64(4), resumen.TotalPedidos)

	assert.True(t, resumen.TotalEfectivo.Equal(decimal.RequireFromString("120.00")))
	assert.True(t, resumen.TotalTarjeta.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, resumen.TotalQR.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, resumen.TotalOnline.IsZero())
	assert.True(t, resumen.TotalEfectivoPy.IsZero())

	// Los porcentajes cierran en 100 y cada bucket suma al total del día.
	require.Len(t, resumen.DetallesPorMetodo, 3)
	assert.Equal(t, "60.00", resumen.DetallesPorMetodo[0].Porcentaje)
	assert.Equal(t, "25.00", resumen.DetallesPorMetodo[1].Porcentaje)
	assert.Equal(t, "15.00", resumen.DetallesPorMetodo[2].Porcentaje)

	suma := decimal.Zero
	for _, d := range resumen.DetallesPorMetodo {
		suma = suma.Add(d.Total)
	}
	assert.True(t, suma.Equal(resumen.TotalDia))

	assert.Equal(t, model.MetodoEfectivo, resumen.Estadisticas.MetodoPagoMasUsado)
	assert.Equal(t, model.MetodoEfectivo, resumen.Estadisticas.MetodoPagoMayorMonto)
	assert.True(t, resumen.Estadisticas.PromedioPorPedido.Equal(decimal.RequireFromString("50.00")))
}

func TestResumenDiaVacio(t *testing.T) {
	svc := NewCajaService(&stubCajaRepo{}, lapaz)

	resumen, err := svc.ResumenPorFecha(context.Background(), "2024-01-15")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", resumen.Fecha)
	assert.True(t, resumen.TotalDia.IsZero())
	assert.Equal(t, int64(0), resumen.TotalPedidos)
	assert.Empty(t, resumen.DetallesPorMetodo)
	assert.Empty(t, resumen.Pagos)
	assert.True(t, resumen.Estadisticas.PromedioPorPedido.IsZero())
	assert.Equal(t, "", resumen.Estadisticas.MetodoPagoMasUsado)
}

func TestResumenEmpateConservaPrimerMetodo(t *testing.T) {
	repo := &stubCajaRepo{
		totales: repository.TotalesCaja{
			TotalDia:     decimal.RequireFromString("100.00"),
			TotalPedidos: 2,
		},
		porMetodo: []repository.MetodoCaja{
			{Metodo: model.MetodoQR, Total: decimal.RequireFromString("50.00"), Cantidad: 3},
			{Metodo: model.MetodoTarjeta, Total: decimal.RequireFromString("50.00"), Cantidad: 3},
		},
	}
	svc := NewCajaService(repo, lapaz)

	resumen, err := svc.ResumenPorFecha(context.Background(), "2024-01-15")
	require.NoError(t, err)

	// Empate en cantidad y en monto: gana el primero en orden de iteración.
	assert.Equal(t, model.MetodoQR, resumen.Estadisticas.MetodoPagoMasUsado)
	assert.Equal(t, model.MetodoQR, resumen.Estadisticas.MetodoPagoMayorMonto)
}

func TestResumenMetodoDesconocido(t *testing.T) {
	repo := &stubCajaRepo{
		totales: repository.TotalesCaja{
			TotalDia:     decimal.RequireFromString("10.00"),
			TotalPedidos: 1,
		},
		porMetodo: []repository.MetodoCaja{
			{Metodo: "desconocido", Total: decimal.RequireFromString("10.00"), Cantidad: 1},
		},
	}
	svc := NewCajaService(repo, lapaz)

	resumen, err := svc.ResumenPorFecha(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, resumen.DetallesPorMetodo, 1)
	assert.Equal(t, "desconocido", resumen.DetallesPorMetodo[0].Metodo)
	// El bucket desconocido no alimenta ningún total por método fijo.
	assert.True(t, resumen.TotalEfectivo.IsZero())
}

func TestResumenFechaInvalida(t *testing.T) {
	svc := NewCajaService(&stubCajaRepo{}, lapaz)

	_, err := svc.ResumenPorFecha(context.Background(), "2023-02-29")
	assert.ErrorIs(t, err, fechas.ErrFechaInvalida)
}

func TestTotalEfectivoDeHoy(t *testing.T) {
	repo := &stubCajaRepo{
		porMetodo: []repository.MetodoCaja{
			{Metodo: model.MetodoTarjeta, Total: decimal.RequireFromString("80.00"), Cantidad: 2},
			{Metodo: model.MetodoEfectivo, Total: decimal.RequireFromString("340.00"), Cantidad: 7},
		},
	}
	svc := NewCajaService(repo, lapaz)

	total, err := svc.TotalEfectivoDeHoy(context.Background())
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("340.00")))
}
