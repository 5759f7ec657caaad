package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/krilinxito/taqueando2.0/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEstadisticaRepo struct {
	actual     repository.TotalesPeriodo
	anterior   repository.TotalesPeriodo
	diarios    []repository.IngresoDiarioRow
	metodos    []repository.IngresoMetodoRow
	productos  []repository.ProductoVendidoRow
	horas      []repository.VentaHoraRow
	picos      []repository.HorarioPicoRow
	minutos    *float64
	historicos []repository.IngresoDiarioRow
	totalDias  int64

	fallarDiarios bool
}

func (r *stubEstadisticaRepo) TotalesPorPeriodo(_ context.Context, desde, _ time.Time) (repository.TotalesPeriodo, error) {
	// El período anterior siempre empieza antes que el actual.
	if desde.Before(time.Now().AddDate(0, 0, -7)) {
		return r.anterior, nil
	}
	return r.actual, nil
}

func (r *stubEstadisticaRepo) IngresosDiarios(_ context.Context, _, _ time.Time) ([]repository.IngresoDiarioRow, error) {
	if r.fallarDiarios {
		return nil, errors.New("conexión perdida")
	}
	return r.diarios, nil
}

func (r *stubEstadisticaRepo) IngresosPorMetodo(_ context.Context, _, _ time.Time) ([]repository.IngresoMetodoRow, error) {
	return r.metodos, nil
}

func (r *stubEstadisticaRepo) ProductosMasVendidos(_ context.Context, _, _ time.Time, _ int) ([]repository.ProductoVendidoRow, error) {
	return r.productos, nil
}

func (r *stubEstadisticaRepo) VentasPorHora(_ context.Context, _, _ time.Time) ([]repository.VentaHoraRow, error) {
	return r.horas, nil
}

func (r *stubEstadisticaRepo) HorariosPico(_ context.Context, _, _ time.Time, limite int) ([]repository.HorarioPicoRow, error) {
	if limite < len(r.picos) {
		return r.picos[:limite], nil
	}
	return r.picos, nil
}

func (r *stubEstadisticaRepo) TiempoPromedioCierre(_ context.Context, _, _ time.Time) (*float64, error) {
	return r.minutos, nil
}

func (r *stubEstadisticaRepo) IngresosHistoricos(_ context.Context, _, _ int) ([]repository.IngresoDiarioRow, int64, error) {
	return r.historicos, r.totalDias, nil
}

var _ repository.EstadisticaRepository = (*stubEstadisticaRepo)(nil)

func repoConVentas() *stubEstadisticaRepo {
	minutos := 42.5
	return &stubEstadisticaRepo{
		actual:   repository.TotalesPeriodo{Total: decimal.RequireFromString("1500"), Pedidos: 30, Usuarios: 3},
		anterior: repository.TotalesPeriodo{Total: decimal.RequireFromString("1000"), Pedidos: 25, Usuarios: 2},
		diarios: []repository.IngresoDiarioRow{
			{Fecha: "2026-08-24", Total: decimal.RequireFromString("400"), Pedidos: 8},
			{Fecha: "2026-08-25", Total: decimal.RequireFromString("700"), Pedidos: 14},
			{Fecha: "2026-08-26", Total: decimal.RequireFromString("400"), Pedidos: 8},
		},
		metodos: []repository.IngresoMetodoRow{
			{Metodo: "efectivo", Total: decimal.RequireFromString("900"), Cantidad: 18},
			{Metodo: "qr", Total: decimal.RequireFromString("600"), Cantidad: 12},
		},
		productos: []repository.ProductoVendidoRow{
			{Nombre: "Taco de pastor", Cantidad: 120, Total: decimal.RequireFromString("840")},
			{Nombre: "Horchata", Cantidad: 0, Total: decimal.Zero},
		},
		horas: []repository.VentaHoraRow{
			{Hora: 12, Total: decimal.RequireFromString("500"), Pedidos: 10},
			{Hora: 20, Total: decimal.RequireFromString("1000"), Pedidos: 20},
		},
		picos: []repository.HorarioPicoRow{
			{DiaSemana: "Saturday", Hora: 20, Pedidos: 12, Total: decimal.RequireFromString("620")},
			{DiaSemana: "Friday", Hora: 21, Pedidos: 9, Total: decimal.RequireFromString("480")},
		},
		minutos: &minutos,
	}
}

func TestDashboardCompleto(t *testing.T) {
	repo := repoConVentas()
	svc := NewEstadisticaService(repo, lapaz, zerolog.Nop())

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Errores)

	rg := resp.ResumenGeneral
	require.NotNil(t, rg)
	assert.True(t, rg.IngresosSemana.Equal(decimal.RequireFromString("1500")))
	assert.Equal(t, int64(30), rg.PedidosSemana)
	assert.Equal(t, int64(3), rg.UsuariosActivos)
	assert.True(t, rg.TicketPromedio.Equal(decimal.RequireFromString("50")))
	assert.True(t, rg.PromedioDiario.Equal(decimal.RequireFromString("500")))
	assert.Equal(t, float64(50), rg.VariacionIngresos)
	assert.Equal(t, float64(20), rg.VariacionPedidos)

	require.NotNil(t, rg.MejorDia)
	assert.Equal(t, "2026-08-25", rg.MejorDia.Fecha)
	require.NotNil(t, rg.HoraPico)
	assert.Equal(t, "Saturday", rg.HoraPico.DiaSemana)
	assert.Equal(t, 20, rg.HoraPico.Hora)

	assert.Len(t, resp.IngresosSemanales, 3)
	assert.Len(t, resp.IngresosPorMetodo, 2)
	// Los productos sin ventas no entran al ranking.
	require.Len(t, resp.ProductosMasVendidos, 1)
	assert.Equal(t, "Taco de pastor", resp.ProductosMasVendidos[0].Nombre)
	assert.Len(t, resp.VentasPorHora, 2)
	require.Len(t, resp.ComparativaSemanal, 2)
	assert.Equal(t, "semana_actual", resp.ComparativaSemanal[0].Periodo)
	assert.Equal(t, int64(25), resp.ComparativaSemanal[1].TotalPedidos)
	require.NotNil(t, resp.TiempoPromedioCierre)
	assert.Equal(t, 42.5, *resp.TiempoPromedioCierre.TiempoPromedioMinutos)
	assert.Len(t, resp.HorariosPicoIngresos, 2)
}

func TestDashboardSeccionCaidaNoTumbaElResto(t *testing.T) {
	repo := repoConVentas()
	repo.fallarDiarios = true
	svc := NewEstadisticaService(repo, lapaz, zerolog.Nop())

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	// resumenGeneral, ingresosSemanales y tendenciaMensual dependen de los
	// ingresos diarios; las demás secciones siguen disponibles.
	assert.Equal(t, "no disponible", resp.Errores["resumenGeneral"])
	assert.Equal(t, "no disponible", resp.Errores["ingresosSemanales"])
	assert.Equal(t, "no disponible", resp.Errores["tendenciaMensual"])
	assert.Nil(t, resp.ResumenGeneral)
	assert.Nil(t, resp.IngresosSemanales)

	assert.Len(t, resp.IngresosPorMetodo, 2)
	assert.Len(t, resp.ComparativaSemanal, 2)
	require.NotNil(t, resp.TiempoPromedioCierre)
}

func TestCalcularVariacion(t *testing.T) {
	cero := decimal.Zero
	assert.Equal(t, float64(0), calcularVariacion(cero, cero))
	assert.Equal(t, float64(100), calcularVariacion(decimal.RequireFromString("500"), cero))
	assert.Equal(t, float64(50), calcularVariacion(decimal.RequireFromString("150"), decimal.RequireFromString("100")))
	assert.Equal(t, float64(-25), calcularVariacion(decimal.RequireFromString("75"), decimal.RequireFromString("100")))
	assert.Equal(t, 33.33, calcularVariacion(decimal.RequireFromString("400"), decimal.RequireFromString("300")))
}

func TestIngresosHistoricosRieles(t *testing.T) {
	repo := repoConVentas()
	repo.historicos = repo.diarios
	repo.totalDias = 3
	svc := NewEstadisticaService(repo, lapaz, zerolog.Nop())

	resp, err := svc.IngresosHistoricos(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pagina)
	assert.Equal(t, 10, resp.Limite)
	assert.Equal(t, int64(3), resp.Total)
	assert.Len(t, resp.Ingresos, 3)

	resp, err = svc.IngresosHistoricos(context.Background(), 2, 500)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pagina)
	assert.Equal(t, 10, resp.Limite)
}

func TestSemanaActualEmpiezaEnLunes(t *testing.T) {
	svc := &estadisticaService{loc: lapaz}

	// Jueves 2026-08-27 15:00 en La Paz.
	ahora := time.Date(2026, 8, 27, 15, 0, 0, 0, lapaz)
	desde, hasta := svc.semanaActual(ahora)

	lunes := time.Date(2026, 8, 24, 0, 0, 0, 0, lapaz)
	assert.True(t, desde.Equal(lunes.UTC()))
	assert.True(t, hasta.Equal(lunes.AddDate(0, 0, 7).UTC()))

	// Un lunes no retrocede.
	desde, _ = svc.semanaActual(lunes.Add(2 * time.Hour))
	assert.True(t, desde.Equal(lunes.UTC()))
}
