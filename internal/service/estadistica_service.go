package service

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/krilinxito/taqueando2.0/internal/dto"
	"github.com/krilinxito/taqueando2.0/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	topProductosLimite   = 50
	horariosPicoLimite   = 10
	diasTendenciaMensual = 30
)

type EstadisticaService interface {
	// Dashboard gathers every statistic concurrently. A failed section is
	// reported in Errores and left null; the rest still renders.
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	IngresosHistoricos(ctx context.Context, pagina, limite int) (*dto.IngresosHistoricosResponse, error)
}

type estadisticaService struct {
	repo repository.EstadisticaRepository
	loc  *time.Location
	log  zerolog.Logger
}

func NewEstadisticaService(repo repository.EstadisticaRepository, loc *time.Location, log zerolog.Logger) EstadisticaService {
	return &estadisticaService{repo: repo, loc: loc, log: log}
}

func (s *estadisticaService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	ahora := time.Now()
	semDesde, semHasta := s.semanaActual(ahora)
	antDesde, antHasta := semDesde.AddDate(0, 0, -7), semDesde
	mesDesde := semHasta.AddDate(0, 0, -diasTendenciaMensual)

	resp := &dto.DashboardResponse{}
	errores := make(map[string]string)

	var wg sync.WaitGroup
	var mu sync.Mutex

	seccion := func(nombre string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				s.log.Error().Err(err).Str("seccion", nombre).Msg("estadística falló")
				mu.Lock()
				errores[nombre] = "no disponible"
				mu.Unlock()
			}
		}()
	}

	seccion("resumenGeneral", func() error {
		rg, err := s.resumenGeneral(ctx, semDesde, semHasta, antDesde, antHasta)
		if err != nil {
			return err
		}
		resp.ResumenGeneral = rg
		return nil
	})

	seccion("ingresosSemanales", func() error {
		rows, err := s.repo.IngresosDiarios(ctx, semDesde, semHasta)
		if err != nil {
			return err
		}
		resp.IngresosSemanales = ingresosDiarios(rows)
		return nil
	})

	seccion("tendenciaMensual", func() error {
		rows, err := s.repo.IngresosDiarios(ctx, mesDesde, semHasta)
		if err != nil {
			return err
		}
		resp.TendenciaMensual = ingresosDiarios(rows)
		return nil
	})

	seccion("ingresosPorMetodo", func() error {
		rows, err := s.repo.IngresosPorMetodo(ctx, semDesde, semHasta)
		if err != nil {
			return err
		}
		resp.IngresosPorMetodo = make([]dto.IngresoPorMetodo, 0, len(rows))
		for _, r := range rows {
			resp.IngresosPorMetodo = append(resp.IngresosPorMetodo, dto.IngresoPorMetodo{
				Metodo: r.Metodo, Cantidad: r.Cantidad, Total: r.Total,
			})
		}
		return nil
	})

	seccion("productosMasVendidos", func() error {
		rows, err := s.repo.ProductosMasVendidos(ctx, semDesde, semHasta, topProductosLimite)
		if err != nil {
			return err
		}
		resp.ProductosMasVendidos = make([]dto.ProductoVendido, 0, len(rows))
		for _, r := range rows {
			if r.Cantidad == 0 {
				continue
			}
			resp.ProductosMasVendidos = append(resp.ProductosMasVendidos, dto.ProductoVendido{
				Nombre: r.Nombre, CantidadTotal: r.Cantidad, IngresosTotal: r.Total,
			})
		}
		return nil
	})

	seccion("ventasPorHora", func() error {
		rows, err := s.repo.VentasPorHora(ctx, semDesde, semHasta)
		if err != nil {
			return err
		}
		resp.VentasPorHora = make([]dto.VentaPorHora, 0, len(rows))
		for _, r := range rows {
			resp.VentasPorHora = append(resp.VentasPorHora, dto.VentaPorHora{
				Hora: r.Hora, TotalPedidos: r.Pedidos, TotalVentas: r.Total,
			})
		}
		return nil
	})

	seccion("comparativaSemanal", func() error {
		actual, err := s.repo.TotalesPorPeriodo(ctx, semDesde, semHasta)
		if err != nil {
			return err
		}
		anterior, err := s.repo.TotalesPorPeriodo(ctx, antDesde, antHasta)
		if err != nil {
			return err
		}
		resp.ComparativaSemanal = []dto.PeriodoComparativa{
			{Periodo: "semana_actual", TotalPedidos: actual.Pedidos, TotalVentas: actual.Total, UsuariosActivos: actual.Usuarios},
			{Periodo: "semana_anterior", TotalPedidos: anterior.Pedidos, TotalVentas: anterior.Total, UsuariosActivos: anterior.Usuarios},
		}
		return nil
	})

	seccion("tiempoPromedioCierre", func() error {
		minutos, err := s.repo.TiempoPromedioCierre(ctx, semDesde, semHasta)
		if err != nil {
			return err
		}
		resp.TiempoPromedioCierre = &dto.TiempoCierre{TiempoPromedioMinutos: minutos}
		return nil
	})

	seccion("horariosPicoIngresos", func() error {
		rows, err := s.repo.HorariosPico(ctx, semDesde, semHasta, horariosPicoLimite)
		if err != nil {
			return err
		}
		resp.HorariosPicoIngresos = horariosPico(rows)
		return nil
	})

	wg.Wait()
	if len(errores) > 0 {
		resp.Errores = errores
	}
	return resp, nil
}

func (s *estadisticaService) resumenGeneral(ctx context.Context, semDesde, semHasta, antDesde, antHasta time.Time) (*dto.ResumenGeneral, error) {
	actual, err := s.repo.TotalesPorPeriodo(ctx, semDesde, semHasta)
	if err != nil {
		return nil, err
	}
	anterior, err := s.repo.TotalesPorPeriodo(ctx, antDesde, antHasta)
	if err != nil {
		return nil, err
	}
	diarios, err := s.repo.IngresosDiarios(ctx, semDesde, semHasta)
	if err != nil {
		return nil, err
	}
	picos, err := s.repo.HorariosPico(ctx, semDesde, semHasta, 1)
	if err != nil {
		return nil, err
	}

	rg := &dto.ResumenGeneral{
		IngresosSemana:         actual.Total,
		PedidosSemana:          actual.Pedidos,
		UsuariosActivos:        actual.Usuarios,
		IngresosSemanaAnterior: anterior.Total,
		PedidosSemanaAnterior:  anterior.Pedidos,
		VariacionIngresos:      calcularVariacion(actual.Total, anterior.Total),
		VariacionPedidos:       calcularVariacion(decimal.NewFromInt(actual.Pedidos), decimal.NewFromInt(anterior.Pedidos)),
	}
	if actual.Pedidos > 0 {
		rg.TicketPromedio = actual.Total.Div(decimal.NewFromInt(actual.Pedidos)).Round(2)
	}
	if len(diarios) > 0 {
		rg.PromedioDiario = actual.Total.Div(decimal.NewFromInt(int64(len(diarios)))).Round(2)
		mejor := diarios[0]
		for _, d := range diarios[1:] {
			if d.Total.GreaterThan(mejor.Total) {
				mejor = d
			}
		}
		rg.MejorDia = &dto.IngresoDiario{Fecha: mejor.Fecha, TotalPedidos: mejor.Pedidos, Total: mejor.Total}
	}
	if len(picos) > 0 {
		pico := horariosPico(picos)[0]
		rg.HoraPico = &pico
	}
	return rg, nil
}

func (s *estadisticaService) IngresosHistoricos(ctx context.Context, pagina, limite int) (*dto.IngresosHistoricosResponse, error) {
	if pagina < 1 {
		pagina = 1
	}
	if limite < 1 || limite > 100 {
		limite = 10
	}
	rows, total, err := s.repo.IngresosHistoricos(ctx, pagina, limite)
	if err != nil {
		return nil, err
	}
	return &dto.IngresosHistoricosResponse{
		Ingresos: ingresosDiarios(rows),
		Total:    total,
		Pagina:   pagina,
		Limite:   limite,
	}, nil
}

// semanaActual returns the UTC bounds of the current ISO week (Monday 00:00
// local through the next Monday).
func (s *estadisticaService) semanaActual(ahora time.Time) (time.Time, time.Time) {
	local := ahora.In(s.loc)
	retroceso := (int(local.Weekday()) + 6) % 7
	lunes := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc).
		AddDate(0, 0, -retroceso)
	return lunes.UTC(), lunes.AddDate(0, 0, 7).UTC()
}

// calcularVariacion: 0 when both periods are 0, 100 when only the prior
// period is 0, else the plain percentage change rounded to 2 decimals.
func calcularVariacion(actual, anterior decimal.Decimal) float64 {
	if anterior.IsZero() {
		if actual.IsZero() {
			return 0
		}
		return 100
	}
	v, _ := actual.Sub(anterior).Mul(cien).Div(anterior).Float64()
	return math.Round(v*100) / 100
}

func ingresosDiarios(rows []repository.IngresoDiarioRow) []dto.IngresoDiario {
	out := make([]dto.IngresoDiario, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.IngresoDiario{Fecha: r.Fecha, TotalPedidos: r.Pedidos, Total: r.Total})
	}
	return out
}

func horariosPico(rows []repository.HorarioPicoRow) []dto.HorarioPico {
	out := make([]dto.HorarioPico, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.HorarioPico{
			DiaSemana: r.DiaSemana, Hora: r.Hora, TotalPedidos: r.Pedidos, TotalIngresos: r.Total,
		})
	}
	return out
}
