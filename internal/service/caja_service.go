package service

import (
	"context"
	"time"

	"github.com/krilinxito/taqueando2.0/internal/dto"
	"github.com/krilinxito/taqueando2.0/internal/fechas"
	"github.com/krilinxito/taqueando2.0/internal/model"
	"github.com/krilinxito/taqueando2.0/internal/repository"

	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

type CajaService interface {
	// ResumenPorFecha builds the cash summary of one local day. An empty
	// day yields a valid zero summary, never an error.
	ResumenPorFecha(ctx context.Context, fecha string) (*dto.ResumenCajaResponse, error)
	ResumenDeHoy(ctx context.Context) (*dto.ResumenCajaResponse, error)
	// TotalEfectivoDeHoy feeds the reconciliation engine its system total.
	TotalEfectivoDeHoy(ctx context.Context) (decimal.Decimal, error)
}

type cajaService struct {
	repo repository.CajaRepository
	loc  *time.Location
}

func NewCajaService(repo repository.CajaRepository, loc *time.Location) CajaService {
	return &cajaService{repo: repo, loc: loc}
}

func (s *cajaService) ResumenDeHoy(ctx context.Context) (*dto.ResumenCajaResponse, error) {
	return s.ResumenPorFecha(ctx, "")
}

func (s *cajaService) ResumenPorFecha(ctx context.Context, fecha string) (*dto.ResumenCajaResponse, error) {
	rango, err := fechas.RangoDelDia(fecha, time.Now(), s.loc)
	if err != nil {
		return nil, err
	}

	totales, err := s.repo.Totales(ctx, rango)
	if err != nil {
		return nil, err
	}
	porMetodo, err := s.repo.PorMetodo(ctx, rango)
	if err != nil {
		return nil, err
	}
	pagos, err := s.repo.Pagos(ctx, rango)
	if err != nil {
		return nil, err
	}

	resp := &dto.ResumenCajaResponse{
		Fecha:             rango.Etiqueta,
		TotalDia:          totales.TotalDia,
		TotalPedidos:      totales.TotalPedidos,
		TotalEfectivo:     decimal.Zero,
		TotalTarjeta:      decimal.Zero,
		TotalQR:           decimal.Zero,
		TotalOnline:       decimal.Zero,
		TotalEfectivoPy:   decimal.Zero,
		DetallesPorMetodo: make([]dto.DetalleMetodo, 0, len(porMetodo)),
		Pagos:             make([]dto.PagoDetalle, 0, len(pagos)),
	}

	var masUsado, mayorMonto string
	var maxCantidad int64
	maxTotal := decimal.Zero

	for _, m := range porMetodo {
		porcentaje := "0.00"
		if totales.TotalDia.IsPositive() {
			porcentaje = m.Total.Mul(cien).Div(totales.TotalDia).StringFixed(2)
		}
		resp.DetallesPorMetodo = append(resp.DetallesPorMetodo, dto.DetalleMetodo{
			Metodo:     m.Metodo,
			Total:      m.Total,
			Cantidad:   m.Cantidad,
			Porcentaje: porcentaje,
		})

		switch m.Metodo {
		case model.MetodoEfectivo:
			resp.TotalEfectivo = m.Total
		case model.MetodoEfectivoPy:
			resp.TotalEfectivoPy = m.Total
		case model.MetodoTarjeta:
			resp.TotalTarjeta = m.Total
		case model.MetodoQR:
			resp.TotalQR = m.Total
		case model.MetodoOnline:
			resp.TotalOnline = m.Total
		}

		// Ties keep the first method encountered.
		if m.Cantidad > maxCantidad {
			maxCantidad, masUsado = m.Cantidad, m.Metodo
		}
		if m.Total.GreaterThan(maxTotal) {
			maxTotal, mayorMonto = m.Total, m.Metodo
		}
	}

	for _, p := range pagos {
		resp.Pagos = append(resp.Pagos, dto.PagoDetalle{
			ID:            p.ID.String(),
			IDPedido:      p.PedidoID.String(),
			Monto:         p.Monto,
			Metodo:        p.Metodo,
			Hora:          p.Hora.UTC().Format(time.RFC3339),
			EstadoPedido:  p.EstadoPedido,
			NombrePedido:  p.NombrePedido,
			NombreUsuario: p.NombreUsuario,
		})
	}

	promedio := decimal.Zero
	if totales.TotalPedidos > 0 {
		promedio = totales.TotalDia.Div(decimal.NewFromInt(totales.TotalPedidos)).Round(2)
	}
	resp.Estadisticas = dto.EstadisticasResumen{
		PromedioPorPedido:    promedio,
		MetodoPagoMasUsado:   masUsado,
		MetodoPagoMayorMonto: mayorMonto,
	}
	return resp, nil
}

func (s *cajaService) TotalEfectivoDeHoy(ctx context.Context) (decimal.Decimal, error) {
	rango, err := fechas.RangoDelDia("", time.Now(), s.loc)
	if err != nil {
		return decimal.Zero, err
	}
	porMetodo, err := s.repo.PorMetodo(ctx, rango)
	if err != nil {
		return decimal.Zero, err
	}
	for _, m := range porMetodo {
		if m.Metodo == model.MetodoEfectivo {
			return m.Total, nil
		}
	}
	return decimal.Zero, nil
}
