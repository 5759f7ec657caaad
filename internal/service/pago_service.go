package service

import (
	"context"
	"errors"
	"time"

	"github.com/krilinxito/taqueando2.0/internal/dto"
	"github.com/krilinxito/taqueando2.0/internal/model"
	"github.com/krilinxito/taqueando2.0/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrMontoInvalido      = errors.New("el monto debe ser mayor a 0")
	ErrMetodoInvalido     = errors.New("método de pago inválido")
	ErrPedidoNoEncontrado = errors.New("pedido no encontrado")
)

type PagoService interface {
	// RegistrarPago appends a ledger entry and re-evaluates settlement in
	// one transaction. Two concurrent payments can never both observe a
	// stale "not yet settled" state.
	RegistrarPago(ctx context.Context, req dto.AgregarPagoRequest) (*dto.AgregarPagoResponse, error)
	PagosDePedido(ctx context.Context, pedidoID uuid.UUID) (*dto.PagosDePedidoResponse, error)
}

type pagoService struct {
	repo repository.PagoRepository
}

func NewPagoService(repo repository.PagoRepository) PagoService {
	return &pagoService{repo: repo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *pagoService) RegistrarPago(ctx context.Context, req dto.AgregarPagoRequest) (*dto.AgregarPagoResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, ErrMontoInvalido
	}
	if !model.MetodoValido(req.Metodo) {
		return nil, ErrMetodoInvalido
	}
	pedidoID, err := uuid.Parse(req.IDPedido)
	if err != nil {
		return nil, ErrPedidoNoEncontrado
	}

	pago := &model.Pago{
		PedidoID: pedidoID,
		Monto:    req.Monto,
		Metodo:   req.Metodo,
	}

	var totalPagado, totalPedido decimal.Decimal
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		estado, err := s.repo.EstadoPedidoTx(tx, pedidoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPedidoNoEncontrado
			}
			return err
		}
		if estado == "" {
			return ErrPedidoNoEncontrado
		}
		if err := s.repo.CreateTx(tx, pago); err != nil {
			return err
		}
		if totalPagado, err = s.repo.TotalPagadoTx(tx, pedidoID); err != nil {
			return err
		}
		if totalPedido, err = s.repo.TotalPedidoTx(tx, pedidoID); err != nil {
			return err
		}
		// Settlement: fully paid and non-empty. A tab whose lines were all
		// voided (zero total) never auto-settles.
		if estado == model.EstadoPendiente && totalPedido.IsPositive() && totalPagado.GreaterThanOrEqual(totalPedido) {
			return s.repo.UpdateEstadoPedidoTx(tx, pedidoID, model.EstadoPagado)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.AgregarPagoResponse{
		Mensaje:     "Pago registrado correctamente",
		Pago:        pagoToResponse(pago),
		TotalPagado: totalPagado,
		TotalPedido: totalPedido,
		Restante:    restante(totalPedido, totalPagado),
	}, nil
}

func (s *pagoService) PagosDePedido(ctx context.Context, pedidoID uuid.UUID) (*dto.PagosDePedidoResponse, error) {
	pagos, err := s.repo.ListByPedido(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	totalPagado, err := s.repo.TotalPagado(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	totalPedido, err := s.repo.TotalPedido(ctx, pedidoID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PagosDePedidoResponse{
		Pagos:       make([]dto.PagoResponse, 0, len(pagos)),
		TotalPagado: totalPagado,
		TotalPedido: totalPedido,
		Restante:    restante(totalPedido, totalPagado),
	}
	for i := range pagos {
		resp.Pagos = append(resp.Pagos, pagoToResponse(&pagos[i]))
	}
	return resp, nil
}

// restante clamps the pending balance at zero so an overpaid tab never
// reports a negative figure.
func restante(total, pagado decimal.Decimal) decimal.Decimal {
	r := total.Sub(pagado)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

func pagoToResponse(p *model.Pago) dto.PagoResponse {
	return dto.PagoResponse{
		ID:       p.ID.String(),
		IDPedido: p.PedidoID.String(),
		Monto:    p.Monto,
		Metodo:   p.Metodo,
		Hora:     p.Hora.UTC().Format(time.RFC3339),
	}
}
