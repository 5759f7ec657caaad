package service

import (
	"context"
	"testing"

	"github.com/krilinxito/taqueando2.0/internal/dto"
	"github.com/krilinxito/taqueando2.0/internal/model"
	"github.com/krilinxito/taqueando2.0/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubPagoRepo is an in-memory PagoRepository. Order totals are fixed per
// test; payments accumulate as the ledger would.
type stubPagoRepo struct {
	pagos   map[uuid.UUID][]model.Pago
	totales map[uuid.UUID]decimal.Decimal
	estados map[uuid.UUID]string
}

func newStubPagoRepo() *stubPagoRepo {
	return &stubPagoRepo{
		pagos:   make(map[uuid.UUID][]model.Pago),
		totales: make(map[uuid.UUID]decimal.Decimal),
		estados: make(map[uuid.UUID]string),
	}
}

func (r *stubPagoRepo) CreateTx(_ *gorm.DB, p *model.Pago) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pagos[p.PedidoID] = append(r.pagos[p.PedidoID], *p)
	return nil
}

func (r *stubPagoRepo) ListByPedido(_ context.Context, pedidoID uuid.UUID) ([]model.Pago, error) {
	return r.pagos[pedidoID], nil
}

func (r *stubPagoRepo) TotalPagado(_ context.Context, pedidoID uuid.UUID) (decimal.Decimal, error) {
	return r.TotalPagadoTx(nil, pedidoID)
}

func (r *stubPagoRepo) TotalPagadoTx(_ *gorm.DB, pedidoID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.pagos[pedidoID] {
		total = total.Add(p.Monto)
	}
	return total, nil
}

func (r *stubPagoRepo) TotalPedido(_ context.Context, pedidoID uuid.UUID) (decimal.Decimal, error) {
	return r.TotalPedidoTx(nil, pedidoID)
}

func (r *stubPagoRepo) TotalPedidoTx(_ *gorm.DB, pedidoID uuid.UUID) (decimal.Decimal, error) {
	return r.totales[pedidoID], nil
}

func (r *stubPagoRepo) EstadoPedidoTx(_ *gorm.DB, pedidoID uuid.UUID) (string, error) {
	return r.estados[pedidoID], nil
}

func (r *stubPagoRepo) UpdateEstadoPedidoTx(_ *gorm.DB, pedidoID uuid.UUID, estado string) error {
	r.estados[pedidoID] = estado
	return nil
}

func (r *stubPagoRepo) DB() *gorm.DB { return nil }

var _ repository.PagoRepository = (*stubPagoRepo)(nil)

func nuevoPedidoPendiente(repo *stubPagoRepo, total string) uuid.UUID {
	id := uuid.New()
	repo.totales[id] = decimal.RequireFromString(total)
	repo.estados[id] = model.EstadoPendiente
	return id
}

func pagar(t *testing.T, svc PagoService, pedidoID uuid.UUID, monto, metodo string) *dto.AgregarPagoResponse {
	t.Helper()
	resp, err := svc.RegistrarPago(context.Background(), dto.AgregarPagoRequest{
		IDPedido: pedidoID.String(),
		Monto:    decimal.RequireFromString(monto),
		Metodo:   metodo,
	})
	require.NoError(t, err)
	return resp
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestRegistrarPagoParcialYSettlement(t *testing.T) {
	repo := newStubPagoRepo()
	svc := NewPagoService(repo)
	pedidoID := nuevoPedidoPendiente(repo, "50.00")

	// Primer pago parcial: 30 de 50.
	resp := pagar(t, svc, pedidoID, "30.00", model.MetodoEfectivo)
	assert.True(t, resp.Restante.Equal(decimal.RequireFromString("20.00")))
	assert.Equal(t, model.EstadoPendiente, repo.estados[pedidoID])

	// Segundo pago completa el total: el pedido se liquida.
	resp = pagar(t, svc, pedidoID, "20.00", model.MetodoTarjeta)
	assert.True(t, resp.Restante.IsZero())
	assert.Equal(t, model.EstadoPagado, repo.estados[pedidoID])

	// Un pago tardío sigue entrando al ledger, pero el restante queda en 0.
	resp = pagar(t, svc, pedidoID, "5.00", model.MetodoQR)
	assert.True(t, resp.Restante.IsZero())
	assert.True(t, resp.TotalPagado.Equal(decimal.RequireFromString("55.00")))
	assert.Equal(t, model.EstadoPagado, repo.estados[pedidoID])
	assert.Len(t, repo.pagos[pedidoID], 3)
}

func TestRegistrarPagoMontoInvalido(t *testing.T) {
	repo := newStubPagoRepo()
	svc := NewPagoService(repo)
	pedidoID := nuevoPedidoPendiente(repo, "50.00")

	_, err := svc.RegistrarPago(context.Background(), dto.AgregarPagoRequest{
		IDPedido: pedidoID.String(),
		Monto:    decimal.Zero,
		Metodo:   model.MetodoEfectivo,
	})
	assert.ErrorIs(t, err, ErrMontoInvalido)

	_, err = svc.RegistrarPago(context.Background(), dto.AgregarPagoRequest{
		IDPedido: pedidoID.String(),
		Monto:    decimal.RequireFromString("-10"),
		Metodo:   model.MetodoEfectivo,
	})
	assert.ErrorIs(t, err, ErrMontoInvalido)
	assert.Empty(t, repo.pagos[pedidoID])
}

func TestRegistrarPagoMetodoInvalido(t *testing.T) {
	repo := newStubPagoRepo()
	svc := NewPagoService(repo)
	pedidoID := nuevoPedidoPendiente(repo, "50.00")

	_, err := svc.RegistrarPago(context.Background(), dto.AgregarPagoRequest{
		IDPedido: pedidoID.String(),
		Monto:    decimal.RequireFromString("10"),
		Metodo:   "cheque",
	})
	assert.ErrorIs(t, err, ErrMetodoInvalido)
}

func TestRegistrarPagoPedidoInexistente(t *testing.T) {
	repo := newStubPagoRepo()
	svc := NewPagoService(repo)

	_, err := svc.RegistrarPago(context.Background(), dto.AgregarPagoRequest{
		IDPedido: uuid.NewString(),
		Monto:    decimal.RequireFromString("10"),
		Metodo:   model.MetodoEfectivo,
	})
	assert.ErrorIs(t, err, ErrPedidoNoEncontrado)
}

func TestPedidoSinItemsNuncaSeLiquida(t *testing.T) {
	repo := newStubPagoRepo()
	svc := NewPagoService(repo)
	// Total 0: todas las líneas anuladas.
	pedidoID := nuevoPedidoPendiente(repo, "0.00")

	resp := pagar(t, svc, pedidoID, "10.00", model.MetodoEfectivo)
	assert.Equal(t, model.EstadoPendiente, repo.estados[pedidoID])
	assert.True(t, resp.Restante.IsZero())
}

func TestSobrepagoNoDevuelveRestanteNegativo(t *testing.T) {
	repo := newStubPagoRepo()
	svc := NewPagoService(repo)
	pedidoID := nuevoPedidoPendiente(repo, "30.00")

	resp := pagar(t, svc, pedidoID, "100.00", model.MetodoOnline)
	assert.True(t, resp.Restante.IsZero())
	assert.Equal(t, model.EstadoPagado, repo.estados[pedidoID])
}

func TestPagosDePedido(t *testing.T) {
	repo := newStubPagoRepo()
	svc := NewPagoService(repo)
	pedidoID := nuevoPedidoPendiente(repo, "40.00")

	pagar(t, svc, pedidoID, "15.00", model.MetodoEfectivo)
	pagar(t, svc, pedidoID, "10.00", model.MetodoQR)

	resp, err := svc.PagosDePedido(context.Background(), pedidoID)
	require.NoError(t, err)
	assert.Len(t, resp.Pagos, 2)
	assert.True(t, resp.TotalPagado.Equal(decimal.RequireFromString("25.00")))
	assert.True(t, resp.Restante.Equal(decimal.RequireFromString("15.00")))
}
