package service

import (
	"context"
	"errors"

	"github.com/krilinxito/taqueando2.0/internal/dto"
	"github.com/krilinxito/taqueando2.0/internal/model"
	"github.com/krilinxito/taqueando2.0/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrItemNoEncontrado = errors.New("item no encontrado")

type ContieneService interface {
	AgregarItem(ctx context.Context, req dto.AgregarItemRequest) (*dto.ItemPedidoResponse, error)
	// AnularItem voids a line. One-way: there is no un-void.
	AnularItem(ctx context.Context, id uuid.UUID) error
	ItemsDePedido(ctx context.Context, pedidoID uuid.UUID) (*dto.ItemsDePedidoResponse, error)
}

type contieneService struct {
	repo repository.ContieneRepository
}

func NewContieneService(repo repository.ContieneRepository) ContieneService {
	return &contieneService{repo: repo}
}

func (s *contieneService) AgregarItem(ctx context.Context, req dto.AgregarItemRequest) (*dto.ItemPedidoResponse, error) {
	pedidoID, err := uuid.Parse(req.IDPedido)
	if err != nil {
		return nil, ErrPedidoNoEncontrado
	}
	productoID, err := uuid.Parse(req.IDProducto)
	if err != nil {
		return nil, ErrProductoNoEncontrado
	}

	if ok, err := s.repo.PedidoExiste(ctx, pedidoID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrPedidoNoEncontrado
	}
	if ok, err := s.repo.ProductoExiste(ctx, productoID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrProductoNoEncontrado
	}

	item := &model.PedidoItem{
		PedidoID:   pedidoID,
		ProductoID: productoID,
		Cantidad:   req.Cantidad,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	creado, err := s.repo.FindItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	resp := itemToResponse(creado)
	return &resp, nil
}

func (s *contieneService) AnularItem(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.AnularItem(ctx, id); err != nil {
		return ErrItemNoEncontrado
	}
	return nil
}

// ItemsDePedido lists every line, voided included, for audit. The total
// covers non-voided lines only.
func (s *contieneService) ItemsDePedido(ctx context.Context, pedidoID uuid.UUID) (*dto.ItemsDePedidoResponse, error) {
	if ok, err := s.repo.PedidoExiste(ctx, pedidoID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrPedidoNoEncontrado
	}

	items, err := s.repo.ListByPedido(ctx, pedidoID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ItemsDePedidoResponse{
		Productos: make([]dto.ItemPedidoResponse, 0, len(items)),
		Total:     decimal.Zero,
	}
	for i := range items {
		it := itemToResponse(&items[i])
		resp.Productos = append(resp.Productos, it)
		if !it.Anulado {
			resp.Total = resp.Total.Add(it.Subtotal)
		}
	}
	return resp, nil
}

func itemToResponse(item *model.PedidoItem) dto.ItemPedidoResponse {
	resp := dto.ItemPedidoResponse{
		ID:         item.ID.String(),
		IDProducto: item.ProductoID.String(),
		Cantidad:   item.Cantidad,
		Anulado:    item.Anulado,
		Subtotal:   decimal.Zero,
	}
	if item.Producto != nil {
		resp.Nombre = item.Producto.Nombre
		resp.Precio = item.Producto.Precio
		resp.Subtotal = item.Producto.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad)))
	}
	return resp
}
