package service

import (
	"context"
	"time"

	"github.com/krilinxito/taqueando2.0/internal/dto"
	"github.com/krilinxito/taqueando2.0/internal/fechas"
	"github.com/krilinxito/taqueando2.0/internal/model"
	"github.com/krilinxito/taqueando2.0/internal/repository"

	"github.com/google/uuid"
)

type PedidoService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, filtro dto.FiltroPedidos) (*dto.PedidoListResponse, error)
	PedidosDelDia(ctx context.Context) ([]dto.PedidoListItem, error)
	Renombrar(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type pedidoService struct {
	repo repository.PedidoRepository
	loc  *time.Location
}

func NewPedidoService(repo repository.PedidoRepository, loc *time.Location) PedidoService {
	return &pedidoService{repo: repo, loc: loc}
}

func (s *pedidoService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	p := &model.Pedido{
		Nombre:    req.Nombre,
		Estado:    model.EstadoPendiente,
		UsuarioID: usuarioID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := pedidoToResponse(p)
	return &resp, nil
}

func (s *pedidoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPedidoNoEncontrado
	}
	resp := pedidoToResponse(p)
	return &resp, nil
}

func (s *pedidoService) Listar(ctx context.Context, filtro dto.FiltroPedidos) (*dto.PedidoListResponse, error) {
	if filtro.Pagina < 1 {
		filtro.Pagina = 1
	}
	if filtro.Limite < 1 || filtro.Limite > 100 {
		filtro.Limite = 10
	}
	rows, total, err := s.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	return &dto.PedidoListResponse{
		Data:   pedidoListItems(rows),
		Total:  total,
		Pagina: filtro.Pagina,
		Limite: filtro.Limite,
	}, nil
}

func (s *pedidoService) PedidosDelDia(ctx context.Context) ([]dto.PedidoListItem, error) {
	rango, err := fechas.RangoDelDia("", time.Now(), s.loc)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListDelRango(ctx, rango)
	if err != nil {
		return nil, err
	}
	return pedidoListItems(rows), nil
}

func (s *pedidoService) Renombrar(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrPedidoNoEncontrado
	}
	return s.repo.UpdateNombre(ctx, id, req.Nombre)
}

func (s *pedidoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrPedidoNoEncontrado
	}
	return s.repo.Delete(ctx, id)
}

func pedidoToResponse(p *model.Pedido) dto.PedidoResponse {
	var nombreUsuario *string
	if p.Usuario != nil {
		nombreUsuario = &p.Usuario.Nombre
	}
	return dto.PedidoResponse{
		ID:            p.ID.String(),
		Nombre:        p.Nombre,
		Fecha:         p.Fecha.UTC().Format(time.RFC3339),
		Estado:        p.Estado,
		IDUsuario:     p.UsuarioID.String(),
		NombreUsuario: nombreUsuario,
	}
}

func pedidoListItems(rows []repository.PedidoListRow) []dto.PedidoListItem {
	items := make([]dto.PedidoListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.PedidoListItem{
			ID:                r.ID.String(),
			NombrePedido:      r.NombrePedido,
			Fecha:             r.Fecha.UTC().Format(time.RFC3339),
			Estado:            r.Estado,
			NombreUsuario:     r.NombreUsuario,
			TotalPagado:       r.TotalPagado,
			CantidadProductos: r.CantidadProductos,
		})
	}
	return items
}
