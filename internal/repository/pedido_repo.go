package repository

import (
	"context"
	"strings"
	"time"

	"github.com/krilinxito/taqueando2.0/internal/dto"
	"github.com/krilinxito/taqueando2.0/internal/fechas"
	"github.com/krilinxito/taqueando2.0/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PedidoListRow is one row of the paginated pedido listing, with its
// aggregates resolved in SQL.
type PedidoListRow struct {
	ID                uuid.UUID
	NombrePedido      string
	Fecha             time.Time
	Estado            string
	NombreUsuario     *string
	TotalPagado       decimal.Decimal
	CantidadProductos int
}

type PedidoRepository interface {
	Create(ctx context.Context, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	List(ctx context.Context, filtro dto.FiltroPedidos) ([]PedidoListRow, int64, error)
	ListDelRango(ctx context.Context, rango fechas.Rango) ([]PedidoListRow, error)
	UpdateNombre(ctx context.Context, id uuid.UUID, nombre string) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type pedidoRepo struct {
	db  *gorm.DB
	loc *time.Location
}

func NewPedidoRepository(db *gorm.DB, loc *time.Location) PedidoRepository {
	return &pedidoRepo{db: db, loc: loc}
}

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

func (r *pedidoRepo) Create(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Items.Producto").Preload("Pagos").
		First(&p, id).Error
	return &p, err
}

// condicionesDePedidos translates a typed filter into a parameterized WHERE
// clause. This is the single place where pedido filters become SQL.
func condicionesDePedidos(f dto.FiltroPedidos, loc *time.Location) (string, []interface{}, error) {
	conds := []string{"1=1"}
	var args []interface{}

	if f.FechaInicio != "" {
		rango, err := fechas.RangoDelDia(f.FechaInicio, time.Now(), loc)
		if err != nil {
			return "", nil, err
		}
		conds = append(conds, "p.fecha >= ?")
		args = append(args, rango.InicioUTC)
	}
	if f.FechaFin != "" {
		rango, err := fechas.RangoDelDia(f.FechaFin, time.Now(), loc)
		if err != nil {
			return "", nil, err
		}
		conds = append(conds, "p.fecha < ?")
		args = append(args, rango.FinUTC)
	}
	if f.Estado != "" {
		estado := f.Estado
		// Legacy alias: the original schema called settled tabs "cancelado".
		if estado == "cancelado" {
			estado = model.EstadoPagado
		}
		conds = append(conds, "p.estado = ?")
		args = append(args, estado)
	}
	if f.Usuario != "" {
		conds = append(conds, "u.nombre ILIKE ?")
		args = append(args, "%"+f.Usuario+"%")
	}
	return strings.Join(conds, " AND "), args, nil
}

const pedidoListSelect = `
	SELECT
		p.id,
		p.nombre AS nombre_pedido,
		p.fecha,
		p.estado,
		u.nombre AS nombre_usuario,
		COALESCE(SUM(pg.monto), 0) AS total_pagado,
		COUNT(DISTINCT c.id) AS cantidad_productos
	FROM pedidos p
	LEFT JOIN usuarios u ON u.id = p.usuario_id
	LEFT JOIN pagos pg ON pg.pedido_id = p.id
	LEFT JOIN contiene c ON c.pedido_id = p.id`

func (r *pedidoRepo) List(ctx context.Context, filtro dto.FiltroPedidos) ([]PedidoListRow, int64, error) {
	where, args, err := condicionesDePedidos(filtro, r.loc)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countSQL := `SELECT COUNT(DISTINCT p.id) FROM pedidos p LEFT JOIN usuarios u ON u.id = p.usuario_id WHERE ` + where
	if err := r.db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filtro.Pagina - 1) * filtro.Limite
	listSQL := pedidoListSelect + ` WHERE ` + where + `
	GROUP BY p.id, u.nombre
	ORDER BY p.fecha DESC
	LIMIT ? OFFSET ?`
	listArgs := append(append([]interface{}{}, args...), filtro.Limite, offset)

	var rows []PedidoListRow
	err = r.db.WithContext(ctx).Raw(listSQL, listArgs...).Scan(&rows).Error
	return rows, total, err
}

func (r *pedidoRepo) ListDelRango(ctx context.Context, rango fechas.Rango) ([]PedidoListRow, error) {
	var rows []PedidoListRow
	err := r.db.WithContext(ctx).Raw(pedidoListSelect+`
	WHERE p.fecha >= ? AND p.fecha < ?
	GROUP BY p.id, u.nombre
	ORDER BY p.fecha ASC`, rango.InicioUTC, rango.FinUTC).Scan(&rows).Error
	return rows, err
}

func (r *pedidoRepo) UpdateNombre(ctx context.Context, id uuid.UUID, nombre string) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Update("nombre", nombre).Error
}

func (r *pedidoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Pedido{}, id).Error
}
