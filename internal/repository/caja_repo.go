package repository

import (
	"context"
	"time"

	"github.com/krilinxito/taqueando2.0/internal/fechas"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TotalesCaja is the day-wide aggregate: ledger revenue plus the count of
// tabs opened that day, paid or not.
type TotalesCaja struct {
	TotalDia     decimal.Decimal
	TotalPedidos int64
}

// MetodoCaja is one payment-method bucket of the day.
type MetodoCaja struct {
	Metodo   string
	Total    decimal.Decimal
	Cantidad int64
}

// PagoCaja is one ledger entry with its tab context, for the detail list.
type PagoCaja struct {
	ID            uuid.UUID
	PedidoID      uuid.UUID
	Monto         decimal.Decimal
	Metodo        string
	Hora          time.Time
	EstadoPedido  string
	NombrePedido  string
	NombreUsuario *string
}

// CajaRepository reads the payment ledger for cash-summary purposes. All
// three queries window on the TAB's creation timestamp, not the payment's,
// so a tab opened before midnight keeps its late payments on the day the
// tab was opened.
type CajaRepository interface {
	Totales(ctx context.Context, r fechas.Rango) (TotalesCaja, error)
	PorMetodo(ctx context.Context, r fechas.Rango) ([]MetodoCaja, error)
	Pagos(ctx context.Context, r fechas.Rango) ([]PagoCaja, error)
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

// Tabs drive the day's counts: a tab with no payments yet still counts as a
// pedido of the day, it just contributes zero revenue.
const totalesCajaSQL = `
	SELECT COALESCE(SUM(pg.monto), 0) AS total_dia,
	       COUNT(DISTINCT p.id)       AS total_pedidos
	FROM pedidos p
	LEFT JOIN pagos pg ON pg.pedido_id = p.id
	WHERE p.fecha >= ? AND p.fecha < ?`

func (c *cajaRepo) Totales(ctx context.Context, r fechas.Rango) (TotalesCaja, error) {
	var out TotalesCaja
	err := c.db.WithContext(ctx).Raw(totalesCajaSQL, r.InicioUTC, r.FinUTC).Scan(&out).Error
	return out, err
}

func (c *cajaRepo) PorMetodo(ctx context.Context, r fechas.Rango) ([]MetodoCaja, error) {
	var rows []MetodoCaja
	err := c.db.WithContext(ctx).Raw(`
		SELECT COALESCE(pg.metodo, 'desconocido') AS metodo,
		       COALESCE(SUM(pg.monto), 0)         AS total,
		       COUNT(*)                           AS cantidad
		FROM pagos pg
		JOIN pedidos p ON p.id = pg.pedido_id
		WHERE p.fecha >= ? AND p.fecha < ?
		GROUP BY COALESCE(pg.metodo, 'desconocido')
		ORDER BY total DESC`,
		r.InicioUTC, r.FinUTC).Scan(&rows).Error
	return rows, err
}

func (c *cajaRepo) Pagos(ctx context.Context, r fechas.Rango) ([]PagoCaja, error) {
	var rows []PagoCaja
	err := c.db.WithContext(ctx).Raw(`
		SELECT pg.id, pg.pedido_id, pg.monto, pg.metodo, pg.hora,
		       p.estado AS estado_pedido,
		       p.nombre AS nombre_pedido,
		       u.nombre AS nombre_usuario
		FROM pagos pg
		JOIN pedidos p ON p.id = pg.pedido_id
		LEFT JOIN usuarios u ON u.id = p.usuario_id
		WHERE p.fecha >= ? AND p.fecha < ?
		ORDER BY pg.hora ASC`,
		r.InicioUTC, r.FinUTC).Scan(&rows).Error
	return rows, err
}
