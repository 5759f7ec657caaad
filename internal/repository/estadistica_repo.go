package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IngresoDiarioRow struct {
	Fecha   string
	Total   decimal.Decimal
	Pedidos int64
}

type IngresoMetodoRow struct {
	Metodo   string
	Total    decimal.Decimal
	Cantidad int64
}

type ProductoVendidoRow struct {
	Nombre   string
	Cantidad int64
	Total    decimal.Decimal
}

type VentaHoraRow struct {
	Hora    int
	Total   decimal.Decimal
	Pedidos int64
}

type HorarioPicoRow struct {
	DiaSemana string
	Hora      int
	Pedidos   int64
	Total     decimal.Decimal
}

// TotalesPeriodo carries the three KPIs of one comparison period.
type TotalesPeriodo struct {
	Total    decimal.Decimal
	Pedidos  int64
	Usuarios int64
}

// EstadisticaRepository runs the aggregate queries behind the dashboard.
// Timestamps live in UTC; any calendar grouping first projects them into
// the restaurant's timezone so a 23:30 sale lands on the right local day.
// Order-level figures root at pedidos and LEFT JOIN the ledger, so unpaid
// tabs count as pedidos with zero revenue.
type EstadisticaRepository interface {
	TotalesPorPeriodo(ctx context.Context, desde, hasta time.Time) (TotalesPeriodo, error)
	IngresosDiarios(ctx context.Context, desde, hasta time.Time) ([]IngresoDiarioRow, error)
	IngresosPorMetodo(ctx context.Context, desde, hasta time.Time) ([]IngresoMetodoRow, error)
	ProductosMasVendidos(ctx context.Context, desde, hasta time.Time, limite int) ([]ProductoVendidoRow, error)
	VentasPorHora(ctx context.Context, desde, hasta time.Time) ([]VentaHoraRow, error)
	HorariosPico(ctx context.Context, desde, hasta time.Time, limite int) ([]HorarioPicoRow, error)
	TiempoPromedioCierre(ctx context.Context, desde, hasta time.Time) (*float64, error)
	IngresosHistoricos(ctx context.Context, pagina, limite int) ([]IngresoDiarioRow, int64, error)
}

type estadisticaRepo struct {
	db *gorm.DB
	tz string
}

func NewEstadisticaRepository(db *gorm.DB, timezone string) EstadisticaRepository {
	return &estadisticaRepo{db: db, tz: timezone}
}

const ingresosDiariosSQL = `
	SELECT to_char(p.fecha AT TIME ZONE 'UTC' AT TIME ZONE ?, 'YYYY-MM-DD') AS fecha,
	       COALESCE(SUM(pg.monto), 0)                                       AS total,
	       COUNT(DISTINCT p.id)                                             AS pedidos
	FROM pedidos p
	LEFT JOIN pagos pg ON pg.pedido_id = p.id
	WHERE p.fecha >= ? AND p.fecha < ?
	GROUP BY 1
	ORDER BY 1 ASC`

func (r *estadisticaRepo) IngresosDiarios(ctx context.Context, desde, hasta time.Time) ([]IngresoDiarioRow, error) {
	var rows []IngresoDiarioRow
	err := r.db.WithContext(ctx).Raw(ingresosDiariosSQL, r.tz, desde, hasta).Scan(&rows).Error
	return rows, err
}

func (r *estadisticaRepo) IngresosPorMetodo(ctx context.Context, desde, hasta time.Time) ([]IngresoMetodoRow, error) {
	var rows []IngresoMetodoRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(pg.metodo, 'desconocido') AS metodo,
		       COALESCE(SUM(pg.monto), 0)         AS total,
		       COUNT(*)                           AS cantidad
		FROM pagos pg
		JOIN pedidos p ON p.id = pg.pedido_id
		WHERE p.fecha >= ? AND p.fecha < ?
		GROUP BY 1
		ORDER BY total DESC`,
		desde, hasta).Scan(&rows).Error
	return rows, err
}

func (r *estadisticaRepo) ProductosMasVendidos(ctx context.Context, desde, hasta time.Time, limite int) ([]ProductoVendidoRow, error) {
	var rows []ProductoVendidoRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT pr.nombre                          AS nombre,
		       COALESCE(SUM(c.cantidad), 0)       AS cantidad,
		       COALESCE(SUM(pr.precio * c.cantidad), 0) AS total
		FROM contiene c
		JOIN productos pr ON pr.id = c.producto_id
		JOIN pedidos p    ON p.id = c.pedido_id
		WHERE c.anulado = FALSE
		  AND p.fecha >= ? AND p.fecha < ?
		GROUP BY pr.nombre
		ORDER BY cantidad DESC
		LIMIT ?`,
		desde, hasta, limite).Scan(&rows).Error
	return rows, err
}

// The hourly distribution buckets by the hour the tab was OPENED, not the
// hour it was paid, so a 12:50 tab settled at 14:10 still counts at 12.
const ventasPorHoraSQL = `
	SELECT EXTRACT(HOUR FROM p.fecha AT TIME ZONE 'UTC' AT TIME ZONE ?)::int AS hora,
	       COALESCE(SUM(pg.monto), 0)                                        AS total,
	       COUNT(DISTINCT p.id)                                              AS pedidos
	FROM pedidos p
	LEFT JOIN pagos pg ON pg.pedido_id = p.id
	WHERE p.fecha >= ? AND p.fecha < ?
	GROUP BY 1
	ORDER BY 1 ASC`

func (r *estadisticaRepo) VentasPorHora(ctx context.Context, desde, hasta time.Time) ([]VentaHoraRow, error) {
	var rows []VentaHoraRow
	err := r.db.WithContext(ctx).Raw(ventasPorHoraSQL, r.tz, desde, hasta).Scan(&rows).Error
	return rows, err
}

const totalesPorPeriodoSQL = `
	SELECT COALESCE(SUM(pg.monto), 0)   AS total,
	       COUNT(DISTINCT p.id)         AS pedidos,
	       COUNT(DISTINCT p.usuario_id) AS usuarios
	FROM pedidos p
	LEFT JOIN pagos pg ON pg.pedido_id = p.id
	WHERE p.fecha >= ? AND p.fecha < ?`

func (r *estadisticaRepo) TotalesPorPeriodo(ctx context.Context, desde, hasta time.Time) (TotalesPeriodo, error) {
	var out TotalesPeriodo
	err := r.db.WithContext(ctx).Raw(totalesPorPeriodoSQL, desde, hasta).Scan(&out).Error
	return out, err
}

// HorariosPico groups revenue by (local weekday, local hour), settled tabs
// only, highest revenue first.
func (r *estadisticaRepo) HorariosPico(ctx context.Context, desde, hasta time.Time, limite int) ([]HorarioPicoRow, error) {
	var rows []HorarioPicoRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT trim(to_char(pg.hora AT TIME ZONE 'UTC' AT TIME ZONE ?, 'Day'))    AS dia_semana,
		       EXTRACT(HOUR FROM pg.hora AT TIME ZONE 'UTC' AT TIME ZONE ?)::int AS hora,
		       COUNT(DISTINCT pg.pedido_id)                                      AS pedidos,
		       COALESCE(SUM(pg.monto), 0)                                        AS total
		FROM pagos pg
		JOIN pedidos p ON p.id = pg.pedido_id
		WHERE p.estado = 'pagado'
		  AND p.fecha >= ? AND p.fecha < ?
		GROUP BY 1, 2
		ORDER BY total DESC
		LIMIT ?`,
		r.tz, r.tz, desde, hasta, limite).Scan(&rows).Error
	return rows, err
}

// TiempoPromedioCierre averages open-to-payment minutes over the tabs
// that actually settled. Nil when no settled tab has payments in the window.
func (r *estadisticaRepo) TiempoPromedioCierre(ctx context.Context, desde, hasta time.Time) (*float64, error) {
	var out *float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT AVG(EXTRACT(EPOCH FROM (pg.hora - p.fecha)) / 60)
		FROM pedidos p
		JOIN pagos pg ON pg.pedido_id = p.id
		WHERE p.estado = 'pagado'
		  AND p.fecha >= ? AND p.fecha < ?`,
		desde, hasta).Scan(&out).Error
	return out, err
}

const ingresosHistoricosSQL = `
	SELECT to_char(p.fecha AT TIME ZONE 'UTC' AT TIME ZONE ?, 'YYYY-MM-DD') AS fecha,
	       COALESCE(SUM(pg.monto), 0)                                       AS total,
	       COUNT(DISTINCT p.id)                                             AS pedidos
	FROM pedidos p
	LEFT JOIN pagos pg ON pg.pedido_id = p.id
	GROUP BY 1
	ORDER BY 1 DESC
	LIMIT ? OFFSET ?`

func (r *estadisticaRepo) IngresosHistoricos(ctx context.Context, pagina, limite int) ([]IngresoDiarioRow, int64, error) {
	// Every local day with at least one tab is a page row, paid or not.
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT to_char(p.fecha AT TIME ZONE 'UTC' AT TIME ZONE ?, 'YYYY-MM-DD'))
		FROM pedidos p`,
		r.tz).Scan(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []IngresoDiarioRow
	err = r.db.WithContext(ctx).Raw(ingresosHistoricosSQL,
		r.tz, limite, (pagina-1)*limite).Scan(&rows).Error
	return rows, total, err
}
