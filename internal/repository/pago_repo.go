package repository

import (
	"context"

	"github.com/krilinxito/taqueando2.0/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PagoRepository is the append-only payment ledger plus the settlement
// queries that read it. The Tx variants exist so "append payment and
// re-evaluate settlement" runs as one transactional unit.
type PagoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Pago) error
	ListByPedido(ctx context.Context, pedidoID uuid.UUID) ([]model.Pago, error)

	// TotalPagado sums every payment of a tab.
	TotalPagado(ctx context.Context, pedidoID uuid.UUID) (decimal.Decimal, error)
	TotalPagadoTx(tx *gorm.DB, pedidoID uuid.UUID) (decimal.Decimal, error)

	// TotalPedido sums precio×cantidad over non-voided lines only.
	TotalPedido(ctx context.Context, pedidoID uuid.UUID) (decimal.Decimal, error)
	TotalPedidoTx(tx *gorm.DB, pedidoID uuid.UUID) (decimal.Decimal, error)

	EstadoPedidoTx(tx *gorm.DB, pedidoID uuid.UUID) (string, error)
	UpdateEstadoPedidoTx(tx *gorm.DB, pedidoID uuid.UUID, estado string) error

	DB() *gorm.DB
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) DB() *gorm.DB { return r.db }

func (r *pagoRepo) CreateTx(tx *gorm.DB, p *model.Pago) error {
	return tx.Create(p).Error
}

func (r *pagoRepo) ListByPedido(ctx context.Context, pedidoID uuid.UUID) ([]model.Pago, error) {
	var pagos []model.Pago
	err := r.db.WithContext(ctx).
		Where("pedido_id = ?", pedidoID).
		Order("hora ASC").
		Find(&pagos).Error
	return pagos, err
}

const totalPagadoSQL = `SELECT COALESCE(SUM(monto), 0) FROM pagos WHERE pedido_id = ?`

const totalPedidoSQL = `
	SELECT COALESCE(SUM(pr.precio * c.cantidad), 0)
	FROM contiene c
	JOIN productos pr ON pr.id = c.producto_id
	WHERE c.pedido_id = ? AND c.anulado = FALSE`

func (r *pagoRepo) TotalPagado(ctx context.Context, pedidoID uuid.UUID) (decimal.Decimal, error) {
	return sumQuery(r.db.WithContext(ctx), totalPagadoSQL, pedidoID)
}

func (r *pagoRepo) TotalPagadoTx(tx *gorm.DB, pedidoID uuid.UUID) (decimal.Decimal, error) {
	return sumQuery(tx, totalPagadoSQL, pedidoID)
}

func (r *pagoRepo) TotalPedido(ctx context.Context, pedidoID uuid.UUID) (decimal.Decimal, error) {
	return sumQuery(r.db.WithContext(ctx), totalPedidoSQL, pedidoID)
}

func (r *pagoRepo) TotalPedidoTx(tx *gorm.DB, pedidoID uuid.UUID) (decimal.Decimal, error) {
	return sumQuery(tx, totalPedidoSQL, pedidoID)
}

func (r *pagoRepo) EstadoPedidoTx(tx *gorm.DB, pedidoID uuid.UUID) (string, error) {
	var estado string
	err := tx.Raw(`SELECT estado FROM pedidos WHERE id = ?`, pedidoID).Scan(&estado).Error
	return estado, err
}

func (r *pagoRepo) UpdateEstadoPedidoTx(tx *gorm.DB, pedidoID uuid.UUID, estado string) error {
	return tx.Model(&model.Pedido{}).Where("id = ?", pedidoID).Update("estado", estado).Error
}

func sumQuery(db *gorm.DB, sql string, args ...interface{}) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := db.Raw(sql, args...).Scan(&total).Error
	return total, err
}
