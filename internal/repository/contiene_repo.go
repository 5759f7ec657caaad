package repository

import (
	"context"

	"github.com/krilinxito/taqueando2.0/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContieneRepository interface {
	CreateItem(ctx context.Context, item *model.PedidoItem) error
	FindItem(ctx context.Context, id uuid.UUID) (*model.PedidoItem, error)
	// AnularItem marks a line voided. One-way: no un-void.
	AnularItem(ctx context.Context, id uuid.UUID) error
	ListByPedido(ctx context.Context, pedidoID uuid.UUID) ([]model.PedidoItem, error)
	PedidoExiste(ctx context.Context, pedidoID uuid.UUID) (bool, error)
	ProductoExiste(ctx context.Context, productoID uuid.UUID) (bool, error)
}

type contieneRepo struct{ db *gorm.DB }

func NewContieneRepository(db *gorm.DB) ContieneRepository { return &contieneRepo{db: db} }

func (r *contieneRepo) CreateItem(ctx context.Context, item *model.PedidoItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *contieneRepo) FindItem(ctx context.Context, id uuid.UUID) (*model.PedidoItem, error) {
	var item model.PedidoItem
	if err := r.db.WithContext(ctx).Preload("Producto").First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *contieneRepo) AnularItem(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&model.PedidoItem{}).
		Where("id = ?", id).
		Update("anulado", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contieneRepo) ListByPedido(ctx context.Context, pedidoID uuid.UUID) ([]model.PedidoItem, error) {
	var items []model.PedidoItem
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Where("pedido_id = ?", pedidoID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *contieneRepo) PedidoExiste(ctx context.Context, pedidoID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", pedidoID).Count(&n).Error
	return n > 0, err
}

func (r *contieneRepo) ProductoExiste(ctx context.Context, productoID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", productoID).Count(&n).Error
	return n > 0, err
}
