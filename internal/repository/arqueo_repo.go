package repository

import (
	"context"

	"github.com/krilinxito/taqueando2.0/internal/fechas"
	"github.com/krilinxito/taqueando2.0/internal/model"

	"gorm.io/gorm"
)

type ArqueoRepository interface {
	Create(ctx context.Context, a *model.Arqueo) error
	// ListByRango returns the reconciliations of a window, newest first.
	ListByRango(ctx context.Context, r fechas.Rango) ([]model.Arqueo, error)
	Ultimo(ctx context.Context) (*model.Arqueo, error)
}

type arqueoRepo struct{ db *gorm.DB }

func NewArqueoRepository(db *gorm.DB) ArqueoRepository { return &arqueoRepo{db: db} }

func (r *arqueoRepo) Create(ctx context.Context, a *model.Arqueo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *arqueoRepo) ListByRango(ctx context.Context, rango fechas.Rango) ([]model.Arqueo, error) {
	var arqueos []model.Arqueo
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Where("fecha >= ? AND fecha < ?", rango.InicioUTC, rango.FinUTC).
		Order("fecha DESC").
		Find(&arqueos).Error
	return arqueos, err
}

func (r *arqueoRepo) Ultimo(ctx context.Context) (*model.Arqueo, error) {
	var a model.Arqueo
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Order("fecha DESC").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
