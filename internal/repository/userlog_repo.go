package repository

import (
	"context"

	"github.com/krilinxito/taqueando2.0/internal/model"

	"gorm.io/gorm"
)

type UserLogRepository interface {
	Create(ctx context.Context, l *model.UserLog) error
	ListRecientes(ctx context.Context, limite int) ([]model.UserLog, error)
}

type userLogRepo struct{ db *gorm.DB }

func NewUserLogRepository(db *gorm.DB) UserLogRepository { return &userLogRepo{db: db} }

func (r *userLogRepo) Create(ctx context.Context, l *model.UserLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *userLogRepo) ListRecientes(ctx context.Context, limite int) ([]model.UserLog, error) {
	var logs []model.UserLog
	err := r.db.WithContext(ctx).
		Order("login_date DESC").
		Limit(limite).
		Find(&logs).Error
	return logs, err
}
