package service

import (
	"context"
	"time"

	"github.com/krilinxito/taqueando2.0/internal/dto"
	"github.com/krilinxito/taqueando2.0/internal/repository"
)

type UserLogService interface {
	Recientes(ctx context.Context, limite int) ([]dto.LogSesionResponse, error)
}

type userLogService struct {
	repo repository.UserLogRepository
}

func NewUserLogService(repo repository.UserLogRepository) UserLogService {
	return &userLogService{repo: repo}
}

func (s *userLogService) Recientes(ctx context.Context, limite int) ([]dto.LogSesionResponse, error) {
	if limite < 1 || limite > 500 {
		limite = 100
	}
	logs, err := s.repo.ListRecientes(ctx, limite)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LogSesionResponse, len(logs))
	for i, l := range logs {
		out[i] = dto.LogSesionResponse{
			ID:        l.ID.String(),
			UsuarioID: l.UsuarioID.String(),
			UserAgent: l.UserAgent,
			IPAddress: l.IPAddress,
			LoginDate: l.LoginDate.UTC().Format(time.RFC3339),
		}
	}
	return out, nil
}
