package dashboard

import (
	"context"
	"fmt"

	"clinic-api/internal/model"
	"clinic-api/internal/repository"
)

type DashboardService interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
	AppointmentsPerDay(ctx context.Context) ([]model.DayCount, error)
}

type Service struct {
	repo repository.DashboardRepository
}

func NewService(repo repository.DashboardRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Stats(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}
	return stats, nil
}

func (s *Service) AppointmentsPerDay(ctx context.Context) ([]model.DayCount, error) {
	counts, err := s.repo.AppointmentsPerDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute appointments per day: %w", err)
	}
	return counts, nil
}
