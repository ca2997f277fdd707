package checkup

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"clinic-api/internal/model"
	"clinic-api/internal/repository"
)

type CheckupService interface {
	ListCheckups(ctx context.Context) ([]model.CheckupWithPatient, error)
	GetCheckup(ctx context.Context, id int) (*model.CheckupWithPatient, error)
	ListCheckupsByPatient(ctx context.Context, patientID int) ([]model.CheckupWithPatient, error)
	CreateCheckup(ctx context.Context, req *model.CreateCheckupRequest) (*model.Checkup, error)
	UpdateCheckup(ctx context.Context, id int, req *model.UpdateCheckupRequest) (*model.Checkup, error)
	DeleteCheckup(ctx context.Context, id int) error
}

type Service struct {
	repo repository.CheckupRepository
}

func NewService(repo repository.CheckupRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListCheckups(ctx context.Context) ([]model.CheckupWithPatient, error) {
	checkups, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkups: %w", err)
	}
	return checkups, nil
}

func (s *Service) GetCheckup(ctx context.Context, id int) (*model.CheckupWithPatient, error) {
	checkup, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkup: %w", err)
	}
	return checkup, nil
}

func (s *Service) ListCheckupsByPatient(ctx context.Context, patientID int) ([]model.CheckupWithPatient, error) {
	checkups, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkups for patient: %w", err)
	}
	return checkups, nil
}

func (s *Service) CreateCheckup(ctx context.Context, req *model.CreateCheckupRequest) (*model.Checkup, error) {
	checkup, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkup: %w", err)
	}

	log.Info().Int("checkup_id", checkup.ID).Int("patient_id", checkup.PatientID).Msg("checkup recorded")
	return checkup, nil
}

func (s *Service) UpdateCheckup(ctx context.Context, id int, req *model.UpdateCheckupRequest) (*model.Checkup, error) {
	checkup, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update checkup: %w", err)
	}

	log.Info().Int("checkup_id", id).Msg("checkup updated")
	return checkup, nil
}

func (s *Service) DeleteCheckup(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete checkup: %w", err)
	}

	log.Info().Int("checkup_id", id).Msg("checkup deleted")
	return nil
}
