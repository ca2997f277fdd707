package patient

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"clinic-api/internal/model"
	"clinic-api/internal/repository"
)

type PatientService interface {
	ListPatients(ctx context.Context) ([]model.Patient, error)
	GetPatient(ctx context.Context, id int) (*model.Patient, error)
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id int, req *model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id int) error
}

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListPatients(ctx context.Context) ([]model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (s *Service) GetPatient(ctx context.Context, id int) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	log.Info().Int("patient_id", patient.ID).Msg("patient created")
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id int, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	log.Info().Int("patient_id", id).Msg("patient updated")
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	log.Info().Int("patient_id", id).Msg("patient deleted with dependent records")
	return nil
}
