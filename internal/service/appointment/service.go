package appointment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"clinic-api/internal/model"
	"clinic-api/internal/repository"
)

type AppointmentService interface {
	ListAppointments(ctx context.Context) ([]model.AppointmentWithPatient, error)
	GetAppointment(ctx context.Context, id int) (*model.AppointmentWithPatient, error)
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id int, req *model.UpdateAppointmentRequest) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id int) error
}

type Service struct {
	repo repository.AppointmentRepository
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAppointments(ctx context.Context) ([]model.AppointmentWithPatient, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (s *Service) GetAppointment(ctx context.Context, id int) (*model.AppointmentWithPatient, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return appointment, nil
}

func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	log.Info().Int("appointment_id", appointment.ID).Int("patient_id", appointment.PatientID).Msg("appointment created")
	return appointment, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id int, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	log.Info().Int("appointment_id", id).Msg("appointment updated")
	return appointment, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	log.Info().Int("appointment_id", id).Msg("appointment deleted")
	return nil
}
