package repository

import (
	"context"

	"clinic-api/internal/model"
)

// All repository interfaces in one file
type (
	// PatientRepository handles patient records and the cascade that keeps
	// dependent appointments and checkups consistent.
	PatientRepository interface {
		List(ctx context.Context) ([]model.Patient, error)
		Get(ctx context.Context, id int) (*model.Patient, error)
		Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
		Update(ctx context.Context, id int, req *model.UpdatePatientRequest) (*model.Patient, error)
		Delete(ctx context.Context, id int) error
	}

	AppointmentRepository interface {
		List(ctx context.Context) ([]model.AppointmentWithPatient, error)
		Get(ctx context.Context, id int) (*model.AppointmentWithPatient, error)
		Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
		Update(ctx context.Context, id int, req *model.UpdateAppointmentRequest) (*model.Appointment, error)
		Delete(ctx context.Context, id int) error
	}

	CheckupRepository interface {
		List(ctx context.Context) ([]model.CheckupWithPatient, error)
		Get(ctx context.Context, id int) (*model.CheckupWithPatient, error)
		ListByPatient(ctx context.Context, patientID int) ([]model.CheckupWithPatient, error)
		Create(ctx context.Context, req *model.CreateCheckupRequest) (*model.Checkup, error)
		Update(ctx context.Context, id int, req *model.UpdateCheckupRequest) (*model.Checkup, error)
		Delete(ctx context.Context, id int) error
	}

	DashboardRepository interface {
		Stats(ctx context.Context) (*model.DashboardStats, error)
		AppointmentsPerDay(ctx context.Context) ([]model.DayCount, error)
	}
)
