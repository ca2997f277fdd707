package jsonfile

import (
	"context"

	"clinic-api/internal/model"
	"clinic-api/internal/repository"
	apperrors "clinic-api/pkg/errors"
)

type appointmentRepository struct {
	store *Store
}

func NewAppointmentRepository(store *Store) repository.AppointmentRepository {
	return &appointmentRepository{store: store}
}

func (r *appointmentRepository) List(ctx context.Context) ([]model.AppointmentWithPatient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}

	out := make([]model.AppointmentWithPatient, len(snap.Appointments))
	for i, a := range snap.Appointments {
		out[i] = model.AppointmentWithPatient{
			Appointment: a,
			PatientName: patientName(snap.Patients, a.PatientID),
		}
	}
	return out, nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int) (*model.AppointmentWithPatient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}
	for _, a := range snap.Appointments {
		if a.ID == id {
			return &model.AppointmentWithPatient{
				Appointment: a,
				PatientName: patientName(snap.Patients, a.PatientID),
			}, nil
		}
	}
	return nil, apperrors.NotFound("appointment")
}

func (r *appointmentRepository) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if req.PatientID == 0 || req.Date == "" || req.Time == "" || req.Reason == "" {
		return nil, apperrors.Validation("all fields are required")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.AppointmentStatusPending
	}

	// patientId is a soft reference: existence is not checked at write time,
	// the read side resolves dangling ids to a sentinel name.
	appointment := model.Appointment{
		ID:        nextID(appointmentIDs(snap.Appointments)),
		PatientID: req.PatientID,
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
		Status:    status,
		CreatedAt: r.store.now().UTC(),
	}

	snap.Appointments = append(snap.Appointments, appointment)
	if err := r.store.save(snap); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id int, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range snap.Appointments {
		if snap.Appointments[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperrors.NotFound("appointment")
	}

	// Partial merge: each field is applied only when present with a non-zero
	// value, otherwise the stored value is kept.
	a := &snap.Appointments[idx]
	if req.PatientID != nil && *req.PatientID != 0 {
		a.PatientID = *req.PatientID
	}
	if req.Date != nil && *req.Date != "" {
		a.Date = *req.Date
	}
	if req.Time != nil && *req.Time != "" {
		a.Time = *req.Time
	}
	if req.Reason != nil && *req.Reason != "" {
		a.Reason = *req.Reason
	}
	if req.Status != nil && *req.Status != "" {
		a.Status = *req.Status
	}

	if err := r.store.save(snap); err != nil {
		return nil, err
	}
	updated := *a
	return &updated, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return err
	}

	idx := -1
	for i := range snap.Appointments {
		if snap.Appointments[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperrors.NotFound("appointment")
	}

	snap.Appointments = append(snap.Appointments[:idx], snap.Appointments[idx+1:]...)
	return r.store.save(snap)
}

func appointmentIDs(appointments []model.Appointment) []int {
	ids := make([]int, len(appointments))
	for i, a := range appointments {
		ids[i] = a.ID
	}
	return ids
}
