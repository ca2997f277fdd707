package jsonfile

import (
	"context"

	"clinic-api/internal/model"
	"clinic-api/internal/repository"
	apperrors "clinic-api/pkg/errors"
)

type patientRepository struct {
	store *Store
}

func NewPatientRepository(store *Store) repository.PatientRepository {
	return &patientRepository{store: store}
}

func (r *patientRepository) List(ctx context.Context) ([]model.Patient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}
	return snap.Patients, nil
}

func (r *patientRepository) Get(ctx context.Context, id int) (*model.Patient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}
	for i := range snap.Patients {
		if snap.Patients[i].ID == id {
			p := snap.Patients[i]
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("patient")
}

func (r *patientRepository) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if req.Name == "" || req.Age == 0 || req.Gender == "" || req.Phone == "" || req.Address == "" {
		return nil, apperrors.Validation("all fields are required")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}

	patient := model.Patient{
		ID:        nextID(patientIDs(snap.Patients)),
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedAt: r.store.now().UTC(),
	}

	snap.Patients = append(snap.Patients, patient)
	if err := r.store.save(snap); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, id int, req *model.UpdatePatientRequest) (*model.Patient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range snap.Patients {
		if snap.Patients[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperrors.NotFound("patient")
	}

	// Full overwrite of the mutable fields; id and createdAt are untouched.
	p := &snap.Patients[idx]
	p.Name = req.Name
	p.Age = req.Age
	p.Gender = req.Gender
	p.Phone = req.Phone
	p.Address = req.Address

	if err := r.store.save(snap); err != nil {
		return nil, err
	}
	updated := *p
	return &updated, nil
}

func (r *patientRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return err
	}

	idx := -1
	for i := range snap.Patients {
		if snap.Patients[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperrors.NotFound("patient")
	}

	snap.Patients = append(snap.Patients[:idx], snap.Patients[idx+1:]...)

	// Cascade: every appointment and checkup referencing the patient goes
	// with it, in the same save.
	appointments := snap.Appointments[:0]
	for _, a := range snap.Appointments {
		if a.PatientID != id {
			appointments = append(appointments, a)
		}
	}
	snap.Appointments = appointments

	checkups := snap.Checkups[:0]
	for _, c := range snap.Checkups {
		if c.PatientID != id {
			checkups = append(checkups, c)
		}
	}
	snap.Checkups = checkups

	return r.store.save(snap)
}

func patientIDs(patients []model.Patient) []int {
	ids := make([]int, len(patients))
	for i, p := range patients {
		ids[i] = p.ID
	}
	return ids
}
