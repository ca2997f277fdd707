package jsonfile

import (
	"context"

	"clinic-api/internal/model"
	"clinic-api/internal/repository"
	apperrors "clinic-api/pkg/errors"
)

type checkupRepository struct {
	store *Store
}

func NewCheckupRepository(store *Store) repository.CheckupRepository {
	return &checkupRepository{store: store}
}

func (r *checkupRepository) List(ctx context.Context) ([]model.CheckupWithPatient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}
	return withPatientNames(snap, snap.Checkups), nil
}

func (r *checkupRepository) Get(ctx context.Context, id int) (*model.CheckupWithPatient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}
	for _, c := range snap.Checkups {
		if c.ID == id {
			return &model.CheckupWithPatient{
				Checkup:     c,
				PatientName: patientName(snap.Patients, c.PatientID),
			}, nil
		}
	}
	return nil, apperrors.NotFound("checkup")
}

// ListByPatient returns the checkups referencing patientID. The patient's
// existence is not checked; an unknown id yields an empty result.
func (r *checkupRepository) ListByPatient(ctx context.Context, patientID int) ([]model.CheckupWithPatient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}

	matched := make([]model.Checkup, 0)
	for _, c := range snap.Checkups {
		if c.PatientID == patientID {
			matched = append(matched, c)
		}
	}
	return withPatientNames(snap, matched), nil
}

func (r *checkupRepository) Create(ctx context.Context, req *model.CreateCheckupRequest) (*model.Checkup, error) {
	if req.PatientID == 0 || req.Date == "" || req.Symptoms == "" || req.Diagnosis == "" {
		return nil, apperrors.Validation("patient ID, date, symptoms, and diagnosis are required")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}

	checkup := model.Checkup{
		ID:           nextID(checkupIDs(snap.Checkups)),
		PatientID:    req.PatientID,
		Date:         req.Date,
		Symptoms:     req.Symptoms,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
		FollowUpDate: req.FollowUpDate,
		CreatedAt:    r.store.now().UTC(),
	}

	snap.Checkups = append(snap.Checkups, checkup)
	if err := r.store.save(snap); err != nil {
		return nil, err
	}
	return &checkup, nil
}

func (r *checkupRepository) Update(ctx context.Context, id int, req *model.UpdateCheckupRequest) (*model.Checkup, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range snap.Checkups {
		if snap.Checkups[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperrors.NotFound("checkup")
	}

	c := &snap.Checkups[idx]
	if req.Date != nil && *req.Date != "" {
		c.Date = *req.Date
	}
	if req.Symptoms != nil && *req.Symptoms != "" {
		c.Symptoms = *req.Symptoms
	}
	if req.Diagnosis != nil && *req.Diagnosis != "" {
		c.Diagnosis = *req.Diagnosis
	}
	// Prescription and followUpDate are optional fields: a present key
	// replaces the stored value even when it is an empty string, an absent
	// key keeps it.
	if req.Prescription != nil {
		c.Prescription = *req.Prescription
	}
	if req.FollowUpDate != nil {
		c.FollowUpDate = *req.FollowUpDate
	}

	if err := r.store.save(snap); err != nil {
		return nil, err
	}
	updated := *c
	return &updated, nil
}

func (r *checkupRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return err
	}

	idx := -1
	for i := range snap.Checkups {
		if snap.Checkups[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperrors.NotFound("checkup")
	}

	snap.Checkups = append(snap.Checkups[:idx], snap.Checkups[idx+1:]...)
	return r.store.save(snap)
}

func withPatientNames(snap *model.Snapshot, checkups []model.Checkup) []model.CheckupWithPatient {
	out := make([]model.CheckupWithPatient, len(checkups))
	for i, c := range checkups {
		out[i] = model.CheckupWithPatient{
			Checkup:     c,
			PatientName: patientName(snap.Patients, c.PatientID),
		}
	}
	return out
}

func checkupIDs(checkups []model.Checkup) []int {
	ids := make([]int, len(checkups))
	for i, c := range checkups {
		ids[i] = c.ID
	}
	return ids
}
