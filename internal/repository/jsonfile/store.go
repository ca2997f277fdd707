package jsonfile

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"clinic-api/internal/model"
	apperrors "clinic-api/pkg/errors"
)

// Store owns the on-disk JSON snapshot holding all three collections. Every
// operation re-reads the file, applies its change, and writes the file back in
// full; no state is cached between calls. A single mutex serializes all
// operations so concurrent read-modify-write cycles cannot lose updates.
type Store struct {
	path           string
	resetOnCorrupt bool
	now            func() time.Time

	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithResetOnCorrupt controls what load does with an unreadable or malformed
// snapshot file: substitute an empty snapshot (true) or fail the operation
// (false). The substitute policy discards whatever is on disk at the next
// write, so it is opt-in behavior rather than a silent default.
func WithResetOnCorrupt(reset bool) Option {
	return func(s *Store) { s.resetOnCorrupt = reset }
}

// WithClock overrides the clock used for createdAt stamps and the
// today-appointments statistic.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore opens the snapshot file at path, creating an empty snapshot on
// first start.
func NewStore(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path: path,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.save(model.EmptySnapshot()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, apperrors.Storage("failed to stat snapshot file", err)
	}

	return s, nil
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() (*model.Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			snap := model.EmptySnapshot()
			if err := s.save(snap); err != nil {
				return nil, err
			}
			return snap, nil
		}
		if s.resetOnCorrupt {
			return model.EmptySnapshot(), nil
		}
		return nil, apperrors.Storage("failed to read snapshot file", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		if s.resetOnCorrupt {
			return model.EmptySnapshot(), nil
		}
		return nil, apperrors.Storage("snapshot file is not valid JSON", err)
	}

	// Collections absent from the file decode to nil; normalize so they
	// serialize back as arrays.
	if snap.Patients == nil {
		snap.Patients = []model.Patient{}
	}
	if snap.Appointments == nil {
		snap.Appointments = []model.Appointment{}
	}
	if snap.Checkups == nil {
		snap.Checkups = []model.Checkup{}
	}

	return &snap, nil
}

func (s *Store) save(snap *model.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return apperrors.Storage("failed to encode snapshot", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return apperrors.Storage("failed to write snapshot file", err)
	}
	return nil
}

// nextID returns 1 for an empty id set, otherwise one past the maximum. Ids
// are never reused: the maximum over remaining records never decreases when a
// non-maximal record is deleted.
func nextID(ids []int) int {
	next := 1
	for _, id := range ids {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// patientName resolves a patientId to the patient's display name. A dangling
// reference resolves to "Unknown" so reads never fail on it.
func patientName(patients []model.Patient, patientID int) string {
	for i := range patients {
		if patients[i].ID == patientID {
			return patients[i].Name
		}
	}
	return "Unknown"
}
