package jsonfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-api/internal/model"
)

var testClock = func() time.Time {
	return time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)
}

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	opts = append([]Option{WithClock(testClock)}, opts...)
	store, err := NewStore(path, opts...)
	require.NoError(t, err)
	return store
}

func TestNewStoreBootstrapsEmptySnapshot(t *testing.T) {
	store := newTestStore(t)

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"patients": [], "appointments": [], "checkups": []}`, string(raw))

	snap, err := store.load()
	require.NoError(t, err)
	assert.Empty(t, snap.Patients)
	assert.Empty(t, snap.Appointments)
	assert.Empty(t, snap.Checkups)
}

func TestLoadCorruptSnapshot(t *testing.T) {
	t.Run("reset policy substitutes empty snapshot", func(t *testing.T) {
		store := newTestStore(t, WithResetOnCorrupt(true))
		require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

		snap, err := store.load()
		require.NoError(t, err)
		assert.Empty(t, snap.Patients)
	})

	t.Run("strict policy fails the operation", func(t *testing.T) {
		store := newTestStore(t, WithResetOnCorrupt(false))
		require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

		_, err := store.load()
		assert.Error(t, err)
	})
}

func TestLoadNormalizesMissingCollections(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"patients": []}`), 0o644))

	snap, err := store.load()
	require.NoError(t, err)
	assert.NotNil(t, snap.Appointments)
	assert.NotNil(t, snap.Checkups)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	snap := &model.Snapshot{
		Patients: []model.Patient{
			{ID: 1, Name: "A", Age: 30, Gender: "F", Phone: "555", Address: "X", CreatedAt: testClock()},
		},
		Appointments: []model.Appointment{
			{ID: 1, PatientID: 1, Date: "2024-01-02", Time: "10:00", Reason: "visit", Status: model.AppointmentStatusPending, CreatedAt: testClock()},
		},
		Checkups: []model.Checkup{},
	}
	require.NoError(t, store.save(snap))

	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	loaded, err := store.load()
	require.NoError(t, err)
	require.NoError(t, store.save(loaded))

	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, nextID(nil))
	assert.Equal(t, 1, nextID([]int{}))
	assert.Equal(t, 4, nextID([]int{1, 2, 3}))
	// A deleted non-maximal id is never handed out again.
	assert.Equal(t, 4, nextID([]int{1, 3}))
	assert.Equal(t, 8, nextID([]int{7, 2}))
}

func TestPatientName(t *testing.T) {
	patients := []model.Patient{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	assert.Equal(t, "B", patientName(patients, 2))
	assert.Equal(t, "Unknown", patientName(patients, 99))
	assert.Equal(t, "Unknown", patientName(nil, 1))
}
