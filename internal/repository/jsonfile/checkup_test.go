package jsonfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-api/internal/model"
	apperrors "clinic-api/pkg/errors"
)

func createCheckup(t *testing.T, repo *checkupRepository, patientID int) *model.Checkup {
	t.Helper()
	c, err := repo.Create(context.Background(), &model.CreateCheckupRequest{
		PatientID: patientID, Date: "2024-01-02", Symptoms: "cough", Diagnosis: "cold",
		Prescription: "rest", FollowUpDate: "2024-01-09",
	})
	require.NoError(t, err)
	return c
}

func TestCreateCheckup(t *testing.T) {
	store := newTestStore(t)
	repo := NewCheckupRepository(store).(*checkupRepository)
	ctx := context.Background()

	c := createCheckup(t, repo, 1)
	assert.Equal(t, 1, c.ID)
	assert.Equal(t, "rest", c.Prescription)

	// Optional fields default to empty strings.
	minimal, err := repo.Create(ctx, &model.CreateCheckupRequest{
		PatientID: 1, Date: "2024-01-03", Symptoms: "fever", Diagnosis: "flu",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, minimal.ID)
	assert.Equal(t, "", minimal.Prescription)
	assert.Equal(t, "", minimal.FollowUpDate)

	_, err = repo.Create(ctx, &model.CreateCheckupRequest{
		PatientID: 1, Date: "2024-01-03", Symptoms: "fever",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateCheckupMergePolicies(t *testing.T) {
	store := newTestStore(t)
	repo := NewCheckupRepository(store).(*checkupRepository)
	ctx := context.Background()

	c := createCheckup(t, repo, 1)

	// Omitting prescription keeps the stored value.
	newDiagnosis := "bronchitis"
	updated, err := repo.Update(ctx, c.ID, &model.UpdateCheckupRequest{Diagnosis: &newDiagnosis})
	require.NoError(t, err)
	assert.Equal(t, "bronchitis", updated.Diagnosis)
	assert.Equal(t, "rest", updated.Prescription)
	assert.Equal(t, "2024-01-09", updated.FollowUpDate)

	// An explicit empty prescription clears it.
	empty := ""
	updated, err = repo.Update(ctx, c.ID, &model.UpdateCheckupRequest{Prescription: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Prescription)

	// An explicit empty symptoms string is ignored: required fields merge
	// only when non-empty.
	updated, err = repo.Update(ctx, c.ID, &model.UpdateCheckupRequest{Symptoms: &empty})
	require.NoError(t, err)
	assert.Equal(t, "cough", updated.Symptoms)

	// followUpDate follows the same presence rule as prescription.
	updated, err = repo.Update(ctx, c.ID, &model.UpdateCheckupRequest{FollowUpDate: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", updated.FollowUpDate)

	_, err = repo.Update(ctx, 42, &model.UpdateCheckupRequest{})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListCheckupsByPatient(t *testing.T) {
	store := newTestStore(t)
	patients := NewPatientRepository(store).(*patientRepository)
	repo := NewCheckupRepository(store).(*checkupRepository)
	ctx := context.Background()

	p := createPatient(t, patients, "A")
	createCheckup(t, repo, p.ID)
	createCheckup(t, repo, p.ID)
	createCheckup(t, repo, 99)

	mine, err := repo.ListByPatient(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "A", mine[0].PatientName)

	// No existence check: an unknown patient id is an empty result, not an
	// error.
	none, err := repo.ListByPatient(ctx, 1234)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCheckupPatientNameResolution(t *testing.T) {
	store := newTestStore(t)
	repo := NewCheckupRepository(store).(*checkupRepository)
	ctx := context.Background()

	c := createCheckup(t, repo, 99)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Unknown", list[0].PatientName)

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", got.PatientName)

	_, err = repo.Get(ctx, 42)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteCheckup(t *testing.T) {
	store := newTestStore(t)
	repo := NewCheckupRepository(store).(*checkupRepository)
	ctx := context.Background()

	c := createCheckup(t, repo, 1)
	require.NoError(t, repo.Delete(ctx, c.ID))
	assert.True(t, apperrors.IsNotFound(repo.Delete(ctx, c.ID)))
}
