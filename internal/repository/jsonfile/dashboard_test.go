package jsonfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-api/internal/model"
)

func TestDashboardStats(t *testing.T) {
	store := newTestStore(t) // clock is fixed at 2024-01-02
	patients := NewPatientRepository(store).(*patientRepository)
	appointments := NewAppointmentRepository(store).(*appointmentRepository)
	checkups := NewCheckupRepository(store).(*checkupRepository)
	repo := NewDashboardRepository(store).(*dashboardRepository)
	ctx := context.Background()

	createPatient(t, patients, "A")
	createAppointment(t, appointments, 1, "2024-01-02")
	createAppointment(t, appointments, 1, "2024-01-02")
	createAppointment(t, appointments, 1, "2024-01-05")
	createCheckup(t, checkups, 1)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalPatients)
	assert.Equal(t, 3, stats.TotalAppointments)
	assert.Equal(t, 2, stats.TodayAppointments)
	assert.Equal(t, 1, stats.TotalCheckups)
}

func TestDashboardStatsEmpty(t *testing.T) {
	store := newTestStore(t)
	repo := NewDashboardRepository(store).(*dashboardRepository)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.DashboardStats{}, stats)
}

func TestAppointmentsPerDay(t *testing.T) {
	store := newTestStore(t)
	appointments := NewAppointmentRepository(store).(*appointmentRepository)
	repo := NewDashboardRepository(store).(*dashboardRepository)
	ctx := context.Background()

	for _, date := range []string{"2024-01-03", "2024-01-01", "2024-01-01", "2024-01-02"} {
		createAppointment(t, appointments, 1, date)
	}

	counts, err := repo.AppointmentsPerDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.DayCount{
		{Date: "2024-01-01", Count: 2},
		{Date: "2024-01-02", Count: 1},
		{Date: "2024-01-03", Count: 1},
	}, counts)
}

func TestAppointmentsPerDayEmpty(t *testing.T) {
	store := newTestStore(t)
	repo := NewDashboardRepository(store).(*dashboardRepository)

	counts, err := repo.AppointmentsPerDay(context.Background())
	require.NoError(t, err)
	assert.Empty(t, counts)
}
