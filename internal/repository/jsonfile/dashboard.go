package jsonfile

import (
	"context"
	"sort"

	"clinic-api/internal/model"
	"clinic-api/internal/repository"
)

type dashboardRepository struct {
	store *Store
}

func NewDashboardRepository(store *Store) repository.DashboardRepository {
	return &dashboardRepository{store: store}
}

// Stats counts the three collections; todayAppointments matches on the host's
// local calendar date.
func (r *dashboardRepository) Stats(ctx context.Context) (*model.DashboardStats, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}

	today := r.store.now().Format("2006-01-02")
	todayCount := 0
	for _, a := range snap.Appointments {
		if a.Date == today {
			todayCount++
		}
	}

	return &model.DashboardStats{
		TotalPatients:     len(snap.Patients),
		TotalAppointments: len(snap.Appointments),
		TodayAppointments: todayCount,
		TotalCheckups:     len(snap.Checkups),
	}, nil
}

// AppointmentsPerDay groups appointments by calendar date and returns the
// per-date counts sorted by date ascending.
func (r *dashboardRepository) AppointmentsPerDay(ctx context.Context) ([]model.DayCount, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap, err := r.store.load()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, a := range snap.Appointments {
		counts[a.Date]++
	}

	out := make([]model.DayCount, 0, len(counts))
	for date, count := range counts {
		out = append(out, model.DayCount{Date: date, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	return out, nil
}
