package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dashboardHandler "clinic-api/internal/handler/dashboard"
	"clinic-api/internal/model"
	"clinic-api/internal/repository/jsonfile"
	dashboardService "clinic-api/internal/service/dashboard"
)

func newTestRouter(t *testing.T) (*gin.Engine, *jsonfile.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := jsonfile.NewStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	svc := dashboardService.NewService(jsonfile.NewDashboardRepository(store))
	engine := gin.New()
	dashboardHandler.NewHandler(svc).RegisterRoutes(engine.Group("/api"))
	return engine, store
}

func get(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestStatsEndpoint(t *testing.T) {
	engine, _ := newTestRouter(t)

	w := get(t, engine, "/api/dashboard/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.DashboardStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.DashboardStats{}, resp.Data)
}

func TestAppointmentsChartEndpoint(t *testing.T) {
	engine, store := newTestRouter(t)

	appointments := jsonfile.NewAppointmentRepository(store)
	for _, date := range []string{"2024-01-03", "2024-01-01", "2024-01-01"} {
		_, err := appointments.Create(context.Background(), &model.CreateAppointmentRequest{
			PatientID: 1, Date: date, Time: "10:00", Reason: "visit",
		})
		require.NoError(t, err)
	}

	w := get(t, engine, "/api/dashboard/appointments-chart")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.DayCount `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []model.DayCount{
		{Date: "2024-01-01", Count: 2},
		{Date: "2024-01-03", Count: 1},
	}, resp.Data)
}
