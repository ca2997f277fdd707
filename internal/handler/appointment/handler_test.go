package appointment_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appointmentHandler "clinic-api/internal/handler/appointment"
	"clinic-api/internal/repository/jsonfile"
	appointmentService "clinic-api/internal/service/appointment"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := jsonfile.NewStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	svc := appointmentService.NewService(jsonfile.NewAppointmentRepository(store))
	engine := gin.New()
	appointmentHandler.NewHandler(svc).RegisterRoutes(engine.Group("/api"))
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestCreateAppointmentDefaultsStatus(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/appointments", map[string]interface{}{
		"patientId": 1, "date": "2024-01-02", "time": "10:00", "reason": "visit",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeData(t, w)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "pending", created["status"])
}

func TestCreateAppointmentMissingField(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/appointments", map[string]interface{}{
		"patientId": 1, "date": "2024-01-02", "time": "10:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAppointmentKeepsOmittedFields(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/appointments", map[string]interface{}{
		"patientId": 1, "date": "2024-01-02", "time": "10:00", "reason": "visit",
		"status": "completed",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Status absent from the payload stays completed.
	w = doRequest(t, engine, http.MethodPut, "/api/appointments/1", map[string]interface{}{
		"date": "2024-02-01",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeData(t, w)
	assert.Equal(t, "2024-02-01", updated["date"])
	assert.Equal(t, "completed", updated["status"])
}

func TestListAppointmentsResolvesUnknownPatient(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/appointments", map[string]interface{}{
		"patientId": 99, "date": "2024-01-02", "time": "10:00", "reason": "visit",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Unknown", resp.Data[0]["patientName"])
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodDelete, "/api/appointments/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
