package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-api/internal/handler"
	"clinic-api/internal/service/dashboard"
)

type Handler struct {
	service dashboard.DashboardService
}

func NewHandler(service dashboard.DashboardService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	dash := r.Group("/dashboard")
	{
		dash.GET("/stats", h.Stats)
		dash.GET("/appointments-chart", h.AppointmentsChart)
	}
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}

func (h *Handler) AppointmentsChart(c *gin.Context) {
	counts, err := h.service.AppointmentsPerDay(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(counts))
}
