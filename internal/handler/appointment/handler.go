package appointment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clinic-api/internal/handler"
	"clinic-api/internal/model"
	"clinic-api/internal/service/appointment"
)

type Handler struct {
	service appointment.AppointmentService
}

func NewHandler(service appointment.AppointmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.POST("", h.CreateAppointment)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	a, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(a))
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("all fields are required"))
		return
	}

	a, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(a))
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	a, err := h.service.UpdateAppointment(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(a))
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "appointment deleted successfully"})
}
