package checkup

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clinic-api/internal/handler"
	"clinic-api/internal/model"
	"clinic-api/internal/service/checkup"
)

type Handler struct {
	service checkup.CheckupService
}

func NewHandler(service checkup.CheckupService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	checkups := r.Group("/checkups")
	{
		checkups.GET("", h.ListCheckups)
		checkups.POST("", h.CreateCheckup)
		// The patient route is registered before /:id so "patient" is not
		// swallowed as a checkup id.
		checkups.GET("/patient/:patientId", h.ListCheckupsByPatient)
		checkups.GET("/:id", h.GetCheckup)
		checkups.PUT("/:id", h.UpdateCheckup)
		checkups.DELETE("/:id", h.DeleteCheckup)
	}
}

func (h *Handler) ListCheckups(c *gin.Context) {
	checkups, err := h.service.ListCheckups(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(checkups))
}

func (h *Handler) GetCheckup(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid checkup ID"))
		return
	}

	ck, err := h.service.GetCheckup(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(ck))
}

func (h *Handler) ListCheckupsByPatient(c *gin.Context) {
	patientID, err := strconv.Atoi(c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	checkups, err := h.service.ListCheckupsByPatient(c.Request.Context(), patientID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(checkups))
}

func (h *Handler) CreateCheckup(c *gin.Context) {
	var req model.CreateCheckupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("patient ID, date, symptoms, and diagnosis are required"))
		return
	}

	ck, err := h.service.CreateCheckup(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(ck))
}

func (h *Handler) UpdateCheckup(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid checkup ID"))
		return
	}

	var req model.UpdateCheckupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	ck, err := h.service.UpdateCheckup(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(ck))
}

func (h *Handler) DeleteCheckup(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid checkup ID"))
		return
	}

	if err := h.service.DeleteCheckup(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "checkup deleted successfully"})
}
