package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "clinic-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError writes err as a JSON error response, mapping the application
// error taxonomy to HTTP status codes (NotFound → 404, Validation → 400,
// anything else → 500).
func RespondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode(), NewErrorResponse(appErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, NewErrorResponse(err.Error()))
}
