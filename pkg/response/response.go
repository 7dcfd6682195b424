package response

import (
	"net/http"

	"github.com/abhishek622/entrystore/pkg/model"
	"github.com/gin-gonic/gin"
)

// ErrorBody is the body of every failed response.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK sends a 200 response with data as the whole body
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Deleted sends the delete acknowledgement with the number of removed rows
func Deleted(c *gin.Context, changes int64) {
	c.JSON(http.StatusOK, model.DeleteEntryRes{Message: "Deleted", Changes: changes})
}

// --- Error Responses ---

func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	errorResponse(c, http.StatusNotFound, message)
}

// InternalError sends a 500 response. The store error message is passed
// through as is.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	errorResponse(c, http.StatusInternalServerError, message)
}

// Unavailable sends a 503 response
func Unavailable(c *gin.Context, message string) {
	if message == "" {
		message = "service unavailable"
	}
	errorResponse(c, http.StatusServiceUnavailable, message)
}
