package utils

import (
	"github.com/gin-gonic/gin"
)

// envelope is the response shape every endpoint returns, success or failure.
type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSONResponse sends a structured success response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, envelope{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, envelope{
		Status:  status,
		Message: message,
		Error:   err.Error(),
	})
}
