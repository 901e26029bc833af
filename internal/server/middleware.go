package server

import (
	"net/http"
	"time"

	"agri-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs every request with timing. Server faults are
// logged at error level so they stand out from bid rejections, which are
// ordinary 4xx traffic here.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	fields := map[string]any{
		"method":    c.Request.Method,
		"path":      c.Request.URL.Path,
		"status":    c.Writer.Status(),
		"client_ip": c.ClientIP(),
		"latency":   time.Since(start).String(),
	}

	if c.Writer.Status() >= http.StatusInternalServerError {
		utils.Error("HTTP Request", fields)
		return
	}
	utils.Info("HTTP Request", fields)
}
