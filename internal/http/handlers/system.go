package handlers

import (
	"net/http"
	"time"

	"eventhub/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	OK(c, "service is healthy", gin.H{
		"status": "up",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func DBCheck(c *gin.Context) {
	if err := config.EnsureDB(); err != nil {
		Fail(c, http.StatusServiceUnavailable, "database is unreachable")
		return
	}
	OK(c, "database connection is healthy", gin.H{"database": "up"})
}
