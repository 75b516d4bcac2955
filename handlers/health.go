package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ricardopjr1/petshop-backend/utils"
)

// HealthHandler reports liveness plus the latest dependency check.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"dependencies": utils.GetHealthStatus(),
	})
}
