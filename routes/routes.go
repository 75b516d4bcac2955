package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ricardopjr1/petshop-backend/config"
	"github.com/ricardopjr1/petshop-backend/handlers"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, availabilityHandler *handlers.AvailabilityHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOriginsList(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/horarios-disponiveis", availabilityHandler.GetAvailableSlots)
	}

	r.GET("/health", handlers.HealthHandler)
}
