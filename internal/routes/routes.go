package routes

import (
	"net/http"
	"os"

	"github.com/4phone-ma/4phone-golang/internal/handlers"
	"github.com/4phone-ma/4phone-golang/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the storefront SPA to call the API. The allowed
// origin is configurable so staging and production fronts both work.
func CORSMiddleware() gin.HandlerFunc {
	allowedOrigin := os.Getenv("CORS_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:5173"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Storefront Routes (Public) ---
		v1.POST("/login", h.Login)
		v1.GET("/parts", h.GetAllParts)
		v1.POST("/repairs", h.CreateRepairRequest)
		v1.POST("/orders", h.CreateOrder)
		v1.POST("/trade-ins", h.CreateUsedPhone)
		v1.POST("/chat", h.Chat)

		// --- Dashboard Routes (Login Required) ---
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(h.DB))
		{
			admin.GET("/dashboard-stats", h.GetDashboardStats)

			// Parts inventory
			admin.POST("/parts", h.CreatePart)
			admin.PATCH("/parts/:id/stock", h.UpdatePartStock)
			admin.DELETE("/parts/:id", h.DeletePart)

			// Purchase orders
			admin.GET("/orders", h.GetAllOrders)
			admin.PATCH("/orders/:id/status", h.UpdateOrderStatus)

			// Repair requests
			admin.GET("/repairs", h.GetAllRepairRequests)
			admin.PATCH("/repairs/:id/status", h.UpdateRepairStatus)

			// Used phones / trade-ins
			admin.GET("/trade-ins", h.GetAllUsedPhones)
			admin.PATCH("/trade-ins/:id/status", h.UpdatePhoneStatus)
			admin.DELETE("/trade-ins/:id", h.DeleteUsedPhone)
		}
	}

	return router
}
