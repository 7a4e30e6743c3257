package routes

import (
	"net/http"

	"course-payment-service/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPaymentRoutes(r *gin.Engine, pc *controllers.PaymentController) {
	api := r.Group("/api/payments")
	api.POST("/purchase", pc.CreatePurchase)
	// Gateway callback (authenticated by signature, not by session)
	api.POST("/callback", pc.Callback)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
