package routes

import (
	"net/http"

	"claims_processor/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClaims    = "/claims"
	PathProviders = "/providers"
	PathPing      = "/ping"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addClaimRoutes(rg *gin.RouterGroup, claimHandler *handlers.ClaimHandler, paymentHandler *handlers.PaymentHandler) {
	claims := rg.Group(PathClaims)
	{
		claims.POST("", claimHandler.SubmitClaim)
		claims.GET("", claimHandler.ListClaims)
		claims.GET("/:id", claimHandler.GetClaim)
		claims.GET("/number/:claim_number", claimHandler.GetClaimByNumber)
		claims.PATCH("/:id/status", claimHandler.UpdateClaimStatus)
		claims.PATCH("/:id/line-items/:line_number/status", claimHandler.UpdateLineItemStatus)
		claims.POST("/:id/payment", paymentHandler.ProcessPayment)
	}

	providers := rg.Group(PathProviders)
	{
		providers.GET("/:provider_id/claims", claimHandler.GetClaimsByProvider)
	}
}
