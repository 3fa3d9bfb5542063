package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all REST API routes on the router
func SetupRoutes(router *gin.Engine, handler Handler) {
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		revenue := v1.Group("/revenue")
		{
			revenue.GET("/combined", handler.GetCombinedRevenue)
			revenue.GET("/summary", handler.GetRevenueSummary)
			revenue.GET("/profitwell", handler.GetProfitwellRevenue)
			revenue.GET("/atlassian", handler.GetAtlassianRevenue)
		}

		banking := v1.Group("/banking")
		{
			banking.GET("/balances", handler.GetBankBalances)
			banking.GET("/burn-rate", handler.GetBurnRate)
		}

		v1.GET("/proxy/:vendor", handler.ProxyVendor)
	}
}
