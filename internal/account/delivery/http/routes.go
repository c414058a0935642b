package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the dashboard endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.ListAccounts)
		accounts.POST("", h.CreateAccount)
		accounts.GET("/:id/savings", h.Savings)
	}

	rg.GET("/transactions", h.ListTransactions)
}
