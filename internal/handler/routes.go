package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the ledger API on r.
func RegisterRoutes(r gin.IRouter, users *UserHandler, accounts *AccountHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1/users")
	{
		v1.POST("", users.CreateUser)
		v1.GET("", users.ListUsers)
		v1.GET("/:userId", users.GetUser)

		v1.POST("/:userId/accounts", accounts.CreateAccount)
		v1.DELETE("/:userId/accounts/:accountId", accounts.DeleteAccount)
		v1.POST("/:userId/accounts/:accountId/deposit", accounts.Deposit)
		v1.POST("/:userId/accounts/:accountId/withdraw", accounts.Withdraw)
	}
}
