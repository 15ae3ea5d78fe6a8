package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListSpaces(c *ginext.Context)
	GetSpace(c *ginext.Context)
	StartCheckout(c *ginext.Context)
	GetCheckout(c *ginext.Context)
	UpdateDetails(c *ginext.Context)
	ContinueToPayment(c *ginext.Context)
	BackToDetails(c *ginext.Context)
	Pay(c *ginext.Context)
	FinishCheckout(c *ginext.Context)
	CancelCheckout(c *ginext.Context)
	GetMyBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/spaces", h.ListSpaces)
		api.GET("/spaces/:id", h.GetSpace)

		// Checkout
		api.POST("/checkout", h.StartCheckout)
		api.GET("/checkout/:id", h.GetCheckout)
		api.PUT("/checkout/:id/details", h.UpdateDetails)
		api.POST("/checkout/:id/continue", h.ContinueToPayment)
		api.POST("/checkout/:id/back", h.BackToDetails)
		api.POST("/checkout/:id/pay", h.Pay)
		api.POST("/checkout/:id/done", h.FinishCheckout)
		api.DELETE("/checkout/:id", h.CancelCheckout)

		// Bookings
		api.GET("/me/bookings", h.GetMyBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
