package router

import (
	"net/http"

	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/unnita1235/PropertyRentalApplication/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Me(c *ginext.Context)
	CreateProperty(c *ginext.Context)
	GetProperty(c *ginext.Context)
	ListProperties(c *ginext.Context)
	ListMyProperties(c *ginext.Context)
	UpdateProperty(c *ginext.Context)
	DeleteProperty(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	RecordPayment(c *ginext.Context)
	GetPayment(c *ginext.Context)
	ListMyPayments(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.GET("/me", authMW, h.Me)
		}

		properties := api.Group("/properties", authMW)
		{
			properties.GET("", h.ListProperties)
			properties.GET("/:id", h.GetProperty)
			properties.GET("/owner/my-properties", middleware.RequireRole(domain.RoleOwner), h.ListMyProperties)
			properties.POST("", middleware.RequireRole(domain.RoleOwner), h.CreateProperty)
			properties.PUT("/:id", middleware.RequireRole(domain.RoleOwner), h.UpdateProperty)
			properties.DELETE("/:id", middleware.RequireRole(domain.RoleOwner), h.DeleteProperty)
		}

		bookings := api.Group("/bookings", authMW)
		{
			bookings.POST("", middleware.RequireRole(domain.RoleCustomer), h.CreateBooking)
			bookings.GET("/my-bookings", h.ListMyBookings)
			bookings.GET("/:id", h.GetBooking)
			bookings.PATCH("/:id/approve", h.ApproveBooking)
			bookings.PATCH("/:id/reject", h.RejectBooking)
		}

		payments := api.Group("/payments", authMW)
		{
			payments.POST("", middleware.RequireRole(domain.RoleCustomer), h.RecordPayment)
			payments.GET("/my-payments", h.ListMyPayments)
			payments.GET("/:id", h.GetPayment)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
