package routes

import (
	"car_maintenance/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMechanics = "/mechanics"
	PathBookings  = "/bookings"
)

func addMechanicRoutes(private *gin.RouterGroup, h *handlers.MechanicHandler) {
	mechanics := private.Group(PathMechanics)
	{
		mechanics.GET("", h.ListMechanics)
		mechanics.GET("/:email/availability", h.Availability)
		mechanics.GET("/me", h.GetMyProfile)
		mechanics.PUT("/me", h.UpsertMyProfile)
		mechanics.POST("/me/logo", h.UploadLogo)
	}
}

func addBookingRoutes(private *gin.RouterGroup, h *handlers.BookingHandler) {
	bookings := private.Group(PathBookings)
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.PATCH("/:key/status", h.UpdateStatus)
		bookings.PATCH("/:key/rating", h.RateBooking)
	}
}
