package router

import (
	"time"

	"internhub/core/constants"
	"internhub/core/middleware"
	"internhub/modules/booking/controller"

	"github.com/labstack/echo/v4"
)

type BookingRouter struct {
	BookingController *controller.BookingController
}

func NewBookingRouter(bookingController *controller.BookingController) *BookingRouter {
	return &BookingRouter{BookingController: bookingController}
}

func (r *BookingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	private := v1.Group("/private", mw.AuthMiddleware())

	students := private.Group("", mw.RequireRole(constants.RoleStudent))
	students.GET("/offers/:id/slots", r.BookingController.ListOfferSlots)

	bookings := students.Group("/bookings", mw.RateLimit(30, time.Minute))
	bookings.GET("/limit", r.BookingController.CheckLimit)
	bookings.GET("/my", r.BookingController.MyBookings)
	bookings.POST("", r.BookingController.Book)
	bookings.POST("/:id/cancel", r.BookingController.Cancel)
}
