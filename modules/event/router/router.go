package router

import (
	"internhub/core/constants"
	"internhub/core/middleware"
	"internhub/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{EventController: eventController}
}

func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	v1.GET("/events", r.EventController.ListEvents)
	v1.GET("/events/:id", r.EventController.GetEvent)
	v1.GET("/events/:id/time-ranges", r.EventController.ListTimeRanges)

	private := v1.Group("/private", mw.AuthMiddleware())
	admin := private.Group("/admin", mw.RequireRole(constants.RoleAdmin))
	admin.POST("/events", r.EventController.CreateEvent)
	admin.PUT("/events/:id", r.EventController.UpdateEvent)
	admin.PUT("/events/:id/phase", r.EventController.SetPhase)
	admin.POST("/events/:id/time-ranges", r.EventController.AddTimeRange)
	admin.DELETE("/time-ranges/:id", r.EventController.DeleteTimeRange)
	admin.POST("/events/:id/regenerate-slots", r.EventController.RegenerateSlots)
	admin.GET("/events/:id/report", r.EventController.Report)
}
