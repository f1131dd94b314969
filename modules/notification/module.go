package notification

import (
	"internhub/core/database"
	"internhub/core/middleware"
	"internhub/modules/notification/controller"
	"internhub/modules/notification/repository"
	"internhub/modules/notification/router"
	"internhub/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.IDatabase, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(e, mw)

	return svc
}
