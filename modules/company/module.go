package company

import (
	"internhub/core/database"
	"internhub/core/middleware"
	"internhub/core/storage"
	"internhub/modules/company/controller"
	"internhub/modules/company/repository"
	"internhub/modules/company/router"
	"internhub/modules/company/service"
	notificationService "internhub/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, store storage.Storage, notifications *notificationService.NotificationService, mw *middleware.Middleware) service.CompanyServiceInterface {
	repo := repository.NewCompanyRepository(db)
	registrations := repository.NewRegistrationRepository(db)
	svc := service.NewCompanyService(repo, registrations, store, notifications)
	ctrl := controller.NewCompanyController(svc)

	router.NewCompanyRouter(ctrl).Setup(e, mw)
	return svc
}
