package event

import (
	"internhub/core/database"
	"internhub/core/middleware"
	companyRepository "internhub/modules/company/repository"
	"internhub/modules/event/controller"
	"internhub/modules/event/repository"
	"internhub/modules/event/router"
	"internhub/modules/event/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) service.EventServiceInterface {
	repo := repository.NewEventRepository(db)
	timeRanges := repository.NewTimeRangeRepository(db)
	slots := repository.NewSlotRepository(db)
	registrations := companyRepository.NewRegistrationRepository(db)

	svc := service.NewEventService(repo, timeRanges, slots, registrations)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Setup(e, mw)
	return svc
}
