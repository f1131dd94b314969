package booking

import (
	"internhub/core/database"
	"internhub/core/middleware"
	"internhub/core/tasks"
	authRepository "internhub/modules/auth/repository"
	"internhub/modules/booking/controller"
	"internhub/modules/booking/repository"
	"internhub/modules/booking/router"
	"internhub/modules/booking/service"
	companyRepository "internhub/modules/company/repository"
	eventRepository "internhub/modules/event/repository"
	notificationService "internhub/modules/notification/service"
	offerRepository "internhub/modules/offer/repository"
	studentRepository "internhub/modules/student/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, notifications *notificationService.NotificationService, tasksClient *tasks.Client, mw *middleware.Middleware) service.BookingServiceInterface {
	repo := repository.NewBookingRepository(db)
	events := eventRepository.NewEventRepository(db)
	offers := offerRepository.NewOfferRepository(db)
	students := studentRepository.NewStudentRepository(db)
	companies := companyRepository.NewCompanyRepository(db)
	users := authRepository.NewAuthRepository(db)

	svc := service.NewBookingService(repo, events, offers, students, companies, users, notifications, tasksClient)
	ctrl := controller.NewBookingController(svc)

	router.NewBookingRouter(ctrl).Setup(e, mw)
	return svc
}
