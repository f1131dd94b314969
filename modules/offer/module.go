package offer

import (
	"internhub/core/database"
	"internhub/core/middleware"
	companyRepository "internhub/modules/company/repository"
	"internhub/modules/offer/controller"
	"internhub/modules/offer/repository"
	"internhub/modules/offer/router"
	"internhub/modules/offer/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) service.OfferServiceInterface {
	repo := repository.NewOfferRepository(db)
	companies := companyRepository.NewCompanyRepository(db)
	registrations := companyRepository.NewRegistrationRepository(db)

	svc := service.NewOfferService(repo, companies, registrations)
	ctrl := controller.NewOfferController(svc)

	router.NewOfferRouter(ctrl).Setup(e, mw)
	return svc
}
