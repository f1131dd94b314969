package router

import (
	"internhub/core/constants"
	"internhub/core/middleware"
	"internhub/modules/company/controller"

	"github.com/labstack/echo/v4"
)

type CompanyRouter struct {
	CompanyController *controller.CompanyController
}

func NewCompanyRouter(companyController *controller.CompanyController) *CompanyRouter {
	return &CompanyRouter{CompanyController: companyController}
}

func (r *CompanyRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	v1.GET("/companies", r.CompanyController.ListCompanies)

	private := v1.Group("/private", mw.AuthMiddleware())

	companies := private.Group("/companies", mw.RequireRole(constants.RoleCompany))
	companies.GET("/me", r.CompanyController.GetProfile)
	companies.PUT("/me", r.CompanyController.UpdateProfile)
	companies.POST("/me/logo", r.CompanyController.UploadLogo)
	companies.POST("/registrations", r.CompanyController.RequestRegistration)
	companies.GET("/registrations", r.CompanyController.ListMyRegistrations)

	admin := private.Group("/admin", mw.RequireRole(constants.RoleAdmin))
	admin.PUT("/companies/:id/verified", r.CompanyController.SetVerified)
	admin.GET("/events/:id/registrations", r.CompanyController.ListRegistrationsByEvent)
	admin.POST("/registrations/:id/decide", r.CompanyController.DecideRegistration)
}
