package auth

import (
	"internhub/core/cache"
	"internhub/core/database"
	"internhub/core/middleware"
	"internhub/core/tasks"
	"internhub/modules/auth/controller"
	"internhub/modules/auth/repository"
	"internhub/modules/auth/router"
	"internhub/modules/auth/service"
	companyRepository "internhub/modules/company/repository"
	studentRepository "internhub/modules/student/repository"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, c cache.Cache, tasksClient *tasks.Client, mw *middleware.Middleware) service.AuthServiceInterface {
	repo := repository.NewAuthRepository(db)
	studentRepo := studentRepository.NewStudentRepository(db)
	companyRepo := companyRepository.NewCompanyRepository(db)

	svc := service.NewAuthService(repo, studentRepo, companyRepo, c, tasksClient)
	ctrl := controller.NewAuthController(svc)
	router.NewAuthRouter(ctrl).Setup(e, mw)

	return svc
}
