package student

import (
	"internhub/core/database"
	"internhub/core/middleware"
	"internhub/core/storage"
	"internhub/modules/student/controller"
	"internhub/modules/student/repository"
	"internhub/modules/student/router"
	"internhub/modules/student/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, store storage.Storage, mw *middleware.Middleware) {
	repo := repository.NewStudentRepository(db)
	svc := service.NewStudentService(repo, store)
	ctrl := controller.NewStudentController(svc)

	router.NewStudentRouter(ctrl).Setup(e, mw)
}
