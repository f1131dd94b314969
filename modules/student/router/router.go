package router

import (
	"internhub/core/constants"
	"internhub/core/middleware"
	"internhub/modules/student/controller"

	"github.com/labstack/echo/v4"
)

type StudentRouter struct {
	StudentController *controller.StudentController
}

func NewStudentRouter(studentController *controller.StudentController) *StudentRouter {
	return &StudentRouter{StudentController: studentController}
}

func (r *StudentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	private := v1.Group("/private", mw.AuthMiddleware())

	students := private.Group("/students", mw.RequireRole(constants.RoleStudent))
	students.GET("/me", r.StudentController.GetProfile)
	students.PUT("/me", r.StudentController.UpdateProfile)
	students.POST("/me/documents/:kind", r.StudentController.UploadDocument)

	admin := private.Group("/admin", mw.RequireRole(constants.RoleAdmin))
	admin.PUT("/students/:id/head-start", r.StudentController.SetHeadStart)
}
