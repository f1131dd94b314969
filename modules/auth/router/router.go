package router

import (
	"internhub/core/constants"
	"internhub/core/middleware"
	"internhub/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{AuthController: authController}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	public := v1.Group("/auth")
	public.POST("/login", r.AuthController.Login)
	public.POST("/register", r.AuthController.Register)

	private := v1.Group("/private", mw.AuthMiddleware())
	private.POST("/auth/logout", r.AuthController.Logout)
	private.GET("/auth/me", r.AuthController.Me)

	admin := private.Group("/admin", mw.RequireRole(constants.RoleAdmin))
	admin.POST("/companies", r.AuthController.CreateCompanyAccount)
}
