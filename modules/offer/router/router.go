package router

import (
	"internhub/core/constants"
	"internhub/core/middleware"
	"internhub/modules/offer/controller"

	"github.com/labstack/echo/v4"
)

type OfferRouter struct {
	OfferController *controller.OfferController
}

func NewOfferRouter(offerController *controller.OfferController) *OfferRouter {
	return &OfferRouter{OfferController: offerController}
}

func (r *OfferRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	v1.GET("/offers", r.OfferController.ListOffers)
	v1.GET("/offers/:slug", r.OfferController.GetOffer)

	private := v1.Group("/private", mw.AuthMiddleware())
	offers := private.Group("/offers", mw.RequireRole(constants.RoleCompany))
	offers.POST("", r.OfferController.CreateOffer)
	offers.PUT("/:id", r.OfferController.UpdateOffer)
	offers.GET("/mine", r.OfferController.ListMyOffers)
}
