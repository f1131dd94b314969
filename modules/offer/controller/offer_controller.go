package controller

import (
	"internhub/core/constants"
	"internhub/core/controller"
	"internhub/core/errors"
	"internhub/core/utils"
	"internhub/modules/offer/dto"
	"internhub/modules/offer/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type OfferController struct {
	controller.BaseController
	OfferService service.OfferServiceInterface
}

func NewOfferController(svc service.OfferServiceInterface) *OfferController {
	return &OfferController{
		BaseController: controller.NewBaseController(),
		OfferService:   svc,
	}
}

func (c *OfferController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}
	return claims.UserID, nil
}

// ListOffers handles GET /offers
// @Summary List active offers from verified companies
// @Tags Offer
// @Produce json
// @Param event_id query string false "Filter by event"
// @Param category query string false "Filter by category"
// @Param remote query bool false "Filter by remote"
// @Success 200 {array} entity.OfferWithCompany
// @Router /offers [get]
func (c *OfferController) ListOffers(ctx echo.Context) error {
	var filter dto.OfferFilter
	if err := ctx.Bind(&filter); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid query parameters")
	}

	result, appErr := c.OfferService.List(ctx.Request().Context(), &filter)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetOffer handles GET /offers/:slug
// @Summary Get one offer by slug
// @Tags Offer
// @Produce json
// @Param slug path string true "Offer slug"
// @Success 200 {object} entity.Offer
// @Failure 404 {object} errors.AppError
// @Router /offers/{slug} [get]
func (c *OfferController) GetOffer(ctx echo.Context) error {
	result, appErr := c.OfferService.GetBySlug(ctx.Request().Context(), ctx.Param("slug"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// CreateOffer handles POST /offers
// @Summary Publish an internship offer
// @Tags Offer
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateOfferRequest true "Offer fields"
// @Success 200 {object} entity.Offer
// @Failure 403 {object} errors.AppError
// @Router /private/offers [post]
func (c *OfferController) CreateOffer(ctx echo.Context) error {
	companyID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateOfferRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.OfferService.Create(ctx.Request().Context(), companyID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Offer created")
}

// UpdateOffer handles PUT /offers/:id
// @Summary Update one of my offers
// @Tags Offer
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body dto.UpdateOfferRequest true "Fields to change"
// @Success 200 {object} entity.Offer
// @Failure 403 {object} errors.AppError
// @Router /private/offers/{id} [put]
func (c *OfferController) UpdateOffer(ctx echo.Context) error {
	companyID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	offerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid offer ID")
	}

	var req dto.UpdateOfferRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.OfferService.Update(ctx.Request().Context(), companyID, offerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Offer updated")
}

// ListMyOffers handles GET /offers/mine
// @Summary List my company's offers
// @Tags Offer
// @Security BearerAuth
// @Produce json
// @Success 200 {array} entity.Offer
// @Router /private/offers/mine [get]
func (c *OfferController) ListMyOffers(ctx echo.Context) error {
	companyID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.OfferService.ListMine(ctx.Request().Context(), companyID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
