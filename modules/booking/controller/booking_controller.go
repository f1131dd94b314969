package controller

import (
	"internhub/core/constants"
	"internhub/core/controller"
	"internhub/core/errors"
	"internhub/core/utils"
	"internhub/modules/booking/dto"
	"internhub/modules/booking/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type BookingController struct {
	controller.BaseController
	BookingService service.BookingServiceInterface
}

func NewBookingController(svc service.BookingServiceInterface) *BookingController {
	return &BookingController{
		BaseController: controller.NewBaseController(),
		BookingService: svc,
	}
}

func (c *BookingController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}
	return claims.UserID, nil
}

// CheckLimit handles GET /bookings/limit?event_id=
// @Summary Check my booking allowance for an event
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Param event_id query string true "Event ID"
// @Success 200 {object} dto.LimitResponse
// @Failure 404 {object} errors.AppError
// @Router /private/bookings/limit [get]
func (c *BookingController) CheckLimit(ctx echo.Context) error {
	studentID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.QueryParam("event_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.BookingService.CheckLimit(ctx.Request().Context(), studentID, eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListOfferSlots handles GET /offers/:id/slots
// @Summary List available interview slots for an offer
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {array} dto.AvailableSlotResponse
// @Failure 404 {object} errors.AppError
// @Router /private/offers/{id}/slots [get]
func (c *BookingController) ListOfferSlots(ctx echo.Context) error {
	offerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid offer ID")
	}

	result, appErr := c.BookingService.ListAvailableSlots(ctx.Request().Context(), offerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Book handles POST /bookings
// @Summary Book an interview slot
// @Description Constraint violations return success=false with an explanatory message, not an error
// @Tags Booking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Slot and offer"
// @Success 200 {object} dto.BookingResult
// @Failure 400 {object} errors.AppError
// @Router /private/bookings [post]
func (c *BookingController) Book(ctx echo.Context) error {
	studentID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.BookingService.Book(ctx.Request().Context(), studentID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, result.Message)
}

// Cancel handles POST /bookings/:id/cancel
// @Summary Cancel one of my bookings
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResult
// @Failure 400 {object} errors.AppError
// @Router /private/bookings/{id}/cancel [post]
func (c *BookingController) Cancel(ctx echo.Context) error {
	studentID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid booking ID")
	}

	result, appErr := c.BookingService.Cancel(ctx.Request().Context(), studentID, bookingID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, result.Message)
}

// MyBookings handles GET /bookings/my
// @Summary List my interview bookings
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.MyBookingResponse
// @Router /private/bookings/my [get]
func (c *BookingController) MyBookings(ctx echo.Context) error {
	studentID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.BookingService.MyBookings(ctx.Request().Context(), studentID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
