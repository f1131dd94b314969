package controller

import (
	"internhub/core/controller"
	"internhub/core/errors"
	"internhub/modules/event/dto"
	"internhub/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

// ListEvents handles GET /events
// @Summary List forum events
// @Tags Event
// @Produce json
// @Success 200 {array} entity.Event
// @Router /events [get]
func (c *EventController) ListEvents(ctx echo.Context) error {
	result, appErr := c.EventService.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetEvent handles GET /events/:id
// @Summary Get one event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} entity.Event
// @Failure 404 {object} errors.AppError
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EventService.GetByID(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListTimeRanges handles GET /events/:id/time-ranges
// @Summary List an event's time ranges
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} entity.TimeRange
// @Router /events/{id}/time-ranges [get]
func (c *EventController) ListTimeRanges(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EventService.ListTimeRanges(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// CreateEvent handles POST /admin/events
// @Summary Create a forum event
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event configuration"
// @Success 200 {object} entity.Event
// @Failure 400 {object} errors.AppError
// @Router /private/admin/events [post]
func (c *EventController) CreateEvent(ctx echo.Context) error {
	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EventService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Event created")
}

// UpdateEvent handles PUT /admin/events/:id
// @Summary Update a forum event
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to change"
// @Success 200 {object} entity.Event
// @Failure 400 {object} errors.AppError
// @Router /private/admin/events/{id} [put]
func (c *EventController) UpdateEvent(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.UpdateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EventService.Update(ctx.Request().Context(), eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Event updated")
}

// SetPhase handles PUT /admin/events/:id/phase
// @Summary Set an event's current phase (manual mode)
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.SetPhaseRequest true "Phase value 0-2"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.AppError
// @Router /private/admin/events/{id}/phase [put]
func (c *EventController) SetPhase(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.SetPhaseRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.EventService.SetPhase(ctx.Request().Context(), eventID, req.Phase); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Phase updated")
}

// AddTimeRange handles POST /admin/events/:id/time-ranges
// @Summary Add an interview time range and regenerate slots
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.AddTimeRangeRequest true "Range boundaries"
// @Success 200 {object} dto.RegenerateResponse
// @Failure 400 {object} errors.AppError
// @Router /private/admin/events/{id}/time-ranges [post]
func (c *EventController) AddTimeRange(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.AddTimeRangeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EventService.AddTimeRange(ctx.Request().Context(), eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Time range added")
}

// DeleteTimeRange handles DELETE /admin/time-ranges/:id
// @Summary Delete a time range and regenerate slots
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path string true "Time range ID"
// @Success 200 {object} dto.RegenerateResponse
// @Failure 404 {object} errors.AppError
// @Router /private/admin/time-ranges/{id} [delete]
func (c *EventController) DeleteTimeRange(ctx echo.Context) error {
	timeRangeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid time range ID")
	}

	result, appErr := c.EventService.DeleteTimeRange(ctx.Request().Context(), timeRangeID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Time range deleted")
}

// RegenerateSlots handles POST /admin/events/:id/regenerate-slots
// @Summary Regenerate the event's interview slots
// @Description Slots with confirmed bookings are preserved; unbooked slots are rebuilt from the current configuration
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.RegenerateResponse
// @Failure 404 {object} errors.AppError
// @Router /private/admin/events/{id}/regenerate-slots [post]
func (c *EventController) RegenerateSlots(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EventService.RegenerateSlots(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, result.Message)
}

// Report handles GET /admin/events/:id/report
// @Summary Per-company booking report for an event
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventReportResponse
// @Failure 404 {object} errors.AppError
// @Router /private/admin/events/{id}/report [get]
func (c *EventController) Report(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EventService.Report(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
