package controller

import (
	"io"

	"internhub/core/constants"
	"internhub/core/controller"
	"internhub/core/errors"
	"internhub/core/utils"
	"internhub/modules/company/dto"
	"internhub/modules/company/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxLogoBytes = 5 << 20 // 5 MiB

type CompanyController struct {
	controller.BaseController
	CompanyService service.CompanyServiceInterface
}

func NewCompanyController(svc service.CompanyServiceInterface) *CompanyController {
	return &CompanyController{
		BaseController: controller.NewBaseController(),
		CompanyService: svc,
	}
}

func (c *CompanyController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}
	return claims.UserID, nil
}

// ListCompanies handles GET /companies
// @Summary List verified companies
// @Tags Company
// @Produce json
// @Success 200 {array} dto.CompanyProfileResponse
// @Router /companies [get]
func (c *CompanyController) ListCompanies(ctx echo.Context) error {
	result, appErr := c.CompanyService.ListVerified(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetProfile handles GET /companies/me
// @Summary Get my company profile
// @Tags Company
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CompanyProfileResponse
// @Failure 404 {object} errors.AppError
// @Router /private/companies/me [get]
func (c *CompanyController) GetProfile(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.CompanyService.GetProfile(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateProfile handles PUT /companies/me
// @Summary Update my company profile
// @Tags Company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateCompanyProfileRequest true "Profile fields"
// @Success 200 {object} dto.CompanyProfileResponse
// @Failure 400 {object} errors.AppError
// @Router /private/companies/me [put]
func (c *CompanyController) UpdateProfile(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.UpdateCompanyProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.CompanyService.UpdateProfile(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Profile updated successfully")
}

// UploadLogo handles POST /companies/me/logo
// @Summary Upload a company logo
// @Tags Company
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param file formData file true "Logo image"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} errors.AppError
// @Router /private/companies/me/logo [post]
func (c *CompanyController) UploadLogo(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Missing file")
	}
	if fileHeader.Size > maxLogoBytes {
		return c.BadRequest(errors.ErrInvalidInput, "File exceeds the 5MB limit")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to read file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to read file")
	}

	result, appErr := c.CompanyService.UploadLogo(
		ctx.Request().Context(),
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Logo uploaded successfully")
}

// SetVerified handles PUT /admin/companies/:id/verified
// @Summary Set a company's verification flag
// @Tags Company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Company user ID"
// @Param request body dto.SetVerifiedRequest true "Flag value"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/admin/companies/{id}/verified [put]
func (c *CompanyController) SetVerified(ctx echo.Context) error {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid company ID")
	}

	var req dto.SetVerifiedRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.CompanyService.SetVerified(ctx.Request().Context(), companyID, req.Verified); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Verification updated")
}

// RequestRegistration handles POST /companies/registrations
// @Summary Request registration for a forum event
// @Tags Company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRegistrationRequest true "Event to join"
// @Success 200 {object} entity.Registration
// @Failure 403 {object} errors.AppError
// @Router /private/companies/registrations [post]
func (c *CompanyController) RequestRegistration(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateRegistrationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.CompanyService.RequestRegistration(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Registration submitted")
}

// ListMyRegistrations handles GET /companies/registrations
// @Summary List my event registrations
// @Tags Company
// @Security BearerAuth
// @Produce json
// @Success 200 {array} entity.Registration
// @Router /private/companies/registrations [get]
func (c *CompanyController) ListMyRegistrations(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.CompanyService.ListMyRegistrations(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListRegistrationsByEvent handles GET /admin/events/:id/registrations
// @Summary List registrations for an event
// @Tags Company
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} entity.RegistrationWithCompany
// @Router /private/admin/events/{id}/registrations [get]
func (c *CompanyController) ListRegistrationsByEvent(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.CompanyService.ListRegistrationsByEvent(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// DecideRegistration handles POST /admin/registrations/:id/decide
// @Summary Approve or reject an event registration
// @Tags Company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param request body dto.DecideRegistrationRequest true "Decision"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/admin/registrations/{id}/decide [post]
func (c *CompanyController) DecideRegistration(ctx echo.Context) error {
	registrationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid registration ID")
	}

	var req dto.DecideRegistrationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.CompanyService.DecideRegistration(ctx.Request().Context(), registrationID, &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Registration decided")
}
