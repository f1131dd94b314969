package controller

import (
	"io"

	"internhub/core/constants"
	"internhub/core/controller"
	"internhub/core/errors"
	"internhub/core/utils"
	"internhub/modules/student/dto"
	"internhub/modules/student/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type StudentController struct {
	controller.BaseController
	StudentService service.StudentServiceInterface
}

func NewStudentController(svc service.StudentServiceInterface) *StudentController {
	return &StudentController{
		BaseController: controller.NewBaseController(),
		StudentService: svc,
	}
}

func (c *StudentController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}
	return claims.UserID, nil
}

// GetProfile handles GET /students/me
// @Summary Get my student profile
// @Tags Student
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.StudentProfileResponse
// @Failure 404 {object} errors.AppError
// @Router /private/students/me [get]
func (c *StudentController) GetProfile(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.StudentService.GetProfile(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateProfile handles PUT /students/me
// @Summary Update my student profile
// @Tags Student
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateStudentProfileRequest true "Profile fields"
// @Success 200 {object} dto.StudentProfileResponse
// @Failure 400 {object} errors.AppError
// @Router /private/students/me [put]
func (c *StudentController) UpdateProfile(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.UpdateStudentProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.StudentService.UpdateProfile(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Profile updated successfully")
}

// UploadDocument handles POST /students/me/documents/:kind
// @Summary Upload a resume or CV
// @Tags Student
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param kind path string true "resume or cv"
// @Param file formData file true "Document file"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} errors.AppError
// @Router /private/students/me/documents/{kind} [post]
func (c *StudentController) UploadDocument(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Missing file")
	}
	if fileHeader.Size > maxUploadBytes {
		return c.BadRequest(errors.ErrInvalidInput, "File exceeds the 10MB limit")
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

	result, appErr := c.StudentService.UploadDocument(
		ctx.Request().Context(),
		userID,
		ctx.Param("kind"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Document uploaded successfully")
}

// SetHeadStart handles PUT /admin/students/:id/head-start
// @Summary Set a student's head start flag
// @Description Head start students cannot book during the priority phase
// @Tags Student
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Student user ID"
// @Param request body dto.SetHeadStartRequest true "Flag value"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/admin/students/{id}/head-start [put]
func (c *StudentController) SetHeadStart(ctx echo.Context) error {
	studentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid student ID")
	}

	var req dto.SetHeadStartRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.StudentService.SetHeadStart(ctx.Request().Context(), studentID, req.HeadStart); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Head start flag updated")
}
