// file: internals/features/academics/leaves/controller/leave_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leaveDTO "tutorhub_backend/internals/features/academics/leaves/dto"
	leaveModel "tutorhub_backend/internals/features/academics/leaves/model"
	lessonModel "tutorhub_backend/internals/features/academics/lessons/model"
	userModel "tutorhub_backend/internals/features/users/users/model"
	helper "tutorhub_backend/internals/helpers"
)

var validate = validator.New()

type LeaveController struct {
	DB *gorm.DB
}

func NewLeaveController(db *gorm.DB) *LeaveController {
	return &LeaveController{DB: db}
}

// POST /admin/leave-requests
func (ctl *LeaveController) Apply(c *fiber.Ctx) error {
	var req leaveDTO.ApplyLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	if ok, err := helper.RefExists(ctl.DB, &lessonModel.LessonPlanner{}, "lesson_planner_id", req.LessonPlannerID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check lesson")
	} else if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "lesson does not exist")
	}
	if ok, err := helper.RefExists(ctl.DB, &userModel.User{}, "user_id", req.UserID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check user")
	} else if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "user does not exist")
	}

	// one open request per (lesson, user)
	var open int64
	if err := ctl.DB.Model(&leaveModel.LeaveRequest{}).
		Where("leave_request_lesson_planner_id = ? AND leave_request_user_id = ? AND leave_request_status = ?",
			req.LessonPlannerID, req.UserID, leaveModel.LeaveStatusPending).
		Count(&open).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check leave requests")
	}
	if open > 0 {
		return fiber.NewError(fiber.StatusConflict, "a pending leave request already exists for this lesson")
	}

	leave := req.ToModel()
	if err := ctl.DB.Create(&leave).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to apply leave")
	}
	return helper.JsonCreated(c, "leave request submitted", leave)
}

// PUT /admin/leave-requests/:id/respond
// Only pending requests can be responded to; the decision is final.
func (ctl *LeaveController) Respond(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req leaveDTO.RespondLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	var leave leaveModel.LeaveRequest
	if err := ctl.DB.First(&leave, "leave_request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "leave request not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load leave request")
	}
	if leave.LeaveRequestStatus != leaveModel.LeaveStatusPending {
		return fiber.NewError(fiber.StatusConflict, "leave request already responded to")
	}

	now := time.Now()
	leave.LeaveRequestStatus = leaveModel.LeaveStatus(req.Status)
	leave.LeaveRequestResponseDateTime = &now
	leave.LeaveRequestResponseRemarks = req.ResponseRemarks

	if err := ctl.DB.Save(&leave).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to respond to leave request")
	}
	return helper.JsonUpdated(c, "leave request "+req.Status, leave)
}

// GET /admin/leave-requests ?status=&page=&per_page=
func (ctl *LeaveController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	tx := ctl.DB.Model(&leaveModel.LeaveRequest{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("leave_request_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count leave requests")
	}

	var rows []leaveModel.LeaveRequest
	if err := tx.Order("leave_request_applied_date_time DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list leave requests")
	}

	return helper.JsonList(c, "leave requests fetched", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /admin/leave-requests/by-user/:user_id
func (ctl *LeaveController) ListByUser(c *fiber.Ctx) error {
	userID, err := helper.ParseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	var rows []leaveModel.LeaveRequest
	if err := ctl.DB.
		Where("leave_request_user_id = ?", userID).
		Order("leave_request_applied_date_time DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list leave requests")
	}
	return helper.JsonOK(c, "leave requests fetched", rows)
}
