// file: internals/features/finance/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollDTO "tutorhub_backend/internals/features/finance/enrollments/dto"
	enrollService "tutorhub_backend/internals/features/finance/enrollments/service"
	helper "tutorhub_backend/internals/helpers"
)

var validate = validator.New()

type EnrollmentController struct {
	DB      *gorm.DB
	Service *enrollService.EnrollmentService
}

func NewEnrollmentController(db *gorm.DB, svc *enrollService.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{DB: db, Service: svc}
}

// POST /admin/batch-students
// Multi-student enroll; per-student outcomes, never all-or-nothing.
func (ctl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	var req enrollDTO.EnrollStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	res, err := ctl.Service.Enroll(c.UserContext(), req.BatchID, req.FeeSchemeID, req.StudentIDs)
	if err != nil {
		switch {
		case errors.Is(err, enrollService.ErrBatchNotFound):
			return fiber.NewError(fiber.StatusNotFound, "batch does not exist")
		case errors.Is(err, enrollService.ErrFeeSchemeRequired):
			return fiber.NewError(fiber.StatusBadRequest, "fee scheme is required for a batch with fee")
		case errors.Is(err, enrollService.ErrFeeSchemeNotFound):
			return fiber.NewError(fiber.StatusBadRequest, "fee scheme does not exist")
		case errors.Is(err, enrollService.ErrFeeSchemeBatchMismatch):
			return fiber.NewError(fiber.StatusBadRequest, "fee scheme does not belong to this batch")
		case errors.Is(err, enrollService.ErrNoStudents):
			return fiber.NewError(fiber.StatusBadRequest, "no students selected")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to enroll students")
	}

	return helper.JsonCreated(c, "students enrolled", res)
}

// GET /admin/batch-students/by-batch/:batch_id
func (ctl *EnrollmentController) ListByBatch(c *fiber.Ctx) error {
	batchID, err := helper.ParseUUIDParam(c, "batch_id")
	if err != nil {
		return err
	}

	rows := []enrollDTO.EnrolledStudentRow{}
	if err := ctl.DB.Table("batch_students AS bs").
		Joins("JOIN users AS u ON u.user_id = bs.batch_student_user_id AND u.user_deleted_at IS NULL").
		Where("bs.batch_student_batch_id = ?", batchID).
		Select(`bs.batch_student_id,
			u.user_id, u.user_username, u.user_email, u.user_mobile,
			bs.batch_student_fee_scheme_id AS fee_scheme_id,
			bs.batch_student_status AS status`).
		Order("u.user_username ASC").
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list enrolled students")
	}

	return helper.JsonOK(c, "enrolled students fetched", rows)
}

// DELETE /admin/batch-students/:batch_id/:user_id
func (ctl *EnrollmentController) Unenroll(c *fiber.Ctx) error {
	batchID, err := helper.ParseUUIDParam(c, "batch_id")
	if err != nil {
		return err
	}
	userID, err := helper.ParseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	if err := ctl.Service.Unenroll(c.UserContext(), batchID, userID); err != nil {
		if errors.Is(err, enrollService.ErrEnrollmentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "batch student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to remove student")
	}
	return helper.JsonDeleted(c, "student removed from batch", fiber.Map{
		"batch_id": batchID,
		"user_id":  userID,
	})
}
