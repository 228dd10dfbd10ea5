// file: internals/features/academics/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attDTO "tutorhub_backend/internals/features/academics/attendance/dto"
	attModel "tutorhub_backend/internals/features/academics/attendance/model"
	lessonModel "tutorhub_backend/internals/features/academics/lessons/model"
	helper "tutorhub_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

/* =========================================================
   BULK ADD
   POST /admin/attendances/bulk
   ========================================================= */

func (ctl *AttendanceController) BulkAdd(c *fiber.Ctx) error {
	var req attDTO.BulkAddRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	if ok, err := helper.RefExists(ctl.DB, &lessonModel.LessonPlanner{}, "lesson_planner_id", req.LessonPlannerID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check lesson")
	} else if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "lesson does not exist")
	}

	created := []attModel.Attendance{}
	skipped := []uuid.UUID{}
	for _, e := range req.Entries {
		var cnt int64
		if err := ctl.DB.Model(&attModel.Attendance{}).
			Where("attendance_lesson_planner_id = ? AND attendance_user_id = ?", req.LessonPlannerID, e.UserID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check attendance")
		}
		if cnt > 0 {
			skipped = append(skipped, e.UserID)
			continue
		}

		row := attModel.Attendance{
			AttendanceBatchID:         req.BatchID,
			AttendanceLessonPlannerID: req.LessonPlannerID,
			AttendanceUserID:          e.UserID,
			AttendanceDate:            req.Date,
			AttendanceStatus:          attModel.AttendanceStatus(e.Status),
			AttendanceRemarks:         e.Remarks,
		}
		if err := ctl.DB.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				skipped = append(skipped, e.UserID)
				continue
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save attendance")
		}
		created = append(created, row)
	}

	return helper.JsonCreated(c, "attendance recorded", fiber.Map{
		"created": created,
		"skipped": skipped,
	})
}

/* =========================================================
   UPDATE / DELETE
   PUT    /admin/attendances/:id
   DELETE /admin/attendances/:id
   DELETE /admin/attendances/by-lesson/:lesson_id
   ========================================================= */

func (ctl *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req attDTO.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	var row attModel.Attendance
	if err := ctl.DB.First(&row, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "attendance not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load attendance")
	}

	if req.Status != nil {
		row.AttendanceStatus = attModel.AttendanceStatus(*req.Status)
	}
	if req.Remarks != nil {
		row.AttendanceRemarks = req.Remarks
	}
	if err := ctl.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update attendance")
	}
	return helper.JsonUpdated(c, "attendance updated", row)
}

func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctl.DB.Where("attendance_id = ?", id).Delete(&attModel.Attendance{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete attendance")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "attendance not found")
	}
	return helper.JsonDeleted(c, "attendance deleted", fiber.Map{"attendance_id": id})
}

// DeleteByLesson clears a whole lesson's roster, typically before a re-mark.
func (ctl *AttendanceController) DeleteByLesson(c *fiber.Ctx) error {
	lessonID, err := helper.ParseUUIDParam(c, "lesson_id")
	if err != nil {
		return err
	}

	res := ctl.DB.Where("attendance_lesson_planner_id = ?", lessonID).Delete(&attModel.Attendance{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete attendance")
	}
	return helper.JsonDeleted(c, "attendance deleted", fiber.Map{
		"lesson_planner_id": lessonID,
		"deleted":           res.RowsAffected,
	})
}

/* =========================================================
   READS
   GET /admin/attendances/by-lesson/:lesson_id
   GET /admin/attendances/by-batch/:batch_id ?user_id=
   ========================================================= */

func (ctl *AttendanceController) ListByLesson(c *fiber.Ctx) error {
	lessonID, err := helper.ParseUUIDParam(c, "lesson_id")
	if err != nil {
		return err
	}

	var rows []attModel.Attendance
	if err := ctl.DB.
		Where("attendance_lesson_planner_id = ?", lessonID).
		Order("attendance_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list attendance")
	}
	return helper.JsonOK(c, "attendance fetched", rows)
}

func (ctl *AttendanceController) ListByBatch(c *fiber.Ctx) error {
	batchID, err := helper.ParseUUIDParam(c, "batch_id")
	if err != nil {
		return err
	}

	tx := ctl.DB.Where("attendance_batch_id = ?", batchID)
	if userID, err := helper.ParseUUIDQuery(c, "user_id"); err != nil {
		return err
	} else if userID != nil {
		tx = tx.Where("attendance_user_id = ?", *userID)
	}

	var rows []attModel.Attendance
	if err := tx.Order("attendance_date DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list attendance")
	}
	return helper.JsonOK(c, "attendance fetched", rows)
}

/* =========================================================
   MONTHLY REPORT
   GET /admin/attendances/monthly ?month=&year=&batch_id=
   present/absent counts per batch per student.
   ========================================================= */

type monthlyAttendanceRow struct {
	BatchID      uuid.UUID `gorm:"column:batch_id" json:"batch_id"`
	UserID       uuid.UUID `gorm:"column:user_id" json:"user_id"`
	UserUsername string    `gorm:"column:user_username" json:"user_username"`
	PresentCount int64     `gorm:"column:present_count" json:"present_count"`
	AbsentCount  int64     `gorm:"column:absent_count" json:"absent_count"`
}

func (ctl *AttendanceController) Monthly(c *fiber.Ctx) error {
	month, err := strconv.Atoi(strings.TrimSpace(c.Query("month")))
	if err != nil || month < 1 || month > 12 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid month")
	}
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil || year < 2000 || year > time.Now().Year()+1 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid year")
	}
	from, to := helper.MonthRange(month, year)

	tx := ctl.DB.Table("attendances AS a").
		Joins("JOIN users AS u ON u.user_id = a.attendance_user_id AND u.user_deleted_at IS NULL").
		Where("a.attendance_date BETWEEN ? AND ?", from, to)
	if batchID, err := helper.ParseUUIDQuery(c, "batch_id"); err != nil {
		return err
	} else if batchID != nil {
		tx = tx.Where("a.attendance_batch_id = ?", *batchID)
	}

	rows := []monthlyAttendanceRow{}
	if err := tx.
		Select(`a.attendance_batch_id AS batch_id,
			u.user_id, u.user_username,
			SUM(CASE WHEN a.attendance_status = 'present' THEN 1 ELSE 0 END) AS present_count,
			SUM(CASE WHEN a.attendance_status = 'absent' THEN 1 ELSE 0 END) AS absent_count`).
		Group("a.attendance_batch_id, u.user_id, u.user_username").
		Order("u.user_username ASC").
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build attendance summary")
	}

	return helper.JsonOK(c, "attendance summary", fiber.Map{
		"month": month,
		"year":  year,
		"rows":  rows,
	})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
