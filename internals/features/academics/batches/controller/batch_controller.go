// file: internals/features/academics/batches/controller/batch_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	batchDTO "tutorhub_backend/internals/features/academics/batches/dto"
	batchModel "tutorhub_backend/internals/features/academics/batches/model"
	courseModel "tutorhub_backend/internals/features/academics/courses/model"
	enrollModel "tutorhub_backend/internals/features/finance/enrollments/model"
	userModel "tutorhub_backend/internals/features/users/users/model"
	helper "tutorhub_backend/internals/helpers"
)

var validate = validator.New()

type BatchController struct {
	DB *gorm.DB
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{DB: db}
}

/* =========================================================
   CREATE
   POST /admin/batches
   ========================================================= */

func (ctl *BatchController) Create(c *fiber.Ctx) error {
	var req batchDTO.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	if err := ctl.checkRefs(req.TrainerID, req.CourseID); err != nil {
		return err
	}

	batch := req.ToModel()
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&batchModel.Batch{}).
			Where("batch_code = ?", batch.BatchCode).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check batch code")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "batch code already in use")
		}

		// one active batch per trainer per course
		cnt = 0
		if err := tx.Model(&batchModel.Batch{}).
			Where("batch_trainer_id = ? AND batch_course_id = ? AND batch_status = ?",
				batch.BatchTrainerID, batch.BatchCourseID, batchModel.BatchStatusActive).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check active batches")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "trainer already runs an active batch for this course")
		}

		if err := tx.Create(&batch).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "batch code already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to create batch")
		}
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "batch created", batch)
}

/* =========================================================
   UPDATE
   PUT /admin/batches/:id
   ========================================================= */

func (ctl *BatchController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req batchDTO.UpdateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	var batch batchModel.Batch
	if err := ctl.DB.First(&batch, "batch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "batch not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load batch")
	}

	if req.TrainerID != nil {
		ok, err := helper.RefExists(ctl.DB, &userModel.User{}, "user_id", *req.TrainerID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check trainer")
		}
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "trainer does not exist")
		}
	}

	req.Apply(&batch)

	// the one-active-per-pair rule also holds across updates
	if batch.BatchStatus == batchModel.BatchStatusActive {
		var cnt int64
		if err := ctl.DB.Model(&batchModel.Batch{}).
			Where("batch_trainer_id = ? AND batch_course_id = ? AND batch_status = ? AND batch_id <> ?",
				batch.BatchTrainerID, batch.BatchCourseID, batchModel.BatchStatusActive, batch.BatchID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to check active batches")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "trainer already runs an active batch for this course")
		}
	}

	if err := ctl.DB.Save(&batch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update batch")
	}
	return helper.JsonUpdated(c, "batch updated", batch)
}

/* =========================================================
   READS
   GET /admin/batches                ?q=&status=&course_id=&page=&per_page=
   GET /admin/batches/:id
   GET /admin/batches/by-trainer/:trainer_id
   GET /admin/batches/by-student/:user_id
   ========================================================= */

func (ctl *BatchController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	tx := ctl.DB.Model(&batchModel.Batch{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("(LOWER(batch_code) LIKE ? OR LOWER(batch_name) LIKE ?)", kw, kw)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("batch_status = ?", status)
	}
	if courseID, err := helper.ParseUUIDQuery(c, "course_id"); err != nil {
		return err
	} else if courseID != nil {
		tx = tx.Where("batch_course_id = ?", *courseID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count batches")
	}

	var rows []batchModel.Batch
	if err := tx.Order("batch_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list batches")
	}

	return helper.JsonList(c, "batches fetched", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *BatchController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var batch batchModel.Batch
	if err := ctl.DB.First(&batch, "batch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "batch not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load batch")
	}
	return helper.JsonOK(c, "batch fetched", batch)
}

func (ctl *BatchController) ListByTrainer(c *fiber.Ctx) error {
	trainerID, err := helper.ParseUUIDParam(c, "trainer_id")
	if err != nil {
		return err
	}

	var rows []batchModel.Batch
	if err := ctl.DB.
		Where("batch_trainer_id = ?", trainerID).
		Order("batch_start_date DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list batches")
	}
	return helper.JsonOK(c, "batches fetched", rows)
}

// ListByStudent resolves batches through the enrollment table.
func (ctl *BatchController) ListByStudent(c *fiber.Ctx) error {
	userID, err := helper.ParseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	var rows []batchModel.Batch
	if err := ctl.DB.
		Joins("JOIN batch_students AS bs ON bs.batch_student_batch_id = batches.batch_id").
		Where("bs.batch_student_user_id = ?", userID).
		Order("batch_start_date DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list batches")
	}
	return helper.JsonOK(c, "batches fetched", rows)
}

/* =========================================================
   DELETE (soft) — refused while students remain enrolled.
   DELETE /admin/batches/:id
   ========================================================= */

func (ctl *BatchController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var enrolled int64
	if err := ctl.DB.Model(&enrollModel.BatchStudent{}).
		Where("batch_student_batch_id = ?", id).
		Count(&enrolled).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check enrollments")
	}
	if enrolled > 0 {
		return fiber.NewError(fiber.StatusConflict, "batch still has enrolled students")
	}

	res := ctl.DB.Where("batch_id = ?", id).Delete(&batchModel.Batch{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete batch")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "batch not found")
	}
	return helper.JsonDeleted(c, "batch deleted", fiber.Map{"batch_id": id})
}

func (ctl *BatchController) checkRefs(trainerID, courseID uuid.UUID) error {
	ok, err := helper.RefExists(ctl.DB, &userModel.User{}, "user_id", trainerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check trainer")
	}
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "trainer does not exist")
	}

	ok, err = helper.RefExists(ctl.DB, &courseModel.Course{}, "course_id", courseID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check course")
	}
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "course does not exist")
	}
	return nil
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
