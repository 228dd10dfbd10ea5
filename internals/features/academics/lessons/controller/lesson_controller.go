// file: internals/features/academics/lessons/controller/lesson_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchModel "tutorhub_backend/internals/features/academics/batches/model"
	lessonDTO "tutorhub_backend/internals/features/academics/lessons/dto"
	lessonModel "tutorhub_backend/internals/features/academics/lessons/model"
	userModel "tutorhub_backend/internals/features/users/users/model"
	helper "tutorhub_backend/internals/helpers"
)

var validate = validator.New()

type LessonController struct {
	DB *gorm.DB
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db}
}

// POST /admin/lesson-planners
func (ctl *LessonController) Create(c *fiber.Ctx) error {
	var req lessonDTO.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	if ok, err := helper.RefExists(ctl.DB, &batchModel.Batch{}, "batch_id", req.BatchID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check batch")
	} else if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "batch does not exist")
	}
	if ok, err := helper.RefExists(ctl.DB, &userModel.User{}, "user_id", req.TrainerID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check trainer")
	} else if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "trainer does not exist")
	}

	lesson := req.ToModel()
	if err := ctl.DB.Create(&lesson).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create lesson")
	}
	return helper.JsonCreated(c, "lesson created", lesson)
}

// PUT /admin/lesson-planners/:id
func (ctl *LessonController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req lessonDTO.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	var lesson lessonModel.LessonPlanner
	if err := ctl.DB.First(&lesson, "lesson_planner_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "lesson not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load lesson")
	}

	req.Apply(&lesson)
	if err := ctl.DB.Save(&lesson).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update lesson")
	}
	return helper.JsonUpdated(c, "lesson updated", lesson)
}

// GET /admin/lesson-planners/by-batch/:batch_id ?page=&per_page=
func (ctl *LessonController) ListByBatch(c *fiber.Ctx) error {
	batchID, err := helper.ParseUUIDParam(c, "batch_id")
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 10, 100)

	tx := ctl.DB.Model(&lessonModel.LessonPlanner{}).
		Where("lesson_planner_batch_id = ?", batchID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count lessons")
	}

	var rows []lessonModel.LessonPlanner
	if err := tx.Order("lesson_planner_date DESC, lesson_planner_time DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list lessons")
	}

	return helper.JsonList(c, "lessons fetched", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /admin/lesson-planners/monthly ?month=&year=&batch_id=
func (ctl *LessonController) Monthly(c *fiber.Ctx) error {
	month, err := strconv.Atoi(strings.TrimSpace(c.Query("month")))
	if err != nil || month < 1 || month > 12 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid month")
	}
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil || year < 2000 || year > time.Now().Year()+1 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid year")
	}
	from, to := helper.MonthRange(month, year)

	tx := ctl.DB.Model(&lessonModel.LessonPlanner{}).
		Where("lesson_planner_date BETWEEN ? AND ?", from, to)
	if batchID, err := helper.ParseUUIDQuery(c, "batch_id"); err != nil {
		return err
	} else if batchID != nil {
		tx = tx.Where("lesson_planner_batch_id = ?", *batchID)
	}

	var rows []lessonModel.LessonPlanner
	if err := tx.Order("lesson_planner_date ASC, lesson_planner_time ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list lessons")
	}
	return helper.JsonOK(c, "lessons fetched", rows)
}

// GET /admin/lesson-planners/:id
func (ctl *LessonController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var lesson lessonModel.LessonPlanner
	if err := ctl.DB.First(&lesson, "lesson_planner_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "lesson not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load lesson")
	}
	return helper.JsonOK(c, "lesson fetched", lesson)
}

// DELETE /admin/lesson-planners/:id (soft)
func (ctl *LessonController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctl.DB.Where("lesson_planner_id = ?", id).Delete(&lessonModel.LessonPlanner{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete lesson")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "lesson not found")
	}
	return helper.JsonDeleted(c, "lesson deleted", fiber.Map{"lesson_planner_id": id})
}
