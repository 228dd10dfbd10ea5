// file: internals/features/academics/courses/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchModel "tutorhub_backend/internals/features/academics/batches/model"
	courseDTO "tutorhub_backend/internals/features/academics/courses/dto"
	courseModel "tutorhub_backend/internals/features/academics/courses/model"
	helper "tutorhub_backend/internals/helpers"
)

var validate = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// POST /admin/courses
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	course := req.ToModel()
	if err := ctl.DB.Create(&course).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create course")
	}
	return helper.JsonCreated(c, "course created", course)
}

// PUT /admin/courses/:id
func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req courseDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	var course courseModel.Course
	if err := ctl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load course")
	}

	req.Apply(&course)
	if err := ctl.DB.Save(&course).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update course")
	}
	return helper.JsonUpdated(c, "course updated", course)
}

// GET /admin/courses?q=&status=&page=&per_page=
func (ctl *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	tx := ctl.DB.Model(&courseModel.Course{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(course_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("course_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to count courses")
	}

	var rows []courseModel.Course
	if err := tx.Order("course_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list courses")
	}

	return helper.JsonList(c, "courses fetched", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /admin/courses/:id
func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var course courseModel.Course
	if err := ctl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load course")
	}
	return helper.JsonOK(c, "course fetched", course)
}

// DELETE /admin/courses/:id — refused while any batch still references it.
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var refs int64
	if err := ctl.DB.Model(&batchModel.Batch{}).
		Where("batch_course_id = ?", id).
		Count(&refs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check batches")
	}
	if refs > 0 {
		return fiber.NewError(fiber.StatusConflict, "course is referenced by batches")
	}

	res := ctl.DB.Where("course_id = ?", id).Delete(&courseModel.Course{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete course")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "course not found")
	}
	return helper.JsonDeleted(c, "course deleted", fiber.Map{"course_id": id})
}
