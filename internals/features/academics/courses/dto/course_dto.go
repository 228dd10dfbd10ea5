// file: internals/features/academics/courses/dto/course_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "tutorhub_backend/internals/features/academics/courses/model"
)

type CreateCourseRequest struct {
	CategoryID     uuid.UUID `json:"course_category_id" validate:"required"`
	SubCategoryIDs []string  `json:"course_sub_category_ids" validate:"omitempty,dive,uuid4"`
	Name           string    `json:"course_name" validate:"required,min=2,max=120"`
}

func (r *CreateCourseRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateCourseRequest) ToModel() m.Course {
	return m.Course{
		CourseCategoryID:     r.CategoryID,
		CourseSubCategoryIDs: pq.StringArray(r.SubCategoryIDs),
		CourseName:           r.Name,
	}
}

type UpdateCourseRequest struct {
	CategoryID     *uuid.UUID `json:"course_category_id"`
	SubCategoryIDs []string   `json:"course_sub_category_ids" validate:"omitempty,dive,uuid4"`
	Name           *string    `json:"course_name" validate:"omitempty,min=2,max=120"`
	Status         *string    `json:"course_status" validate:"omitempty,oneof=active inactive"`
}

func (r UpdateCourseRequest) Apply(course *m.Course) {
	if r.CategoryID != nil {
		course.CourseCategoryID = *r.CategoryID
	}
	if r.SubCategoryIDs != nil {
		course.CourseSubCategoryIDs = pq.StringArray(r.SubCategoryIDs)
	}
	if r.Name != nil {
		course.CourseName = strings.TrimSpace(*r.Name)
	}
	if r.Status != nil {
		course.CourseStatus = *r.Status
	}
}
