// file: internals/features/academics/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	CourseStatusActive   = "active"
	CourseStatusInactive = "inactive"
)

type Course struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey" json:"course_id"`

	// Category/subcategory are lookup tables managed elsewhere; we only carry
	// the references.
	CourseCategoryID     uuid.UUID      `gorm:"column:course_category_id;type:uuid;not null;index" json:"course_category_id"`
	CourseSubCategoryIDs pq.StringArray `gorm:"column:course_sub_category_ids;type:text[]" json:"course_sub_category_ids,omitempty"`

	CourseName   string `gorm:"column:course_name;type:varchar(120);not null" json:"course_name"`
	CourseStatus string `gorm:"column:course_status;type:varchar(20);not null;default:'active'" json:"course_status"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"-"`
}

func (Course) TableName() string { return "courses" }

func (m *Course) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	if m.CourseStatus == "" {
		m.CourseStatus = CourseStatusActive
	}
	return nil
}
