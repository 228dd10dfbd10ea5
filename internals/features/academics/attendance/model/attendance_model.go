// file: internals/features/academics/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// Attendance is one student's presence record for one lesson.
// Unique (lesson, user): the bulk-add flow skips duplicates.
type Attendance struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey" json:"attendance_id"`

	// FK → batches(batch_id), lesson_planners(lesson_planner_id), users(user_id)
	AttendanceBatchID         uuid.UUID `gorm:"column:attendance_batch_id;type:uuid;not null;index" json:"attendance_batch_id"`
	AttendanceLessonPlannerID uuid.UUID `gorm:"column:attendance_lesson_planner_id;type:uuid;not null;index;uniqueIndex:uniq_lesson_user,priority:1" json:"attendance_lesson_planner_id"`
	AttendanceUserID          uuid.UUID `gorm:"column:attendance_user_id;type:uuid;not null;index;uniqueIndex:uniq_lesson_user,priority:2" json:"attendance_user_id"`

	AttendanceDate    time.Time        `gorm:"column:attendance_date;type:date;not null;index" json:"attendance_date"`
	AttendanceStatus  AttendanceStatus `gorm:"column:attendance_status;type:varchar(20);not null" json:"attendance_status"`
	AttendanceRemarks *string          `gorm:"column:attendance_remarks;type:text" json:"attendance_remarks,omitempty"`

	AttendanceRowStatus string `gorm:"column:attendance_row_status;type:varchar(20);not null;default:'active'" json:"attendance_row_status"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (Attendance) TableName() string { return "attendances" }

func (m *Attendance) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	if m.AttendanceRowStatus == "" {
		m.AttendanceRowStatus = "active"
	}
	return nil
}
