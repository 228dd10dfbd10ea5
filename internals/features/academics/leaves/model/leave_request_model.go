// file: internals/features/academics/leaves/model/leave_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

type LeaveRequest struct {
	LeaveRequestID uuid.UUID `gorm:"column:leave_request_id;type:uuid;primaryKey" json:"leave_request_id"`

	// FK → lesson_planners(lesson_planner_id), users(user_id)
	LeaveRequestLessonPlannerID uuid.UUID `gorm:"column:leave_request_lesson_planner_id;type:uuid;not null;index" json:"leave_request_lesson_planner_id"`
	LeaveRequestUserID          uuid.UUID `gorm:"column:leave_request_user_id;type:uuid;not null;index" json:"leave_request_user_id"`

	LeaveRequestApplyRemarks    *string    `gorm:"column:leave_request_apply_remarks;type:text" json:"leave_request_apply_remarks,omitempty"`
	LeaveRequestAppliedDateTime time.Time  `gorm:"column:leave_request_applied_date_time;not null" json:"leave_request_applied_date_time"`
	LeaveRequestResponseDateTime *time.Time `gorm:"column:leave_request_response_date_time" json:"leave_request_response_date_time,omitempty"`
	LeaveRequestResponseRemarks  *string    `gorm:"column:leave_request_response_remarks;type:text" json:"leave_request_response_remarks,omitempty"`

	LeaveRequestStatus LeaveStatus `gorm:"column:leave_request_status;type:varchar(20);not null;default:'pending';index" json:"leave_request_status"`

	LeaveRequestCreatedAt time.Time `gorm:"column:leave_request_created_at;autoCreateTime" json:"leave_request_created_at"`
	LeaveRequestUpdatedAt time.Time `gorm:"column:leave_request_updated_at;autoUpdateTime" json:"leave_request_updated_at"`
}

func (LeaveRequest) TableName() string { return "leave_requests" }

func (m *LeaveRequest) BeforeCreate(tx *gorm.DB) error {
	if m.LeaveRequestID == uuid.Nil {
		m.LeaveRequestID = uuid.New()
	}
	if m.LeaveRequestStatus == "" {
		m.LeaveRequestStatus = LeaveStatusPending
	}
	if m.LeaveRequestAppliedDateTime.IsZero() {
		m.LeaveRequestAppliedDateTime = time.Now()
	}
	return nil
}
