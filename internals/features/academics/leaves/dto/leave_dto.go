// file: internals/features/academics/leaves/dto/leave_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "tutorhub_backend/internals/features/academics/leaves/model"
)

type ApplyLeaveRequest struct {
	LessonPlannerID uuid.UUID `json:"leave_request_lesson_planner_id" validate:"required"`
	UserID          uuid.UUID `json:"leave_request_user_id" validate:"required"`
	ApplyRemarks    *string   `json:"leave_request_apply_remarks"`
}

func (r *ApplyLeaveRequest) Normalize() {
	if r.ApplyRemarks != nil {
		v := strings.TrimSpace(*r.ApplyRemarks)
		if v == "" {
			r.ApplyRemarks = nil
		} else {
			r.ApplyRemarks = &v
		}
	}
}

func (r ApplyLeaveRequest) ToModel() m.LeaveRequest {
	return m.LeaveRequest{
		LeaveRequestLessonPlannerID: r.LessonPlannerID,
		LeaveRequestUserID:          r.UserID,
		LeaveRequestApplyRemarks:    r.ApplyRemarks,
	}
}

type RespondLeaveRequest struct {
	Status          string  `json:"leave_request_status" validate:"required,oneof=approved rejected"`
	ResponseRemarks *string `json:"leave_request_response_remarks"`
}
