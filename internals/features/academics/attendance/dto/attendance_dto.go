// file: internals/features/academics/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceEntry struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Status  string    `json:"status" validate:"required,oneof=present absent"`
	Remarks *string   `json:"remarks"`
}

// BulkAddRequest marks a whole lesson's roster in one call. Entries that
// already have a row for (lesson, user) are skipped, not overwritten.
type BulkAddRequest struct {
	LessonPlannerID uuid.UUID         `json:"attendance_lesson_planner_id" validate:"required"`
	BatchID         uuid.UUID         `json:"attendance_batch_id" validate:"required"`
	Date            time.Time         `json:"attendance_date" validate:"required"`
	Entries         []AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

type UpdateAttendanceRequest struct {
	Status  *string `json:"attendance_status" validate:"omitempty,oneof=present absent"`
	Remarks *string `json:"attendance_remarks"`
}
