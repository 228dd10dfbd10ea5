// file: internals/features/finance/enrollments/dto/enrollment_dto.go
package dto

import (
	"github.com/google/uuid"
)

type EnrollStudentsRequest struct {
	BatchID     uuid.UUID   `json:"batch_id" validate:"required"`
	FeeSchemeID *uuid.UUID  `json:"fee_scheme_id"`
	StudentIDs  []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
}

// EnrolledStudentRow is one enrollment flattened with the student's contact
// fields for batch rosters.
type EnrolledStudentRow struct {
	BatchStudentID uuid.UUID  `gorm:"column:batch_student_id" json:"batch_student_id"`
	UserID         uuid.UUID  `gorm:"column:user_id" json:"user_id"`
	UserUsername   string     `gorm:"column:user_username" json:"user_username"`
	UserEmail      string     `gorm:"column:user_email" json:"user_email"`
	UserMobile     string     `gorm:"column:user_mobile" json:"user_mobile"`
	FeeSchemeID    *uuid.UUID `gorm:"column:fee_scheme_id" json:"fee_scheme_id,omitempty"`
	Status         string     `gorm:"column:status" json:"status"`
}
