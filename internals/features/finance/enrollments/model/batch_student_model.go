// file: internals/features/finance/enrollments/model/batch_student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BatchStudentStatusActive = "active"
)

// BatchStudent binds one student to one batch (and, when the batch charges a
// fee, to exactly one fee scheme). Duplicate (batch, user) pairs are never
// created; the enrollment flow skips them.
type BatchStudent struct {
	BatchStudentID uuid.UUID `gorm:"column:batch_student_id;type:uuid;primaryKey" json:"batch_student_id"`

	// FK → batches(batch_id), users(user_id)
	BatchStudentBatchID uuid.UUID `gorm:"column:batch_student_batch_id;type:uuid;not null;index;uniqueIndex:uniq_batch_user,priority:1" json:"batch_student_batch_id"`
	BatchStudentUserID  uuid.UUID `gorm:"column:batch_student_user_id;type:uuid;not null;index;uniqueIndex:uniq_batch_user,priority:2" json:"batch_student_user_id"`

	// Required only when the batch fee is > 0
	BatchStudentFeeSchemeID *uuid.UUID `gorm:"column:batch_student_fee_scheme_id;type:uuid;index" json:"batch_student_fee_scheme_id,omitempty"`

	BatchStudentStatus string `gorm:"column:batch_student_status;type:varchar(20);not null;default:'active'" json:"batch_student_status"`

	BatchStudentCreatedAt time.Time `gorm:"column:batch_student_created_at;autoCreateTime" json:"batch_student_created_at"`
	BatchStudentUpdatedAt time.Time `gorm:"column:batch_student_updated_at;autoUpdateTime" json:"batch_student_updated_at"`
}

func (BatchStudent) TableName() string { return "batch_students" }

func (m *BatchStudent) BeforeCreate(tx *gorm.DB) error {
	if m.BatchStudentID == uuid.Nil {
		m.BatchStudentID = uuid.New()
	}
	if m.BatchStudentStatus == "" {
		m.BatchStudentStatus = BatchStudentStatusActive
	}
	return nil
}
