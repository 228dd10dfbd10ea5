// file: internals/features/academics/batches/model/batch_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — batch status
============================== */

type BatchStatus string

const (
	BatchStatusActive   BatchStatus = "active"
	BatchStatusClosed   BatchStatus = "closed"
	BatchStatusInactive BatchStatus = "inactive"
)

/* ==============================
   MODEL
============================== */

// Batch is one scheduled cohort: one course, one trainer, one fee.
// Invariants guarded at the handler layer:
//   - batch_code is globally unique
//   - at most one active batch per (trainer, course)
type Batch struct {
	BatchID uuid.UUID `gorm:"column:batch_id;type:uuid;primaryKey" json:"batch_id"`

	BatchCode        string    `gorm:"column:batch_code;type:varchar(40);not null;uniqueIndex" json:"batch_code"`
	BatchName        string    `gorm:"column:batch_name;type:varchar(120);not null" json:"batch_name"`
	BatchDescription string    `gorm:"column:batch_description;type:text;not null" json:"batch_description"`
	BatchStartDate   time.Time `gorm:"column:batch_start_date;type:date;not null" json:"batch_start_date"`

	BatchFee         float64 `gorm:"column:batch_fee;not null;check:batch_fee >= 0" json:"batch_fee"`
	BatchCertificate bool    `gorm:"column:batch_certificate;not null;default:false" json:"batch_certificate"`

	// FK → users(user_id), courses(course_id)
	BatchTrainerID uuid.UUID `gorm:"column:batch_trainer_id;type:uuid;not null;index" json:"batch_trainer_id"`
	BatchCourseID  uuid.UUID `gorm:"column:batch_course_id;type:uuid;not null;index" json:"batch_course_id"`

	BatchTrainerCost float64 `gorm:"column:batch_trainer_cost;not null;default:0" json:"batch_trainer_cost"`
	BatchTrainerTds  float64 `gorm:"column:batch_trainer_tds;not null;default:0" json:"batch_trainer_tds"`

	BatchStatus BatchStatus `gorm:"column:batch_status;type:varchar(20);not null;default:'active';index" json:"batch_status"`

	BatchCreatedAt time.Time      `gorm:"column:batch_created_at;autoCreateTime" json:"batch_created_at"`
	BatchUpdatedAt time.Time      `gorm:"column:batch_updated_at;autoUpdateTime" json:"batch_updated_at"`
	BatchDeletedAt gorm.DeletedAt `gorm:"column:batch_deleted_at;index" json:"-"`
}

func (Batch) TableName() string { return "batches" }

func (m *Batch) BeforeCreate(tx *gorm.DB) error {
	if m.BatchID == uuid.Nil {
		m.BatchID = uuid.New()
	}
	if m.BatchStatus == "" {
		m.BatchStatus = BatchStatusActive
	}
	return nil
}
