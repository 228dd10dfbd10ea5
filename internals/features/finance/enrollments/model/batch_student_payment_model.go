// file: internals/features/finance/enrollments/model/batch_student_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — ledger row status
============================== */

// active (pending) --(record payment)--> paid. No other transitions.
type LedgerStatus string

const (
	LedgerStatusActive LedgerStatus = "active"
	LedgerStatusPaid   LedgerStatus = "paid"
)

// BatchStudentPayment is one instantiated installment obligation for one
// enrolled student. Rows are fanned out in bulk at enrollment (one per
// FeeSchemePayment of the bound scheme), mutated in place when paid, and
// bulk-deleted only when the enrollment itself is removed.
type BatchStudentPayment struct {
	BatchStudentPaymentID uuid.UUID `gorm:"column:batch_student_payment_id;type:uuid;primaryKey" json:"batch_student_payment_id"`

	// FK → batch_students(batch_student_id)
	BatchStudentPaymentStudentID uuid.UUID `gorm:"column:batch_student_payment_student_id;type:uuid;not null;index" json:"batch_student_payment_student_id"`

	BatchStudentPaymentAmount   float64   `gorm:"column:batch_student_payment_amount;not null" json:"batch_student_payment_amount"`
	BatchStudentPaymentLastDate time.Time `gorm:"column:batch_student_payment_last_date;type:date;not null" json:"batch_student_payment_last_date"`

	BatchStudentPaymentReference *string    `gorm:"column:batch_student_payment_reference;type:varchar(120)" json:"batch_student_payment_reference,omitempty"`
	BatchStudentPaymentDateTime  *time.Time `gorm:"column:batch_student_payment_date_time;index" json:"batch_student_payment_date_time,omitempty"`

	BatchStudentPaymentStatus LedgerStatus `gorm:"column:batch_student_payment_status;type:varchar(20);not null;default:'active';index" json:"batch_student_payment_status"`

	BatchStudentPaymentCreatedAt time.Time `gorm:"column:batch_student_payment_created_at;autoCreateTime;index" json:"batch_student_payment_created_at"`
	BatchStudentPaymentUpdatedAt time.Time `gorm:"column:batch_student_payment_updated_at;autoUpdateTime" json:"batch_student_payment_updated_at"`
}

func (BatchStudentPayment) TableName() string { return "batch_student_payments" }

func (m *BatchStudentPayment) BeforeCreate(tx *gorm.DB) error {
	if m.BatchStudentPaymentID == uuid.Nil {
		m.BatchStudentPaymentID = uuid.New()
	}
	if m.BatchStudentPaymentStatus == "" {
		m.BatchStudentPaymentStatus = LedgerStatusActive
	}
	return nil
}
