// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusActive = "active"
)

// Payment is the direct (legacy) payment path: an append-only running total
// per (user, batch) that must never exceed the batch fee. It exists alongside
// the installment ledger for batches without a fee scheme.
type Payment struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey" json:"payment_id"`

	// FK → paymodes(paymode_id), users(user_id), batches(batch_id)
	PaymentPaymodeID uuid.UUID `gorm:"column:payment_paymode_id;type:uuid;not null" json:"payment_paymode_id"`
	PaymentUserID    uuid.UUID `gorm:"column:payment_user_id;type:uuid;not null;index:idx_payment_user_batch,priority:1" json:"payment_user_id"`
	PaymentBatchID   uuid.UUID `gorm:"column:payment_batch_id;type:uuid;not null;index:idx_payment_user_batch,priority:2" json:"payment_batch_id"`

	PaymentAmount    float64   `gorm:"column:payment_amount;not null;check:payment_amount > 0" json:"payment_amount"`
	PaymentDateTime  time.Time `gorm:"column:payment_date_time;not null;index" json:"payment_date_time"`
	PaymentReference *string   `gorm:"column:payment_reference;type:varchar(120)" json:"payment_reference,omitempty"`
	PaymentReason    *string   `gorm:"column:payment_reason;type:text" json:"payment_reason,omitempty"`

	PaymentStatus string `gorm:"column:payment_status;type:varchar(20);not null;default:'active'" json:"payment_status"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
}

func (Payment) TableName() string { return "payments" }

func (m *Payment) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	if m.PaymentStatus == "" {
		m.PaymentStatus = PaymentStatusActive
	}
	return nil
}
