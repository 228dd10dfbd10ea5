// file: internals/features/finance/feeschemes/model/fee_scheme_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeeSchemePayment is one scheduled installment inside a fee scheme.
// The sum of a scheme's installments is the implied scheme total; it is
// deliberately not validated against the batch fee.
type FeeSchemePayment struct {
	FeeSchemePaymentID uuid.UUID `gorm:"column:fee_scheme_payment_id;type:uuid;primaryKey" json:"fee_scheme_payment_id"`

	// FK → fee_schemes(fee_scheme_id)
	FeeSchemePaymentSchemeID uuid.UUID `gorm:"column:fee_scheme_payment_scheme_id;type:uuid;not null;index;uniqueIndex:uniq_installment_name_per_scheme,priority:1" json:"fee_scheme_payment_scheme_id"`

	FeeSchemePaymentName    string    `gorm:"column:fee_scheme_payment_name;type:varchar(80);not null;uniqueIndex:uniq_installment_name_per_scheme,priority:2" json:"fee_scheme_payment_name"`
	FeeSchemePaymentDueDate time.Time `gorm:"column:fee_scheme_payment_due_date;type:date;not null" json:"fee_scheme_payment_due_date"`
	FeeSchemePaymentAmount  float64   `gorm:"column:fee_scheme_payment_amount;not null;check:fee_scheme_payment_amount > 0" json:"fee_scheme_payment_amount"`
	FeeSchemePaymentRemarks *string   `gorm:"column:fee_scheme_payment_remarks;type:text" json:"fee_scheme_payment_remarks,omitempty"`
	FeeSchemePaymentStatus  string    `gorm:"column:fee_scheme_payment_status;type:varchar(20);not null;default:'active'" json:"fee_scheme_payment_status"`

	FeeSchemePaymentCreatedAt time.Time      `gorm:"column:fee_scheme_payment_created_at;autoCreateTime" json:"fee_scheme_payment_created_at"`
	FeeSchemePaymentUpdatedAt time.Time      `gorm:"column:fee_scheme_payment_updated_at;autoUpdateTime" json:"fee_scheme_payment_updated_at"`
	FeeSchemePaymentDeletedAt gorm.DeletedAt `gorm:"column:fee_scheme_payment_deleted_at;index" json:"-"`
}

func (FeeSchemePayment) TableName() string { return "fee_scheme_payments" }

func (m *FeeSchemePayment) BeforeCreate(tx *gorm.DB) error {
	if m.FeeSchemePaymentID == uuid.Nil {
		m.FeeSchemePaymentID = uuid.New()
	}
	if m.FeeSchemePaymentStatus == "" {
		m.FeeSchemePaymentStatus = FeeSchemeStatusActive
	}
	return nil
}
