// file: internals/features/finance/feeschemes/model/fee_scheme_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FeeSchemeStatusActive   = "active"
	FeeSchemeStatusInactive = "inactive"
)

// FeeScheme is a named installment plan attached to one batch.
// fee_scheme_name is unique within its batch.
type FeeScheme struct {
	FeeSchemeID uuid.UUID `gorm:"column:fee_scheme_id;type:uuid;primaryKey" json:"fee_scheme_id"`

	// FK → batches(batch_id)
	FeeSchemeBatchID uuid.UUID `gorm:"column:fee_scheme_batch_id;type:uuid;not null;index;uniqueIndex:uniq_scheme_name_per_batch,priority:1" json:"fee_scheme_batch_id"`

	FeeSchemeName    string  `gorm:"column:fee_scheme_name;type:varchar(80);not null;uniqueIndex:uniq_scheme_name_per_batch,priority:2" json:"fee_scheme_name"`
	FeeSchemeRemarks *string `gorm:"column:fee_scheme_remarks;type:text" json:"fee_scheme_remarks,omitempty"`
	FeeSchemeStatus  string  `gorm:"column:fee_scheme_status;type:varchar(20);not null;default:'active'" json:"fee_scheme_status"`

	FeeSchemeCreatedAt time.Time      `gorm:"column:fee_scheme_created_at;autoCreateTime" json:"fee_scheme_created_at"`
	FeeSchemeUpdatedAt time.Time      `gorm:"column:fee_scheme_updated_at;autoUpdateTime" json:"fee_scheme_updated_at"`
	FeeSchemeDeletedAt gorm.DeletedAt `gorm:"column:fee_scheme_deleted_at;index" json:"-"`
}

func (FeeScheme) TableName() string { return "fee_schemes" }

func (m *FeeScheme) BeforeCreate(tx *gorm.DB) error {
	if m.FeeSchemeID == uuid.Nil {
		m.FeeSchemeID = uuid.New()
	}
	if m.FeeSchemeStatus == "" {
		m.FeeSchemeStatus = FeeSchemeStatusActive
	}
	return nil
}
