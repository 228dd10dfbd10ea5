// file: internals/features/finance/payments/model/paymode_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Paymode is a lookup row (cash, UPI, card, ...). Its CRUD is managed by the
// lookup-table admin outside this backend; payments only check it exists.
type Paymode struct {
	PaymodeID     uuid.UUID `gorm:"column:paymode_id;type:uuid;primaryKey" json:"paymode_id"`
	PaymodeName   string    `gorm:"column:paymode_name;type:varchar(60);not null;uniqueIndex" json:"paymode_name"`
	PaymodeStatus string    `gorm:"column:paymode_status;type:varchar(20);not null;default:'active'" json:"paymode_status"`

	PaymodeCreatedAt time.Time `gorm:"column:paymode_created_at;autoCreateTime" json:"paymode_created_at"`
	PaymodeUpdatedAt time.Time `gorm:"column:paymode_updated_at;autoUpdateTime" json:"paymode_updated_at"`
}

func (Paymode) TableName() string { return "paymodes" }

func (m *Paymode) BeforeCreate(tx *gorm.DB) error {
	if m.PaymodeID == uuid.Nil {
		m.PaymodeID = uuid.New()
	}
	if m.PaymodeStatus == "" {
		m.PaymodeStatus = "active"
	}
	return nil
}
