// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordInstallmentRequest settles one ledger row. The payment moment is
// optional; the ledger stamps the current time when it is omitted.
type RecordInstallmentRequest struct {
	Reference       string     `json:"payment_reference" validate:"required,min=1,max=120"`
	PaymentDateTime *time.Time `json:"payment_date_time,omitempty"`
}

func (r *RecordInstallmentRequest) Normalize() {
	r.Reference = strings.TrimSpace(r.Reference)
}

// CreateDirectPaymentRequest appends to the direct (no-scheme) payment path.
type CreateDirectPaymentRequest struct {
	PaymodeID       uuid.UUID `json:"payment_paymode_id" validate:"required"`
	UserID          uuid.UUID `json:"payment_user_id" validate:"required"`
	BatchID         uuid.UUID `json:"payment_batch_id" validate:"required"`
	Amount          float64   `json:"payment_amount" validate:"required,gt=0"`
	PaymentDateTime time.Time `json:"payment_date_time" validate:"required"`
	Reference       *string   `json:"payment_reference" validate:"omitempty,max=120"`
	Reason          *string   `json:"payment_reason"`
}

// GatewayOrderRequest asks the payment gateway for a checkout token.
type GatewayOrderRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency" validate:"omitempty,len=3"`
	CustomerName  string  `json:"customer_name" validate:"required,min=2,max=80"`
	CustomerEmail string  `json:"customer_email" validate:"required,email"`
}
