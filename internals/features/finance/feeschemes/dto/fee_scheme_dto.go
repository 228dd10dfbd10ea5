// file: internals/features/finance/feeschemes/dto/fee_scheme_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "tutorhub_backend/internals/features/finance/feeschemes/model"
)

/* =========================================================
   SCHEME
   ========================================================= */

type CreateFeeSchemeRequest struct {
	BatchID uuid.UUID `json:"fee_scheme_batch_id" validate:"required"`
	Name    string    `json:"fee_scheme_name" validate:"required,min=2,max=80"`
	Remarks *string   `json:"fee_scheme_remarks"`
}

func (r *CreateFeeSchemeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Remarks != nil {
		v := strings.TrimSpace(*r.Remarks)
		if v == "" {
			r.Remarks = nil
		} else {
			r.Remarks = &v
		}
	}
}

func (r CreateFeeSchemeRequest) ToModel() m.FeeScheme {
	return m.FeeScheme{
		FeeSchemeBatchID: r.BatchID,
		FeeSchemeName:    r.Name,
		FeeSchemeRemarks: r.Remarks,
	}
}

type UpdateFeeSchemeRequest struct {
	Name    *string `json:"fee_scheme_name" validate:"omitempty,min=2,max=80"`
	Remarks *string `json:"fee_scheme_remarks"`
	Status  *string `json:"fee_scheme_status" validate:"omitempty,oneof=active inactive"`
}

func (r UpdateFeeSchemeRequest) Apply(s *m.FeeScheme) {
	if r.Name != nil {
		s.FeeSchemeName = strings.TrimSpace(*r.Name)
	}
	if r.Remarks != nil {
		s.FeeSchemeRemarks = r.Remarks
	}
	if r.Status != nil {
		s.FeeSchemeStatus = *r.Status
	}
}

/* =========================================================
   INSTALLMENT
   ========================================================= */

type CreateInstallmentRequest struct {
	SchemeID uuid.UUID `json:"fee_scheme_payment_scheme_id" validate:"required"`
	Name     string    `json:"fee_scheme_payment_name" validate:"required,min=2,max=80"`
	DueDate  time.Time `json:"fee_scheme_payment_due_date" validate:"required"`
	Amount   float64   `json:"fee_scheme_payment_amount" validate:"required,gt=0"`
	Remarks  *string   `json:"fee_scheme_payment_remarks"`
}

func (r *CreateInstallmentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateInstallmentRequest) ToModel() m.FeeSchemePayment {
	return m.FeeSchemePayment{
		FeeSchemePaymentSchemeID: r.SchemeID,
		FeeSchemePaymentName:     r.Name,
		FeeSchemePaymentDueDate:  r.DueDate,
		FeeSchemePaymentAmount:   r.Amount,
		FeeSchemePaymentRemarks:  r.Remarks,
	}
}

type UpdateInstallmentRequest struct {
	Name    *string    `json:"fee_scheme_payment_name" validate:"omitempty,min=2,max=80"`
	DueDate *time.Time `json:"fee_scheme_payment_due_date"`
	Amount  *float64   `json:"fee_scheme_payment_amount" validate:"omitempty,gt=0"`
	Remarks *string    `json:"fee_scheme_payment_remarks"`
}

func (r UpdateInstallmentRequest) Apply(p *m.FeeSchemePayment) {
	if r.Name != nil {
		p.FeeSchemePaymentName = strings.TrimSpace(*r.Name)
	}
	if r.DueDate != nil {
		p.FeeSchemePaymentDueDate = *r.DueDate
	}
	if r.Amount != nil {
		p.FeeSchemePaymentAmount = *r.Amount
	}
	if r.Remarks != nil {
		p.FeeSchemePaymentRemarks = r.Remarks
	}
}
