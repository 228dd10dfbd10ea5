// file: internals/features/finance/payments/service/ledger_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	batchModel "tutorhub_backend/internals/features/academics/batches/model"
	enrollModel "tutorhub_backend/internals/features/finance/enrollments/model"
	paymentModel "tutorhub_backend/internals/features/finance/payments/model"
)

var (
	ErrLedgerRowNotFound = errors.New("batch student payment not found")
	ErrBatchNotFound     = errors.New("batch does not exist")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrOverpayment       = errors.New("amount exceeds the remaining batch fee")
)

// LedgerService settles money against the two payment paths: the installment
// ledger created at enrollment, and the direct append-only payments table
// used by batches that run without a scheme.
type LedgerService struct {
	DB *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{DB: db}
}

/* ==============================
   Installment path
============================== */

// RecordInstallmentPayment marks one ledger row paid, stamping the external
// reference and the payment moment (now when paidAt is nil). Re-recording an
// already-paid row simply overwrites the reference and date; the row never
// returns to active.
func (s *LedgerService) RecordInstallmentPayment(ctx context.Context, rowID uuid.UUID, reference string, paidAt *time.Time) (*enrollModel.BatchStudentPayment, error) {
	db := s.DB.WithContext(ctx)

	var row enrollModel.BatchStudentPayment
	if err := db.First(&row, "batch_student_payment_id = ?", rowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLedgerRowNotFound
		}
		return nil, err
	}

	if paidAt == nil {
		now := time.Now()
		paidAt = &now
	}

	row.BatchStudentPaymentReference = &reference
	row.BatchStudentPaymentDateTime = paidAt
	row.BatchStudentPaymentStatus = enrollModel.LedgerStatusPaid

	if err := db.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

/* ==============================
   Direct path
============================== */

type DirectPaymentInput struct {
	UserID    uuid.UUID
	BatchID   uuid.UUID
	PaymodeID uuid.UUID
	Amount    float64
	PaidAt    time.Time
	Reference *string
	Reason    *string
}

// DirectPaymentResult echoes the new running totals so the caller can render
// the receipt without a second round trip.
type DirectPaymentResult struct {
	Payment         paymentModel.Payment `json:"payment"`
	AmountPaid      float64              `json:"amount_paid"`
	TotalPaidAmount float64              `json:"total_paid_amount"`
	Balance         float64              `json:"balance"`
	Total           float64              `json:"total"`
}

// RecordDirectPayment appends one payment for (user, batch) after checking
// that the running total stays within the batch fee. The sum check and the
// insert share one transaction so two concurrent payments cannot both sneak
// under the cap.
func (s *LedgerService) RecordDirectPayment(ctx context.Context, in DirectPaymentInput) (*DirectPaymentResult, error) {
	db := s.DB.WithContext(ctx)

	var batch batchModel.Batch
	if err := db.First(&batch, "batch_id = ?", in.BatchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}

	var result DirectPaymentResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var alreadyPaid float64
		if err := tx.Model(&paymentModel.Payment{}).
			Where("payment_user_id = ? AND payment_batch_id = ?", in.UserID, in.BatchID).
			Select("COALESCE(SUM(payment_amount), 0)").
			Scan(&alreadyPaid).Error; err != nil {
			return err
		}
		if alreadyPaid+in.Amount > batch.BatchFee {
			return ErrOverpayment
		}

		p := paymentModel.Payment{
			PaymentPaymodeID: in.PaymodeID,
			PaymentUserID:    in.UserID,
			PaymentBatchID:   in.BatchID,
			PaymentAmount:    in.Amount,
			PaymentDateTime:  in.PaidAt,
			PaymentReference: in.Reference,
			PaymentReason:    in.Reason,
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}

		result = DirectPaymentResult{
			Payment:         p,
			AmountPaid:      in.Amount,
			TotalPaidAmount: alreadyPaid + in.Amount,
			Balance:         batch.BatchFee - (alreadyPaid + in.Amount),
			Total:           batch.BatchFee,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteDirectPayment removes one payment row, restoring its amount to the
// student's balance.
func (s *LedgerService) DeleteDirectPayment(ctx context.Context, paymentID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Delete(&paymentModel.Payment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
