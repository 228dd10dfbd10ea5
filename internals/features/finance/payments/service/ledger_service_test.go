// file: internals/features/finance/payments/service/ledger_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	databases "tutorhub_backend/internals/databases"
	batchModel "tutorhub_backend/internals/features/academics/batches/model"
	enrollModel "tutorhub_backend/internals/features/finance/enrollments/model"
	paymentModel "tutorhub_backend/internals/features/finance/payments/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := databases.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedBatch(t *testing.T, db *gorm.DB, fee float64) batchModel.Batch {
	t.Helper()
	b := batchModel.Batch{
		BatchCode:        "B-" + uuid.NewString()[:8],
		BatchName:        "Ledger test batch",
		BatchDescription: "x",
		BatchStartDate:   time.Now(),
		BatchFee:         fee,
		BatchTrainerID:   uuid.New(),
		BatchCourseID:    uuid.New(),
	}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("seed batch: %v", err)
	}
	return b
}

func seedLedgerRow(t *testing.T, db *gorm.DB, amount float64) enrollModel.BatchStudentPayment {
	t.Helper()
	row := enrollModel.BatchStudentPayment{
		BatchStudentPaymentStudentID: uuid.New(),
		BatchStudentPaymentAmount:    amount,
		BatchStudentPaymentLastDate:  time.Now().AddDate(0, 1, 0),
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed ledger row: %v", err)
	}
	return row
}

func TestRecordInstallmentPayment(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedgerService(db)
	row := seedLedgerRow(t, db, 5000)
	paidAt := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	got, err := svc.RecordInstallmentPayment(context.Background(), row.BatchStudentPaymentID, "UTR123", &paidAt)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if got.BatchStudentPaymentStatus != enrollModel.LedgerStatusPaid {
		t.Errorf("status = %q, want paid", got.BatchStudentPaymentStatus)
	}
	if got.BatchStudentPaymentReference == nil || *got.BatchStudentPaymentReference != "UTR123" {
		t.Errorf("reference not stored")
	}
	if got.BatchStudentPaymentDateTime == nil || !got.BatchStudentPaymentDateTime.Equal(paidAt) {
		t.Errorf("payment date not stored")
	}

	// re-recording overwrites, never reverts
	later := paidAt.AddDate(0, 0, 5)
	got, err = svc.RecordInstallmentPayment(context.Background(), row.BatchStudentPaymentID, "UTR456", &later)
	if err != nil {
		t.Fatalf("re-record: %v", err)
	}
	if *got.BatchStudentPaymentReference != "UTR456" || !got.BatchStudentPaymentDateTime.Equal(later) {
		t.Errorf("re-record did not overwrite reference/date")
	}
	if got.BatchStudentPaymentStatus != enrollModel.LedgerStatusPaid {
		t.Errorf("re-record changed status to %q", got.BatchStudentPaymentStatus)
	}

	if _, err := svc.RecordInstallmentPayment(context.Background(), uuid.New(), "X", &paidAt); err != ErrLedgerRowNotFound {
		t.Errorf("unknown row: got %v, want ErrLedgerRowNotFound", err)
	}
}

func TestRecordInstallmentPayment_DefaultsDateToNow(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedgerService(db)
	row := seedLedgerRow(t, db, 5000)

	before := time.Now()
	got, err := svc.RecordInstallmentPayment(context.Background(), row.BatchStudentPaymentID, "UTR789", nil)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	after := time.Now()

	if got.BatchStudentPaymentStatus != enrollModel.LedgerStatusPaid {
		t.Errorf("status = %q, want paid", got.BatchStudentPaymentStatus)
	}
	if got.BatchStudentPaymentDateTime == nil {
		t.Fatalf("payment date not defaulted")
	}
	if got.BatchStudentPaymentDateTime.Before(before) || got.BatchStudentPaymentDateTime.After(after) {
		t.Errorf("defaulted date %v outside [%v, %v]", got.BatchStudentPaymentDateTime, before, after)
	}
}

func TestRecordDirectPayment_GuardsOverpayment(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedgerService(db)
	batch := seedBatch(t, db, 10000)
	user := uuid.New()
	paymode := uuid.New()
	ctx := context.Background()

	pay := func(amount float64) (*DirectPaymentResult, error) {
		return svc.RecordDirectPayment(ctx, DirectPaymentInput{
			UserID:    user,
			BatchID:   batch.BatchID,
			PaymodeID: paymode,
			Amount:    amount,
			PaidAt:    time.Now(),
		})
	}

	res, err := pay(6000)
	if err != nil {
		t.Fatalf("first payment: %v", err)
	}
	if res.TotalPaidAmount != 6000 || res.Balance != 4000 || res.Total != 10000 {
		t.Errorf("first receipt = paid %v balance %v total %v", res.TotalPaidAmount, res.Balance, res.Total)
	}

	if _, err := pay(5000); err != ErrOverpayment {
		t.Fatalf("overpayment: got %v, want ErrOverpayment", err)
	}
	var count int64
	db.Model(&paymentModel.Payment{}).Count(&count)
	if count != 1 {
		t.Errorf("rejected payment persisted: %d rows", count)
	}

	res, err = pay(4000)
	if err != nil {
		t.Fatalf("settling payment: %v", err)
	}
	if res.Balance != 0 || res.TotalPaidAmount != 10000 {
		t.Errorf("final receipt = paid %v balance %v", res.TotalPaidAmount, res.Balance)
	}

	if _, err := svc.RecordDirectPayment(ctx, DirectPaymentInput{
		UserID: user, BatchID: uuid.New(), PaymodeID: paymode, Amount: 1, PaidAt: time.Now(),
	}); err != ErrBatchNotFound {
		t.Errorf("unknown batch: got %v, want ErrBatchNotFound", err)
	}
}

func TestDeleteDirectPayment(t *testing.T) {
	db := newTestDB(t)
	svc := NewLedgerService(db)
	batch := seedBatch(t, db, 5000)
	user := uuid.New()

	res, err := svc.RecordDirectPayment(context.Background(), DirectPaymentInput{
		UserID: user, BatchID: batch.BatchID, PaymodeID: uuid.New(), Amount: 5000, PaidAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("payment: %v", err)
	}

	if err := svc.DeleteDirectPayment(context.Background(), res.Payment.PaymentID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteDirectPayment(context.Background(), res.Payment.PaymentID); err != ErrPaymentNotFound {
		t.Errorf("second delete: got %v, want ErrPaymentNotFound", err)
	}

	// the amount is restored: paying the full fee again succeeds
	if _, err := svc.RecordDirectPayment(context.Background(), DirectPaymentInput{
		UserID: user, BatchID: batch.BatchID, PaymodeID: uuid.New(), Amount: 5000, PaidAt: time.Now(),
	}); err != nil {
		t.Errorf("re-payment after delete: %v", err)
	}
}
