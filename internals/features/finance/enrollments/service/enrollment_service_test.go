// file: internals/features/finance/enrollments/service/enrollment_service_test.go
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
	feeModel "tutorhub_backend/internals/features/finance/feeschemes/model"
	userModel "tutorhub_backend/internals/features/users/users/model"
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

func seedStudent(t *testing.T, db *gorm.DB, name string) userModel.User {
	t.Helper()
	u := userModel.User{
		UserUsername:    name,
		UserEmail:       name + "@example.com",
		UserMobile:      "9" + uuid.NewString()[:9],
		UserPassword:    "x",
		UserRole:        userModel.UserRoleStudent,
		UserJoiningDate: time.Now(),
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return u
}

func seedBatch(t *testing.T, db *gorm.DB, code string, fee float64) batchModel.Batch {
	t.Helper()
	b := batchModel.Batch{
		BatchCode:        code,
		BatchName:        "Batch " + code,
		BatchDescription: "test batch",
		BatchStartDate:   time.Now(),
		BatchFee:         fee,
		BatchTrainerID:   uuid.New(),
		BatchCourseID:    uuid.New(),
	}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("seed batch %s: %v", code, err)
	}
	return b
}

func seedScheme(t *testing.T, db *gorm.DB, batchID uuid.UUID, amounts ...float64) feeModel.FeeScheme {
	t.Helper()
	s := feeModel.FeeScheme{FeeSchemeBatchID: batchID, FeeSchemeName: "standard"}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed scheme: %v", err)
	}
	for i, amt := range amounts {
		p := feeModel.FeeSchemePayment{
			FeeSchemePaymentSchemeID: s.FeeSchemeID,
			FeeSchemePaymentName:     "installment " + string(rune('A'+i)),
			FeeSchemePaymentDueDate:  time.Now().AddDate(0, i, 0),
			FeeSchemePaymentAmount:   amt,
		}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed installment %d: %v", i, err)
		}
	}
	return s
}

func TestEnroll_FansOutLedgerRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db, nil)

	batch := seedBatch(t, db, "GO-101", 15000)
	scheme := seedScheme(t, db, batch.BatchID, 5000, 5000, 5000)
	s1 := seedStudent(t, db, "asha")
	s2 := seedStudent(t, db, "vik")

	res, err := svc.Enroll(context.Background(), batch.BatchID, &scheme.FeeSchemeID,
		[]uuid.UUID{s1.UserID, s2.UserID})
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if len(res.Enrolled) != 2 || len(res.Skipped) != 0 {
		t.Fatalf("got %d enrolled / %d skipped, want 2 / 0", len(res.Enrolled), len(res.Skipped))
	}

	for _, bs := range res.Enrolled {
		var rows []enrollModel.BatchStudentPayment
		if err := db.Where("batch_student_payment_student_id = ?", bs.BatchStudentID).Find(&rows).Error; err != nil {
			t.Fatalf("load ledger: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("student %s: got %d ledger rows, want 3", bs.BatchStudentUserID, len(rows))
		}
		var sum float64
		for _, r := range rows {
			if r.BatchStudentPaymentStatus != enrollModel.LedgerStatusActive {
				t.Errorf("row %s: status %q, want active", r.BatchStudentPaymentID, r.BatchStudentPaymentStatus)
			}
			if r.BatchStudentPaymentDateTime != nil || r.BatchStudentPaymentReference != nil {
				t.Errorf("row %s: fresh ledger row already carries payment details", r.BatchStudentPaymentID)
			}
			sum += r.BatchStudentPaymentAmount
		}
		if sum != 15000 {
			t.Errorf("ledger sum = %v, want 15000", sum)
		}
		if bs.BatchStudentFeeSchemeID == nil || *bs.BatchStudentFeeSchemeID != scheme.FeeSchemeID {
			t.Errorf("enrollment not bound to scheme")
		}
	}
}

func TestEnroll_FreeBatchSkipsScheme(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db, nil)

	batch := seedBatch(t, db, "FREE-1", 0)
	s1 := seedStudent(t, db, "mira")

	res, err := svc.Enroll(context.Background(), batch.BatchID, nil, []uuid.UUID{s1.UserID})
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if len(res.Enrolled) != 1 {
		t.Fatalf("got %d enrolled, want 1", len(res.Enrolled))
	}
	if res.Enrolled[0].BatchStudentFeeSchemeID != nil {
		t.Errorf("free batch enrollment bound to a scheme")
	}
	var ledger int64
	db.Model(&enrollModel.BatchStudentPayment{}).Count(&ledger)
	if ledger != 0 {
		t.Errorf("free batch created %d ledger rows, want 0", ledger)
	}
}

func TestEnroll_SkipsMissingAndDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db, nil)

	batch := seedBatch(t, db, "GO-102", 9000)
	scheme := seedScheme(t, db, batch.BatchID, 9000)
	s1 := seedStudent(t, db, "ravi")
	ghost := uuid.New()

	if _, err := svc.Enroll(context.Background(), batch.BatchID, &scheme.FeeSchemeID, []uuid.UUID{s1.UserID}); err != nil {
		t.Fatalf("first enroll: %v", err)
	}

	res, err := svc.Enroll(context.Background(), batch.BatchID, &scheme.FeeSchemeID, []uuid.UUID{s1.UserID, ghost})
	if err != nil {
		t.Fatalf("second enroll: %v", err)
	}
	if len(res.Enrolled) != 0 {
		t.Fatalf("got %d enrolled, want 0", len(res.Enrolled))
	}
	if len(res.Skipped) != 2 {
		t.Fatalf("got %d skipped, want 2", len(res.Skipped))
	}
	reasons := map[uuid.UUID]string{}
	for _, sk := range res.Skipped {
		reasons[sk.UserID] = sk.Reason
	}
	if reasons[s1.UserID] != SkipReasonAlreadyMapped {
		t.Errorf("duplicate reason = %q, want %q", reasons[s1.UserID], SkipReasonAlreadyMapped)
	}
	if reasons[ghost] != SkipReasonUserNotFound {
		t.Errorf("ghost reason = %q, want %q", reasons[ghost], SkipReasonUserNotFound)
	}

	// the duplicate attempt must not have doubled the ledger
	var ledger int64
	db.Model(&enrollModel.BatchStudentPayment{}).Count(&ledger)
	if ledger != 1 {
		t.Errorf("ledger rows = %d, want 1", ledger)
	}
}

func TestEnroll_SchemeValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db, nil)

	paid := seedBatch(t, db, "GO-103", 5000)
	other := seedBatch(t, db, "GO-104", 5000)
	otherScheme := seedScheme(t, db, other.BatchID, 5000)
	s1 := seedStudent(t, db, "tara")
	ids := []uuid.UUID{s1.UserID}
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, paid.BatchID, nil, ids); err != ErrFeeSchemeRequired {
		t.Errorf("missing scheme: got %v, want ErrFeeSchemeRequired", err)
	}
	bogus := uuid.New()
	if _, err := svc.Enroll(ctx, paid.BatchID, &bogus, ids); err != ErrFeeSchemeNotFound {
		t.Errorf("unknown scheme: got %v, want ErrFeeSchemeNotFound", err)
	}
	if _, err := svc.Enroll(ctx, paid.BatchID, &otherScheme.FeeSchemeID, ids); err != ErrFeeSchemeBatchMismatch {
		t.Errorf("foreign scheme: got %v, want ErrFeeSchemeBatchMismatch", err)
	}
	if _, err := svc.Enroll(ctx, uuid.New(), &otherScheme.FeeSchemeID, ids); err != ErrBatchNotFound {
		t.Errorf("unknown batch: got %v, want ErrBatchNotFound", err)
	}
	if _, err := svc.Enroll(ctx, paid.BatchID, nil, nil); err != ErrNoStudents {
		t.Errorf("empty students: got %v, want ErrNoStudents", err)
	}
}

func TestUnenroll_RemovesLedger(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db, nil)

	batch := seedBatch(t, db, "GO-105", 6000)
	scheme := seedScheme(t, db, batch.BatchID, 3000, 3000)
	s1 := seedStudent(t, db, "neel")
	s2 := seedStudent(t, db, "gita")

	if _, err := svc.Enroll(context.Background(), batch.BatchID, &scheme.FeeSchemeID,
		[]uuid.UUID{s1.UserID, s2.UserID}); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	if err := svc.Unenroll(context.Background(), batch.BatchID, s1.UserID); err != nil {
		t.Fatalf("unenroll: %v", err)
	}

	var mappings, ledger int64
	db.Model(&enrollModel.BatchStudent{}).Count(&mappings)
	db.Model(&enrollModel.BatchStudentPayment{}).Count(&ledger)
	if mappings != 1 || ledger != 2 {
		t.Errorf("after unenroll: %d mappings / %d ledger rows, want 1 / 2", mappings, ledger)
	}

	if err := svc.Unenroll(context.Background(), batch.BatchID, s1.UserID); err != ErrEnrollmentNotFound {
		t.Errorf("second unenroll: got %v, want ErrEnrollmentNotFound", err)
	}
}
