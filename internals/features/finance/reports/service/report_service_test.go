// file: internals/features/finance/reports/service/report_service_test.go
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
	userModel "tutorhub_backend/internals/features/users/users/model"
	helper "tutorhub_backend/internals/helpers"
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

type fixture struct {
	batch   batchModel.Batch
	student userModel.User
	enroll  enrollModel.BatchStudent
	ledger  []enrollModel.BatchStudentPayment
}

// seedEnrolledStudent builds a batch with one enrolled student and one
// active ledger row per amount.
func seedEnrolledStudent(t *testing.T, db *gorm.DB, fee float64, mobile string, amounts ...float64) fixture {
	t.Helper()
	b := batchModel.Batch{
		BatchCode:        "B-" + uuid.NewString()[:8],
		BatchName:        "Report batch",
		BatchDescription: "x",
		BatchStartDate:   time.Now(),
		BatchFee:         fee,
		BatchTrainerID:   uuid.New(),
		BatchCourseID:    uuid.New(),
	}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("seed batch: %v", err)
	}
	u := userModel.User{
		UserUsername:    "student-" + mobile,
		UserEmail:       mobile + "@example.com",
		UserMobile:      mobile,
		UserPassword:    "x",
		UserRole:        userModel.UserRoleStudent,
		UserJoiningDate: time.Now(),
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	bs := enrollModel.BatchStudent{
		BatchStudentBatchID: b.BatchID,
		BatchStudentUserID:  u.UserID,
	}
	if err := db.Create(&bs).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}
	var rows []enrollModel.BatchStudentPayment
	for i, amt := range amounts {
		row := enrollModel.BatchStudentPayment{
			BatchStudentPaymentStudentID: bs.BatchStudentID,
			BatchStudentPaymentAmount:    amt,
			BatchStudentPaymentLastDate:  time.Now().AddDate(0, i, 0),
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed ledger row %d: %v", i, err)
		}
		rows = append(rows, row)
	}
	return fixture{batch: b, student: u, enroll: bs, ledger: rows}
}

func markPaid(t *testing.T, db *gorm.DB, row enrollModel.BatchStudentPayment, ref string, at time.Time) {
	t.Helper()
	err := db.Model(&enrollModel.BatchStudentPayment{}).
		Where("batch_student_payment_id = ?", row.BatchStudentPaymentID).
		Updates(map[string]any{
			"batch_student_payment_status":    enrollModel.LedgerStatusPaid,
			"batch_student_payment_reference": ref,
			"batch_student_payment_date_time": at,
		}).Error
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
}

func TestCollectionAndPendingReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	ctx := context.Background()

	fx := seedEnrolledStudent(t, db, 3000, "9000000001", 1000, 1000, 1000)
	paidAt := time.Date(2026, 2, 10, 11, 0, 0, 0, time.UTC)
	markPaid(t, db, fx.ledger[0], "UTR1", paidAt)

	col, err := svc.CollectionReport(ctx, ReportFilter{BatchID: &fx.batch.BatchID})
	if err != nil {
		t.Fatalf("collection report: %v", err)
	}
	if col.Summary.ReceivedAmount != 1000 || col.Summary.Count != 1 {
		t.Errorf("received %v count %d, want 1000 / 1", col.Summary.ReceivedAmount, col.Summary.Count)
	}
	if col.Summary.TotalAmount != 3000 || col.Summary.PendingAmount != 2000 {
		t.Errorf("total %v pending %v, want 3000 / 2000", col.Summary.TotalAmount, col.Summary.PendingAmount)
	}
	if len(col.Rows) != 1 || col.Rows[0].Amount != 1000 || col.Rows[0].UserMobile != "9000000001" {
		t.Errorf("unexpected rows: %+v", col.Rows)
	}

	pen, err := svc.PendingReport(ctx, ReportFilter{BatchID: &fx.batch.BatchID})
	if err != nil {
		t.Fatalf("pending report: %v", err)
	}
	if pen.Summary.Count != 2 || pen.Summary.ReceivedAmount != 2000 {
		t.Errorf("pending count %d sum %v, want 2 / 2000", pen.Summary.Count, pen.Summary.ReceivedAmount)
	}

	// window that misses the payment moment
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	col, err = svc.CollectionReport(ctx, ReportFilter{
		BatchID: &fx.batch.BatchID,
		Range:   helper.DateRange{From: &from, To: &to},
	})
	if err != nil {
		t.Fatalf("windowed report: %v", err)
	}
	if col.Summary.Count != 0 || col.Summary.ReceivedAmount != 0 {
		t.Errorf("windowed count %d sum %v, want 0 / 0", col.Summary.Count, col.Summary.ReceivedAmount)
	}

	if _, err := svc.CollectionReport(ctx, ReportFilter{BatchID: ptr(uuid.New())}); err != ErrBatchNotFound {
		t.Errorf("unknown batch: got %v, want ErrBatchNotFound", err)
	}
}

func TestCollectionReport_OverallSkipsBatchTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	a := seedEnrolledStudent(t, db, 2000, "9000000002", 2000)
	b := seedEnrolledStudent(t, db, 4000, "9000000003", 4000)
	now := time.Now()
	markPaid(t, db, a.ledger[0], "A1", now)
	markPaid(t, db, b.ledger[0], "B1", now)

	rep, err := svc.CollectionReport(context.Background(), ReportFilter{})
	if err != nil {
		t.Fatalf("overall report: %v", err)
	}
	if rep.Summary.ReceivedAmount != 6000 || rep.Summary.Count != 2 {
		t.Errorf("received %v count %d, want 6000 / 2", rep.Summary.ReceivedAmount, rep.Summary.Count)
	}
	if rep.Summary.TotalAmount != 0 || rep.Summary.PendingAmount != 0 {
		t.Errorf("overall report computed batch totals: %+v", rep.Summary)
	}
	if rep.Summary.MinAmount != 2000 || rep.Summary.MaxAmount != 4000 || rep.Summary.AvgAmount != 3000 {
		t.Errorf("min/max/avg = %v/%v/%v", rep.Summary.MinAmount, rep.Summary.MaxAmount, rep.Summary.AvgAmount)
	}
}

func TestCollectionReport_PagingLeavesSummaryAlone(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	ctx := context.Background()

	fx := seedEnrolledStudent(t, db, 5000, "9000000007", 1000, 1500, 2500)
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	for i, row := range fx.ledger {
		markPaid(t, db, row, "UTR-P", base.AddDate(0, 0, i))
	}

	full, err := svc.CollectionReport(ctx, ReportFilter{BatchID: &fx.batch.BatchID})
	if err != nil {
		t.Fatalf("unpaged report: %v", err)
	}

	paged, err := svc.CollectionReport(ctx, ReportFilter{BatchID: &fx.batch.BatchID, Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("paged report: %v", err)
	}
	if len(paged.Rows) != 1 {
		t.Fatalf("page 2 of limit 2 returned %d rows, want 1", len(paged.Rows))
	}
	if paged.Total != 3 {
		t.Errorf("total = %d, want 3", paged.Total)
	}
	if paged.Summary != full.Summary {
		t.Errorf("paging changed the summary: paged %+v, unpaged %+v", paged.Summary, full.Summary)
	}
	if paged.Summary.ReceivedAmount != 5000 || paged.Summary.Count != 3 {
		t.Errorf("received %v count %d, want 5000 / 3", paged.Summary.ReceivedAmount, paged.Summary.Count)
	}
}

func TestMonthlySummary_PendingIsLifetime(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	fx := seedEnrolledStudent(t, db, 3000, "9000000004", 1000, 1000, 1000)
	// one installment paid in January, one in February
	markPaid(t, db, fx.ledger[0], "JAN", time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC))
	markPaid(t, db, fx.ledger[1], "FEB", time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC))

	res, err := svc.MonthlySummary(context.Background(), 2, 2026)
	if err != nil {
		t.Fatalf("monthly summary: %v", err)
	}
	if len(res.Batches) != 1 || len(res.Batches[0].Students) != 1 {
		t.Fatalf("unexpected shape: %+v", res)
	}
	st := res.Batches[0].Students[0]
	if st.TotalPaid != 1000 {
		t.Errorf("February paid = %v, want 1000", st.TotalPaid)
	}
	// pending subtracts everything ever paid, not just this month
	if st.TotalPending != 1000 {
		t.Errorf("pending = %v, want 1000", st.TotalPending)
	}
	if st.TotalFee != 3000 || res.TotalPaid != 1000 || res.TotalFee != 3000 {
		t.Errorf("rollups: student fee %v, grand paid %v fee %v", st.TotalFee, res.TotalPaid, res.TotalFee)
	}
}

func TestMonthlySummaryForUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	ctx := context.Background()

	fx := seedEnrolledStudent(t, db, 2000, "9000000005", 1000, 1000)
	markPaid(t, db, fx.ledger[0], "JAN", time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC))

	res, err := svc.MonthlySummaryForUser(ctx, fx.student.UserID, 1, 2026)
	if err != nil {
		t.Fatalf("for user: %v", err)
	}
	if res == nil || res.TotalPaid != 1000 {
		t.Fatalf("unexpected result: %+v", res)
	}

	// no paid rows in the window → empty outcome, not an error
	res, err = svc.MonthlySummaryForUser(ctx, fx.student.UserID, 6, 2026)
	if err != nil {
		t.Fatalf("empty window: %v", err)
	}
	if res != nil {
		t.Errorf("empty window returned %+v, want nil", res)
	}

	if _, err := svc.MonthlySummaryForUser(ctx, uuid.New(), 1, 2026); err != ErrUserNotFound {
		t.Errorf("ghost user: got %v, want ErrUserNotFound", err)
	}
}

func TestSearchPaymentsByMobile(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	ctx := context.Background()

	fx := seedEnrolledStudent(t, db, 3000, "9000000006", 1000, 1000, 1000)
	markPaid(t, db, fx.ledger[0], "X1", time.Now())

	res, err := svc.SearchPaymentsByMobile(ctx, "9000000006", 1, 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.User.UserID != fx.student.UserID {
		t.Errorf("resolved wrong user")
	}
	if res.Total != 3 || len(res.Rows) != 3 {
		t.Fatalf("total %d rows %d, want 3 / 3", res.Total, len(res.Rows))
	}
	for _, r := range res.Rows {
		paid := r.PaidAmount > 0
		pending := r.PendingAmount > 0
		if paid == pending {
			t.Errorf("row %s: paid %v pending %v must be mutually exclusive", r.LedgerID, r.PaidAmount, r.PendingAmount)
		}
	}

	// server-side pagination
	res, err = svc.SearchPaymentsByMobile(ctx, "9000000006", 2, 2)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if res.Total != 3 || len(res.Rows) != 1 {
		t.Errorf("page 2: total %d rows %d, want 3 / 1", res.Total, len(res.Rows))
	}

	if _, err := svc.SearchPaymentsByMobile(ctx, "0000000000", 1, 10); err != ErrUserNotFound {
		t.Errorf("unknown mobile: got %v, want ErrUserNotFound", err)
	}
}

func TestLedgerForBatchStudentAndUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	ctx := context.Background()

	fx := seedEnrolledStudent(t, db, 2000, "9000000007", 1000, 1000)
	markPaid(t, db, fx.ledger[0], "P1", time.Now())

	bl, err := svc.LedgerForBatchStudent(ctx, fx.batch.BatchID, fx.student.UserID)
	if err != nil {
		t.Fatalf("batch student ledger: %v", err)
	}
	if len(bl.Rows) != 2 {
		t.Errorf("rows = %d, want 2", len(bl.Rows))
	}
	if bl.Stats.NoOfStudents != 1 || bl.Stats.TotalToBeReceived != 2000 ||
		bl.Stats.TotalReceived != 1000 || bl.Stats.PendingBalance != 1000 {
		t.Errorf("stats: %+v", bl.Stats)
	}
	if _, err := svc.LedgerForBatchStudent(ctx, fx.batch.BatchID, uuid.New()); err != ErrEnrollmentNotFound {
		t.Errorf("ghost enrollment: got %v, want ErrEnrollmentNotFound", err)
	}

	ul, err := svc.LedgerForUser(ctx, fx.student.UserID)
	if err != nil {
		t.Fatalf("user ledger: %v", err)
	}
	if len(ul.Rows) != 2 {
		t.Errorf("user rows = %d, want 2", len(ul.Rows))
	}
	if ul.Totals.TotalFees != 2000 || ul.Totals.TotalPaid != 1000 || ul.Totals.TotalPending != 1000 {
		t.Errorf("user totals: %+v", ul.Totals)
	}
}

func ptr[T any](v T) *T { return &v }
