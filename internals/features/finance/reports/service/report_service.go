// file: internals/features/finance/reports/service/report_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	batchModel "tutorhub_backend/internals/features/academics/batches/model"
	enrollModel "tutorhub_backend/internals/features/finance/enrollments/model"
	userModel "tutorhub_backend/internals/features/users/users/model"
	helper "tutorhub_backend/internals/helpers"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrBatchNotFound      = errors.New("batch does not exist")
	ErrEnrollmentNotFound = errors.New("batch student not found")
)

// ReportService derives every fee-side aggregate. All operations here are
// pure reads over the installment ledger; none mutate state.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

/* ==============================
   Collection / pending report
============================== */

// ReportFilter narrows a ledger report. A nil BatchID means "overall".
type ReportFilter struct {
	BatchID *uuid.UUID
	Range   helper.DateRange
	Page    int
	Limit   int
}

// LedgerReportRow is one ledger entry flattened with its student and batch.
type LedgerReportRow struct {
	LedgerID        uuid.UUID  `gorm:"column:ledger_id" json:"ledger_id"`
	BatchID         uuid.UUID  `gorm:"column:batch_id" json:"batch_id"`
	BatchCode       string     `gorm:"column:batch_code" json:"batch_code"`
	BatchName       string     `gorm:"column:batch_name" json:"batch_name"`
	UserID          uuid.UUID  `gorm:"column:user_id" json:"user_id"`
	UserUsername    string     `gorm:"column:user_username" json:"user_username"`
	UserMobile      string     `gorm:"column:user_mobile" json:"user_mobile"`
	Amount          float64    `gorm:"column:amount" json:"amount"`
	LastDate        time.Time  `gorm:"column:last_date" json:"last_date"`
	Reference       *string    `gorm:"column:reference" json:"reference,omitempty"`
	PaymentDateTime *time.Time `gorm:"column:payment_date_time" json:"payment_date_time,omitempty"`
	Status          string     `gorm:"column:status" json:"status"`
	CreatedAt       time.Time  `gorm:"column:created_at" json:"created_at"`
}

type ReportSummary struct {
	ReceivedAmount float64 `json:"received_amount"`
	AvgAmount      float64 `json:"avg_amount"`
	MinAmount      float64 `json:"min_amount"`
	MaxAmount      float64 `json:"max_amount"`
	Count          int64   `json:"count"`
	TotalAmount    float64 `json:"total_amount"`
	PendingAmount  float64 `json:"pending_amount"`
}

type LedgerReport struct {
	Rows    []LedgerReportRow `json:"rows"`
	Summary ReportSummary     `json:"summary"`
	Total   int64             `json:"total"`
}

// CollectionReport lists paid ledger rows, date-filtered on the payment
// moment. The summary aggregates the full filtered set, never just the page.
func (s *ReportService) CollectionReport(ctx context.Context, f ReportFilter) (*LedgerReport, error) {
	return s.ledgerReport(ctx, f, string(enrollModel.LedgerStatusPaid), "bsp.batch_student_payment_date_time")
}

// PendingReport lists not-yet-paid rows. Pending rows have no payment moment,
// so the date filter applies to when the obligation was created.
func (s *ReportService) PendingReport(ctx context.Context, f ReportFilter) (*LedgerReport, error) {
	return s.ledgerReport(ctx, f, string(enrollModel.LedgerStatusActive), "bsp.batch_student_payment_created_at")
}

func (s *ReportService) ledgerReport(ctx context.Context, f ReportFilter, status, dateColumn string) (*LedgerReport, error) {
	db := s.DB.WithContext(ctx)

	base := func() *gorm.DB {
		q := db.Table("batch_student_payments AS bsp").
			Joins("JOIN batch_students AS bs ON bs.batch_student_id = bsp.batch_student_payment_student_id").
			Joins("JOIN batches AS b ON b.batch_id = bs.batch_student_batch_id AND b.batch_deleted_at IS NULL").
			Joins("JOIN users AS u ON u.user_id = bs.batch_student_user_id AND u.user_deleted_at IS NULL").
			Where("bsp.batch_student_payment_status = ?", status)
		if f.BatchID != nil {
			q = q.Where("bs.batch_student_batch_id = ?", *f.BatchID)
		}
		if f.Range.From != nil && f.Range.To != nil {
			q = q.Where(dateColumn+" BETWEEN ? AND ?", *f.Range.From, *f.Range.To)
		}
		return q
	}

	var summary ReportSummary
	if err := base().
		Select(`COALESCE(SUM(bsp.batch_student_payment_amount), 0) AS received_amount,
			COALESCE(AVG(bsp.batch_student_payment_amount), 0) AS avg_amount,
			COALESCE(MIN(bsp.batch_student_payment_amount), 0) AS min_amount,
			COALESCE(MAX(bsp.batch_student_payment_amount), 0) AS max_amount,
			COUNT(*) AS count`).
		Scan(&summary).Error; err != nil {
		return nil, err
	}

	// totalAmount only makes sense for a single batch: flat fee times heads
	if f.BatchID != nil {
		var batch batchModel.Batch
		if err := db.First(&batch, "batch_id = ?", *f.BatchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBatchNotFound
			}
			return nil, err
		}
		var students int64
		if err := db.Model(&enrollModel.BatchStudent{}).
			Where("batch_student_batch_id = ?", *f.BatchID).
			Count(&students).Error; err != nil {
			return nil, err
		}
		summary.TotalAmount = batch.BatchFee * float64(students)
		summary.PendingAmount = summary.TotalAmount - summary.ReceivedAmount
	}

	page, limit := normalizePage(f.Page, f.Limit)
	rows := []LedgerReportRow{}
	if err := base().
		Select(`bsp.batch_student_payment_id AS ledger_id,
			b.batch_id, b.batch_code, b.batch_name,
			u.user_id, u.user_username, u.user_mobile,
			bsp.batch_student_payment_amount AS amount,
			bsp.batch_student_payment_last_date AS last_date,
			bsp.batch_student_payment_reference AS reference,
			bsp.batch_student_payment_date_time AS payment_date_time,
			bsp.batch_student_payment_status AS status,
			bsp.batch_student_payment_created_at AS created_at`).
		Order(dateColumn + " DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return &LedgerReport{Rows: rows, Summary: summary, Total: summary.Count}, nil
}

/* ==============================
   Monthly summary
============================== */

type MonthlyStudentSummary struct {
	UserID       uuid.UUID `json:"user_id"`
	UserUsername string    `json:"user_username"`
	UserMobile   string    `json:"user_mobile"`
	TotalFee     float64   `json:"total_fee"`
	TotalPaid    float64   `json:"total_paid"`
	TotalPending float64   `json:"total_pending"`
}

type MonthlyBatchSummary struct {
	BatchID      uuid.UUID               `json:"batch_id"`
	BatchCode    string                  `json:"batch_code"`
	BatchName    string                  `json:"batch_name"`
	Students     []MonthlyStudentSummary `json:"students"`
	TotalFee     float64                 `json:"total_fee"`
	TotalPaid    float64                 `json:"total_paid"`
	TotalPending float64                 `json:"total_pending"`
}

type MonthlySummaryResult struct {
	Month        int                   `json:"month"`
	Year         int                   `json:"year"`
	Batches      []MonthlyBatchSummary `json:"batches"`
	TotalFee     float64               `json:"total_fee"`
	TotalPaid    float64               `json:"total_paid"`
	TotalPending float64               `json:"total_pending"`
}

// MonthlySummary rolls the ledger up per batch and per student for one
// calendar month. totalPaid counts rows paid inside the month; totalPending
// is always the lifetime figure (flat fee minus everything ever paid), so a
// student's pending never resets between months.
func (s *ReportService) MonthlySummary(ctx context.Context, month, year int) (*MonthlySummaryResult, error) {
	return s.monthlySummary(ctx, month, year, nil)
}

// MonthlySummaryForUser is MonthlySummary scoped to one student across all
// their batches. Returns nil (no error) when the student has no paid rows in
// the window; callers render that as "no result found".
func (s *ReportService) MonthlySummaryForUser(ctx context.Context, userID uuid.UUID, month, year int) (*MonthlySummaryResult, error) {
	var exists int64
	if err := s.DB.WithContext(ctx).Model(&userModel.User{}).
		Where("user_id = ?", userID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrUserNotFound
	}

	res, err := s.monthlySummary(ctx, month, year, &userID)
	if err != nil {
		return nil, err
	}
	if res.TotalPaid == 0 {
		return nil, nil
	}
	return res, nil
}

type enrollmentRow struct {
	BatchStudentID uuid.UUID `gorm:"column:batch_student_id"`
	BatchID        uuid.UUID `gorm:"column:batch_id"`
	BatchCode      string    `gorm:"column:batch_code"`
	BatchName      string    `gorm:"column:batch_name"`
	BatchFee       float64   `gorm:"column:batch_fee"`
	UserID         uuid.UUID `gorm:"column:user_id"`
	UserUsername   string    `gorm:"column:user_username"`
	UserMobile     string    `gorm:"column:user_mobile"`
}

type paidAgg struct {
	StudentID uuid.UUID `gorm:"column:student_id"`
	Paid      float64   `gorm:"column:paid"`
}

func (s *ReportService) monthlySummary(ctx context.Context, month, year int, userID *uuid.UUID) (*MonthlySummaryResult, error) {
	db := s.DB.WithContext(ctx)
	from, to := helper.MonthRange(month, year)

	enrollQ := db.Table("batch_students AS bs").
		Joins("JOIN batches AS b ON b.batch_id = bs.batch_student_batch_id AND b.batch_deleted_at IS NULL").
		Joins("JOIN users AS u ON u.user_id = bs.batch_student_user_id AND u.user_deleted_at IS NULL").
		Select(`bs.batch_student_id, b.batch_id, b.batch_code, b.batch_name, b.batch_fee,
			u.user_id, u.user_username, u.user_mobile`).
		Order("b.batch_code ASC, u.user_username ASC")
	if userID != nil {
		enrollQ = enrollQ.Where("bs.batch_student_user_id = ?", *userID)
	}
	var enrollments []enrollmentRow
	if err := enrollQ.Scan(&enrollments).Error; err != nil {
		return nil, err
	}

	paidInWindow, err := s.paidByStudent(db, &from, &to)
	if err != nil {
		return nil, err
	}
	paidAllTime, err := s.paidByStudent(db, nil, nil)
	if err != nil {
		return nil, err
	}

	result := &MonthlySummaryResult{Month: month, Year: year, Batches: []MonthlyBatchSummary{}}
	byBatch := map[uuid.UUID]*MonthlyBatchSummary{}
	for _, e := range enrollments {
		batch := byBatch[e.BatchID]
		if batch == nil {
			result.Batches = append(result.Batches, MonthlyBatchSummary{
				BatchID:   e.BatchID,
				BatchCode: e.BatchCode,
				BatchName: e.BatchName,
				Students:  []MonthlyStudentSummary{},
			})
			batch = &result.Batches[len(result.Batches)-1]
			byBatch[e.BatchID] = batch
		}

		student := MonthlyStudentSummary{
			UserID:       e.UserID,
			UserUsername: e.UserUsername,
			UserMobile:   e.UserMobile,
			TotalFee:     e.BatchFee,
			TotalPaid:    paidInWindow[e.BatchStudentID],
			TotalPending: e.BatchFee - paidAllTime[e.BatchStudentID],
		}
		batch.Students = append(batch.Students, student)
		batch.TotalFee += student.TotalFee
		batch.TotalPaid += student.TotalPaid
		batch.TotalPending += student.TotalPending

		result.TotalFee += student.TotalFee
		result.TotalPaid += student.TotalPaid
		result.TotalPending += student.TotalPending
	}

	return result, nil
}

// paidByStudent sums paid ledger amounts per enrollment, optionally limited
// to a payment-date window.
func (s *ReportService) paidByStudent(db *gorm.DB, from, to *time.Time) (map[uuid.UUID]float64, error) {
	q := db.Table("batch_student_payments").
		Select(`batch_student_payment_student_id AS student_id,
			COALESCE(SUM(batch_student_payment_amount), 0) AS paid`).
		Where("batch_student_payment_status = ?", enrollModel.LedgerStatusPaid).
		Group("batch_student_payment_student_id")
	if from != nil && to != nil {
		q = q.Where("batch_student_payment_date_time BETWEEN ? AND ?", *from, *to)
	}
	var aggs []paidAgg
	if err := q.Scan(&aggs).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]float64, len(aggs))
	for _, a := range aggs {
		out[a.StudentID] = a.Paid
	}
	return out, nil
}

/* ==============================
   Search by mobile
============================== */

// MobileSearchRow tags each ledger row with mutually exclusive paid/pending
// amounts so the caller renders one flat list.
type MobileSearchRow struct {
	LedgerID        uuid.UUID  `gorm:"column:ledger_id" json:"ledger_id"`
	BatchID         uuid.UUID  `gorm:"column:batch_id" json:"batch_id"`
	BatchCode       string     `gorm:"column:batch_code" json:"batch_code"`
	BatchName       string     `gorm:"column:batch_name" json:"batch_name"`
	PaidAmount      float64    `gorm:"column:paid_amount" json:"paid_amount"`
	PendingAmount   float64    `gorm:"column:pending_amount" json:"pending_amount"`
	LastDate        time.Time  `gorm:"column:last_date" json:"last_date"`
	Reference       *string    `gorm:"column:reference" json:"reference,omitempty"`
	PaymentDateTime *time.Time `gorm:"column:payment_date_time" json:"payment_date_time,omitempty"`
	Status          string     `gorm:"column:status" json:"status"`
}

type MobileSearchResult struct {
	User  userModel.User    `json:"user"`
	Rows  []MobileSearchRow `json:"rows"`
	Total int64             `json:"total"`
}

// SearchPaymentsByMobile resolves a student by mobile number and pages
// through their full ledger at the query level, paid and pending rows in one
// ordered set.
func (s *ReportService) SearchPaymentsByMobile(ctx context.Context, mobile string, page, limit int) (*MobileSearchResult, error) {
	db := s.DB.WithContext(ctx)

	var user userModel.User
	if err := db.First(&user, "user_mobile = ?", mobile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	base := func() *gorm.DB {
		return db.Table("batch_student_payments AS bsp").
			Joins("JOIN batch_students AS bs ON bs.batch_student_id = bsp.batch_student_payment_student_id").
			Joins("JOIN batches AS b ON b.batch_id = bs.batch_student_batch_id AND b.batch_deleted_at IS NULL").
			Where("bs.batch_student_user_id = ?", user.UserID)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, err
	}

	page, limit = normalizePage(page, limit)
	rows := []MobileSearchRow{}
	if err := base().
		Select(`bsp.batch_student_payment_id AS ledger_id,
			b.batch_id, b.batch_code, b.batch_name,
			CASE WHEN bsp.batch_student_payment_status = 'paid' THEN bsp.batch_student_payment_amount ELSE 0 END AS paid_amount,
			CASE WHEN bsp.batch_student_payment_status = 'active' THEN bsp.batch_student_payment_amount ELSE 0 END AS pending_amount,
			bsp.batch_student_payment_last_date AS last_date,
			bsp.batch_student_payment_reference AS reference,
			bsp.batch_student_payment_date_time AS payment_date_time,
			bsp.batch_student_payment_status AS status`).
		Order("bsp.batch_student_payment_status ASC, bsp.batch_student_payment_last_date ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return &MobileSearchResult{User: user, Rows: rows, Total: total}, nil
}

/* ==============================
   Per-enrollment / per-user ledger reads
============================== */

// BatchStats accompanies a single student's ledger inside one batch.
type BatchStats struct {
	NoOfStudents      int64   `json:"no_of_students"`
	TotalToBeReceived float64 `json:"total_to_be_received"`
	TotalReceived     float64 `json:"total_received"`
	PendingBalance    float64 `json:"pending_balance"`
}

type BatchStudentLedger struct {
	Rows  []enrollModel.BatchStudentPayment `json:"rows"`
	Stats BatchStats                        `json:"batch_stats"`
}

// LedgerForBatchStudent returns one student's ledger rows in one batch plus
// batch-wide collection stats.
func (s *ReportService) LedgerForBatchStudent(ctx context.Context, batchID, userID uuid.UUID) (*BatchStudentLedger, error) {
	db := s.DB.WithContext(ctx)

	var batch batchModel.Batch
	if err := db.First(&batch, "batch_id = ?", batchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}

	var bs enrollModel.BatchStudent
	if err := db.First(&bs,
		"batch_student_batch_id = ? AND batch_student_user_id = ?", batchID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}

	rows := []enrollModel.BatchStudentPayment{}
	if err := db.
		Where("batch_student_payment_student_id = ?", bs.BatchStudentID).
		Order("batch_student_payment_last_date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	var students int64
	if err := db.Model(&enrollModel.BatchStudent{}).
		Where("batch_student_batch_id = ?", batchID).
		Count(&students).Error; err != nil {
		return nil, err
	}

	var received float64
	if err := db.Table("batch_student_payments AS bsp").
		Joins("JOIN batch_students AS bs ON bs.batch_student_id = bsp.batch_student_payment_student_id").
		Where("bs.batch_student_batch_id = ? AND bsp.batch_student_payment_status = ?",
			batchID, enrollModel.LedgerStatusPaid).
		Select("COALESCE(SUM(bsp.batch_student_payment_amount), 0)").
		Scan(&received).Error; err != nil {
		return nil, err
	}

	toBeReceived := batch.BatchFee * float64(students)
	return &BatchStudentLedger{
		Rows: rows,
		Stats: BatchStats{
			NoOfStudents:      students,
			TotalToBeReceived: toBeReceived,
			TotalReceived:     received,
			PendingBalance:    toBeReceived - received,
		},
	}, nil
}

type UserLedgerTotals struct {
	TotalFees    float64 `json:"total_fees"`
	TotalPaid    float64 `json:"total_paid"`
	TotalPending float64 `json:"total_pending"`
}

type UserLedger struct {
	Rows   []LedgerReportRow `json:"rows"`
	Totals UserLedgerTotals  `json:"totals"`
}

// LedgerForUser returns every ledger row across all of a student's batches
// plus running fee totals.
func (s *ReportService) LedgerForUser(ctx context.Context, userID uuid.UUID) (*UserLedger, error) {
	db := s.DB.WithContext(ctx)

	var exists int64
	if err := db.Model(&userModel.User{}).Where("user_id = ?", userID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrUserNotFound
	}

	rows := []LedgerReportRow{}
	if err := db.Table("batch_student_payments AS bsp").
		Joins("JOIN batch_students AS bs ON bs.batch_student_id = bsp.batch_student_payment_student_id").
		Joins("JOIN batches AS b ON b.batch_id = bs.batch_student_batch_id AND b.batch_deleted_at IS NULL").
		Joins("JOIN users AS u ON u.user_id = bs.batch_student_user_id").
		Where("bs.batch_student_user_id = ?", userID).
		Select(`bsp.batch_student_payment_id AS ledger_id,
			b.batch_id, b.batch_code, b.batch_name,
			u.user_id, u.user_username, u.user_mobile,
			bsp.batch_student_payment_amount AS amount,
			bsp.batch_student_payment_last_date AS last_date,
			bsp.batch_student_payment_reference AS reference,
			bsp.batch_student_payment_date_time AS payment_date_time,
			bsp.batch_student_payment_status AS status,
			bsp.batch_student_payment_created_at AS created_at`).
		Order("b.batch_code ASC, bsp.batch_student_payment_last_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	var totals UserLedgerTotals
	if err := db.Table("batch_students AS bs").
		Joins("JOIN batches AS b ON b.batch_id = bs.batch_student_batch_id AND b.batch_deleted_at IS NULL").
		Where("bs.batch_student_user_id = ?", userID).
		Select("COALESCE(SUM(b.batch_fee), 0)").
		Scan(&totals.TotalFees).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		if r.Status == string(enrollModel.LedgerStatusPaid) {
			totals.TotalPaid += r.Amount
		}
	}
	totals.TotalPending = totals.TotalFees - totals.TotalPaid

	return &UserLedger{Rows: rows, Totals: totals}, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
