// file: internals/features/finance/enrollments/service/enrollment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	batchModel "tutorhub_backend/internals/features/academics/batches/model"
	enrollModel "tutorhub_backend/internals/features/finance/enrollments/model"
	feeModel "tutorhub_backend/internals/features/finance/feeschemes/model"
	userModel "tutorhub_backend/internals/features/users/users/model"
	"tutorhub_backend/internals/services/mailer"
)

var (
	ErrBatchNotFound          = errors.New("batch does not exist")
	ErrFeeSchemeRequired      = errors.New("fee scheme is required for a batch with fee")
	ErrFeeSchemeNotFound      = errors.New("fee scheme does not exist")
	ErrFeeSchemeBatchMismatch = errors.New("fee scheme does not belong to this batch")
	ErrNoStudents             = errors.New("no students selected")
	ErrEnrollmentNotFound     = errors.New("batch student not found")
)

const (
	SkipReasonAlreadyMapped = "already mapped"
	SkipReasonUserNotFound  = "user not found"
)

type SkippedStudent struct {
	UserID uuid.UUID `json:"user_id"`
	Reason string    `json:"reason"`
}

type EnrollResult struct {
	Enrolled []enrollModel.BatchStudent `json:"enrolled"`
	Skipped  []SkippedStudent           `json:"skipped"`
}

// EnrollmentService owns the student↔batch mapping and the installment
// ledger fan-out that goes with it.
type EnrollmentService struct {
	DB   *gorm.DB
	Mail mailer.Mailer
}

func NewEnrollmentService(db *gorm.DB, mail mailer.Mailer) *EnrollmentService {
	return &EnrollmentService{DB: db, Mail: mail}
}

// Enroll maps each student into the batch and materializes one ledger row per
// installment of the bound scheme. Students are processed independently: a
// missing user or an existing mapping is recorded as skipped, never aborts
// the rest. Each successful enrollment commits its BatchStudent together
// with all of its ledger rows in one transaction, so a crash can only lose
// whole students, never leave a student with half a ledger.
func (s *EnrollmentService) Enroll(ctx context.Context, batchID uuid.UUID, feeSchemeID *uuid.UUID, studentIDs []uuid.UUID) (*EnrollResult, error) {
	if len(studentIDs) == 0 {
		return nil, ErrNoStudents
	}

	db := s.DB.WithContext(ctx)

	var batch batchModel.Batch
	if err := db.First(&batch, "batch_id = ?", batchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}

	// The installment set is loaded once and reused for every student.
	var installments []feeModel.FeeSchemePayment
	var boundSchemeID *uuid.UUID
	if batch.BatchFee > 0 {
		if feeSchemeID == nil {
			return nil, ErrFeeSchemeRequired
		}
		var scheme feeModel.FeeScheme
		if err := db.First(&scheme, "fee_scheme_id = ?", *feeSchemeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFeeSchemeNotFound
			}
			return nil, err
		}
		if scheme.FeeSchemeBatchID != batch.BatchID {
			return nil, ErrFeeSchemeBatchMismatch
		}
		if err := db.
			Where("fee_scheme_payment_scheme_id = ?", scheme.FeeSchemeID).
			Order("fee_scheme_payment_due_date ASC").
			Find(&installments).Error; err != nil {
			return nil, err
		}
		boundSchemeID = &scheme.FeeSchemeID
	}

	result := &EnrollResult{
		Enrolled: []enrollModel.BatchStudent{},
		Skipped:  []SkippedStudent{},
	}
	var notified []userModel.User

	for _, studentID := range studentIDs {
		var user userModel.User
		if err := db.First(&user, "user_id = ?", studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result.Skipped = append(result.Skipped, SkippedStudent{UserID: studentID, Reason: SkipReasonUserNotFound})
				continue
			}
			return nil, err
		}

		var existing int64
		if err := db.Model(&enrollModel.BatchStudent{}).
			Where("batch_student_batch_id = ? AND batch_student_user_id = ?", batch.BatchID, studentID).
			Count(&existing).Error; err != nil {
			return nil, err
		}
		if existing > 0 {
			result.Skipped = append(result.Skipped, SkippedStudent{UserID: studentID, Reason: SkipReasonAlreadyMapped})
			continue
		}

		bs := enrollModel.BatchStudent{
			BatchStudentBatchID:     batch.BatchID,
			BatchStudentUserID:      studentID,
			BatchStudentFeeSchemeID: boundSchemeID,
			BatchStudentStatus:      enrollModel.BatchStudentStatusActive,
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&bs).Error; err != nil {
				return err
			}
			if len(installments) == 0 {
				return nil
			}
			rows := make([]enrollModel.BatchStudentPayment, 0, len(installments))
			for _, inst := range installments {
				rows = append(rows, enrollModel.BatchStudentPayment{
					BatchStudentPaymentStudentID: bs.BatchStudentID,
					BatchStudentPaymentAmount:    inst.FeeSchemePaymentAmount,
					BatchStudentPaymentLastDate:  inst.FeeSchemePaymentDueDate,
					BatchStudentPaymentStatus:    enrollModel.LedgerStatusActive,
				})
			}
			return tx.Create(&rows).Error
		})
		if err != nil {
			// concurrent enroll of the same pair loses the race on the
			// unique index; treat it like the pre-check hit
			if isUniqueViolation(err) {
				result.Skipped = append(result.Skipped, SkippedStudent{UserID: studentID, Reason: SkipReasonAlreadyMapped})
				continue
			}
			return nil, err
		}

		result.Enrolled = append(result.Enrolled, bs)
		notified = append(notified, user)
	}

	s.notifyEnrolled(batch, notified)

	return result, nil
}

// Unenroll removes the mapping and every ledger row hanging off it. Ledger
// rows go first, inside the same transaction, so no orphan rows survive.
func (s *EnrollmentService) Unenroll(ctx context.Context, batchID, studentID uuid.UUID) error {
	db := s.DB.WithContext(ctx)

	var bs enrollModel.BatchStudent
	if err := db.First(&bs,
		"batch_student_batch_id = ? AND batch_student_user_id = ?", batchID, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEnrollmentNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("batch_student_payment_student_id = ?", bs.BatchStudentID).
			Delete(&enrollModel.BatchStudentPayment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&bs).Error
	})
}

func (s *EnrollmentService) notifyEnrolled(batch batchModel.Batch, users []userModel.User) {
	if s.Mail == nil {
		return
	}
	for _, u := range users {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>You have been enrolled in batch <b>%s</b> (%s) starting %s.</p>",
			u.UserUsername, batch.BatchName, batch.BatchCode,
			batch.BatchStartDate.Format("02 Jan 2006"),
		)
		if err := s.Mail.SendHTML(u.UserEmail, "Enrollment confirmed: "+batch.BatchName, body); err != nil {
			log.Printf("[WARN] enrollment mail to %s failed: %v", u.UserEmail, err)
		}
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
