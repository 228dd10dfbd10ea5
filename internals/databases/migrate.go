package database

import (
	"gorm.io/gorm"

	attendanceModel "tutorhub_backend/internals/features/academics/attendance/model"
	batchModel "tutorhub_backend/internals/features/academics/batches/model"
	courseModel "tutorhub_backend/internals/features/academics/courses/model"
	leaveModel "tutorhub_backend/internals/features/academics/leaves/model"
	lessonModel "tutorhub_backend/internals/features/academics/lessons/model"
	enrollModel "tutorhub_backend/internals/features/finance/enrollments/model"
	feeModel "tutorhub_backend/internals/features/finance/feeschemes/model"
	paymentModel "tutorhub_backend/internals/features/finance/payments/model"
	forumModel "tutorhub_backend/internals/features/forums/forums/model"
	userModel "tutorhub_backend/internals/features/users/users/model"
)

// AutoMigrate keeps the schema in sync for dev deployments; production
// schema changes go through SQL migrations on the ops side.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.User{},
		&courseModel.Course{},
		&batchModel.Batch{},
		&feeModel.FeeScheme{},
		&feeModel.FeeSchemePayment{},
		&enrollModel.BatchStudent{},
		&enrollModel.BatchStudentPayment{},
		&paymentModel.Paymode{},
		&paymentModel.Payment{},
		&lessonModel.LessonPlanner{},
		&attendanceModel.Attendance{},
		&leaveModel.LeaveRequest{},
		&forumModel.Forum{},
		&forumModel.ForumReply{},
	)
}
