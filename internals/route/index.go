// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorhub_backend/internals/constants"
	attendanceRoute "tutorhub_backend/internals/features/academics/attendance/route"
	batchRoute "tutorhub_backend/internals/features/academics/batches/route"
	courseRoute "tutorhub_backend/internals/features/academics/courses/route"
	leaveRoute "tutorhub_backend/internals/features/academics/leaves/route"
	lessonRoute "tutorhub_backend/internals/features/academics/lessons/route"
	enrollRoute "tutorhub_backend/internals/features/finance/enrollments/route"
	feeRoute "tutorhub_backend/internals/features/finance/feeschemes/route"
	paymentRoute "tutorhub_backend/internals/features/finance/payments/route"
	reportRoute "tutorhub_backend/internals/features/finance/reports/route"
	forumRoute "tutorhub_backend/internals/features/forums/forums/route"
	userRoute "tutorhub_backend/internals/features/users/users/route"
	authMiddleware "tutorhub_backend/internals/middlewares/auth"
	"tutorhub_backend/internals/services/mailer"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, mail mailer.Mailer) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== ADMIN =====================
	// The whole back-office surface: JWT + admin role.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/admin",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.AdminOnly...),
	)

	log.Println("[INFO] Mounting user routes...")
	userRoute.UserAdminRoutes(admin, db, mail)

	log.Println("[INFO] Mounting academic routes...")
	courseRoute.CourseAdminRoutes(admin, db)
	batchRoute.BatchAdminRoutes(admin, db)
	lessonRoute.LessonAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	leaveRoute.LeaveAdminRoutes(admin, db)

	log.Println("[INFO] Mounting finance routes...")
	feeRoute.FeeSchemeAdminRoutes(admin, db)
	enrollRoute.EnrollmentAdminRoutes(admin, db, mail)
	paymentRoute.PaymentAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)

	log.Println("[INFO] Mounting forum routes...")
	forumRoute.ForumAdminRoutes(admin, db)

	// ===================== TRAINER =====================
	// Trainers run their own sessions, rosters and discussions.
	log.Println("[INFO] Setting up TRAINER group...")
	trainer := app.Group("/api/trainer",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.TrainerAndAbove...),
	)
	lessonRoute.LessonAdminRoutes(trainer, db)
	attendanceRoute.AttendanceAdminRoutes(trainer, db)
	leaveRoute.LeaveAdminRoutes(trainer, db)
	forumRoute.ForumAdminRoutes(trainer, db)
}
