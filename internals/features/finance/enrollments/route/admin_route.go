// file: internals/features/finance/enrollments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollCtrl "tutorhub_backend/internals/features/finance/enrollments/controller"
	enrollService "tutorhub_backend/internals/features/finance/enrollments/service"
	"tutorhub_backend/internals/services/mailer"
)

func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB, mail mailer.Mailer) {
	svc := enrollService.NewEnrollmentService(db, mail)
	ctl := enrollCtrl.NewEnrollmentController(db, svc)

	g := r.Group("/batch-students")
	g.Post("/", ctl.Enroll)
	g.Get("/by-batch/:batch_id", ctl.ListByBatch)
	g.Delete("/:batch_id/:user_id", ctl.Unenroll)
}
