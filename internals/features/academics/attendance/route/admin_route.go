// file: internals/features/academics/attendance/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtrl "tutorhub_backend/internals/features/academics/attendance/controller"
)

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attCtrl.NewAttendanceController(db)

	g := r.Group("/attendances")
	g.Post("/bulk", ctl.BulkAdd)
	g.Get("/monthly", ctl.Monthly) // ?month=&year=&batch_id=
	g.Get("/by-lesson/:lesson_id", ctl.ListByLesson)
	g.Get("/by-batch/:batch_id", ctl.ListByBatch) // ?user_id=
	g.Put("/:id", ctl.Update)
	g.Delete("/by-lesson/:lesson_id", ctl.DeleteByLesson)
	g.Delete("/:id", ctl.Delete)
}
