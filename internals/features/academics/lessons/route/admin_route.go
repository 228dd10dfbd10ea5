// file: internals/features/academics/lessons/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonCtrl "tutorhub_backend/internals/features/academics/lessons/controller"
)

func LessonAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := lessonCtrl.NewLessonController(db)

	g := r.Group("/lesson-planners")
	g.Post("/", ctl.Create)
	g.Get("/monthly", ctl.Monthly) // ?month=&year=&batch_id=
	g.Get("/by-batch/:batch_id", ctl.ListByBatch)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
