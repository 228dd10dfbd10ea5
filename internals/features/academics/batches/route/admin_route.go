// file: internals/features/academics/batches/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchCtrl "tutorhub_backend/internals/features/academics/batches/controller"
)

func BatchAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := batchCtrl.NewBatchController(db)

	g := r.Group("/batches")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List) // ?q=&status=&course_id=&page=&per_page=
	g.Get("/by-trainer/:trainer_id", ctl.ListByTrainer)
	g.Get("/by-student/:user_id", ctl.ListByStudent)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
