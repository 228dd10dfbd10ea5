// file: internals/features/forums/forums/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	forumCtrl "tutorhub_backend/internals/features/forums/forums/controller"
)

func ForumAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := forumCtrl.NewForumController(db)

	g := r.Group("/forums")
	g.Post("/", ctl.Create)
	g.Get("/by-batch/:batch_id", ctl.ListByBatch)
	g.Get("/:id", ctl.GetByID)
	g.Delete("/:id", ctl.Delete)

	rp := r.Group("/forum-replies")
	rp.Post("/", ctl.CreateReply)
	rp.Delete("/:id", ctl.DeleteReply)
}
