// file: internals/features/academics/leaves/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leaveCtrl "tutorhub_backend/internals/features/academics/leaves/controller"
)

func LeaveAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := leaveCtrl.NewLeaveController(db)

	g := r.Group("/leave-requests")
	g.Post("/", ctl.Apply)
	g.Get("/", ctl.List) // ?status=&page=&per_page=
	g.Get("/by-user/:user_id", ctl.ListByUser)
	g.Put("/:id/respond", ctl.Respond)
}
