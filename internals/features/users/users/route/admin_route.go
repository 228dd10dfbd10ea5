// file: internals/features/users/users/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtrl "tutorhub_backend/internals/features/users/users/controller"
	"tutorhub_backend/internals/services/mailer"
)

func UserAdminRoutes(r fiber.Router, db *gorm.DB, mail mailer.Mailer) {
	ctl := userCtrl.NewUserController(db, mail)

	g := r.Group("/users")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List) // ?role=&q=&page=&per_page=
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
