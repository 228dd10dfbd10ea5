// file: internals/features/finance/feeschemes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeCtrl "tutorhub_backend/internals/features/finance/feeschemes/controller"
)

func FeeSchemeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := feeCtrl.NewFeeSchemeController(db)

	g := r.Group("/fee-schemes")
	g.Post("/", ctl.Create)
	g.Get("/by-batch/:batch_id", ctl.ListByBatch)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)

	p := r.Group("/fee-scheme-payments")
	p.Post("/", ctl.CreateInstallment)
	p.Put("/:id", ctl.UpdateInstallment)
	p.Delete("/:id", ctl.DeleteInstallment)
}
