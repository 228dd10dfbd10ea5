// file: internals/features/finance/payments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentCtrl "tutorhub_backend/internals/features/finance/payments/controller"
	paymentService "tutorhub_backend/internals/features/finance/payments/service"
)

func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ledger := paymentService.NewLedgerService(db)
	ctl := paymentCtrl.NewPaymentController(db, ledger)

	g := r.Group("/payments")
	g.Post("/", ctl.CreateDirect)
	g.Post("/gateway-order", ctl.CreateGatewayOrder)
	g.Delete("/:id", ctl.DeleteDirect)

	r.Put("/batch-student-payments/:id", ctl.RecordInstallment)
	r.Get("/paymodes", ctl.ListPaymodes)
}
