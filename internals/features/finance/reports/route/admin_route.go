// file: internals/features/finance/reports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportCtrl "tutorhub_backend/internals/features/finance/reports/controller"
)

func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportCtrl.NewReportController(db)

	g := r.Group("/reports")
	g.Get("/collection", ctl.Collection)
	g.Get("/pending", ctl.Pending)
	g.Get("/monthly-summary", ctl.MonthlySummary)
	g.Get("/monthly-summary/:user_id", ctl.MonthlySummaryForUser)
	g.Get("/search-payment-by-mobile", ctl.SearchPaymentByMobile)
	g.Get("/ledger/by-user/:user_id", ctl.LedgerByUser)
	g.Get("/ledger/:batch_id/:user_id", ctl.LedgerByBatchStudent)
}
