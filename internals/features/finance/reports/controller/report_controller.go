// file: internals/features/finance/reports/controller/report_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportService "tutorhub_backend/internals/features/finance/reports/service"
	helper "tutorhub_backend/internals/helpers"
)

type ReportController struct {
	Service *reportService.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Service: reportService.NewReportService(db)}
}

/* =========================================================
   COLLECTION / PENDING
   GET /admin/reports/collection ?batch_id=&from_date=&to_date=&page=&limit=
   GET /admin/reports/pending    same query shape
   ========================================================= */

func (ctl *ReportController) Collection(c *fiber.Ctx) error {
	f, err := ctl.parseFilter(c)
	if err != nil {
		return err
	}

	rep, err := ctl.Service.CollectionReport(c.UserContext(), f)
	if err != nil {
		if errors.Is(err, reportService.ErrBatchNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "batch does not exist")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build collection report")
	}
	return helper.JsonListEx(c, "collection report",
		rep.Rows, helper.BuildPaginationFromPage(rep.Total, f.Page, f.Limit),
		fiber.Map{"summary": rep.Summary})
}

func (ctl *ReportController) Pending(c *fiber.Ctx) error {
	f, err := ctl.parseFilter(c)
	if err != nil {
		return err
	}

	rep, err := ctl.Service.PendingReport(c.UserContext(), f)
	if err != nil {
		if errors.Is(err, reportService.ErrBatchNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "batch does not exist")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build pending report")
	}
	return helper.JsonListEx(c, "pending report",
		rep.Rows, helper.BuildPaginationFromPage(rep.Total, f.Page, f.Limit),
		fiber.Map{"summary": rep.Summary})
}

/* =========================================================
   MONTHLY SUMMARY
   GET /admin/reports/monthly-summary          ?month=&year=
   GET /admin/reports/monthly-summary/:user_id ?month=&year=
   ========================================================= */

func (ctl *ReportController) MonthlySummary(c *fiber.Ctx) error {
	month, year, err := parseMonthYear(c)
	if err != nil {
		return err
	}

	res, err := ctl.Service.MonthlySummary(c.UserContext(), month, year)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build monthly summary")
	}
	return helper.JsonOK(c, "monthly summary", res)
}

func (ctl *ReportController) MonthlySummaryForUser(c *fiber.Ctx) error {
	userID, err := helper.ParseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}
	month, year, err := parseMonthYear(c)
	if err != nil {
		return err
	}

	res, err := ctl.Service.MonthlySummaryForUser(c.UserContext(), userID, month, year)
	if err != nil {
		if errors.Is(err, reportService.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build monthly summary")
	}
	if res == nil {
		// empty window is a normal outcome, not an error status
		return helper.JsonOK(c, "no result found", nil)
	}
	return helper.JsonOK(c, "monthly summary", res)
}

/* =========================================================
   SEARCH & LEDGER READS
   GET /admin/reports/search-payment-by-mobile ?mobile=&page=&limit=
   GET /admin/reports/ledger/:batch_id/:user_id
   GET /admin/reports/ledger/by-user/:user_id
   ========================================================= */

func (ctl *ReportController) SearchPaymentByMobile(c *fiber.Ctx) error {
	mobile := strings.TrimSpace(c.Query("mobile"))
	if mobile == "" {
		return fiber.NewError(fiber.StatusBadRequest, "mobile is required")
	}
	paging := helper.ResolvePaging(c, 10, 100)

	res, err := ctl.Service.SearchPaymentsByMobile(c.UserContext(), mobile, paging.Page, paging.PerPage)
	if err != nil {
		if errors.Is(err, reportService.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to search payments")
	}
	return helper.JsonListEx(c, "payments fetched",
		res.Rows, helper.BuildPaginationFromPage(res.Total, paging.Page, paging.PerPage),
		fiber.Map{"user": res.User})
}

func (ctl *ReportController) LedgerByBatchStudent(c *fiber.Ctx) error {
	batchID, err := helper.ParseUUIDParam(c, "batch_id")
	if err != nil {
		return err
	}
	userID, err := helper.ParseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	res, err := ctl.Service.LedgerForBatchStudent(c.UserContext(), batchID, userID)
	if err != nil {
		switch {
		case errors.Is(err, reportService.ErrBatchNotFound):
			return fiber.NewError(fiber.StatusNotFound, "batch does not exist")
		case errors.Is(err, reportService.ErrEnrollmentNotFound):
			return fiber.NewError(fiber.StatusNotFound, "batch student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load ledger")
	}
	return helper.JsonOK(c, "ledger fetched", res)
}

func (ctl *ReportController) LedgerByUser(c *fiber.Ctx) error {
	userID, err := helper.ParseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	res, err := ctl.Service.LedgerForUser(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, reportService.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load ledger")
	}
	return helper.JsonOK(c, "ledger fetched", res)
}

func (ctl *ReportController) parseFilter(c *fiber.Ctx) (reportService.ReportFilter, error) {
	batchID, err := helper.ParseUUIDQuery(c, "batch_id")
	if err != nil {
		return reportService.ReportFilter{}, err
	}
	rng, err := helper.ParseDateRange(c)
	if err != nil {
		return reportService.ReportFilter{}, err
	}
	paging := helper.ResolvePaging(c, 10, 100)
	return reportService.ReportFilter{
		BatchID: batchID,
		Range:   rng,
		Page:    paging.Page,
		Limit:   paging.PerPage,
	}, nil
}

func parseMonthYear(c *fiber.Ctx) (int, int, error) {
	month, err := strconv.Atoi(strings.TrimSpace(c.Query("month")))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "invalid month")
	}
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil || year < 2000 || year > time.Now().Year()+1 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "invalid year")
	}
	return month, year, nil
}
