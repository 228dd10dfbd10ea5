// file: internals/helpers/date_range.go
package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Report date-range parsing
=================================*/

// DateRange is an inclusive [From 00:00:00.000, To 23:59:59.999] window.
// A nil From/To means the bound is absent.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) IsZero() bool { return r.From == nil && r.To == nil }

// ParseDateRange reads ?from_date= & ?to_date= (RFC3339 or YYYY-MM-DD).
// Both must be present for the range to apply, matching the report contract.
func ParseDateRange(c *fiber.Ctx) (DateRange, error) {
	fromStr := strings.TrimSpace(c.Query("from_date", c.Query("fromDate")))
	toStr := strings.TrimSpace(c.Query("to_date", c.Query("toDate")))
	if fromStr == "" || toStr == "" {
		return DateRange{}, nil
	}

	from, err := parseDay(fromStr)
	if err != nil {
		return DateRange{}, fiber.NewError(fiber.StatusBadRequest, "invalid from_date")
	}
	to, err := parseDay(toStr)
	if err != nil {
		return DateRange{}, fiber.NewError(fiber.StatusBadRequest, "invalid to_date")
	}

	start := StartOfDay(from)
	end := EndOfDay(to)
	return DateRange{From: &start, To: &end}, nil
}

func parseDay(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// MonthRange returns the inclusive window covering one calendar month.
func MonthRange(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}
