/*
cutoff.go - Billing-period boundaries and payable dates

PURPOSE:
  Two pieces of date arithmetic the whole billing cycle hangs on:
  - the cutoff window: day 20 of the prior month through day 20 of the
    target month
  - the disbursement date: the fifth business day of a month

BUSINESS DAYS:
  "Business day" means weekday. Holidays are deliberately NOT considered;
  the product was specified that way and downstream payment files depend on
  it. A HolidayCalendar can be injected through NthBusinessDay for callers
  that later need one, with a no-op default.

  Neither function reads the wall clock. Deciding WHICH upcoming window
  applies is orchestration and lives with the caller.
*/
package engine

import "time"

// CutoffDay is the fixed day-of-month separating one billing period from
// the next.
const CutoffDay = 20

// DisbursementBusinessDay is which business day of the month commissions
// pay out on.
const DisbursementBusinessDay = 5

// BillingWindow returns the billing period for a target month: day 20 of
// the previous month at 00:00 through day 20 of the target month at
// 23:59:59.999, both UTC. January wraps to December of the previous year.
func BillingWindow(year int, month time.Month) Window {
	// time.Date normalizes month 0 to December of year-1.
	start := time.Date(year, month-1, CutoffDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month, CutoffDay, 23, 59, 59, 999000000, time.UTC)
	return Window{Start: start, End: end}
}

// HolidayCalendar lets a caller exclude dates beyond weekends from the
// business-day count. The engine ships no calendar of its own.
type HolidayCalendar interface {
	IsHoliday(date time.Time) bool
}

// NoHolidays is the default calendar: weekends are the only non-business
// days.
type NoHolidays struct{}

func (NoHolidays) IsHoliday(time.Time) bool { return false }

// FifthBusinessDay returns the disbursement date for a month: the fifth
// weekday counting from day 1, no holiday awareness.
func FifthBusinessDay(year int, month time.Month) time.Time {
	return NthBusinessDay(year, month, DisbursementBusinessDay, nil)
}

// NthBusinessDay counts business days from day 1 of the month and returns
// the nth. A nil calendar means weekends-only skip.
func NthBusinessDay(year int, month time.Month, n int, calendar HolidayCalendar) time.Time {
	if n < 1 {
		n = 1
	}
	day := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	counted := 0
	for {
		if isWeekday(day) && (calendar == nil || !calendar.IsHoliday(day)) {
			counted++
			if counted == n {
				return day
			}
		}
		day = day.AddDate(0, 0, 1)
	}
}

func isWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
