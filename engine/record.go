/*
record.go - CommissionRecord computation for a billing window

PURPOSE:
  Composes the tier table, the cutoff calendar, the accrual engine, and the
  splitter into the record the reporting layer consumes: how much each party
  is owed for a target billing month, due on which disbursement dates.

PERIOD COUNTING:
  Accrual starts the month AFTER the payment date (funds confirmed in month
  m earn their first period in m+1). The target month's amount is the
  accrual period whose calendar month matches the target; for compounding
  classes that value depends on how many periods have elapsed, so the whole
  sequence from the payment date is recomputed each time. Records are value
  objects: recompute, never cache.

BACK-FILL:
  ComputeRecordBackfill covers every month from the first payable month
  through the target month in one record: one due date per covered month and
  a per-month breakdown, with the top-level amounts as the sums.
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComputeRecord computes one investment's commission record for a target
// billing month. The record covers only the target month; its single due
// date is the month's fifth business day.
func ComputeRecord(inv Investment, year int, month time.Month) (*CommissionRecord, error) {
	return computeRecord(inv, year, month, false)
}

// ComputeRecordBackfill is ComputeRecord extended over every missed month
// since the investment's first payable month.
func ComputeRecordBackfill(inv Investment, year int, month time.Month) (*CommissionRecord, error) {
	return computeRecord(inv, year, month, true)
}

func computeRecord(inv Investment, year int, month time.Month, backfill bool) (*CommissionRecord, error) {
	inv, err := inv.normalized()
	if err != nil {
		return nil, err
	}
	if inv.PaymentDate == nil {
		// The caller may substitute a created date before calling; the
		// engine never defaults a missing payment date.
		return nil, &InvalidInputError{Field: "paymentDate", Reason: "required to compute a record"}
	}

	paid := inv.PaymentDate.UTC()
	elapsed := monthsBetween(paid, year, month)
	if elapsed < 1 {
		return nil, &InvalidInputError{Field: "paymentDate", Reason: "no accrual period ends in or before the target month"}
	}

	rate, err := ResolveInvestorRate(inv.CommitmentMonths, inv.Liquidity)
	if err != nil {
		return nil, err
	}
	accruals, err := Accrue(inv.Principal, rate, inv.Liquidity, elapsed)
	if err != nil {
		return nil, err
	}
	split, err := SplitFor(inv)
	if err != nil {
		return nil, err
	}

	record := &CommissionRecord{
		Investment:   inv,
		CutoffPeriod: BillingWindow(year, month),
	}

	firstPeriod := elapsed // target month only
	if backfill {
		firstPeriod = 1
	}

	investorTotal, advisorTotal, officeTotal := decimal.Zero, decimal.Zero, decimal.Zero
	for p := firstPeriod; p <= elapsed; p++ {
		// Anchor on the first of the month so a payment late in a month
		// can't normalize into the wrong calendar month.
		due := time.Date(paid.Year(), paid.Month()+time.Month(p), 1, 0, 0, 0, 0, time.UTC)
		record.PaymentDueDates = append(record.PaymentDueDates, FifthBusinessDay(due.Year(), due.Month()))

		amount := accruals[p-1].Amount
		investorTotal = investorTotal.Add(amount)
		advisorTotal = advisorTotal.Add(split.Advisor)
		officeTotal = officeTotal.Add(split.Office)

		record.MonthlyBreakdown = append(record.MonthlyBreakdown, BreakdownEntry{
			Month:              due.Month(),
			Year:               due.Year(),
			InvestorCommission: amount,
			AdvisorCommission:  split.Advisor,
			OfficeCommission:   split.Office,
		})
	}

	// A single-month record needs no breakdown.
	if len(record.MonthlyBreakdown) <= 1 {
		record.MonthlyBreakdown = nil
	}

	record.InvestorCommission = investorTotal
	record.AdvisorCommission = advisorTotal
	record.OfficeCommission = officeTotal
	return record, nil
}

// monthsBetween counts whole calendar months from the payment date's month
// to the target month. Payment in January, target March = 2 periods.
func monthsBetween(paid time.Time, year int, month time.Month) int {
	return (year-paid.Year())*12 + int(month) - int(paid.Month())
}
