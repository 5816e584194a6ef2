/*
projection.go - Forward month-by-month projection

PURPOSE:
  Extends a single investment into a forward view: per-period and cumulative
  amounts for all three parties, plus the running total value of the
  position. The standard horizon is 12 months; callers needing more request
  it explicitly.

COMPOSITION:
  Rate is resolved once through the tier table, then the investor leg runs
  through Accrue and the advisor/office legs through SplitFor. No external
  state is read: two calls with the same investment are byte-identical.
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultProjectionHorizon is the standard forward view length.
const DefaultProjectionHorizon = 12

// ProjectionEntry is one projected month.
type ProjectionEntry struct {
	Month int       // 1-based period index
	Date  time.Time // payment date advanced by Month months; zero when the investment has no payment date

	InvestorCommission decimal.Decimal
	AdvisorCommission  decimal.Decimal
	OfficeCommission   decimal.Decimal

	CumulativeInvestor decimal.Decimal
	CumulativeAdvisor  decimal.Decimal
	CumulativeOffice   decimal.Decimal
	CumulativeTotal    decimal.Decimal

	// TotalValue tracks the position: the compounding balance for
	// compounding classes, the unchanged principal for monthly.
	TotalValue decimal.Decimal
}

// Project returns the standard 12-month projection.
func Project(inv Investment) ([]ProjectionEntry, error) {
	return ProjectHorizon(inv, DefaultProjectionHorizon)
}

// ProjectHorizon projects exactly periods months forward.
func ProjectHorizon(inv Investment, periods int) ([]ProjectionEntry, error) {
	inv, err := inv.normalized()
	if err != nil {
		return nil, err
	}

	rate, err := ResolveInvestorRate(inv.CommitmentMonths, inv.Liquidity)
	if err != nil {
		return nil, err
	}

	accruals, err := Accrue(inv.Principal, rate, inv.Liquidity, periods)
	if err != nil {
		return nil, err
	}

	split, err := SplitFor(inv)
	if err != nil {
		return nil, err
	}

	entries := make([]ProjectionEntry, 0, periods)
	cumInvestor, cumAdvisor, cumOffice := decimal.Zero, decimal.Zero, decimal.Zero

	for _, a := range accruals {
		cumInvestor = cumInvestor.Add(a.Amount)
		cumAdvisor = cumAdvisor.Add(split.Advisor)
		cumOffice = cumOffice.Add(split.Office)

		entry := ProjectionEntry{
			Month:              a.Period,
			InvestorCommission: a.Amount,
			AdvisorCommission:  split.Advisor,
			OfficeCommission:   split.Office,
			CumulativeInvestor: cumInvestor,
			CumulativeAdvisor:  cumAdvisor,
			CumulativeOffice:   cumOffice,
			CumulativeTotal:    cumInvestor.Add(cumAdvisor).Add(cumOffice),
			TotalValue:         a.BalanceAfter,
		}
		if inv.PaymentDate != nil {
			entry.Date = inv.PaymentDate.AddDate(0, a.Period, 0)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
