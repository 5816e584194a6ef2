/*
Package engine is the commission and investor-yield calculation core of the
back office.

PURPOSE:
  Given an investment (principal, confirmed payment date, commitment length,
  liquidity class), the engine determines the monthly money flow to three
  parties: the investor's yield, the advisor's commission, and the office's
  commission. It also produces forward projections and groups computed
  records by payee for reporting.

KEY CONCEPTS IN THIS FILE (types.go):
  - Investment: read-only input record supplied by the caller
  - LiquidityClass: contractual category selecting the accrual regime
  - CommissionRecord: computed three-way split for one billing window
  - Window: a billing-period boundary (cutoff to cutoff)

DESIGN PRINCIPLES:
  1. Purity: every operation is a function of its arguments; no clock reads,
     no I/O, no state carried between calls
  2. Precision: decimal.Decimal for all monetary values, never float64
  3. Value semantics: CommissionRecord is recomputed on demand and never
     mutated in place; the engine persists nothing

SEE ALSO:
  - ratetier.go: lock-length to annual-rate resolution
  - accrual.go: simple vs compound monthly accrual
  - split.go: advisor/office fixed-percentage shares
  - projection.go: 12-month forward view
  - aggregate.go: roll-up by investor/advisor/office
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// LIQUIDITY CLASS
// =============================================================================

// LiquidityClass selects the accrual regime and the rate-table column that
// applies to an investment.
type LiquidityClass string

const (
	LiquidityMonthly    LiquidityClass = "monthly"
	LiquiditySemiannual LiquidityClass = "semiannual"
	LiquidityAnnual     LiquidityClass = "annual"
	LiquidityBiennial   LiquidityClass = "biennial"
	LiquidityTriennial  LiquidityClass = "triennial"
)

// Valid reports whether the class is one of the five contractual categories.
func (c LiquidityClass) Valid() bool {
	switch c {
	case LiquidityMonthly, LiquiditySemiannual, LiquidityAnnual, LiquidityBiennial, LiquidityTriennial:
		return true
	}
	return false
}

// Compounds reports whether yield is retained and compounded period over
// period. The monthly class withdraws its yield every period instead.
func (c LiquidityClass) Compounds() bool {
	return c != LiquidityMonthly
}

// MaturityPeriods returns how many monthly periods elapse before the
// compounded yield becomes payable. Monthly pays every period.
func (c LiquidityClass) MaturityPeriods() int {
	switch c {
	case LiquiditySemiannual:
		return 6
	case LiquidityAnnual:
		return 12
	case LiquidityBiennial:
		return 24
	case LiquidityTriennial:
		return 36
	default:
		return 1
	}
}

// =============================================================================
// INVESTMENT - External input, read-only
// =============================================================================

// Investment is the caller-supplied view of an active investment. The engine
// never writes to storage; callers fetch these and hand them in.
//
// PaymentDate is the authoritative accrual start (funds confirmed received).
// When it is unknown the CALLER may substitute a created date before calling;
// the engine never defaults it.
type Investment struct {
	ID               string
	Principal        decimal.Decimal
	PaymentDate      *time.Time
	CommitmentMonths int
	Liquidity        LiquidityClass

	InvestorID string
	AdvisorID  string // empty: direct office client, no advisor leg
	OfficeID   string // empty: orphaned, office leg is zero
}

// DefaultCommitmentMonths applies when the caller leaves CommitmentMonths
// unset (zero).
const DefaultCommitmentMonths = 12

// normalized returns a copy with the commitment default applied, validating
// the fields every computation depends on.
func (inv Investment) normalized() (Investment, error) {
	if !inv.Principal.IsPositive() {
		return inv, &InvalidInputError{Field: "principal", Reason: "must be positive"}
	}
	if inv.CommitmentMonths == 0 {
		inv.CommitmentMonths = DefaultCommitmentMonths
	}
	if inv.CommitmentMonths < 0 {
		return inv, &InvalidInputError{Field: "commitmentMonths", Reason: "must be positive"}
	}
	if !inv.Liquidity.Valid() {
		return inv, &InvalidInputError{Field: "liquidityClass", Reason: "unknown class " + string(inv.Liquidity)}
	}
	return inv, nil
}

// =============================================================================
// BILLING WINDOW
// =============================================================================

// Window is one billing period: cutoff boundary to cutoff boundary,
// inclusive on both ends.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window [Start, End].
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func (w Window) String() string {
	return "[" + w.Start.Format("2006-01-02") + ", " + w.End.Format("2006-01-02") + "]"
}

// =============================================================================
// COMMISSION RECORD - Engine output, ephemeral value object
// =============================================================================

// CommissionRecord is one investment's computed three-way split for a billing
// window. It is derived data: recomputed from the Investment whenever needed
// and never cached as ground truth.
type CommissionRecord struct {
	Investment Investment

	// Monthly amounts for the window. When MonthlyBreakdown is present
	// (back-fill across several calendar months) these are the sums over
	// the breakdown.
	InvestorCommission decimal.Decimal
	AdvisorCommission  decimal.Decimal
	OfficeCommission   decimal.Decimal

	// One due date per covered month: the disbursement day (fifth business
	// day) of each month the record pays out in.
	PaymentDueDates []time.Time

	// Per-calendar-month amounts, populated only when the record covers
	// more than one month of accrual.
	MonthlyBreakdown []BreakdownEntry

	CutoffPeriod Window
}

// BreakdownEntry is one calendar month's share of a multi-month record.
type BreakdownEntry struct {
	Month time.Month
	Year  int

	InvestorCommission decimal.Decimal
	AdvisorCommission  decimal.Decimal
	OfficeCommission   decimal.Decimal
}

// TotalCommission is the sum of the three legs.
func (r CommissionRecord) TotalCommission() decimal.Decimal {
	return r.InvestorCommission.Add(r.AdvisorCommission).Add(r.OfficeCommission)
}
