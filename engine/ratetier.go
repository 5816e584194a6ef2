/*
ratetier.go - Lock-length to annual yield rate resolution

PURPOSE:
  Single authoritative rate table for the whole back office. The source
  system repeated this table at several call sites with drifting fallbacks;
  every caller now goes through ResolveInvestorRate.

TABLE SHAPE:
  Keyed by inclusive upper bound on lock days, then by liquidity class.
  Not every class has a cell at every boundary; an absent cell falls back
  to the monthly column at the same boundary. Anything past 1080 days earns
  the fixed 3.5% ceiling regardless of class.
*/
package engine

import (
	"github.com/shopspring/decimal"
)

// DaysPerCommitmentMonth converts a commitment length to lock days.
// Contractual months are flat 30-day months, not calendar months.
const DaysPerCommitmentMonth = 30

// CeilingRate applies beyond the largest tabulated boundary (>1080 days),
// for every liquidity class.
var CeilingRate = decimal.RequireFromString("3.5")

// rateBoundaries are inclusive upper bounds on lock days, ascending.
var rateBoundaries = []int{90, 180, 360, 720, 1080}

// rateTable holds annual rates in percent. Absent cells fall back to the
// monthly column.
var rateTable = map[int]map[LiquidityClass]decimal.Decimal{
	90: {
		LiquidityMonthly: decimal.RequireFromString("1.8"),
	},
	180: {
		LiquidityMonthly:    decimal.RequireFromString("1.9"),
		LiquiditySemiannual: decimal.RequireFromString("2.0"),
	},
	360: {
		LiquidityMonthly:    decimal.RequireFromString("2.0"),
		LiquiditySemiannual: decimal.RequireFromString("2.1"),
		LiquidityAnnual:     decimal.RequireFromString("2.5"),
	},
	720: {
		LiquidityMonthly:  decimal.RequireFromString("2.2"),
		LiquidityAnnual:   decimal.RequireFromString("2.6"),
		LiquidityBiennial: decimal.RequireFromString("2.9"),
	},
	1080: {
		LiquidityMonthly:   decimal.RequireFromString("2.4"),
		LiquidityAnnual:    decimal.RequireFromString("2.8"),
		LiquidityBiennial:  decimal.RequireFromString("3.0"),
		LiquidityTriennial: decimal.RequireFromString("3.2"),
	},
}

// ResolveInvestorRate returns the annualized yield rate (percent) for a
// commitment length in months. Months convert to lock days at 30 days per
// month. Fails only for a non-positive commitment; arbitrarily long
// commitments resolve to the ceiling rate.
func ResolveInvestorRate(commitmentMonths int, class LiquidityClass) (decimal.Decimal, error) {
	if commitmentMonths <= 0 {
		return decimal.Zero, &InvalidInputError{Field: "commitmentMonths", Reason: "must be positive"}
	}
	return ResolveRateForLockDays(commitmentMonths*DaysPerCommitmentMonth, class)
}

// ResolveRateForLockDays resolves a rate from lock days directly. This is the
// boundary-level contract: the smallest boundary >= days selects the row,
// the class selects the column, and an absent cell falls back to monthly.
func ResolveRateForLockDays(lockDays int, class LiquidityClass) (decimal.Decimal, error) {
	if lockDays <= 0 {
		return decimal.Zero, &InvalidInputError{Field: "lockDays", Reason: "must be positive"}
	}
	for _, boundary := range rateBoundaries {
		if lockDays <= boundary {
			row := rateTable[boundary]
			if rate, ok := row[class]; ok {
				return rate, nil
			}
			return row[LiquidityMonthly], nil
		}
	}
	return CeilingRate, nil
}
