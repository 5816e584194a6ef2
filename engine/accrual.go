/*
accrual.go - Monthly investor-yield accrual

PURPOSE:
  Produces the per-period investor yield for an investment, in one of two
  regimes selected by liquidity class:

  SIMPLE (monthly class):
    A fixed amount is withdrawn every period; the principal never changes.
    The full annual rate is applied each month - NOT rate/12. That is the
    contractual product rule carried by the rate table ("simple withdrawal
    every month") and is preserved here exactly; see ProductRules in
    DESIGN.md before "fixing" it.

  COMPOUND (all other classes):
    The balance grows period over period. Each period's amount is realized
    and reported monthly for transparency and projections, but is only
    contractually payable at the class's maturity boundary; disbursement
    timing is the caller's concern.

ROUNDING:
  Compound balances round to 2 decimals at each compounding step so repeated
  computation can never drift from reported statements. Simple amounts are
  exact and round only at display.
*/
package engine

import (
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// AccrualEntry is one period of investor yield.
type AccrualEntry struct {
	Period       int // 1-based
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
}

// Accrue computes the yield sequence for exactly periods entries. It is a
// pure function of its arguments: calling again with the same inputs
// restarts the identical sequence.
//
// periods == 0 returns an empty sequence, not an error.
func Accrue(principal, annualRatePercent decimal.Decimal, class LiquidityClass, periods int) ([]AccrualEntry, error) {
	if !principal.IsPositive() {
		return nil, &InvalidInputError{Field: "principal", Reason: "must be positive"}
	}
	if annualRatePercent.IsNegative() {
		return nil, &InvalidInputError{Field: "annualRatePercent", Reason: "must not be negative"}
	}
	if periods < 0 {
		return nil, &InvalidInputError{Field: "periods", Reason: "must not be negative"}
	}
	if periods == 0 {
		return []AccrualEntry{}, nil
	}

	entries := make([]AccrualEntry, 0, periods)

	if !class.Compounds() {
		// Full annual rate every period, principal untouched.
		amount := principal.Mul(annualRatePercent).Div(oneHundred)
		for p := 1; p <= periods; p++ {
			entries = append(entries, AccrualEntry{Period: p, Amount: amount, BalanceAfter: principal})
		}
		return entries, nil
	}

	growth := decimal.NewFromInt(1).Add(annualRatePercent.Div(oneHundred))
	balance := principal
	for p := 1; p <= periods; p++ {
		next := balance.Mul(growth).Round(2)
		entries = append(entries, AccrualEntry{
			Period:       p,
			Amount:       next.Sub(balance),
			BalanceAfter: next,
		})
		balance = next
	}
	return entries, nil
}
