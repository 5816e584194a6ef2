package engine

import (
	"github.com/shopspring/decimal"
)

// Intermediary shares are fixed for every product: 3% advisor, 1% office,
// simple-rate on principal, never compounding, independent of liquidity
// class and lock length. Their sum is always 4% of principal split 3:1.
var (
	AdvisorShare = decimal.RequireFromString("0.03")
	OfficeShare  = decimal.RequireFromString("0.01")
)

// CommissionSplit is the intermediary legs of one monthly payout.
type CommissionSplit struct {
	Advisor decimal.Decimal
	Office  decimal.Decimal
}

// Split computes the advisor and office monthly commissions on a principal.
func Split(principal decimal.Decimal) (CommissionSplit, error) {
	if !principal.IsPositive() {
		return CommissionSplit{}, &InvalidInputError{Field: "principal", Reason: "must be positive"}
	}
	return CommissionSplit{
		Advisor: principal.Mul(AdvisorShare),
		Office:  principal.Mul(OfficeShare),
	}, nil
}

// SplitFor applies the ownership rules of an investment:
//   - no linked advisor: the advisor leg is zero (direct office client);
//     the office still earns its 1%
//   - no linked office: the office leg is zero (orphaned investment)
func SplitFor(inv Investment) (CommissionSplit, error) {
	full, err := Split(inv.Principal)
	if err != nil {
		return CommissionSplit{}, err
	}
	if inv.AdvisorID == "" {
		full.Advisor = decimal.Zero
	}
	if inv.OfficeID == "" {
		full.Office = decimal.Zero
	}
	return full, nil
}
