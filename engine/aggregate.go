/*
aggregate.go - Roll-up of commission records by payee

PURPOSE:
  Groups computed records by investor, advisor, or office for reporting and
  export. A record missing the id for the chosen axis is skipped for that
  view (never bucketed under a synthetic key); a cutoff filter restricts the
  roll-up to investments entered on or before a date.

  One malformed or incomplete record never aborts the batch: it is counted
  in Skipped and the rest of the roll-up proceeds.
*/
package engine

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// GroupAxis selects the grouping key for an aggregation.
type GroupAxis string

const (
	GroupByInvestor GroupAxis = "investor"
	GroupByAdvisor  GroupAxis = "advisor"
	GroupByOffice   GroupAxis = "office"
)

// Valid reports whether the axis is one of the three grouping keys.
func (a GroupAxis) Valid() bool {
	return a == GroupByInvestor || a == GroupByAdvisor || a == GroupByOffice
}

// GroupTotals is the roll-up for one payee.
type GroupTotals struct {
	EntityID string

	TotalPrincipal          decimal.Decimal
	TotalInvestorCommission decimal.Decimal
	TotalAdvisorCommission  decimal.Decimal
	TotalOfficeCommission   decimal.Decimal
	TotalCommission         decimal.Decimal

	Count int // underlying investments
}

// AggregationResult is a complete roll-up: per-payee totals plus a count of
// records excluded from this view.
type AggregationResult struct {
	Axis    GroupAxis
	Groups  map[string]*GroupTotals
	Skipped int
}

// Sorted returns the groups ordered by entity id, for deterministic report
// and export output.
func (r AggregationResult) Sorted() []GroupTotals {
	out := make([]GroupTotals, 0, len(r.Groups))
	for _, g := range r.Groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntityID < out[j].EntityID })
	return out
}

// Aggregate rolls records up along the chosen axis.
//
// When cutoff is non-nil, only records whose investment payment date is
// present and on/before the cutoff participate; records without a payment
// date are excluded entirely, never defaulted to "now". Input records are
// not mutated.
func Aggregate(records []CommissionRecord, axis GroupAxis, cutoff *time.Time) (AggregationResult, error) {
	if !axis.Valid() {
		return AggregationResult{}, &InvalidInputError{Field: "groupBy", Reason: "unknown axis " + string(axis)}
	}

	result := AggregationResult{Axis: axis, Groups: make(map[string]*GroupTotals)}

	for _, rec := range records {
		if cutoff != nil {
			paid := rec.Investment.PaymentDate
			if paid == nil || paid.After(*cutoff) {
				result.Skipped++
				continue
			}
		}

		key := axisKey(rec.Investment, axis)
		if key == "" {
			result.Skipped++
			continue
		}

		group, ok := result.Groups[key]
		if !ok {
			group = &GroupTotals{EntityID: key}
			result.Groups[key] = group
		}
		group.TotalPrincipal = group.TotalPrincipal.Add(rec.Investment.Principal)
		group.TotalInvestorCommission = group.TotalInvestorCommission.Add(rec.InvestorCommission)
		group.TotalAdvisorCommission = group.TotalAdvisorCommission.Add(rec.AdvisorCommission)
		group.TotalOfficeCommission = group.TotalOfficeCommission.Add(rec.OfficeCommission)
		group.TotalCommission = group.TotalCommission.Add(rec.TotalCommission())
		group.Count++
	}
	return result, nil
}

func axisKey(inv Investment, axis GroupAxis) string {
	switch axis {
	case GroupByInvestor:
		return inv.InvestorID
	case GroupByAdvisor:
		return inv.AdvisorID
	case GroupByOffice:
		return inv.OfficeID
	}
	return ""
}
