package engine_test

import (
	"testing"
	"time"

	"github.com/meridian/commission-engine/engine"
	"github.com/shopspring/decimal"
)

func recordInvestment(paidYear int, paidMonth time.Month) engine.Investment {
	paid := time.Date(paidYear, paidMonth, 10, 0, 0, 0, 0, time.UTC)
	return engine.Investment{
		ID:               "inv-200",
		Principal:        decimal.RequireFromString("100000"),
		PaymentDate:      &paid,
		CommitmentMonths: 12,
		Liquidity:        engine.LiquidityAnnual,
		InvestorID:       "investor-1",
		AdvisorID:        "advisor-1",
		OfficeID:         "office-1",
	}
}

func TestComputeRecord_SingleMonth(t *testing.T) {
	// GIVEN: funds confirmed Jan 10 2025, target month February
	// WHEN: computing the record
	// THEN: one due date (Feb's fifth business day), no breakdown, and the
	//       period-1 amounts: investor 2,500.00, advisor 3,000, office 1,000

	rec, err := engine.ComputeRecord(recordInvestment(2025, time.January), 2025, time.February)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.PaymentDueDates) != 1 {
		t.Fatalf("expected one due date, got %d", len(rec.PaymentDueDates))
	}
	wantDue := engine.FifthBusinessDay(2025, time.February)
	if !rec.PaymentDueDates[0].Equal(wantDue) {
		t.Errorf("due date: expected %v, got %v", wantDue, rec.PaymentDueDates[0])
	}
	if rec.MonthlyBreakdown != nil {
		t.Errorf("single-month record should carry no breakdown")
	}
	if !rec.InvestorCommission.Equal(decimal.RequireFromString("2500.00")) {
		t.Errorf("investor: expected 2500.00, got %s", rec.InvestorCommission)
	}
	if !rec.AdvisorCommission.Equal(decimal.RequireFromString("3000")) {
		t.Errorf("advisor: expected 3000, got %s", rec.AdvisorCommission)
	}
	if !rec.OfficeCommission.Equal(decimal.RequireFromString("1000")) {
		t.Errorf("office: expected 1000, got %s", rec.OfficeCommission)
	}

	wantWindow := engine.BillingWindow(2025, time.February)
	if !rec.CutoffPeriod.Start.Equal(wantWindow.Start) || !rec.CutoffPeriod.End.Equal(wantWindow.End) {
		t.Errorf("cutoff period: expected %v, got %v", wantWindow, rec.CutoffPeriod)
	}
}

func TestComputeRecord_CompoundAmountDependsOnElapsedPeriods(t *testing.T) {
	// GIVEN: a compounding investment paid in January
	// WHEN: computing March's record (period 2)
	// THEN: the investor amount is the SECOND compounding step, larger than
	//       the first

	rec, err := engine.ComputeRecord(recordInvestment(2025, time.January), 2025, time.March)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 102500.00 * 1.025 = 105062.50; step 2 yield = 2562.50
	if !rec.InvestorCommission.Equal(decimal.RequireFromString("2562.50")) {
		t.Errorf("investor: expected 2562.50, got %s", rec.InvestorCommission)
	}
}

func TestComputeRecordBackfill_CoversMissedMonths(t *testing.T) {
	// GIVEN: an investment paid Jan 10, never billed, target month April
	// WHEN: back-filling
	// THEN: three covered months (Feb, Mar, Apr), one due date per month,
	//       a per-month breakdown, and totals equal to the breakdown sums

	rec, err := engine.ComputeRecordBackfill(recordInvestment(2025, time.January), 2025, time.April)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.PaymentDueDates) != 3 {
		t.Fatalf("expected 3 due dates, got %d", len(rec.PaymentDueDates))
	}
	if len(rec.MonthlyBreakdown) != 3 {
		t.Fatalf("expected 3 breakdown entries, got %d", len(rec.MonthlyBreakdown))
	}

	wantMonths := []time.Month{time.February, time.March, time.April}
	investorSum := decimal.Zero
	for i, b := range rec.MonthlyBreakdown {
		if b.Month != wantMonths[i] || b.Year != 2025 {
			t.Errorf("breakdown %d: expected %v 2025, got %v %d", i, wantMonths[i], b.Month, b.Year)
		}
		if !rec.PaymentDueDates[i].Equal(engine.FifthBusinessDay(2025, wantMonths[i])) {
			t.Errorf("breakdown %d: due date should be the month's fifth business day", i)
		}
		investorSum = investorSum.Add(b.InvestorCommission)
	}
	if !rec.InvestorCommission.Equal(investorSum) {
		t.Errorf("investor total %s must equal breakdown sum %s", rec.InvestorCommission, investorSum)
	}
	if !rec.AdvisorCommission.Equal(decimal.RequireFromString("9000")) {
		t.Errorf("advisor total over 3 months: expected 9000, got %s", rec.AdvisorCommission)
	}
}

func TestComputeRecord_MissingPaymentDateIsRejected(t *testing.T) {
	// The engine never substitutes "now" - a missing payment date is the
	// caller's problem to resolve before calling.

	inv := recordInvestment(2025, time.January)
	inv.PaymentDate = nil

	_, err := engine.ComputeRecord(inv, 2025, time.February)
	if !engine.IsInvalidInput(err) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestComputeRecord_PaymentAfterTargetMonthIsRejected(t *testing.T) {
	_, err := engine.ComputeRecord(recordInvestment(2025, time.June), 2025, time.February)
	if !engine.IsInvalidInput(err) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestComputeRecord_NoAdvisorLegForDirectClients(t *testing.T) {
	inv := recordInvestment(2025, time.January)
	inv.AdvisorID = ""

	rec, err := engine.ComputeRecord(inv, 2025, time.February)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.AdvisorCommission.IsZero() {
		t.Errorf("advisor leg should be zero, got %s", rec.AdvisorCommission)
	}
	if !rec.OfficeCommission.Equal(decimal.RequireFromString("1000")) {
		t.Errorf("office still earns its 1%%: expected 1000, got %s", rec.OfficeCommission)
	}
}
