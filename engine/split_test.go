package engine_test

import (
	"testing"

	"github.com/meridian/commission-engine/engine"
	"github.com/shopspring/decimal"
)

func TestSplit_FixedSharesOnPrincipal(t *testing.T) {
	// GIVEN: any positive principal
	// WHEN: splitting
	// THEN: advisor gets exactly 3%, office exactly 1%, summing to 4% (3:1)

	for _, principal := range []string{"100000", "1", "1234.56", "999999999.99"} {
		p := decimal.RequireFromString(principal)
		split, err := engine.Split(p)
		if err != nil {
			t.Fatalf("principal %s: unexpected error: %v", principal, err)
		}

		wantAdvisor := p.Mul(decimal.RequireFromString("0.03"))
		wantOffice := p.Mul(decimal.RequireFromString("0.01"))
		if !split.Advisor.Equal(wantAdvisor) {
			t.Errorf("principal %s: advisor expected %s, got %s", principal, wantAdvisor, split.Advisor)
		}
		if !split.Office.Equal(wantOffice) {
			t.Errorf("principal %s: office expected %s, got %s", principal, wantOffice, split.Office)
		}
		if !split.Advisor.Add(split.Office).Equal(p.Mul(decimal.RequireFromString("0.04"))) {
			t.Errorf("principal %s: legs must sum to 4%% of principal", principal)
		}
	}
}

func TestSplit_RejectsNonPositivePrincipal(t *testing.T) {
	for _, principal := range []string{"0", "-50"} {
		_, err := engine.Split(decimal.RequireFromString(principal))
		if !engine.IsInvalidInput(err) {
			t.Errorf("principal %s: expected invalid input, got %v", principal, err)
		}
	}
}

func TestSplitFor_NoAdvisorZeroesAdvisorLegOnly(t *testing.T) {
	// GIVEN: a direct office client (no advisor linked)
	// WHEN: splitting for the investment
	// THEN: the advisor leg is zero but the office still earns its 1%

	inv := engine.Investment{
		Principal:  decimal.RequireFromString("50000"),
		Liquidity:  engine.LiquidityMonthly,
		InvestorID: "inv-1",
		OfficeID:   "office-1",
	}

	split, err := engine.SplitFor(inv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !split.Advisor.IsZero() {
		t.Errorf("advisor leg should be zero, got %s", split.Advisor)
	}
	if !split.Office.Equal(decimal.RequireFromString("500")) {
		t.Errorf("office leg expected 500, got %s", split.Office)
	}
}

func TestSplitFor_OrphanedInvestmentZeroesOfficeLeg(t *testing.T) {
	inv := engine.Investment{
		Principal:  decimal.RequireFromString("50000"),
		Liquidity:  engine.LiquidityMonthly,
		InvestorID: "inv-1",
		AdvisorID:  "adv-1",
	}

	split, err := engine.SplitFor(inv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !split.Office.IsZero() {
		t.Errorf("office leg should be zero, got %s", split.Office)
	}
	if !split.Advisor.Equal(decimal.RequireFromString("1500")) {
		t.Errorf("advisor leg expected 1500, got %s", split.Advisor)
	}
}
