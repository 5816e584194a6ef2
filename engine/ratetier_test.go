package engine_test

import (
	"testing"

	"github.com/meridian/commission-engine/engine"
	"github.com/shopspring/decimal"
)

func rate(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRateTier_BoundaryExactness(t *testing.T) {
	// GIVEN: the fixed tier table
	// WHEN: resolving at the documented boundary points (lock days)
	// THEN: exact table values come back, with 91 rolling into the next tier

	cases := []struct {
		name  string
		days  int
		class engine.LiquidityClass
		want  string
	}{
		{"90 days monthly", 90, engine.LiquidityMonthly, "1.8"},
		{"91 days monthly rolls to next tier", 91, engine.LiquidityMonthly, "1.9"},
		{"360 days annual", 360, engine.LiquidityAnnual, "2.5"},
		{"1080 days triennial", 1080, engine.LiquidityTriennial, "3.2"},
		{"1081 days hits the ceiling", 1081, engine.LiquidityMonthly, "3.5"},
		{"1081 days ceiling applies to any class", 1081, engine.LiquidityBiennial, "3.5"},
		{"absurdly long lock still resolves", 100000, engine.LiquidityAnnual, "3.5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := engine.ResolveRateForLockDays(tc.days, tc.class)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(rate(tc.want)) {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestRateTier_MonthsConversion(t *testing.T) {
	// GIVEN: a 12-month commitment (360 lock days at 30 days/month)
	// WHEN: resolving for the annual class
	// THEN: the <=360 annual cell applies: 2.5

	got, err := engine.ResolveInvestorRate(12, engine.LiquidityAnnual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(rate("2.5")) {
		t.Errorf("expected 2.5, got %s", got)
	}
}

func TestRateTier_FallbackToMonthlyColumn(t *testing.T) {
	// GIVEN: a class with no cell at a boundary (triennial at <=360)
	// WHEN: resolving
	// THEN: the monthly column for that boundary applies

	got, err := engine.ResolveRateForLockDays(360, engine.LiquidityTriennial)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(rate("2.0")) {
		t.Errorf("expected monthly fallback 2.0, got %s", got)
	}
}

func TestRateTier_MonotonicPerClass(t *testing.T) {
	// GIVEN: any liquidity class
	// WHEN: the commitment length grows
	// THEN: the resolved rate never decreases

	classes := []engine.LiquidityClass{
		engine.LiquidityMonthly,
		engine.LiquiditySemiannual,
		engine.LiquidityAnnual,
		engine.LiquidityBiennial,
		engine.LiquidityTriennial,
	}

	for _, class := range classes {
		prev := decimal.Zero
		for months := 1; months <= 48; months++ {
			got, err := engine.ResolveInvestorRate(months, class)
			if err != nil {
				t.Fatalf("%s at %d months: unexpected error: %v", class, months, err)
			}
			if got.LessThan(prev) {
				t.Errorf("%s: rate decreased from %s to %s at %d months", class, prev, got, months)
			}
			prev = got
		}
	}
}

func TestRateTier_RejectsNonPositiveCommitment(t *testing.T) {
	for _, months := range []int{0, -1} {
		_, err := engine.ResolveInvestorRate(months, engine.LiquidityMonthly)
		if !engine.IsInvalidInput(err) {
			t.Errorf("months=%d: expected invalid input, got %v", months, err)
		}
	}
}

func TestRateTier_Deterministic(t *testing.T) {
	a, _ := engine.ResolveInvestorRate(18, engine.LiquiditySemiannual)
	b, _ := engine.ResolveInvestorRate(18, engine.LiquiditySemiannual)
	if !a.Equal(b) {
		t.Errorf("identical inputs resolved differently: %s vs %s", a, b)
	}
}
