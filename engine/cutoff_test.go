package engine_test

import (
	"testing"
	"time"

	"github.com/meridian/commission-engine/engine"
)

func TestBillingWindow_SpansPriorMonthCutoff(t *testing.T) {
	// GIVEN: a target month of March 2025
	// WHEN: computing the billing window
	// THEN: Feb 20 00:00 through Mar 20 23:59:59.999, UTC

	w := engine.BillingWindow(2025, time.March)

	wantStart := time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.March, 20, 23, 59, 59, 999000000, time.UTC)

	if !w.Start.Equal(wantStart) {
		t.Errorf("start: expected %v, got %v", wantStart, w.Start)
	}
	if !w.End.Equal(wantEnd) {
		t.Errorf("end: expected %v, got %v", wantEnd, w.End)
	}
}

func TestBillingWindow_JanuaryWrapsToPreviousDecember(t *testing.T) {
	w := engine.BillingWindow(2025, time.January)

	wantStart := time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) {
		t.Errorf("expected wrap to %v, got %v", wantStart, w.Start)
	}
}

func TestBillingWindow_ContainsIsInclusiveBothEnds(t *testing.T) {
	w := engine.BillingWindow(2025, time.March)

	if !w.Contains(w.Start) {
		t.Error("window must include its start boundary")
	}
	if !w.Contains(w.End) {
		t.Error("window must include its end boundary")
	}
	if w.Contains(w.End.Add(time.Millisecond)) {
		t.Error("window must exclude the instant after its end")
	}
}

func TestFifthBusinessDay_January2025(t *testing.T) {
	// GIVEN: January 2025, which starts on a Wednesday
	// WHEN: counting weekdays from day 1: Wed 1, Thu 2, Fri 3, Mon 6, Tue 7
	// THEN: the fifth business day is January 7

	got := engine.FifthBusinessDay(2025, time.January)
	want := time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFifthBusinessDay_MonthStartingOnWeekend(t *testing.T) {
	// GIVEN: March 2025, which starts on a Saturday
	// WHEN: counting weekdays: Mon 3, Tue 4, Wed 5, Thu 6, Fri 7
	// THEN: the fifth business day is March 7

	got := engine.FifthBusinessDay(2025, time.March)
	want := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFifthBusinessDay_IgnoresHolidaysByDefault(t *testing.T) {
	// GIVEN: May 2025 (starts Thursday); May 1 is a public holiday in many
	//        jurisdictions
	// WHEN: computing without a holiday calendar
	// THEN: May 1 still counts - weekends are the only skip

	got := engine.FifthBusinessDay(2025, time.May)
	want := time.Date(2025, time.May, 7, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

type fixedHolidays map[string]bool

func (h fixedHolidays) IsHoliday(d time.Time) bool { return h[d.Format("2006-01-02")] }

func TestNthBusinessDay_InjectedHolidayCalendar(t *testing.T) {
	// GIVEN: a calendar marking Jan 1 2025 as a holiday
	// WHEN: counting the fifth business day of January 2025
	// THEN: the count shifts by one day: Thu 2, Fri 3, Mon 6, Tue 7, Wed 8

	cal := fixedHolidays{"2025-01-01": true}
	got := engine.NthBusinessDay(2025, time.January, 5, cal)
	want := time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
