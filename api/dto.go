/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for the HTTP boundary, decoupled from the engine types.
  Monetary fields serialize as strings with 2-decimal display rounding; the
  engine's internal precision is never flattened into float64.

NAMING CONVENTION:
  - *DTO: response types returned to clients
  - *Request: request body types from clients
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridian/commission-engine/engine"
)

const dateLayout = "2006-01-02"

// money renders an amount with 2-decimal display rounding.
func money(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// =============================================================================
// INVESTMENT
// =============================================================================

// InvestmentDTO represents an investment in API responses.
type InvestmentDTO struct {
	ID               string  `json:"id"`
	Principal        string  `json:"principal"`
	PaymentDate      *string `json:"payment_date,omitempty"`
	CommitmentMonths int     `json:"commitment_months"`
	LiquidityClass   string  `json:"liquidity_class"`
	InvestorID       string  `json:"investor_id"`
	AdvisorID        string  `json:"advisor_id,omitempty"`
	OfficeID         string  `json:"office_id,omitempty"`
}

// CreateInvestmentRequest is the request to register an investment.
type CreateInvestmentRequest struct {
	Principal        string  `json:"principal"`
	PaymentDate      *string `json:"payment_date,omitempty"`
	CommitmentMonths int     `json:"commitment_months"`
	LiquidityClass   string  `json:"liquidity_class"`
	InvestorID       string  `json:"investor_id"`
	AdvisorID        string  `json:"advisor_id,omitempty"`
	OfficeID         string  `json:"office_id,omitempty"`
}

func toInvestmentDTO(inv engine.Investment) InvestmentDTO {
	dto := InvestmentDTO{
		ID:               inv.ID,
		Principal:        money(inv.Principal),
		CommitmentMonths: inv.CommitmentMonths,
		LiquidityClass:   string(inv.Liquidity),
		InvestorID:       inv.InvestorID,
		AdvisorID:        inv.AdvisorID,
		OfficeID:         inv.OfficeID,
	}
	if inv.PaymentDate != nil {
		d := formatDate(*inv.PaymentDate)
		dto.PaymentDate = &d
	}
	return dto
}

// =============================================================================
// PROJECTION
// =============================================================================

// ProjectionEntryDTO is one projected month.
type ProjectionEntryDTO struct {
	Month              int    `json:"month"`
	Date               string `json:"date,omitempty"`
	InvestorCommission string `json:"investor_commission"`
	AdvisorCommission  string `json:"advisor_commission"`
	OfficeCommission   string `json:"office_commission"`
	CumulativeInvestor string `json:"cumulative_investor"`
	CumulativeAdvisor  string `json:"cumulative_advisor"`
	CumulativeOffice   string `json:"cumulative_office"`
	CumulativeTotal    string `json:"cumulative_total"`
	TotalValue         string `json:"total_value"`
}

func toProjectionDTOs(entries []engine.ProjectionEntry) []ProjectionEntryDTO {
	out := make([]ProjectionEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = ProjectionEntryDTO{
			Month:              e.Month,
			InvestorCommission: money(e.InvestorCommission),
			AdvisorCommission:  money(e.AdvisorCommission),
			OfficeCommission:   money(e.OfficeCommission),
			CumulativeInvestor: money(e.CumulativeInvestor),
			CumulativeAdvisor:  money(e.CumulativeAdvisor),
			CumulativeOffice:   money(e.CumulativeOffice),
			CumulativeTotal:    money(e.CumulativeTotal),
			TotalValue:         money(e.TotalValue),
		}
		if !e.Date.IsZero() {
			out[i].Date = formatDate(e.Date)
		}
	}
	return out
}

// =============================================================================
// COMMISSION RECORD
// =============================================================================

// CommissionRecordDTO is one investment's computed record for a billing month.
type CommissionRecordDTO struct {
	InvestmentID       string              `json:"investment_id"`
	InvestorCommission string              `json:"investor_commission"`
	AdvisorCommission  string              `json:"advisor_commission"`
	OfficeCommission   string              `json:"office_commission"`
	TotalCommission    string              `json:"total_commission"`
	PaymentDueDates    []string            `json:"payment_due_dates"`
	MonthlyBreakdown   []BreakdownEntryDTO `json:"monthly_breakdown,omitempty"`
	CutoffPeriod       WindowDTO           `json:"cutoff_period"`
}

// BreakdownEntryDTO is one calendar month's slice of a multi-month record.
type BreakdownEntryDTO struct {
	Month              int    `json:"month"`
	Year               int    `json:"year"`
	InvestorCommission string `json:"investor_commission"`
	AdvisorCommission  string `json:"advisor_commission"`
	OfficeCommission   string `json:"office_commission"`
}

// WindowDTO is a billing window boundary pair.
type WindowDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func toRecordDTO(rec engine.CommissionRecord) CommissionRecordDTO {
	dto := CommissionRecordDTO{
		InvestmentID:       rec.Investment.ID,
		InvestorCommission: money(rec.InvestorCommission),
		AdvisorCommission:  money(rec.AdvisorCommission),
		OfficeCommission:   money(rec.OfficeCommission),
		TotalCommission:    money(rec.TotalCommission()),
		CutoffPeriod: WindowDTO{
			Start: formatDate(rec.CutoffPeriod.Start),
			End:   formatDate(rec.CutoffPeriod.End),
		},
	}
	for _, due := range rec.PaymentDueDates {
		dto.PaymentDueDates = append(dto.PaymentDueDates, formatDate(due))
	}
	for _, b := range rec.MonthlyBreakdown {
		dto.MonthlyBreakdown = append(dto.MonthlyBreakdown, BreakdownEntryDTO{
			Month:              int(b.Month),
			Year:               b.Year,
			InvestorCommission: money(b.InvestorCommission),
			AdvisorCommission:  money(b.AdvisorCommission),
			OfficeCommission:   money(b.OfficeCommission),
		})
	}
	return dto
}

// =============================================================================
// AGGREGATION / REPORT
// =============================================================================

// GroupTotalsDTO is the roll-up for one payee.
type GroupTotalsDTO struct {
	EntityID                string `json:"entity_id"`
	TotalPrincipal          string `json:"total_principal"`
	TotalInvestorCommission string `json:"total_investor_commission"`
	TotalAdvisorCommission  string `json:"total_advisor_commission"`
	TotalOfficeCommission   string `json:"total_office_commission"`
	TotalCommission         string `json:"total_commission"`
	Count                   int    `json:"count"`
}

// ReportDTO is a monthly statement: per-investment records plus the roll-up.
type ReportDTO struct {
	Year               int                   `json:"year"`
	Month              int                   `json:"month"`
	GroupBy            string                `json:"group_by"`
	Groups             []GroupTotalsDTO      `json:"groups"`
	Records            []CommissionRecordDTO `json:"records"`
	SkippedInvestments int                   `json:"skipped_investments"`
	SkippedInGrouping  int                   `json:"skipped_in_grouping"`
}

// RateDTO is a resolved tier rate.
type RateDTO struct {
	CommitmentMonths  int    `json:"commitment_months"`
	LockDays          int    `json:"lock_days"`
	LiquidityClass    string `json:"liquidity_class"`
	AnnualRatePercent string `json:"annual_rate_percent"`
}

// PayableDateDTO is a month's disbursement date.
type PayableDateDTO struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	PayableDate string `json:"payable_date"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
