/*
handlers.go - HTTP handlers over the commission engine

PURPOSE:
  Thin REST boundary: parse and validate the request, call the engine or
  the report service, serialize the response. No business rules live here;
  the engine owns them all.

ENDPOINTS:
  Investments:
    GET  /api/investments                      List investments
    POST /api/investments                      Register an investment
    GET  /api/investments/{id}                 Get one investment
    GET  /api/investments/{id}/projection      12-month forward projection
    GET  /api/investments/{id}/commission      Record for a billing month

  Reporting:
    GET  /api/reports/commissions              Monthly statement + roll-up

  Reference:
    GET  /api/rates                            Resolve a tier rate
    GET  /api/calendar/payable                 Disbursement date for a month

ERROR HANDLING:
  400 for engine input rejections (ErrInvalidInput), 404 for unknown ids,
  500 otherwise. A bulk report never 500s because one record is malformed;
  the engine excludes it and the response carries the skip counts.
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/meridian/commission-engine/engine"
	"github.com/meridian/commission-engine/report"
	"github.com/meridian/commission-engine/store"
)

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	Store   store.InvestmentStore
	Reports *report.Service
	Log     *zap.Logger
}

// NewHandler wires the handler with its store and report service.
func NewHandler(s store.InvestmentStore, reports *report.Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Store: s, Reports: reports, Log: log}
}

// =============================================================================
// INVESTMENT HANDLERS
// =============================================================================

// ListInvestments returns all registered investments.
func (h *Handler) ListInvestments(w http.ResponseWriter, r *http.Request) {
	investments, err := h.Store.List(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to list investments", err)
		return
	}

	dtos := make([]InvestmentDTO, len(investments))
	for i, inv := range investments {
		dtos[i] = toInvestmentDTO(inv)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateInvestment registers an investment.
func (h *Handler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	var req CreateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid principal", err)
		return
	}

	inv := engine.Investment{
		Principal:        principal,
		CommitmentMonths: req.CommitmentMonths,
		Liquidity:        engine.LiquidityClass(req.LiquidityClass),
		InvestorID:       req.InvestorID,
		AdvisorID:        req.AdvisorID,
		OfficeID:         req.OfficeID,
	}
	if req.PaymentDate != nil {
		d, err := time.ParseInLocation(dateLayout, *req.PaymentDate, time.UTC)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid payment_date", err)
			return
		}
		inv.PaymentDate = &d
	}

	// Reject unstorable records up front with the engine's own validation:
	// a projection touches every field a record computation needs.
	if _, err := engine.Project(inv); err != nil && engine.IsInvalidInput(err) {
		h.writeError(w, http.StatusBadRequest, "invalid investment", err)
		return
	}

	created, err := h.Store.Create(r.Context(), inv)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to create investment", err)
		return
	}
	writeJSON(w, http.StatusCreated, toInvestmentDTO(created))
}

// GetInvestment returns one investment by id.
func (h *Handler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.fetchInvestment(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toInvestmentDTO(inv))
}

// GetProjection returns the forward projection for one investment.
// ?periods= overrides the standard 12-month horizon.
func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.fetchInvestment(w, r)
	if !ok {
		return
	}

	periods := engine.DefaultProjectionHorizon
	if raw := r.URL.Query().Get("periods"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 0 {
			h.writeError(w, http.StatusBadRequest, "invalid periods", err)
			return
		}
		periods = p
	}

	entries, err := engine.ProjectHorizon(inv, periods)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	dtos := toProjectionDTOs(entries)
	if inv.PaymentDate == nil {
		// No dates without a payment date; months alone still project.
		h.Log.Debug("projection without payment date", zap.String("investment_id", inv.ID))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCommission returns one investment's commission record for a billing
// month. ?year= and ?month= select the month; ?backfill=true covers every
// missed month since the payment date.
func (h *Handler) GetCommission(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.fetchInvestment(w, r)
	if !ok {
		return
	}

	year, month, err := yearMonthParams(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid year/month", err)
		return
	}

	var rec *engine.CommissionRecord
	if r.URL.Query().Get("backfill") == "true" {
		rec, err = engine.ComputeRecordBackfill(inv, year, month)
	} else {
		rec, err = engine.ComputeRecord(inv, year, month)
	}
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordDTO(*rec))
}

// =============================================================================
// REPORTING HANDLERS
// =============================================================================

// GetCommissionReport computes the monthly statement across all stored
// investments. ?groupBy=investor|advisor|office selects the roll-up axis,
// ?cutoff=YYYY-MM-DD restricts to investments entered on/before that date.
func (h *Handler) GetCommissionReport(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid year/month", err)
		return
	}

	axis := engine.GroupAxis(r.URL.Query().Get("groupBy"))
	if axis == "" {
		axis = engine.GroupByAdvisor
	}

	var cutoff *time.Time
	if raw := r.URL.Query().Get("cutoff"); raw != "" {
		d, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid cutoff", err)
			return
		}
		cutoff = &d
	}

	investments, err := h.Store.List(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to list investments", err)
		return
	}

	stmt, err := h.Reports.MonthlyStatement(r.Context(), investments, year, month, axis, cutoff)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	dto := ReportDTO{
		Year:               stmt.Year,
		Month:              int(stmt.Month),
		GroupBy:            string(axis),
		SkippedInvestments: stmt.SkippedInvestments,
		SkippedInGrouping:  stmt.Aggregation.Skipped,
	}
	for _, g := range stmt.Aggregation.Sorted() {
		dto.Groups = append(dto.Groups, GroupTotalsDTO{
			EntityID:                g.EntityID,
			TotalPrincipal:          money(g.TotalPrincipal),
			TotalInvestorCommission: money(g.TotalInvestorCommission),
			TotalAdvisorCommission:  money(g.TotalAdvisorCommission),
			TotalOfficeCommission:   money(g.TotalOfficeCommission),
			TotalCommission:         money(g.TotalCommission),
			Count:                   g.Count,
		})
	}
	for _, rec := range stmt.Records {
		dto.Records = append(dto.Records, toRecordDTO(rec))
	}
	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// REFERENCE HANDLERS
// =============================================================================

// GetRate resolves a tier rate. ?months= and ?liquidity= are required.
func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	months, err := strconv.Atoi(r.URL.Query().Get("months"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid months", err)
		return
	}
	class := engine.LiquidityClass(r.URL.Query().Get("liquidity"))

	rate, err := engine.ResolveInvestorRate(months, class)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RateDTO{
		CommitmentMonths:  months,
		LockDays:          months * engine.DaysPerCommitmentMonth,
		LiquidityClass:    string(class),
		AnnualRatePercent: rate.String(),
	})
}

// GetPayableDate returns a month's disbursement date and billing window.
func (h *Handler) GetPayableDate(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid year/month", err)
		return
	}

	window := engine.BillingWindow(year, month)
	writeJSON(w, http.StatusOK, PayableDateDTO{
		Year:        year,
		Month:       int(month),
		PayableDate: formatDate(engine.FifthBusinessDay(year, month)),
		WindowStart: formatDate(window.Start),
		WindowEnd:   formatDate(window.End),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) fetchInvestment(w http.ResponseWriter, r *http.Request) (engine.Investment, bool) {
	id := chi.URLParam(r, "id")
	inv, err := h.Store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "investment not found", nil)
		return engine.Investment{}, false
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load investment", err)
		return engine.Investment{}, false
	}
	return inv, true
}

func yearMonthParams(r *http.Request) (int, time.Month, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, err
	}
	m, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, err
	}
	if m < 1 || m > 12 {
		return 0, 0, errors.New("month must be 1-12")
	}
	return year, time.Month(m), nil
}

func (h *Handler) writeEngineError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		h.writeError(w, http.StatusServiceUnavailable, "computation cancelled", err)
		return
	}
	if engine.IsClientError(err) {
		h.writeError(w, http.StatusBadRequest, "rejected computation", err)
		return
	}
	h.writeError(w, http.StatusInternalServerError, "computation failed", err)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
		h.Log.Warn(msg, zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
