/*
Package report orchestrates bulk commission runs over the calculation engine.

PURPOSE:
  The engine computes one investment at a time and knows nothing about
  batches, cancellation, or logging. This package is the surrounding
  orchestration: it walks a set of investments, computes each record,
  excludes the malformed ones without aborting the run, and rolls the
  survivors up by payee.

CANCELLATION:
  A monthly statement over thousands of investments is chunked into batches;
  the context is checked between batches, never inside a single computation.

ERROR POLICY:
  A record that fails with a client error (bad principal, missing payment
  date) is skipped and counted; any other error aborts the run, because it
  signals a defect rather than bad data.
*/
package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/meridian/commission-engine/engine"
)

// DefaultBatchSize is how many investments are computed between context
// checks.
const DefaultBatchSize = 100

// Service runs bulk commission computations.
type Service struct {
	BatchSize int
	Logger    *zap.Logger
}

// NewService returns a Service with the default batch size.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{BatchSize: DefaultBatchSize, Logger: logger}
}

// Statement is one billing month's computed output: the individual records
// plus their roll-up along one axis.
type Statement struct {
	Year  int
	Month time.Month

	Records     []engine.CommissionRecord
	Aggregation engine.AggregationResult

	// SkippedInvestments counts inputs excluded for client errors
	// (malformed principal, missing payment date, not yet accruing).
	SkippedInvestments int
}

// MonthlyStatement computes the commission records of every investment for a
// target billing month and aggregates them along the given axis. Malformed
// investments are excluded and counted, not fatal. The optional cutoff
// restricts the aggregation to investments entered on/before that date.
func (s *Service) MonthlyStatement(
	ctx context.Context,
	investments []engine.Investment,
	year int,
	month time.Month,
	axis engine.GroupAxis,
	cutoff *time.Time,
) (*Statement, error) {
	records, skipped, err := s.computeAll(ctx, investments, year, month)
	if err != nil {
		return nil, err
	}

	aggregation, err := engine.Aggregate(records, axis, cutoff)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("monthly statement computed",
		zap.Int("year", year),
		zap.Stringer("month", month),
		zap.Int("investments", len(investments)),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped),
		zap.String("group_by", string(axis)),
	)

	return &Statement{
		Year:               year,
		Month:              month,
		Records:            records,
		Aggregation:        aggregation,
		SkippedInvestments: skipped,
	}, nil
}

// computeAll walks the investments in batches, checking ctx between batches.
func (s *Service) computeAll(ctx context.Context, investments []engine.Investment, year int, month time.Month) ([]engine.CommissionRecord, int, error) {
	batchSize := s.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	records := make([]engine.CommissionRecord, 0, len(investments))
	skipped := 0

	for start := 0; start < len(investments); start += batchSize {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		end := start + batchSize
		if end > len(investments) {
			end = len(investments)
		}

		for _, inv := range investments[start:end] {
			rec, err := engine.ComputeRecord(inv, year, month)
			if err != nil {
				if engine.IsClientError(err) {
					skipped++
					s.Logger.Warn("investment excluded from statement",
						zap.String("investment_id", inv.ID),
						zap.Error(err),
					)
					continue
				}
				return nil, 0, err
			}
			records = append(records, *rec)
		}
	}
	return records, skipped, nil
}
