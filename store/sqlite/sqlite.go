/*
Package sqlite provides the SQLite-backed InvestmentStore.

PURPOSE:
  Persists investment records only. Commission records, projections, and
  aggregations are never written anywhere: they are value objects recomputed
  by the engine on every request.

MONEY:
  Principal is stored as TEXT and parsed through decimal.NewFromString.
  Storing money as REAL would reintroduce the floating-point drift the
  engine exists to avoid.

WAL MODE:
  SQLite is opened with WAL so readers don't block while the application
  writes. A sync.RWMutex guards the connection the same way regardless; with
  PostgreSQL in production the database's own concurrency control takes
  over.
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/meridian/commission-engine/engine"
	"github.com/meridian/commission-engine/store"
)

// Store implements store.InvestmentStore on SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ store.InvestmentStore = (*Store)(nil)

// New opens (or creates) the database at dbPath and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS investments (
			id                TEXT PRIMARY KEY,
			principal         TEXT NOT NULL,
			payment_date      TEXT,
			commitment_months INTEGER NOT NULL,
			liquidity_class   TEXT NOT NULL,
			investor_id       TEXT NOT NULL,
			advisor_id        TEXT NOT NULL DEFAULT '',
			office_id         TEXT NOT NULL DEFAULT '',
			created_at        TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_investments_investor ON investments(investor_id);
		CREATE INDEX IF NOT EXISTS idx_investments_advisor ON investments(advisor_id);
		CREATE INDEX IF NOT EXISTS idx_investments_office ON investments(office_id);
	`)
	return err
}

const dateLayout = "2006-01-02"

func (s *Store) Create(ctx context.Context, inv engine.Investment) (engine.Investment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}

	var paymentDate sql.NullString
	if inv.PaymentDate != nil {
		paymentDate = sql.NullString{String: inv.PaymentDate.UTC().Format(dateLayout), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO investments
			(id, principal, payment_date, commitment_months, liquidity_class,
			 investor_id, advisor_id, office_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Principal.String(), paymentDate, inv.CommitmentMonths,
		string(inv.Liquidity), inv.InvestorID, inv.AdvisorID, inv.OfficeID,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return engine.Investment{}, fmt.Errorf("failed to insert investment: %w", err)
	}
	return inv, nil
}

func (s *Store) Get(ctx context.Context, id string) (engine.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, principal, payment_date, commitment_months, liquidity_class,
		       investor_id, advisor_id, office_id
		FROM investments WHERE id = ?`, id)

	inv, err := scanInvestment(row)
	if err == sql.ErrNoRows {
		return engine.Investment{}, store.ErrNotFound
	}
	return inv, err
}

func (s *Store) List(ctx context.Context) ([]engine.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, principal, payment_date, commitment_months, liquidity_class,
		       investor_id, advisor_id, office_id
		FROM investments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()

	var out []engine.Investment
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInvestment(row scanner) (engine.Investment, error) {
	var (
		inv         engine.Investment
		principal   string
		paymentDate sql.NullString
		liquidity   string
	)
	err := row.Scan(&inv.ID, &principal, &paymentDate, &inv.CommitmentMonths,
		&liquidity, &inv.InvestorID, &inv.AdvisorID, &inv.OfficeID)
	if err != nil {
		return engine.Investment{}, err
	}

	inv.Principal, err = decimal.NewFromString(principal)
	if err != nil {
		return engine.Investment{}, fmt.Errorf("corrupt principal for investment %s: %w", inv.ID, err)
	}
	inv.Liquidity = engine.LiquidityClass(liquidity)

	if paymentDate.Valid {
		d, err := time.ParseInLocation(dateLayout, paymentDate.String, time.UTC)
		if err != nil {
			return engine.Investment{}, fmt.Errorf("corrupt payment date for investment %s: %w", inv.ID, err)
		}
		inv.PaymentDate = &d
	}
	return inv, nil
}
