// Package sqlite implements a deals.Store on top of a SQLite database.
//
// Every Save replaces the whole table inside a single transaction, which
// keeps the full-rewrite semantics of the JSON file while letting the
// database guarantee atomicity.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/etnz/deals"
	"github.com/etnz/deals/date"
	_ "modernc.org/sqlite"
)

// migrations returns the schema statements, SQLite executes one at a time.
// (date, idx) is not unique: a deal created after a delete may reuse the
// index of a kept deal.
func migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS deals (
			position         INTEGER PRIMARY KEY,
			date             TEXT NOT NULL,
			idx              INTEGER NOT NULL,
			name             TEXT NOT NULL,
			gross_amount     TEXT NOT NULL,
			fee_percent      TEXT NOT NULL,
			exchange_rate    TEXT NOT NULL,
			net_amount       TEXT NOT NULL,
			converted_amount TEXT NOT NULL,
			pool             TEXT NOT NULL,
			share_per_member TEXT NOT NULL,
			members          TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_deals_date ON deals(date)`,
	}
}

// Store is a deals.Store persisted in a SQLite database.
type Store struct {
	db *sql.DB
}

var _ deals.Store = (*Store)(nil)

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open database %q: %w", deals.ErrPersistence, path, err)
	}
	// a single connection serializes writers, and keeps ":memory:" databases alive.
	db.SetMaxOpenConns(1)
	for _, stmt := range append([]string{`PRAGMA busy_timeout = 5000`}, migrations()...) {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: could not migrate database %q: %w", deals.ErrPersistence, path, err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Load reads all deals in storage order.
func (s *Store) Load() (*deals.Ledger, error) {
	rows, err := s.db.Query(`SELECT date, idx, name, gross_amount, fee_percent, exchange_rate,
		net_amount, converted_amount, pool, share_per_member, members
		FROM deals ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: could not query deals: %w", deals.ErrPersistence, err)
	}
	defer rows.Close()

	ledger := deals.NewLedger()
	for rows.Next() {
		var (
			d       deals.Deal
			day     string
			members string
		)
		err := rows.Scan(&day, &d.Index, &d.Name, &d.GrossAmount, &d.FeePercent, &d.ExchangeRate,
			&d.NetAmount, &d.Converted, &d.Pool, &d.SharePerMember, &members)
		if err != nil {
			return nil, fmt.Errorf("%w: could not read deal: %w", deals.ErrPersistence, err)
		}
		if d.Date, err = date.Parse(day); err != nil {
			return nil, fmt.Errorf("%w: deal #%d: %w", deals.ErrPersistence, d.Index, err)
		}
		if err := json.Unmarshal([]byte(members), &d.Members); err != nil {
			return nil, fmt.Errorf("%w: members of deal %s #%d: %w", deals.ErrPersistence, day, d.Index, err)
		}
		ledger.Append(d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", deals.ErrPersistence, err)
	}
	return ledger, nil
}

// Save replaces all deals in one transaction.
func (s *Store) Save(l *deals.Ledger) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: could not start transaction: %w", deals.ErrPersistence, err)
	}
	defer tx.Rollback() // no-op once committed

	if _, err := tx.Exec(`DELETE FROM deals`); err != nil {
		return fmt.Errorf("%w: could not clear deals: %w", deals.ErrPersistence, err)
	}
	stmt, err := tx.Prepare(`INSERT INTO deals (position, date, idx, name, gross_amount, fee_percent,
		exchange_rate, net_amount, converted_amount, pool, share_per_member, members)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: %w", deals.ErrPersistence, err)
	}
	defer stmt.Close()

	for i, d := range l.Deals() {
		members, err := json.Marshal(d.Members)
		if err != nil {
			return fmt.Errorf("%w: %w", deals.ErrPersistence, err)
		}
		_, err = stmt.Exec(i, d.Date.String(), d.Index, d.Name, d.GrossAmount, d.FeePercent,
			d.ExchangeRate, d.NetAmount, d.Converted, d.Pool, d.SharePerMember, string(members))
		if err != nil {
			return fmt.Errorf("%w: could not insert deal %s #%d: %w", deals.ErrPersistence, d.Date, d.Index, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: could not commit: %w", deals.ErrPersistence, err)
	}
	return nil
}
