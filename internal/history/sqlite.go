package history

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/fsenergy/till/internal/receipt"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore persists receipts one row per receipt in an append-ordered
// table.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// The register is single-writer, so the connection pool is limited to
// one connection to avoid SQLITE_BUSY errors.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite history database at the given
// path and applies the schema. This function is idempotent - safe to
// call multiple times against the same file.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// Append inserts the receipt at the end of the history.
func (s *SQLiteStore) Append(ctx context.Context, r receipt.Receipt) error {
	itemsJSON, err := json.Marshal(r.Items)
	if err != nil {
		return fmt.Errorf("append receipt: marshal items: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO receipts (id, customer_name, items, total, date)
		VALUES (?, ?, ?, ?, ?)
	`,
		r.ID,
		r.CustomerName,
		string(itemsJSON),
		r.Total.String(),
		r.Date.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append receipt: %w", err)
	}

	return nil
}

// Load returns all receipts in append order (ORDER BY seq ASC).
// Rows that no longer parse are skipped: per-row corruption is treated
// as absence, matching the fail-open contract of the blob store.
func (s *SQLiteStore) Load(ctx context.Context) ([]receipt.Receipt, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, customer_name, items, total, date
		FROM receipts
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}
	defer rows.Close()

	receipts := []receipt.Receipt{}
	for rows.Next() {
		var (
			id, customerName, itemsJSON, totalStr, dateStr string
		)
		if err := rows.Scan(&id, &customerName, &itemsJSON, &totalStr, &dateStr); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}

		var items []receipt.LineItem
		if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
			continue
		}
		total, err := decimal.NewFromString(totalStr)
		if err != nil {
			continue
		}
		date, err := time.Parse(time.RFC3339Nano, dateStr)
		if err != nil {
			continue
		}

		receipts = append(receipts, receipt.Receipt{
			ID:           id,
			CustomerName: customerName,
			Items:        items,
			Total:        total,
			Date:         date,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate receipts: %w", err)
	}

	return receipts, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
