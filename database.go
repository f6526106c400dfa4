package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"financial-dashboard/internal/config"
	"financial-dashboard/internal/finance"
	"financial-dashboard/internal/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// initDB opens the PostgreSQL connection pool, waiting for the database
// to accept connections.
func initDB(cfg *config.Config) (*sql.DB, error) {
	pgConfig, err := pgx.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	retryDelay := 2 * time.Second
	maxRetries := cfg.DBConnectRetries

	var db *sql.DB
	for i := 0; i < maxRetries; i++ {
		db = stdlib.OpenDB(*pgConfig)
		if err := db.Ping(); err != nil {
			db.Close()
			if i < maxRetries-1 {
				// Log the actual error every 10 attempts
				if i%10 == 0 || i < 5 {
					logger.Log.Warn("Database not ready, retrying",
						zap.Duration("delay", retryDelay),
						zap.Int("attempt", i+1),
						zap.Int("max_attempts", maxRetries),
						zap.Error(err),
					)
				}
				time.Sleep(retryDelay)
				continue
			}
			return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
		}
		logger.Log.Info("Database connection established")
		break
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	return db, nil
}

// pgStore implements finance.Store over PostgreSQL.
type pgStore struct {
	db *sql.DB
}

func newPGStore(db *sql.DB) *pgStore {
	return &pgStore{db: db}
}

// buildTransactionQuery renders the filtered ledger query. Date bounds are
// bound as text so malformed dates are left to PostgreSQL to reject.
func buildTransactionQuery(f finance.Filter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, date, description, amount, kind, category, account_id
		FROM transactions
		WHERE 1=1`)

	var args []any
	if f.Start != "" {
		args = append(args, f.Start)
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if f.End != "" {
		args = append(args, f.End)
		fmt.Fprintf(&sb, " AND date <= $%d", len(args))
	}
	if len(f.Categories) > 0 {
		placeholders := make([]string, len(f.Categories))
		for i, c := range f.Categories {
			args = append(args, c)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		fmt.Fprintf(&sb, " AND category IN (%s)", strings.Join(placeholders, ", "))
	}
	sb.WriteString(" ORDER BY date DESC, id DESC")

	return sb.String(), args
}

func (s *pgStore) QueryTransactions(ctx context.Context, f finance.Filter) ([]finance.Transaction, error) {
	query, args := buildTransactionQuery(f)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query transactions")
	}
	defer rows.Close()

	// ensure empty array ([]) instead of null when no rows
	transactions := make([]finance.Transaction, 0)

	for rows.Next() {
		var t finance.Transaction
		var kind string
		if err := rows.Scan(&t.ID, &t.Date, &t.Description, &t.Amount, &kind, &t.Category, &t.AccountID); err != nil {
			return nil, errors.Wrap(err, "failed to scan transaction")
		}
		t.Kind = finance.Kind(kind)
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate transactions")
	}

	return transactions, nil
}

func (s *pgStore) QueryCategories(ctx context.Context) ([]finance.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, kind, color FROM categories ORDER BY name")
	if err != nil {
		return nil, errors.Wrap(err, "failed to query categories")
	}
	defer rows.Close()

	categories := make([]finance.Category, 0)
	for rows.Next() {
		var c finance.Category
		var kind string
		if err := rows.Scan(&c.ID, &c.Name, &kind, &c.Color); err != nil {
			return nil, errors.Wrap(err, "failed to scan category")
		}
		c.Kind = finance.Kind(kind)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate categories")
	}

	return categories, nil
}

func (s *pgStore) QueryTotalAccountBalance(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(SUM(balance), 0) FROM accounts").Scan(&total)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to query account balance")
	}
	return total, nil
}

func (s *pgStore) WithTx(ctx context.Context, fn func(finance.LedgerTx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(&pgLedgerTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

type pgLedgerTx struct {
	tx *sql.Tx
}

func (l *pgLedgerTx) InsertTransaction(ctx context.Context, t finance.NewTransaction) (int64, error) {
	query := `
		INSERT INTO transactions (date, description, amount, kind, category, account_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := l.tx.QueryRowContext(ctx, query,
		t.Date.Format("2006-01-02"), t.Description, t.Amount.String(), string(t.Kind), t.Category, t.AccountID,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "failed to insert transaction")
	}
	return id, nil
}

func (l *pgLedgerTx) AdjustAccountBalance(ctx context.Context, accountID int64, delta decimal.Decimal) error {
	res, err := l.tx.ExecContext(ctx, "UPDATE accounts SET balance = balance + $1 WHERE id = $2", delta.String(), accountID)
	if err != nil {
		return errors.Wrap(err, "failed to update account balance")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.Errorf("account %d not found", accountID)
	}
	return nil
}
