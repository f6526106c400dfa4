package main

import (
	"database/sql"
	"fmt"
)

const seedSQL = `
	INSERT INTO categories (name, kind, color) VALUES
		('Groceries', 'expense', '#e74c3c'),
		('Rent', 'expense', '#e67e22'),
		('Utilities', 'expense', '#f39c12'),
		('Transportation', 'expense', '#3498db'),
		('Entertainment', 'expense', '#9b59b6'),
		('Salary', 'revenue', '#27ae60'),
		('Freelance', 'revenue', '#16a085')
	ON CONFLICT (name) DO NOTHING;
`

const seedAccountSQL = `
	INSERT INTO accounts (name, balance) VALUES ('Checking', 0)
	ON CONFLICT (name) DO NOTHING;
`

// seedDefaults inserts the default categories and the main account.
func seedDefaults(db *sql.DB) (int64, error) {
	var total int64
	for _, stmt := range []string{seedSQL, seedAccountSQL} {
		result, err := db.Exec(stmt)
		if err != nil {
			return total, fmt.Errorf("failed to seed defaults: %w", err)
		}
		n, _ := result.RowsAffected()
		total += n
	}
	return total, nil
}

// Seed a small set of demo transactions spread over the last few months.
// Idempotent: will only run if there are zero transactions present. The
// account balance is moved by the same net amount in the same transaction.
func seedDemoData(db *sql.DB) error {
	var cnt int
	if err := db.QueryRow(`SELECT COUNT(*) FROM transactions`).Scan(&cnt); err != nil {
		return fmt.Errorf("checking transactions count: %w", err)
	}
	if cnt > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Categories and the Checking account are assumed to exist from seedDefaults.
	const demoTx = `
	INSERT INTO transactions (date, description, amount, kind, category, account_id) VALUES
	(CURRENT_DATE - INTERVAL '88 days', 'Monthly Salary', 3200.00, 'revenue', 'Salary', (SELECT id FROM accounts WHERE name='Checking')),
	(CURRENT_DATE - INTERVAL '84 days', 'Rent - Apartment', 1500.00, 'expense', 'Rent', (SELECT id FROM accounts WHERE name='Checking')),
	(CURRENT_DATE - INTERVAL '70 days', 'Groceries - Whole Foods', 110.25, 'expense', 'Groceries', (SELECT id FROM accounts WHERE name='Checking')),
	(CURRENT_DATE - INTERVAL '58 days', 'Monthly Salary', 3200.00, 'revenue', 'Salary', (SELECT id FROM accounts WHERE name='Checking')),
	(CURRENT_DATE - INTERVAL '54 days', 'Rent - Apartment', 1500.00, 'expense', 'Rent', (SELECT id FROM accounts WHERE name='Checking')),
	(CURRENT_DATE - INTERVAL '45 days', 'Freelance: Landing Page', 850.00, 'revenue', 'Freelance', (SELECT id FROM accounts WHERE name='Checking')),
	(CURRENT_DATE - INTERVAL '28 days', 'Monthly Salary', 3200.00, 'revenue', 'Salary', (SELECT id FROM accounts WHERE name='Checking')),
	(CURRENT_DATE - INTERVAL '24 days', 'Rent - Apartment', 1500.00, 'expense', 'Rent', (SELECT id FROM accounts WHERE name='Checking')),
	(CURRENT_DATE - INTERVAL '22 days', 'Utilities - Electricity', 120.45, 'expense', 'Utilities', (SELECT id FROM accounts WHERE name='Checking')),
	(CURRENT_DATE - INTERVAL '20 days', 'Groceries - Whole Foods', 96.72, 'expense', 'Groceries', (SELECT id FROM accounts WHERE name='Checking')),
	(CURRENT_DATE - INTERVAL '19 days', 'Subway Pass', 45.00, 'expense', 'Transportation', (SELECT id FROM accounts WHERE name='Checking')),
	(CURRENT_DATE - INTERVAL '16 days', 'Movie Night', 28.50, 'expense', 'Entertainment', (SELECT id FROM accounts WHERE name='Checking')),
	(CURRENT_DATE - INTERVAL '13 days', 'Freelance: Dashboard Charts', 600.00, 'revenue', 'Freelance', (SELECT id FROM accounts WHERE name='Checking')),
	(CURRENT_DATE - INTERVAL '6 days', 'Groceries - Costco', 132.39, 'expense', 'Groceries', (SELECT id FROM accounts WHERE name='Checking')),
	(CURRENT_DATE - INTERVAL '1 days', 'Dinner Out', 54.80, 'expense', 'Entertainment', (SELECT id FROM accounts WHERE name='Checking'))
	`
	if _, err := tx.Exec(demoTx); err != nil {
		return fmt.Errorf("seeding demo transactions: %w", err)
	}

	const demoBalance = `
	UPDATE accounts SET balance = balance + (
		SELECT COALESCE(SUM(CASE WHEN kind = 'revenue' THEN amount ELSE -amount END), 0)
		FROM transactions WHERE account_id = accounts.id
	) WHERE name = 'Checking'
	`
	if _, err := tx.Exec(demoBalance); err != nil {
		return fmt.Errorf("seeding demo balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	return nil
}
