package sqlite

import "database/sql"

// schema mirrors the bill record. CHECK constraints stand in for the closed
// category and payment method enumerations.
// Timestamps are UTC text in timeLayout so they sort lexically.
// Amounts are fixed two-place decimal text, read back exactly by decimal.
const schema = `
CREATE TABLE IF NOT EXISTS bills (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL CHECK (category IN ('water', 'electricity', 'household', 'credit-card', 'phone', 'internet')),
    monthly_amount TEXT NOT NULL CHECK (CAST(monthly_amount AS REAL) BETWEEN 0 AND 99999999.99),
    due_date INTEGER NOT NULL CHECK (due_date BETWEEN 1 AND 31),
    payment_method TEXT NOT NULL CHECK (payment_method IN ('bank-transfer', 'credit-card', 'debit-card', 'cash', 'auto-pay')),
    is_paid INTEGER NOT NULL DEFAULT 0,
    last_paid_date TEXT,
    notes TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bills_created_at ON bills(created_at);
CREATE INDEX IF NOT EXISTS idx_bills_category ON bills(category);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
