package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/billtracker/internal/models"
	"github.com/mmynk/billtracker/internal/storage"
)

// timeLayout is fixed width so text comparison matches time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const billColumns = `id, name, category, monthly_amount, due_date, payment_method,
	is_paid, last_paid_date, notes, created_at, updated_at`

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// nullableTime converts an optional time into a value for a nullable column.
func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

// utcTime returns t in UTC, keeping nil as nil.
func utcTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBill(row rowScanner) (*models.Bill, error) {
	var (
		bill                 models.Bill
		lastPaid, notes      sql.NullString
		createdAt, updatedAt string
	)
	err := row.Scan(
		&bill.ID,
		&bill.Name,
		&bill.Category,
		&bill.MonthlyAmount,
		&bill.DueDate,
		&bill.PaymentMethod,
		&bill.IsPaid,
		&lastPaid,
		&notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if bill.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if bill.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	if lastPaid.Valid {
		t, err := parseTime(lastPaid.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse last_paid_date: %w", err)
		}
		bill.LastPaidDate = &t
	}
	bill.Notes = notes.String
	bill.MonthlyAmount = bill.MonthlyAmount.Round(2)

	return &bill, nil
}

// ListBills returns every bill ordered by creation time, newest first.
func (s *SQLiteStore) ListBills(ctx context.Context) ([]models.Bill, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+billColumns+" FROM bills ORDER BY created_at DESC, rowid DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, *bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	return bills, nil
}

// GetBill retrieves a bill by ID.
func (s *SQLiteStore) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	bill, err := scanBill(s.db.QueryRowContext(ctx,
		"SELECT "+billColumns+" FROM bills WHERE id = ?",
		billID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, billID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	return bill, nil
}

// CreateBill persists a new bill to the database.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.Bill) error {
	// Generate ID and timestamps if not set
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now()
	}
	bill.CreatedAt = bill.CreatedAt.UTC()
	bill.UpdatedAt = bill.CreatedAt
	bill.LastPaidDate = utcTime(bill.LastPaidDate)
	bill.MonthlyAmount = bill.MonthlyAmount.Round(2)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bills (`+billColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		bill.ID,
		bill.Name,
		string(bill.Category),
		bill.MonthlyAmount.StringFixed(2),
		bill.DueDate,
		string(bill.PaymentMethod),
		bill.IsPaid,
		nullableTime(bill.LastPaidDate),
		nullableString(bill.Notes),
		formatTime(bill.CreatedAt),
		formatTime(bill.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	return nil
}

// UpdateBill overwrites the mutable columns of an existing bill.
func (s *SQLiteStore) UpdateBill(ctx context.Context, bill *models.Bill) error {
	bill.UpdatedAt = time.Now().UTC()
	bill.LastPaidDate = utcTime(bill.LastPaidDate)
	bill.MonthlyAmount = bill.MonthlyAmount.Round(2)

	result, err := s.db.ExecContext(ctx,
		`UPDATE bills SET
		 name = ?, category = ?, monthly_amount = ?, due_date = ?,
		 payment_method = ?, is_paid = ?, last_paid_date = ?, notes = ?,
		 updated_at = ?
		 WHERE id = ?`,
		bill.Name,
		string(bill.Category),
		bill.MonthlyAmount.StringFixed(2),
		bill.DueDate,
		string(bill.PaymentMethod),
		bill.IsPaid,
		nullableTime(bill.LastPaidDate),
		nullableString(bill.Notes),
		formatTime(bill.UpdatedAt),
		bill.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill: %w", err)
	}

	return checkAffected(result, bill.ID)
}

// DeleteBill removes a bill by ID.
func (s *SQLiteStore) DeleteBill(ctx context.Context, billID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM bills WHERE id = ?", billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}

	return checkAffected(result, billID)
}

// SetPaidStatus updates the paid flag and last paid date of a bill.
func (s *SQLiteStore) SetPaidStatus(ctx context.Context, billID string, isPaid bool, lastPaidDate *time.Time) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE bills SET is_paid = ?, last_paid_date = ?, updated_at = ? WHERE id = ?",
		isPaid,
		nullableTime(lastPaidDate),
		formatTime(time.Now()),
		billID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	return checkAffected(result, billID)
}

func checkAffected(result sql.Result, billID string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, billID)
	}
	return nil
}
