// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mmynk/billtracker/internal/models"
)

// ErrNotFound is returned when an operation targets a bill that does not exist.
var ErrNotFound = errors.New("bill not found")

// Store defines the interface for bill storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Each method is atomic for the single row it touches. Policy decisions such
// as when LastPaidDate moves belong to the caller.
type Store interface {
	// ListBills returns every bill, newest first.
	ListBills(ctx context.Context) ([]models.Bill, error)

	// GetBill retrieves a bill by its ID.
	// Returns ErrNotFound if no bill has that ID.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// CreateBill persists a new bill.
	// ID, CreatedAt and UpdatedAt are populated by the store when unset.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// UpdateBill overwrites the mutable fields of an existing bill,
	// including LastPaidDate. CreatedAt is never changed.
	// Returns ErrNotFound if the bill does not exist.
	UpdateBill(ctx context.Context, bill *models.Bill) error

	// DeleteBill removes a bill.
	// Returns ErrNotFound if the bill does not exist.
	DeleteBill(ctx context.Context, billID string) error

	// SetPaidStatus writes only the paid flag and LastPaidDate.
	// Returns ErrNotFound if the bill does not exist.
	SetPaidStatus(ctx context.Context, billID string, isPaid bool, lastPaidDate *time.Time) error

	// Close releases any resources held by the store.
	Close() error
}
