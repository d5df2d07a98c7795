// Package service holds the bill tracker's application logic between the
// transport layers (HTTP API, CLI) and storage.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/billtracker/internal/calculator"
	"github.com/mmynk/billtracker/internal/models"
	"github.com/mmynk/billtracker/internal/storage"
)

// ErrNotFound is returned when the requested bill does not exist.
var ErrNotFound = errors.New("bill not found")

// BillService implements bill CRUD and owns the payment-date policy.
type BillService struct {
	store   storage.Store
	now     func() time.Time
	horizon int
}

// Option configures a BillService.
type Option func(*BillService)

// WithClock overrides the source of "now". The returned time's location
// decides which calendar day counts as today.
func WithClock(now func() time.Time) Option {
	return func(s *BillService) {
		s.now = now
	}
}

// WithHorizon sets how many days ahead the dashboard looks for upcoming bills.
// Non-positive values keep the default.
func WithHorizon(days int) Option {
	return func(s *BillService) {
		if days > 0 {
			s.horizon = days
		}
	}
}

// NewBillService creates a new BillService with the given storage backend.
func NewBillService(store storage.Store, opts ...Option) *BillService {
	s := &BillService{
		store:   store,
		now:     time.Now,
		horizon: calculator.DefaultHorizonDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListOptions narrows and orders a bill listing.
type ListOptions struct {
	// Category keeps only bills of this category when set.
	Category models.Category

	// SortByDue orders by days until due instead of newest first.
	SortByDue bool
}

// Validate rejects unknown categories.
func (o ListOptions) Validate() error {
	if o.Category != "" && !o.Category.Valid() {
		return &models.ValidationError{Fields: map[string]string{
			"category": fmt.Sprintf("unknown category %q", o.Category),
		}}
	}
	return nil
}

// Today returns the current time according to the service clock.
func (s *BillService) Today() time.Time {
	return s.now()
}

// List returns bills, newest first unless opts asks for due-date order.
func (s *BillService) List(ctx context.Context, opts ListOptions) ([]models.Bill, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	bills, err := s.store.ListBills(ctx)
	if err != nil {
		slog.Error("ListBills failed", "error", err)
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	bills = calculator.FilterByCategory(bills, opts.Category)
	if opts.SortByDue {
		bills = calculator.SortByDueDate(bills, s.now())
	}
	return bills, nil
}

// Views returns the listing with each bill's derived status fields.
func (s *BillService) Views(ctx context.Context, opts ListOptions) ([]calculator.BillView, error) {
	bills, err := s.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return calculator.Views(bills, s.now()), nil
}

// Get returns a single bill.
func (s *BillService) Get(ctx context.Context, billID string) (*models.Bill, error) {
	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		return nil, s.storeError("GetBill", billID, err)
	}
	return bill, nil
}

// Create validates in and stores a new bill. A bill created as paid gets
// today's payment date.
func (s *BillService) Create(ctx context.Context, in models.BillInput) (*models.Bill, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	bill := &models.Bill{CreatedAt: now}
	in.Apply(bill)
	if bill.IsPaid {
		bill.LastPaidDate = &now
	}

	if err := s.store.CreateBill(ctx, bill); err != nil {
		slog.Error("CreateBill failed", "error", err)
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	slog.Info("Bill created", "bill_id", bill.ID, "name", bill.Name, "category", bill.Category)
	return bill, nil
}

// Update replaces the editable fields of a bill. The payment date advances
// only when the bill goes from unpaid to paid; otherwise it is kept as is.
func (s *BillService) Update(ctx context.Context, billID string, in models.BillInput) (*models.Bill, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		return nil, s.storeError("UpdateBill", billID, err)
	}

	wasPaid := bill.IsPaid
	in.Apply(bill)
	if bill.IsPaid && !wasPaid {
		now := s.now()
		bill.LastPaidDate = &now
	}

	if err := s.store.UpdateBill(ctx, bill); err != nil {
		return nil, s.storeError("UpdateBill", billID, err)
	}

	slog.Info("Bill updated", "bill_id", billID, "is_paid", bill.IsPaid)
	return bill, nil
}

// Delete removes a bill.
func (s *BillService) Delete(ctx context.Context, billID string) error {
	if err := s.store.DeleteBill(ctx, billID); err != nil {
		return s.storeError("DeleteBill", billID, err)
	}

	slog.Info("Bill deleted", "bill_id", billID)
	return nil
}

// SetPaid marks a bill paid (payment date = now) or unpaid (payment date
// cleared) and returns the new payment date.
func (s *BillService) SetPaid(ctx context.Context, billID string, isPaid bool) (*time.Time, error) {
	var lastPaid *time.Time
	if isPaid {
		now := s.now().UTC()
		lastPaid = &now
	}

	if err := s.store.SetPaidStatus(ctx, billID, isPaid, lastPaid); err != nil {
		return nil, s.storeError("SetPaidStatus", billID, err)
	}

	slog.Info("Bill payment status changed", "bill_id", billID, "is_paid", isPaid)
	return lastPaid, nil
}

// Dashboard summarizes every bill as of today.
func (s *BillService) Dashboard(ctx context.Context) (calculator.Summary, error) {
	bills, err := s.store.ListBills(ctx)
	if err != nil {
		slog.Error("ListBills failed", "error", err)
		return calculator.Summary{}, fmt.Errorf("failed to list bills: %w", err)
	}
	return calculator.Summarize(bills, s.now(), s.horizon), nil
}

// storeError translates storage failures into service errors and logs the
// unexpected ones.
func (s *BillService) storeError(op, billID string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		slog.Debug(op+": bill not found", "bill_id", billID)
		return fmt.Errorf("%w: %s", ErrNotFound, billID)
	}
	slog.Error(op+" failed", "bill_id", billID, "error", err)
	return fmt.Errorf("failed to %s: %w", opVerb(op), err)
}

func opVerb(op string) string {
	switch op {
	case "GetBill":
		return "get bill"
	case "UpdateBill":
		return "update bill"
	case "DeleteBill":
		return "delete bill"
	case "SetPaidStatus":
		return "update payment status"
	default:
		return op
	}
}
