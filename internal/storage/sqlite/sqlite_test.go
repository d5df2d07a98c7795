package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/billtracker/internal/models"
	"github.com/mmynk/billtracker/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "billtracker-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleBill(name string) *models.Bill {
	return &models.Bill{
		Name:          name,
		Category:      models.CategoryElectricity,
		MonthlyAmount: decimal.RequireFromString("80.25"),
		DueDate:       12,
		PaymentMethod: models.PaymentBankTransfer,
		Notes:         "meter #42",
	}
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateBill generates ID and timestamps", func(t *testing.T) {
		bill := sampleBill("Power")

		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}

		if bill.ID == "" {
			t.Error("Expected bill ID to be generated")
		}
		if bill.CreatedAt.IsZero() {
			t.Error("Expected CreatedAt to be set")
		}
		if !bill.UpdatedAt.Equal(bill.CreatedAt) {
			t.Errorf("UpdatedAt = %v, want CreatedAt %v", bill.UpdatedAt, bill.CreatedAt)
		}
	})

	t.Run("GetBill retrieves complete bill", func(t *testing.T) {
		paidAt := time.Date(2026, time.October, 3, 8, 15, 0, 123456789, time.UTC)
		original := sampleBill("Water")
		original.Category = models.CategoryWater
		original.IsPaid = true
		original.LastPaidDate = &paidAt

		if err := store.CreateBill(ctx, original); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}

		retrieved, err := store.GetBill(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}

		// Verify fields
		if retrieved.ID != original.ID {
			t.Errorf("ID mismatch: got %s, want %s", retrieved.ID, original.ID)
		}
		if retrieved.Name != original.Name {
			t.Errorf("Name mismatch: got %s, want %s", retrieved.Name, original.Name)
		}
		if retrieved.Category != models.CategoryWater {
			t.Errorf("Category mismatch: got %s", retrieved.Category)
		}
		if !retrieved.MonthlyAmount.Equal(original.MonthlyAmount) {
			t.Errorf("MonthlyAmount mismatch: got %s, want %s", retrieved.MonthlyAmount, original.MonthlyAmount)
		}
		if retrieved.DueDate != 12 || retrieved.PaymentMethod != models.PaymentBankTransfer {
			t.Errorf("DueDate/PaymentMethod mismatch: %d %s", retrieved.DueDate, retrieved.PaymentMethod)
		}
		if !retrieved.IsPaid {
			t.Error("IsPaid should round-trip as true")
		}
		if retrieved.LastPaidDate == nil || !retrieved.LastPaidDate.Equal(paidAt) {
			t.Errorf("LastPaidDate mismatch: got %v, want %v", retrieved.LastPaidDate, paidAt)
		}
		if retrieved.Notes != "meter #42" {
			t.Errorf("Notes mismatch: got %q", retrieved.Notes)
		}
		if !retrieved.CreatedAt.Equal(original.CreatedAt) {
			t.Errorf("CreatedAt mismatch: got %v, want %v", retrieved.CreatedAt, original.CreatedAt)
		}
	})

	t.Run("GetBill returns ErrNotFound for nonexistent bill", func(t *testing.T) {
		_, err := store.GetBill(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Empty notes and nil last paid date round-trip", func(t *testing.T) {
		bill := sampleBill("Phone")
		bill.Notes = ""

		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}
		got, err := store.GetBill(ctx, bill.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if got.Notes != "" || got.LastPaidDate != nil {
			t.Errorf("expected empty optional fields, got notes=%q lastPaid=%v", got.Notes, got.LastPaidDate)
		}
	})

	t.Run("Amounts are stored with two decimal places", func(t *testing.T) {
		bill := sampleBill("Rounded")
		bill.MonthlyAmount = decimal.RequireFromString("19.999")

		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}
		got, err := store.GetBill(ctx, bill.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if !got.MonthlyAmount.Equal(decimal.NewFromInt(20)) {
			t.Errorf("MonthlyAmount = %s, want 20", got.MonthlyAmount)
		}
	})
}

func TestListBills_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	bills, err := store.ListBills(ctx)
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	if bills == nil || len(bills) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", bills)
	}

	base := time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		bill := sampleBill(name)
		bill.CreatedAt = base.Add(time.Duration(i) * 100 * time.Millisecond)
		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill(%s) failed: %v", name, err)
		}
	}

	// Same timestamp as "third": insertion order breaks the tie.
	tie := sampleBill("fourth")
	tie.CreatedAt = base.Add(200 * time.Millisecond)
	if err := store.CreateBill(ctx, tie); err != nil {
		t.Fatalf("CreateBill(fourth) failed: %v", err)
	}

	bills, err = store.ListBills(ctx)
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}

	want := []string{"fourth", "third", "second", "first"}
	if len(bills) != len(want) {
		t.Fatalf("got %d bills, want %d", len(bills), len(want))
	}
	for i, b := range bills {
		if b.Name != want[i] {
			t.Errorf("bills[%d] = %s, want %s", i, b.Name, want[i])
		}
	}
}

func TestUpdateBill(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	bill := sampleBill("Internet")
	if err := store.CreateBill(ctx, bill); err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}
	createdAt := bill.CreatedAt

	paidAt := time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC)
	bill.Name = "Fiber"
	bill.Category = models.CategoryInternet
	bill.MonthlyAmount = decimal.RequireFromString("59.99")
	bill.DueDate = 28
	bill.PaymentMethod = models.PaymentAutoPay
	bill.IsPaid = true
	bill.LastPaidDate = &paidAt
	bill.Notes = ""

	if err := store.UpdateBill(ctx, bill); err != nil {
		t.Fatalf("UpdateBill failed: %v", err)
	}

	got, err := store.GetBill(ctx, bill.ID)
	if err != nil {
		t.Fatalf("GetBill failed: %v", err)
	}
	if got.Name != "Fiber" || got.Category != models.CategoryInternet || got.DueDate != 28 ||
		got.PaymentMethod != models.PaymentAutoPay || !got.IsPaid || got.Notes != "" {
		t.Errorf("update not applied: %+v", got)
	}
	if !got.MonthlyAmount.Equal(decimal.RequireFromString("59.99")) {
		t.Errorf("MonthlyAmount = %s", got.MonthlyAmount)
	}
	if got.LastPaidDate == nil || !got.LastPaidDate.Equal(paidAt) {
		t.Errorf("LastPaidDate = %v, want %v", got.LastPaidDate, paidAt)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Errorf("CreatedAt changed: %v -> %v", createdAt, got.CreatedAt)
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Errorf("UpdatedAt %v before CreatedAt %v", got.UpdatedAt, got.CreatedAt)
	}

	missing := sampleBill("ghost")
	missing.ID = "does-not-exist"
	if err := store.UpdateBill(ctx, missing); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("UpdateBill(missing) = %v, want ErrNotFound", err)
	}
}

func TestDeleteBill(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	bill := sampleBill("Card")
	if err := store.CreateBill(ctx, bill); err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}

	if err := store.DeleteBill(ctx, bill.ID); err != nil {
		t.Fatalf("DeleteBill failed: %v", err)
	}
	if _, err := store.GetBill(ctx, bill.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetBill after delete = %v, want ErrNotFound", err)
	}
	if err := store.DeleteBill(ctx, bill.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("second DeleteBill = %v, want ErrNotFound", err)
	}
}

func TestSetPaidStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	bill := sampleBill("Household")
	if err := store.CreateBill(ctx, bill); err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}

	paidAt := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
	if err := store.SetPaidStatus(ctx, bill.ID, true, &paidAt); err != nil {
		t.Fatalf("SetPaidStatus(true) failed: %v", err)
	}
	got, _ := store.GetBill(ctx, bill.ID)
	if !got.IsPaid || got.LastPaidDate == nil || !got.LastPaidDate.Equal(paidAt) {
		t.Errorf("after paying: isPaid=%v lastPaid=%v", got.IsPaid, got.LastPaidDate)
	}
	if got.Name != "Household" {
		t.Errorf("SetPaidStatus touched other columns: %+v", got)
	}

	if err := store.SetPaidStatus(ctx, bill.ID, false, nil); err != nil {
		t.Fatalf("SetPaidStatus(false) failed: %v", err)
	}
	got, _ = store.GetBill(ctx, bill.ID)
	if got.IsPaid || got.LastPaidDate != nil {
		t.Errorf("after unpaying: isPaid=%v lastPaid=%v", got.IsPaid, got.LastPaidDate)
	}

	if err := store.SetPaidStatus(ctx, "nope", true, &paidAt); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("SetPaidStatus(missing) = %v, want ErrNotFound", err)
	}
}

func TestSchemaRejectsOutOfDomainRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(b *models.Bill)
	}{
		{"due day zero", func(b *models.Bill) { b.DueDate = 0 }},
		{"due day 32", func(b *models.Bill) { b.DueDate = 32 }},
		{"unknown category", func(b *models.Bill) { b.Category = "rent" }},
		{"unknown payment method", func(b *models.Bill) { b.PaymentMethod = "cheque" }},
		{"negative amount", func(b *models.Bill) { b.MonthlyAmount = decimal.NewFromInt(-5) }},
		{"amount above column limit", func(b *models.Bill) { b.MonthlyAmount = decimal.RequireFromString("100000000.00") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := sampleBill(tt.name)
			tt.mutate(bill)
			if err := store.CreateBill(ctx, bill); err == nil {
				t.Error("expected constraint violation, got nil")
			}
		})
	}
}

func TestAmountsRoundTripExactly(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, amount := range []string{"99999999.99", "12345678.91", "0.01", "0.00", "1200.00"} {
		t.Run(amount, func(t *testing.T) {
			bill := sampleBill("amount " + amount)
			bill.MonthlyAmount = decimal.RequireFromString(amount)
			if err := store.CreateBill(ctx, bill); err != nil {
				t.Fatalf("CreateBill failed: %v", err)
			}

			got, err := store.GetBill(ctx, bill.ID)
			if err != nil {
				t.Fatalf("GetBill failed: %v", err)
			}
			if got.MonthlyAmount.StringFixed(2) != amount {
				t.Errorf("MonthlyAmount = %s, want %s", got.MonthlyAmount.StringFixed(2), amount)
			}
		})
	}
}

func TestLastPaidDateNormalizedToUTC(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	zone := time.FixedZone("UTC+5:30", 5*3600+30*60)
	paidAt := time.Date(2026, time.October, 16, 14, 30, 0, 0, zone)

	bill := sampleBill("Zoned")
	bill.IsPaid = true
	bill.LastPaidDate = &paidAt
	if err := store.CreateBill(ctx, bill); err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}
	if bill.LastPaidDate.Location() != time.UTC || !bill.LastPaidDate.Equal(paidAt) {
		t.Errorf("CreateBill LastPaidDate = %v, want %v in UTC", bill.LastPaidDate, paidAt.UTC())
	}

	later := paidAt.Add(time.Hour)
	bill.LastPaidDate = &later
	if err := store.UpdateBill(ctx, bill); err != nil {
		t.Fatalf("UpdateBill failed: %v", err)
	}
	if bill.LastPaidDate.Location() != time.UTC || !bill.LastPaidDate.Equal(later) {
		t.Errorf("UpdateBill LastPaidDate = %v, want %v in UTC", bill.LastPaidDate, later.UTC())
	}
}

func TestInMemoryStore(t *testing.T) {
	store, err := New(MemoryPath)
	if err != nil {
		t.Fatalf("New(memory) failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.CreateBill(ctx, sampleBill("mem")); err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}
	bills, err := store.ListBills(ctx)
	if err != nil {
		t.Fatalf("ListBills failed: %v", err)
	}
	if len(bills) != 1 {
		t.Errorf("expected the bill to persist across calls, got %d", len(bills))
	}
}
