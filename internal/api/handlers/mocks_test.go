package handlers_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mmynk/billtracker/internal/calculator"
	"github.com/mmynk/billtracker/internal/models"
	"github.com/mmynk/billtracker/internal/service"
)

// MockBillService implements handlers.BillService
type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) List(ctx context.Context, opts service.ListOptions) ([]models.Bill, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillService) Views(ctx context.Context, opts service.ListOptions) ([]calculator.BillView, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]calculator.BillView), args.Error(1)
}

func (m *MockBillService) Get(ctx context.Context, billID string) (*models.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillService) Create(ctx context.Context, in models.BillInput) (*models.Bill, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillService) Update(ctx context.Context, billID string, in models.BillInput) (*models.Bill, error) {
	args := m.Called(ctx, billID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillService) Delete(ctx context.Context, billID string) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}

func (m *MockBillService) SetPaid(ctx context.Context, billID string, isPaid bool) (*time.Time, error) {
	args := m.Called(ctx, billID, isPaid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockBillService) Dashboard(ctx context.Context) (calculator.Summary, error) {
	args := m.Called(ctx)
	return args.Get(0).(calculator.Summary), args.Error(1)
}

func (m *MockBillService) Today() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}
