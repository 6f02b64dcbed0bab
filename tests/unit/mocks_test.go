package unit

import (
	"context"
	"io"

	"rentdesk-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) CreateWithItems(ctx context.Context, resolution domain.CustomerResolution, customer *domain.Customer, order *domain.Order, items []domain.OrderItem) (float64, error) {
	args := m.Called(ctx, resolution, customer, order, items)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockOrderRepo) ReplaceItems(ctx context.Context, orderID int32, patch domain.OrderPatch, items []domain.OrderItem) (float64, error) {
	args := m.Called(ctx, orderID, patch, items)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) ListItems(ctx context.Context, orderID int32) ([]domain.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderItem), args.Error(1)
}
func (m *MockOrderRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderRepo) SalesBetween(ctx context.Context, from, to string) (int32, float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int32), args.Get(1).(float64), args.Error(2)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) UpdateStatus(ctx context.Context, id int32, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockCustomerRepo) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) MarkActiveRenters(ctx context.Context, date string) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCustomerRepo) CloseFinishedRenters(ctx context.Context, date string) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendInvoice(ctx context.Context, to, customerName, invoiceNo string, total float64, attach func(io.Writer) error) error {
	args := m.Called(ctx, to, customerName, invoiceNo, total, attach)
	return args.Error(0)
}
func (m *MockEmailService) SendDailySalesReport(ctx context.Context, to, date string, orderCount int32, total float64) error {
	args := m.Called(ctx, to, date, orderCount, total)
	return args.Error(0)
}
