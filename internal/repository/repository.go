package repository

import (
	"context"
	"rentdesk-backend/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	UpdateStatus(ctx context.Context, id int32, status string) error
	Search(ctx context.Context, query string) ([]domain.Customer, error)
	Delete(ctx context.Context, id int32) error

	// Rent status maintenance (nightly job)
	MarkActiveRenters(ctx context.Context, date string) (int64, error)
	CloseFinishedRenters(ctx context.Context, date string) (int64, error)
}

type OrderRepository interface {
	// CreateWithItems persists the customer (per the resolution policy), the
	// order and its items as one transaction, rewriting the order total from
	// the inserted rows before commit. Returns the committed total.
	CreateWithItems(ctx context.Context, resolution domain.CustomerResolution, customer *domain.Customer, order *domain.Order, items []domain.OrderItem) (float64, error)

	// ReplaceItems swaps the order's entire item set and applies the date
	// patch in one transaction. Returns domain.ErrOrderNotFound without
	// mutation when the order id does not resolve.
	ReplaceItems(ctx context.Context, orderID int32, patch domain.OrderPatch, items []domain.OrderItem) (float64, error)

	GetByID(ctx context.Context, id int32) (*domain.Order, error)
	ListItems(ctx context.Context, orderID int32) ([]domain.OrderItem, error)
	Delete(ctx context.Context, id int32) error

	// SalesBetween reports order count and summed totals for orders dated in
	// [from, to), for the daily sales report.
	SalesBetween(ctx context.Context, from, to string) (int32, float64, error)
}
