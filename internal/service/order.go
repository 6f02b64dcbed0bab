package service

import (
	"context"
	"math"
	"strings"
	"time"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
	"rentdesk-backend/internal/utils"

	"github.com/google/uuid"
)

type orderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput, resolution domain.CustomerResolution) (*CreateOrderResult, error) {
	if err := validateCustomerInput(in); err != nil {
		return nil, err
	}
	items, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	orderDate := time.Now().Format(utils.DateLayout)
	if in.OrderDate != nil && *in.OrderDate != "" {
		orderDate = *in.OrderDate
	}

	customer := &domain.Customer{
		Name:     strings.TrimSpace(in.Name),
		Phone:    strings.TrimSpace(in.Phone),
		AltPhone: strings.TrimSpace(in.AltPhone),
		Address:  strings.TrimSpace(in.Address),
	}
	order := &domain.Order{
		InvoiceNo: uuid.NewString(),
		OrderDate: orderDate,
		RentStart: in.RentStart,
		RentEnd:   in.RentEnd,
	}

	total, err := s.orders.CreateWithItems(ctx, resolution, customer, order, items)
	if err != nil {
		logger.Error("create order failed", "operation", "CreateOrder", "resolution", resolution, "error", err)
		return nil, err
	}

	return &CreateOrderResult{
		CustomerID: customer.ID,
		OrderID:    order.ID,
		InvoiceNo:  order.InvoiceNo,
		Total:      total,
	}, nil
}

func (s *orderService) ReplaceOrderItems(ctx context.Context, orderID int32, in ReplaceOrderItemsInput) (float64, error) {
	items, err := buildItems(in.Items)
	if err != nil {
		return 0, err
	}

	patch := domain.OrderPatch{
		OrderDate: in.OrderDate,
		RentStart: in.RentStart,
		RentEnd:   in.RentEnd,
	}

	total, err := s.orders.ReplaceItems(ctx, orderID, patch, items)
	if err != nil {
		logger.Error("replace order items failed", "operation", "ReplaceOrderItems", "orderID", orderID, "error", err)
		return 0, err
	}
	return total, nil
}

func validateCustomerInput(in CreateOrderInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return validationErrorf("customer name is required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return validationErrorf("customer phone is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return validationErrorf("customer address is required")
	}
	return nil
}

// buildItems validates the item list and computes each stored line amount.
func buildItems(inputs []ItemInput) ([]domain.OrderItem, error) {
	if len(inputs) == 0 {
		return nil, validationErrorf("at least one item is required")
	}
	items := make([]domain.OrderItem, 0, len(inputs))
	for i, in := range inputs {
		if strings.TrimSpace(in.Product) == "" {
			return nil, validationErrorf("item %d: product is required", i+1)
		}
		price := utils.Coerce(in.Price)
		quantity := utils.Coerce(in.Quantity)
		// Quantity is stored as int32; the line total uses the same clamped
		// value so total == price x quantity holds for what is persisted.
		if quantity > math.MaxInt32 {
			quantity = math.MaxInt32
		}
		items = append(items, domain.OrderItem{
			Product:   strings.TrimSpace(in.Product),
			Price:     price,
			Quantity:  int32(quantity),
			LineTotal: utils.LineAmount(price, quantity),
		})
	}
	return items, nil
}
